// Package customer contains the Customer aggregate root, its Address child
// entities, and the domain events the customer lifecycle publishes.
//
// The aggregate enforces the single-primary-address invariant: attaching a
// new primary address demotes every previously primary address in the same
// operation. Email uniqueness across customers is enforced at the
// repository layer where the full population is visible.
package customer
