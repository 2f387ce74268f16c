// Package kernel contains the shared value objects of the domain:
// identifiers (UUID, CustomerID), contact details (Email, PhoneNumber,
// PersonName), and vehicle primitives (VIN, LicensePlate, Mileage).
//
// Value objects are immutable and validated at construction; the
// constructor is the only error channel, and normalization (case
// folding, separator stripping) happens before validation so a stored
// value always round-trips through its constructor unchanged. Zero
// values are invalid and detectable via Validate, following the
// constructor-guard pattern used across the domain model.
package kernel
