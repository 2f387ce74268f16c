// Package transaction contains the Transaction entity: a registry
// operation (renewal, transfer, registration, inspection) performed for a
// customer on a vehicle, with its amount and optional fee breakdown.
package transaction
