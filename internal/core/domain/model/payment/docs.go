// Package payment contains the Payment aggregate root and its status
// machine.
//
// Valid status changes:
//
//	PENDING ──complete──> COMPLETED ──refund──> REFUNDED
//	    │
//	    └────cancel─────> CANCELLED
//
// REFUNDED and CANCELLED are terminal. FAILED exists as a recorded value
// with no transitions. The transition table in status.go is the single
// source of truth; looplab/fsm enforces it at runtime.
package payment
