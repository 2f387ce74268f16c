package payment

import (
	"context"
	"errors"
	"fmt"

	"heim/internal/pkg/errs"

	loopfsm "github.com/looplab/fsm"
)

// Status is the lifecycle state of a payment.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
	StatusRefunded  Status = "REFUNDED"
	StatusCancelled Status = "CANCELLED"
)

// Event is an action that triggers a status transition.
type Event string

const (
	EventComplete Event = "complete"
	EventRefund   Event = "refund"
	EventCancel   Event = "cancel"
)

// Transition defines a valid status change: an event moves a payment from
// Src to Dst.
type Transition struct {
	Event Event
	Src   Status
	Dst   Status
}

// Transitions defines all valid status changes in the payment lifecycle.
// REFUNDED and CANCELLED are terminal; FAILED is recorded by external
// systems and has no transition targeting or leaving it.
var Transitions = []Transition{
	{Event: EventComplete, Src: StatusPending, Dst: StatusCompleted},
	{Event: EventCancel, Src: StatusPending, Dst: StatusCancelled},
	{Event: EventRefund, Src: StatusCompleted, Dst: StatusRefunded},
}

// transitionEvents converts Transitions into looplab/fsm EventDesc format,
// consolidating transitions with the same event+destination into a single
// EventDesc with multiple source states.
var transitionEvents = buildTransitionEvents()

func buildTransitionEvents() []loopfsm.EventDesc {
	type key struct {
		event string
		dst   string
	}
	grouped := make(map[key][]string)
	order := make([]key, 0)

	for _, t := range Transitions {
		k := key{event: string(t.Event), dst: string(t.Dst)}
		if _, exists := grouped[k]; !exists {
			order = append(order, k)
		}
		grouped[k] = append(grouped[k], string(t.Src))
	}

	out := make([]loopfsm.EventDesc, 0, len(order))
	for _, k := range order {
		out = append(out, loopfsm.EventDesc{
			Name: k.event,
			Src:  grouped[k],
			Dst:  k.dst,
		})
	}
	return out
}

func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusPending:   {},
		StatusCompleted: {},
		StatusFailed:    {},
		StatusRefunded:  {},
		StatusCancelled: {},
	}
}

// Validate checks the status is one of the known values.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
			fmt.Errorf("%q is not a valid payment status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}

// apply runs the event against the transition table and returns the
// destination status. A short-lived FSM instance is created per call
// because looplab/fsm tracks the current state internally.
func (s Status) apply(event Event, paymentID string) (Status, error) {
	machine := loopfsm.NewFSM(string(s), transitionEvents, nil)

	if err := machine.Event(context.Background(), string(event)); err != nil {
		var invalidEvent loopfsm.InvalidEventError
		var noTransition loopfsm.NoTransitionError
		if errors.As(err, &invalidEvent) || errors.As(err, &noTransition) {
			return "", errs.NewInvalidStateTransitionError(
				"payment", paymentID, string(event), string(s))
		}
		return "", err
	}

	return Status(machine.Current()), nil
}
