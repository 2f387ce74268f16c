package eventbus_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"heim/internal/pkg/eventbus"
	"heim/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
)

type testEvent struct {
	name string
	at   time.Time
}

func (e testEvent) EventName() string     { return e.name }
func (e testEvent) OccurredAt() time.Time { return e.at }

func TestDispatcher_Publish(t *testing.T) {
	t.Run("delivers_to_subscribers_in_registration_order", func(t *testing.T) {
		d := eventbus.NewDispatcher(logger.NewNop())

		var calls []string
		d.Subscribe("thing.happened", func(_ context.Context, _ eventbus.Event) error {
			calls = append(calls, "first")
			return nil
		})
		d.Subscribe("thing.happened", func(_ context.Context, _ eventbus.Event) error {
			calls = append(calls, "second")
			return nil
		})

		d.Publish(context.Background(), testEvent{name: "thing.happened", at: time.Now()})

		assert.Equal(t, []string{"first", "second"}, calls)
	})

	t.Run("unsubscribed_event_is_a_no_op", func(t *testing.T) {
		d := eventbus.NewDispatcher(logger.NewNop())

		d.Publish(context.Background(), testEvent{name: "nobody.cares", at: time.Now()})
	})

	t.Run("handler_error_does_not_stop_later_handlers", func(t *testing.T) {
		d := eventbus.NewDispatcher(logger.NewNop())

		secondRan := false
		d.Subscribe("thing.happened", func(_ context.Context, _ eventbus.Event) error {
			return errors.New("boom")
		})
		d.Subscribe("thing.happened", func(_ context.Context, _ eventbus.Event) error {
			secondRan = true
			return nil
		})

		d.Publish(context.Background(), testEvent{name: "thing.happened", at: time.Now()})

		assert.True(t, secondRan)
	})

	t.Run("instances_are_isolated", func(t *testing.T) {
		d1 := eventbus.NewDispatcher(logger.NewNop())
		d2 := eventbus.NewDispatcher(logger.NewNop())

		called := false
		d1.Subscribe("thing.happened", func(_ context.Context, _ eventbus.Event) error {
			called = true
			return nil
		})

		d2.Publish(context.Background(), testEvent{name: "thing.happened", at: time.Now()})

		assert.False(t, called)
	})
}
