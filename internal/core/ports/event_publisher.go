package ports

import (
	"context"

	"heim/internal/pkg/eventbus"
)

// EventPublisher delivers domain events after a command has committed.
// Delivery failures are an observability concern, not a business one:
// implementations log and swallow handler errors.
type EventPublisher interface {
	Publish(ctx context.Context, events ...eventbus.Event)
}
