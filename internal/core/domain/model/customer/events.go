package customer

import "time"

// baseEvent carries the occurrence timestamp shared by every customer event.
type baseEvent struct {
	occurredAt time.Time
}

func newBaseEvent() baseEvent {
	return baseEvent{occurredAt: time.Now().UTC()}
}

func (e baseEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// CreatedEvent is published after a customer is persisted for the first time.
type CreatedEvent struct {
	baseEvent

	CustomerID string
	Email      string
}

func NewCreatedEvent(c *Customer) CreatedEvent {
	return CreatedEvent{
		baseEvent:  newBaseEvent(),
		CustomerID: c.ID().Value(),
		Email:      c.Email().Value(),
	}
}

func (CreatedEvent) EventName() string {
	return "customer.created"
}

// UpdatedEvent is published after a profile update that changed at least
// one field. ChangedFields lists the fields that actually changed.
type UpdatedEvent struct {
	baseEvent

	CustomerID    string
	ChangedFields []string
}

func NewUpdatedEvent(c *Customer, changedFields []string) UpdatedEvent {
	return UpdatedEvent{
		baseEvent:     newBaseEvent(),
		CustomerID:    c.ID().Value(),
		ChangedFields: changedFields,
	}
}

func (UpdatedEvent) EventName() string {
	return "customer.updated"
}

// EmailChangedEvent is published when a customer's email actually changes.
type EmailChangedEvent struct {
	baseEvent

	CustomerID string
	OldEmail   string
	NewEmail   string
}

func NewEmailChangedEvent(c *Customer, oldEmail string) EmailChangedEvent {
	return EmailChangedEvent{
		baseEvent:  newBaseEvent(),
		CustomerID: c.ID().Value(),
		OldEmail:   oldEmail,
		NewEmail:   c.Email().Value(),
	}
}

func (EmailChangedEvent) EventName() string {
	return "customer.email_changed"
}

// DeletedEvent is published after a customer is removed.
type DeletedEvent struct {
	baseEvent

	CustomerID string
}

func NewDeletedEvent(customerID string) DeletedEvent {
	return DeletedEvent{
		baseEvent:  newBaseEvent(),
		CustomerID: customerID,
	}
}

func (DeletedEvent) EventName() string {
	return "customer.deleted"
}

// AddressAddedEvent is published after an address is attached.
type AddressAddedEvent struct {
	baseEvent

	CustomerID string
	AddressID  string
	IsPrimary  bool
}

func NewAddressAddedEvent(c *Customer, address *Address) AddressAddedEvent {
	return AddressAddedEvent{
		baseEvent:  newBaseEvent(),
		CustomerID: c.ID().Value(),
		AddressID:  address.ID().String(),
		IsPrimary:  address.IsPrimary(),
	}
}

func (AddressAddedEvent) EventName() string {
	return "customer.address_added"
}

// AddressRemovedEvent is published after an address is detached.
type AddressRemovedEvent struct {
	baseEvent

	CustomerID string
	AddressID  string
}

func NewAddressRemovedEvent(c *Customer, addressID string) AddressRemovedEvent {
	return AddressRemovedEvent{
		baseEvent:  newBaseEvent(),
		CustomerID: c.ID().Value(),
		AddressID:  addressID,
	}
}

func (AddressRemovedEvent) EventName() string {
	return "customer.address_removed"
}
