package vehicle

import "time"

// baseEvent carries the occurrence timestamp shared by every vehicle event.
type baseEvent struct {
	occurredAt time.Time
}

func newBaseEvent() baseEvent {
	return baseEvent{occurredAt: time.Now().UTC()}
}

func (e baseEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// CreatedEvent is published after a vehicle is persisted for the first time.
type CreatedEvent struct {
	baseEvent

	VIN     string
	OwnerID *string
}

func NewCreatedEvent(v *MotorVehicle) CreatedEvent {
	event := CreatedEvent{
		baseEvent: newBaseEvent(),
		VIN:       v.VIN().Value(),
	}
	if owner := v.Owner(); owner != nil {
		id := owner.Value()
		event.OwnerID = &id
	}
	return event
}

func (CreatedEvent) EventName() string {
	return "vehicle.created"
}

// UpdatedEvent is published after a profile update that changed at least
// one field.
type UpdatedEvent struct {
	baseEvent

	VIN           string
	ChangedFields []string
}

func NewUpdatedEvent(v *MotorVehicle, changedFields []string) UpdatedEvent {
	return UpdatedEvent{
		baseEvent:     newBaseEvent(),
		VIN:           v.VIN().Value(),
		ChangedFields: changedFields,
	}
}

func (UpdatedEvent) EventName() string {
	return "vehicle.updated"
}

// MileageUpdatedEvent is published after the odometer reading advanced.
type MileageUpdatedEvent struct {
	baseEvent

	VIN       string
	MileageKm int
}

func NewMileageUpdatedEvent(v *MotorVehicle) MileageUpdatedEvent {
	return MileageUpdatedEvent{
		baseEvent: newBaseEvent(),
		VIN:       v.VIN().Value(),
		MileageKm: v.MileageKm(),
	}
}

func (MileageUpdatedEvent) EventName() string {
	return "vehicle.mileage_updated"
}

// OwnerChangedEvent is published after ownership actually transferred.
type OwnerChangedEvent struct {
	baseEvent

	VIN        string
	OldOwnerID *string
	NewOwnerID *string
}

func NewOwnerChangedEvent(v *MotorVehicle, oldOwnerID *string) OwnerChangedEvent {
	event := OwnerChangedEvent{
		baseEvent:  newBaseEvent(),
		VIN:        v.VIN().Value(),
		OldOwnerID: oldOwnerID,
	}
	if owner := v.Owner(); owner != nil {
		id := owner.Value()
		event.NewOwnerID = &id
	}
	return event
}

func (OwnerChangedEvent) EventName() string {
	return "vehicle.owner_changed"
}

// StatusChangedEvent is published after the registration status changed.
type StatusChangedEvent struct {
	baseEvent

	VIN       string
	OldStatus string
	NewStatus string
}

func NewStatusChangedEvent(v *MotorVehicle, oldStatus Status) StatusChangedEvent {
	return StatusChangedEvent{
		baseEvent: newBaseEvent(),
		VIN:       v.VIN().Value(),
		OldStatus: oldStatus.String(),
		NewStatus: v.Status().String(),
	}
}

func (StatusChangedEvent) EventName() string {
	return "vehicle.status_changed"
}

// DeletedEvent is published after a vehicle is removed.
type DeletedEvent struct {
	baseEvent

	VIN string
}

func NewDeletedEvent(vin string) DeletedEvent {
	return DeletedEvent{
		baseEvent: newBaseEvent(),
		VIN:       vin,
	}
}

func (DeletedEvent) EventName() string {
	return "vehicle.deleted"
}
