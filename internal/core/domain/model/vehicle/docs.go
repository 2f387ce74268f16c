// Package vehicle contains the MotorVehicle aggregate root, its status and
// classification enums, and the domain events the vehicle lifecycle
// publishes. The VIN is the aggregate identity; odometer readings are
// monotone non-decreasing.
package vehicle
