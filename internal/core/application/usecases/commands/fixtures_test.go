package commands_test

import (
	"testing"
	"time"

	"heim/internal/core/domain/model/customer"
	"heim/internal/core/domain/model/kernel"
	"heim/internal/core/domain/model/payment"
	"heim/internal/core/domain/model/transaction"
	"heim/internal/core/domain/model/vehicle"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func fixtureCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	return fixtureCustomerAt(t, time.Now())
}

func fixtureCustomerAt(t *testing.T, at time.Time) *customer.Customer {
	t.Helper()

	name, err := kernel.NewPersonName("Jane", "Doe")
	require.NoError(t, err)
	email, err := kernel.NewEmail("jane.doe@example.com")
	require.NoError(t, err)

	c, err := customer.NewCustomer(kernel.GenerateCustomerID(at), name, email, nil)
	require.NoError(t, err)
	return c
}

func fixtureVIN(t *testing.T) kernel.VIN {
	t.Helper()

	vin, err := kernel.NewVIN("1HGCM82633A004352")
	require.NoError(t, err)
	return vin
}

func fixtureVehicle(t *testing.T) *vehicle.MotorVehicle {
	t.Helper()

	mileage, err := kernel.NewMileage(42000, kernel.Kilometers)
	require.NoError(t, err)

	v, err := vehicle.NewMotorVehicle(fixtureVIN(t), "Honda", "Accord", 2003, "silver",
		vehicle.FuelPetrol, vehicle.TransmissionAutomatic, nil, mileage, nil, nil)
	require.NoError(t, err)
	return v
}

func fixtureTransaction(t *testing.T) *transaction.Transaction {
	t.Helper()

	tx, err := transaction.NewTransaction(kernel.NewUUID(),
		kernel.GenerateCustomerID(time.Now()), fixtureVIN(t),
		transaction.TypeRenewal, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		decimal.NewFromInt(120), nil, nil, nil)
	require.NoError(t, err)
	return tx
}

func fixturePayment(t *testing.T) *payment.Payment {
	t.Helper()

	p, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(),
		payment.MethodCard, decimal.NewFromInt(120), "REF-001", "")
	require.NoError(t, err)
	return p
}
