package http

import (
	"time"

	"heim/internal/core/application/usecases/queries"
	"heim/internal/core/domain/model/customer"
	"heim/internal/core/domain/model/payment"
	"heim/internal/core/domain/model/transaction"
	"heim/internal/core/domain/model/vehicle"

	"github.com/shopspring/decimal"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Pointer fields in update requests are tri-state: an absent field
// leaves the value untouched, an empty (zero) value clears it.

type createCustomerRequest struct {
	GivenNames string  `json:"givenNames"`
	Surnames   string  `json:"surnames"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone,omitempty"`
}

type updateCustomerRequest struct {
	GivenNames *string `json:"givenNames,omitempty"`
	Surnames   *string `json:"surnames,omitempty"`
	Phone      *string `json:"phone,omitempty"`
}

type updateCustomerEmailRequest struct {
	Email string `json:"email"`
}

type addCustomerAddressRequest struct {
	Line1         string `json:"line1"`
	Line2         string `json:"line2,omitempty"`
	City          string `json:"city"`
	StateProvince string `json:"stateProvince,omitempty"`
	PostalCode    string `json:"postalCode,omitempty"`
	Country       string `json:"country"`
	AddressType   string `json:"addressType"`
	IsPrimary     bool   `json:"isPrimary"`
}

type customerSummaryResponse struct {
	ID           string  `json:"id"`
	GivenNames   string  `json:"givenNames"`
	Surnames     string  `json:"surnames"`
	Email        string  `json:"email"`
	Phone        *string `json:"phone,omitempty"`
	AddressCount int     `json:"addressCount"`
}

type customerAddressResponse struct {
	ID            string `json:"id"`
	Line1         string `json:"line1"`
	Line2         string `json:"line2,omitempty"`
	City          string `json:"city"`
	StateProvince string `json:"stateProvince,omitempty"`
	PostalCode    string `json:"postalCode,omitempty"`
	Country       string `json:"country"`
	AddressType   string `json:"addressType"`
	IsPrimary     bool   `json:"isPrimary"`
}

type customerResponse struct {
	ID         string                    `json:"id"`
	GivenNames string                    `json:"givenNames"`
	Surnames   string                    `json:"surnames"`
	Email      string                    `json:"email"`
	Phone      *string                   `json:"phone,omitempty"`
	Addresses  []customerAddressResponse `json:"addresses"`
}

func customerFromQuery(r queries.GetCustomerQueryResponse) customerResponse {
	addresses := make([]customerAddressResponse, len(r.Addresses))
	for i, a := range r.Addresses {
		addresses[i] = customerAddressResponse{
			ID:            a.ID,
			Line1:         a.Line1,
			Line2:         a.Line2,
			City:          a.City,
			StateProvince: a.StateProvince,
			PostalCode:    a.PostalCode,
			Country:       a.Country,
			AddressType:   a.AddressType,
			IsPrimary:     a.IsPrimary,
		}
	}

	return customerResponse{
		ID:         r.ID,
		GivenNames: r.GivenNames,
		Surnames:   r.Surnames,
		Email:      r.Email,
		Phone:      r.Phone,
		Addresses:  addresses,
	}
}

func customerFromDomain(c *customer.Customer) customerResponse {
	var phone *string
	if c.Phone() != nil {
		value := c.Phone().Value()
		phone = &value
	}

	addresses := make([]customerAddressResponse, len(c.Addresses()))
	for i, a := range c.Addresses() {
		addresses[i] = customerAddressResponse{
			ID:            a.ID().String(),
			Line1:         a.Line1(),
			Line2:         a.Line2(),
			City:          a.City(),
			StateProvince: a.StateProvince(),
			PostalCode:    a.PostalCode(),
			Country:       a.Country(),
			AddressType:   string(a.Type()),
			IsPrimary:     a.IsPrimary(),
		}
	}

	return customerResponse{
		ID:         c.ID().String(),
		GivenNames: c.Name().GivenNames(),
		Surnames:   c.Name().Surnames(),
		Email:      c.Email().Value(),
		Phone:      phone,
		Addresses:  addresses,
	}
}

type mileageRequest struct {
	Value int    `json:"value"`
	Unit  string `json:"unit,omitempty"`
}

type createVehicleRequest struct {
	VIN              string         `json:"vin"`
	Make             string         `json:"make"`
	Model            string         `json:"model"`
	Year             int            `json:"year"`
	Color            string         `json:"color,omitempty"`
	FuelType         string         `json:"fuelType"`
	Transmission     string         `json:"transmission"`
	EngineCapacityCC *int           `json:"engineCapacityCc,omitempty"`
	Mileage          mileageRequest `json:"mileage"`
	PlateNumber      *string        `json:"plateNumber,omitempty"`
	PlateState       *string        `json:"plateState,omitempty"`
	OwnerID          *string        `json:"ownerId,omitempty"`
}

type updateVehicleRequest struct {
	Color       *string `json:"color,omitempty"`
	PlateNumber *string `json:"plateNumber,omitempty"`
	PlateState  *string `json:"plateState,omitempty"`
}

type transferVehicleOwnershipRequest struct {
	OwnerID *string `json:"ownerId,omitempty"`
}

type changeVehicleStatusRequest struct {
	Status string `json:"status"`
}

type vehicleResponse struct {
	VIN              string  `json:"vin"`
	Make             string  `json:"make"`
	Model            string  `json:"model"`
	Year             int     `json:"year"`
	Color            string  `json:"color,omitempty"`
	FuelType         string  `json:"fuelType"`
	Transmission     string  `json:"transmission"`
	EngineCapacityCC *int    `json:"engineCapacityCc,omitempty"`
	MileageKm        int     `json:"mileageKm"`
	PlateNumber      *string `json:"plateNumber,omitempty"`
	PlateState       *string `json:"plateState,omitempty"`
	OwnerID          *string `json:"ownerId,omitempty"`
	Status           string  `json:"status"`
}

func vehicleFromQuery(r queries.VehicleResponse) vehicleResponse {
	return vehicleResponse{
		VIN:              r.VIN,
		Make:             r.Make,
		Model:            r.Model,
		Year:             r.Year,
		Color:            r.Color,
		FuelType:         r.FuelType,
		Transmission:     r.Transmission,
		EngineCapacityCC: r.EngineCapacityCC,
		MileageKm:        r.MileageKm,
		PlateNumber:      r.PlateNumber,
		PlateState:       r.PlateState,
		OwnerID:          r.OwnerID,
		Status:           r.Status,
	}
}

func vehicleFromDomain(v *vehicle.MotorVehicle) vehicleResponse {
	var plateNumber, plateState, ownerID *string
	if v.LicensePlate() != nil {
		number := v.LicensePlate().Value()
		state := v.LicensePlate().StateProvince()
		plateNumber = &number
		if state != "" {
			plateState = &state
		}
	}
	if v.Owner() != nil {
		id := v.Owner().String()
		ownerID = &id
	}

	return vehicleResponse{
		VIN:              v.VIN().String(),
		Make:             v.Make(),
		Model:            v.Model(),
		Year:             v.Year(),
		Color:            v.Color(),
		FuelType:         string(v.FuelType()),
		Transmission:     string(v.Transmission()),
		EngineCapacityCC: v.EngineCapacityCC(),
		MileageKm:        v.MileageKm(),
		PlateNumber:      plateNumber,
		PlateState:       plateState,
		OwnerID:          ownerID,
		Status:           string(v.Status()),
	}
}

type createTransactionRequest struct {
	CustomerID      string           `json:"customerId"`
	VIN             string           `json:"vin"`
	Type            string           `json:"type"`
	Date            time.Time        `json:"date"`
	Amount          decimal.Decimal  `json:"amount"`
	RegistrationFee *decimal.Decimal `json:"registrationFee,omitempty"`
	TitleFee        *decimal.Decimal `json:"titleFee,omitempty"`
	ProcessingFee   *decimal.Decimal `json:"processingFee,omitempty"`
}

type updateTransactionRequest struct {
	Type            *string          `json:"type,omitempty"`
	Date            *time.Time       `json:"date,omitempty"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	RegistrationFee *decimal.Decimal `json:"registrationFee,omitempty"`
	TitleFee        *decimal.Decimal `json:"titleFee,omitempty"`
	ProcessingFee   *decimal.Decimal `json:"processingFee,omitempty"`
}

type transactionResponse struct {
	ID              string           `json:"id"`
	CustomerID      string           `json:"customerId"`
	VIN             string           `json:"vin"`
	Type            string           `json:"type"`
	Date            time.Time        `json:"date"`
	Amount          decimal.Decimal  `json:"amount"`
	RegistrationFee *decimal.Decimal `json:"registrationFee,omitempty"`
	TitleFee        *decimal.Decimal `json:"titleFee,omitempty"`
	ProcessingFee   *decimal.Decimal `json:"processingFee,omitempty"`
	TotalFees       decimal.Decimal  `json:"totalFees"`
}

func transactionFromQuery(r queries.TransactionResponse) transactionResponse {
	return transactionResponse{
		ID:              r.ID,
		CustomerID:      r.CustomerID,
		VIN:             r.VIN,
		Type:            r.Type,
		Date:            r.Date,
		Amount:          r.Amount,
		RegistrationFee: r.RegistrationFee,
		TitleFee:        r.TitleFee,
		ProcessingFee:   r.ProcessingFee,
		TotalFees:       r.TotalFees,
	}
}

func transactionFromDomain(t *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:              t.ID().String(),
		CustomerID:      t.CustomerID().String(),
		VIN:             t.VIN().String(),
		Type:            string(t.Type()),
		Date:            t.Date(),
		Amount:          t.Amount(),
		RegistrationFee: t.RegistrationFee(),
		TitleFee:        t.TitleFee(),
		ProcessingFee:   t.ProcessingFee(),
		TotalFees:       t.TotalFees(),
	}
}

type createPaymentRequest struct {
	TransactionID   string          `json:"transactionId"`
	Method          string          `json:"method"`
	Amount          decimal.Decimal `json:"amount"`
	ReferenceNumber string          `json:"referenceNumber,omitempty"`
	Notes           string          `json:"notes,omitempty"`
}

type updatePaymentRequest struct {
	Method          *string          `json:"method,omitempty"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	ReferenceNumber *string          `json:"referenceNumber,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
}

type paymentResponse struct {
	ID              string          `json:"id"`
	TransactionID   string          `json:"transactionId"`
	Method          string          `json:"method"`
	Amount          decimal.Decimal `json:"amount"`
	Status          string          `json:"status"`
	ReferenceNumber string          `json:"referenceNumber,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func paymentFromQuery(r queries.PaymentResponse) paymentResponse {
	return paymentResponse{
		ID:              r.ID,
		TransactionID:   r.TransactionID,
		Method:          r.Method,
		Amount:          r.Amount,
		Status:          r.Status,
		ReferenceNumber: r.ReferenceNumber,
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt,
	}
}

func paymentFromDomain(p *payment.Payment) paymentResponse {
	return paymentResponse{
		ID:              p.ID().String(),
		TransactionID:   p.TransactionID().String(),
		Method:          string(p.Method()),
		Amount:          p.Amount(),
		Status:          string(p.Status()),
		ReferenceNumber: p.ReferenceNumber(),
		Notes:           p.Notes(),
		CreatedAt:       p.CreatedAt(),
	}
}
