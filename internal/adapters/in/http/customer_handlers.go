package http

import (
	"net/http"

	"heim/internal/core/application/usecases/commands"
	"heim/internal/core/application/usecases/queries"
	"heim/internal/core/domain/model/customer"
	"heim/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetCustomers handles GET /api/v1/customers. An optional search
// parameter narrows the list by name or email.
func (s *Server) GetCustomers(ctx echo.Context) error {
	query := queries.NewGetAllCustomersQuery(ctx.QueryParam("search"))

	customers, err := s.handlers.GetAllCustomers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]customerSummaryResponse, len(customers))
	for i, c := range customers {
		response[i] = customerSummaryResponse{
			ID:           c.ID,
			GivenNames:   c.GivenNames,
			Surnames:     c.Surnames,
			Email:        c.Email,
			Phone:        c.Phone,
			AddressCount: c.AddressCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCustomer handles GET /api/v1/customers/:id.
func (s *Server) GetCustomer(ctx echo.Context) error {
	customerID, err := kernel.NewCustomerID(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetCustomerQuery(customerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	found, err := s.handlers.GetCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, customerFromQuery(found))
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var request createCustomerRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequestResponse(ctx, "invalid request body")
	}

	name, err := kernel.NewPersonName(request.GivenNames, request.Surnames)
	if err != nil {
		return errorResponse(ctx, err)
	}

	email, err := kernel.NewEmail(request.Email)
	if err != nil {
		return errorResponse(ctx, err)
	}

	phone, err := optionalPhone(request.Phone)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreateCustomerCommand(name, email, phone)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.handlers.CreateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, customerFromDomain(created))
}

// UpdateCustomer handles PATCH /api/v1/customers/:id. Absent fields
// are left untouched; an empty phone clears the stored number.
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	customerID, err := kernel.NewCustomerID(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request updateCustomerRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequestResponse(ctx, "invalid request body")
	}

	phone, err := tristatePhone(request.Phone)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateCustomerCommand(
		customerID, request.GivenNames, request.Surnames, phone)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.handlers.UpdateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, customerFromDomain(updated))
}

// UpdateCustomerEmail handles PUT /api/v1/customers/:id/email.
func (s *Server) UpdateCustomerEmail(ctx echo.Context) error {
	customerID, err := kernel.NewCustomerID(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request updateCustomerEmailRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequestResponse(ctx, "invalid request body")
	}

	email, err := kernel.NewEmail(request.Email)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateCustomerEmailCommand(customerID, email)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.handlers.UpdateCustomerEmail.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, customerFromDomain(updated))
}

// DeleteCustomer handles DELETE /api/v1/customers/:id.
func (s *Server) DeleteCustomer(ctx echo.Context) error {
	customerID, err := kernel.NewCustomerID(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeleteCustomerCommand(customerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.handlers.DeleteCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddCustomerAddress handles POST /api/v1/customers/:id/addresses.
func (s *Server) AddCustomerAddress(ctx echo.Context) error {
	customerID, err := kernel.NewCustomerID(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request addCustomerAddressRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequestResponse(ctx, "invalid request body")
	}

	cmd, err := commands.NewAddCustomerAddressCommand(
		customerID,
		request.Line1, request.Line2, request.City,
		request.StateProvince, request.PostalCode, request.Country,
		customer.AddressType(request.AddressType),
		request.IsPrimary,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.handlers.AddCustomerAddress.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, customerFromDomain(updated))
}

// RemoveCustomerAddress handles DELETE /api/v1/customers/:id/addresses/:addressId.
func (s *Server) RemoveCustomerAddress(ctx echo.Context) error {
	customerID, err := kernel.NewCustomerID(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	addressID, err := kernel.UUIDFromString(ctx.Param("addressId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewRemoveCustomerAddressCommand(customerID, addressID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.handlers.RemoveCustomerAddress.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, customerFromDomain(updated))
}

// optionalPhone builds a phone number from a create request field:
// nil or empty means no phone.
func optionalPhone(raw *string) (*kernel.PhoneNumber, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	phone, err := kernel.NewPhoneNumber(*raw)
	if err != nil {
		return nil, err
	}
	return &phone, nil
}

// tristatePhone builds a phone number from an update request field:
// nil leaves the stored number untouched, empty clears it.
func tristatePhone(raw *string) (*kernel.PhoneNumber, error) {
	if raw == nil {
		return nil, nil
	}
	if *raw == "" {
		return &kernel.PhoneNumber{}, nil
	}

	phone, err := kernel.NewPhoneNumber(*raw)
	if err != nil {
		return nil, err
	}
	return &phone, nil
}
