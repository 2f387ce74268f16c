package http

import (
	"net/http"

	"heim/internal/core/application/usecases/commands"
	"heim/internal/core/application/usecases/queries"
	"heim/internal/core/domain/model/kernel"
	"heim/internal/core/domain/model/transaction"

	"github.com/labstack/echo/v4"
)

// GetTransactions handles GET /api/v1/transactions. Optional
// customerId and vin parameters narrow the list.
func (s *Server) GetTransactions(ctx echo.Context) error {
	customerID, err := optionalCustomerIDParam(ctx.QueryParam("customerId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	vin, err := optionalVINParam(ctx.QueryParam("vin"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetAllTransactionsQuery(customerID, vin)
	if err != nil {
		return errorResponse(ctx, err)
	}

	transactions, err := s.handlers.GetAllTransactions.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]transactionResponse, len(transactions))
	for i, t := range transactions {
		response[i] = transactionFromQuery(t)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetTransaction handles GET /api/v1/transactions/:id.
func (s *Server) GetTransaction(ctx echo.Context) error {
	transactionID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetTransactionQuery(transactionID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	found, err := s.handlers.GetTransaction.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, transactionFromQuery(found))
}

// CreateTransaction handles POST /api/v1/transactions.
func (s *Server) CreateTransaction(ctx echo.Context) error {
	var request createTransactionRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequestResponse(ctx, "invalid request body")
	}

	customerID, err := kernel.NewCustomerID(request.CustomerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	vin, err := kernel.NewVIN(request.VIN)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreateTransactionCommand(
		kernel.NewUUID(),
		customerID,
		vin,
		transaction.Type(request.Type),
		request.Date,
		request.Amount,
		request.RegistrationFee, request.TitleFee, request.ProcessingFee,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.handlers.CreateTransaction.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, transactionFromDomain(created))
}

// UpdateTransaction handles PATCH /api/v1/transactions/:id. Absent
// fields are left untouched; a zero fee clears the stored fee.
func (s *Server) UpdateTransaction(ctx echo.Context) error {
	transactionID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request updateTransactionRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequestResponse(ctx, "invalid request body")
	}

	var transactionType *transaction.Type
	if request.Type != nil {
		converted := transaction.Type(*request.Type)
		transactionType = &converted
	}

	cmd, err := commands.NewUpdateTransactionCommand(
		transactionID,
		transactionType,
		request.Date,
		request.Amount,
		request.RegistrationFee, request.TitleFee, request.ProcessingFee,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.handlers.UpdateTransaction.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, transactionFromDomain(updated))
}

// DeleteTransaction handles DELETE /api/v1/transactions/:id.
func (s *Server) DeleteTransaction(ctx echo.Context) error {
	transactionID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeleteTransactionCommand(transactionID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.handlers.DeleteTransaction.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// optionalCustomerIDParam parses a customer identifier from a query
// parameter: empty means no filter.
func optionalCustomerIDParam(raw string) (*kernel.CustomerID, error) {
	if raw == "" {
		return nil, nil
	}

	customerID, err := kernel.NewCustomerID(raw)
	if err != nil {
		return nil, err
	}
	return &customerID, nil
}

// optionalVINParam parses a VIN from a query parameter: empty means
// no filter.
func optionalVINParam(raw string) (*kernel.VIN, error) {
	if raw == "" {
		return nil, nil
	}

	vin, err := kernel.NewVIN(raw)
	if err != nil {
		return nil, err
	}
	return &vin, nil
}
