package http

import (
	"net/http"

	"heim/internal/core/application/usecases/commands"
	"heim/internal/core/application/usecases/queries"
	"heim/internal/core/domain/model/kernel"
	"heim/internal/core/domain/model/payment"

	"github.com/labstack/echo/v4"
)

// GetPayments handles GET /api/v1/payments. An optional transactionId
// parameter narrows the list.
func (s *Server) GetPayments(ctx echo.Context) error {
	transactionID, err := optionalUUIDParam(ctx.QueryParam("transactionId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetAllPaymentsQuery(transactionID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	payments, err := s.handlers.GetAllPayments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]paymentResponse, len(payments))
	for i, p := range payments {
		response[i] = paymentFromQuery(p)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPayment handles GET /api/v1/payments/:id.
func (s *Server) GetPayment(ctx echo.Context) error {
	paymentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetPaymentQuery(paymentID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	found, err := s.handlers.GetPayment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, paymentFromQuery(found))
}

// CreatePayment handles POST /api/v1/payments. Payments start in the
// pending status.
func (s *Server) CreatePayment(ctx echo.Context) error {
	var request createPaymentRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequestResponse(ctx, "invalid request body")
	}

	transactionID, err := kernel.UUIDFromString(request.TransactionID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreatePaymentCommand(
		kernel.NewUUID(),
		transactionID,
		payment.Method(request.Method),
		request.Amount,
		request.ReferenceNumber,
		request.Notes,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.handlers.CreatePayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, paymentFromDomain(created))
}

// UpdatePayment handles PATCH /api/v1/payments/:id. Absent fields are
// left untouched.
func (s *Server) UpdatePayment(ctx echo.Context) error {
	paymentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request updatePaymentRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequestResponse(ctx, "invalid request body")
	}

	var method *payment.Method
	if request.Method != nil {
		converted := payment.Method(*request.Method)
		method = &converted
	}

	cmd, err := commands.NewUpdatePaymentCommand(
		paymentID, method, request.Amount, request.ReferenceNumber, request.Notes)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.handlers.UpdatePayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, paymentFromDomain(updated))
}

// CompletePayment handles POST /api/v1/payments/:id/complete.
func (s *Server) CompletePayment(ctx echo.Context) error {
	paymentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCompletePaymentCommand(paymentID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.handlers.CompletePayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, paymentFromDomain(updated))
}

// RefundPayment handles POST /api/v1/payments/:id/refund.
func (s *Server) RefundPayment(ctx echo.Context) error {
	paymentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewRefundPaymentCommand(paymentID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.handlers.RefundPayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, paymentFromDomain(updated))
}

// CancelPayment handles POST /api/v1/payments/:id/cancel.
func (s *Server) CancelPayment(ctx echo.Context) error {
	paymentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCancelPaymentCommand(paymentID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.handlers.CancelPayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, paymentFromDomain(updated))
}

// DeletePayment handles DELETE /api/v1/payments/:id.
func (s *Server) DeletePayment(ctx echo.Context) error {
	paymentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeletePaymentCommand(paymentID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.handlers.DeletePayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// optionalUUIDParam parses a UUID from a query parameter: empty means
// no filter.
func optionalUUIDParam(raw string) (*kernel.UUID, error) {
	if raw == "" {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
