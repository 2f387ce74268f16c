// Package http exposes the application use cases over a REST API.
//
// Each route handler binds the request, builds the value objects and
// the command or query, dispatches it, and renders the result. All
// failures are rendered as an Error body with a status derived from
// the application error.
package http

import (
	"net/http"

	"heim/internal/core/application/usecases/commands"
	"heim/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Handlers bundles every command and query handler the server routes to.
type Handlers struct {
	CreateCustomer        commands.CreateCustomerCommandHandler
	UpdateCustomer        commands.UpdateCustomerCommandHandler
	UpdateCustomerEmail   commands.UpdateCustomerEmailCommandHandler
	DeleteCustomer        commands.DeleteCustomerCommandHandler
	AddCustomerAddress    commands.AddCustomerAddressCommandHandler
	RemoveCustomerAddress commands.RemoveCustomerAddressCommandHandler

	CreateVehicle            commands.CreateVehicleCommandHandler
	UpdateVehicle            commands.UpdateVehicleCommandHandler
	UpdateVehicleMileage     commands.UpdateVehicleMileageCommandHandler
	TransferVehicleOwnership commands.TransferVehicleOwnershipCommandHandler
	ChangeVehicleStatus      commands.ChangeVehicleStatusCommandHandler
	DeleteVehicle            commands.DeleteVehicleCommandHandler

	CreateTransaction commands.CreateTransactionCommandHandler
	UpdateTransaction commands.UpdateTransactionCommandHandler
	DeleteTransaction commands.DeleteTransactionCommandHandler

	CreatePayment   commands.CreatePaymentCommandHandler
	UpdatePayment   commands.UpdatePaymentCommandHandler
	CompletePayment commands.CompletePaymentCommandHandler
	RefundPayment   commands.RefundPaymentCommandHandler
	CancelPayment   commands.CancelPaymentCommandHandler
	DeletePayment   commands.DeletePaymentCommandHandler

	GetAllCustomers    queries.GetAllCustomersQueryHandler
	GetCustomer        queries.GetCustomerQueryHandler
	GetAllVehicles     queries.GetAllVehiclesQueryHandler
	GetVehicle         queries.GetVehicleQueryHandler
	GetAllTransactions queries.GetAllTransactionsQueryHandler
	GetTransaction     queries.GetTransactionQueryHandler
	GetAllPayments     queries.GetAllPaymentsQueryHandler
	GetPayment         queries.GetPaymentQueryHandler
}

// Server coordinates between HTTP routes and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates an HTTP server routing to the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})

	api := e.Group("/api/v1")

	api.GET("/customers", s.GetCustomers)
	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers/:id", s.GetCustomer)
	api.PATCH("/customers/:id", s.UpdateCustomer)
	api.DELETE("/customers/:id", s.DeleteCustomer)
	api.PUT("/customers/:id/email", s.UpdateCustomerEmail)
	api.POST("/customers/:id/addresses", s.AddCustomerAddress)
	api.DELETE("/customers/:id/addresses/:addressId", s.RemoveCustomerAddress)

	api.GET("/vehicles", s.GetVehicles)
	api.POST("/vehicles", s.CreateVehicle)
	api.GET("/vehicles/:vin", s.GetVehicle)
	api.PATCH("/vehicles/:vin", s.UpdateVehicle)
	api.DELETE("/vehicles/:vin", s.DeleteVehicle)
	api.PUT("/vehicles/:vin/mileage", s.UpdateVehicleMileage)
	api.PUT("/vehicles/:vin/owner", s.TransferVehicleOwnership)
	api.PUT("/vehicles/:vin/status", s.ChangeVehicleStatus)

	api.GET("/transactions", s.GetTransactions)
	api.POST("/transactions", s.CreateTransaction)
	api.GET("/transactions/:id", s.GetTransaction)
	api.PATCH("/transactions/:id", s.UpdateTransaction)
	api.DELETE("/transactions/:id", s.DeleteTransaction)

	api.GET("/payments", s.GetPayments)
	api.POST("/payments", s.CreatePayment)
	api.GET("/payments/:id", s.GetPayment)
	api.PATCH("/payments/:id", s.UpdatePayment)
	api.DELETE("/payments/:id", s.DeletePayment)
	api.POST("/payments/:id/complete", s.CompletePayment)
	api.POST("/payments/:id/refund", s.RefundPayment)
	api.POST("/payments/:id/cancel", s.CancelPayment)
}
