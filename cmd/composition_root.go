package cmd

import (
	"context"

	httpin "heim/internal/adapters/in/http"
	"heim/internal/adapters/out/postgres"
	"heim/internal/core/application/usecases/commands"
	"heim/internal/core/application/usecases/queries"
	"heim/internal/core/ports"
	"heim/internal/pkg/eventbus"
	"heim/internal/pkg/logger"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	dispatcher *eventbus.Dispatcher
	log        *logger.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, log *logger.Logger) CompositionRoot {
	dispatcher := eventbus.NewDispatcher(log)
	subscribeAuditLog(dispatcher, log)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		dispatcher: dispatcher,
		log:        log,
	}
}

// subscribeAuditLog records every domain event in the application log.
func subscribeAuditLog(dispatcher *eventbus.Dispatcher, log *logger.Logger) {
	eventNames := []string{
		"customer.created",
		"customer.updated",
		"customer.email_changed",
		"customer.deleted",
		"customer.address_added",
		"customer.address_removed",
		"vehicle.created",
		"vehicle.updated",
		"vehicle.mileage_updated",
		"vehicle.owner_changed",
		"vehicle.status_changed",
		"vehicle.deleted",
	}

	for _, name := range eventNames {
		dispatcher.Subscribe(name, func(_ context.Context, event eventbus.Event) error {
			log.Info("domain event",
				"event", event.EventName(),
				"occurredAt", event.OccurredAt(),
			)
			return nil
		})
	}
}

func (c *CompositionRoot) EventPublisher() ports.EventPublisher {
	return c.dispatcher
}

// CreateHTTPHandlers bundles every command and query handler for the
// HTTP server.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateCustomer:        c.CreateCreateCustomerCommandHandler(),
		UpdateCustomer:        c.CreateUpdateCustomerCommandHandler(),
		UpdateCustomerEmail:   c.CreateUpdateCustomerEmailCommandHandler(),
		DeleteCustomer:        c.CreateDeleteCustomerCommandHandler(),
		AddCustomerAddress:    c.CreateAddCustomerAddressCommandHandler(),
		RemoveCustomerAddress: c.CreateRemoveCustomerAddressCommandHandler(),

		CreateVehicle:            c.CreateCreateVehicleCommandHandler(),
		UpdateVehicle:            c.CreateUpdateVehicleCommandHandler(),
		UpdateVehicleMileage:     c.CreateUpdateVehicleMileageCommandHandler(),
		TransferVehicleOwnership: c.CreateTransferVehicleOwnershipCommandHandler(),
		ChangeVehicleStatus:      c.CreateChangeVehicleStatusCommandHandler(),
		DeleteVehicle:            c.CreateDeleteVehicleCommandHandler(),

		CreateTransaction: c.CreateCreateTransactionCommandHandler(),
		UpdateTransaction: c.CreateUpdateTransactionCommandHandler(),
		DeleteTransaction: c.CreateDeleteTransactionCommandHandler(),

		CreatePayment:   c.CreateCreatePaymentCommandHandler(),
		UpdatePayment:   c.CreateUpdatePaymentCommandHandler(),
		CompletePayment: c.CreateCompletePaymentCommandHandler(),
		RefundPayment:   c.CreateRefundPaymentCommandHandler(),
		CancelPayment:   c.CreateCancelPaymentCommandHandler(),
		DeletePayment:   c.CreateDeletePaymentCommandHandler(),

		GetAllCustomers:    c.CreateGetAllCustomersQueryHandler(),
		GetCustomer:        c.CreateGetCustomerQueryHandler(),
		GetAllVehicles:     c.CreateGetAllVehiclesQueryHandler(),
		GetVehicle:         c.CreateGetVehicleQueryHandler(),
		GetAllTransactions: c.CreateGetAllTransactionsQueryHandler(),
		GetTransaction:     c.CreateGetTransactionQueryHandler(),
		GetAllPayments:     c.CreateGetAllPaymentsQueryHandler(),
		GetPayment:         c.CreateGetPaymentQueryHandler(),
	}
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) vehicleUoWFactory() commands.VehicleUoWFactory {
	return FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) transactionUoWFactory() commands.TransactionUoWFactory {
	return FuncTransactionUoWFactory(func() commands.TransactionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.customerUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	return commands.NewUpdateCustomerCommandHandler(c.customerUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateUpdateCustomerEmailCommandHandler() commands.UpdateCustomerEmailCommandHandler {
	return commands.NewUpdateCustomerEmailCommandHandler(c.customerUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() commands.DeleteCustomerCommandHandler {
	return commands.NewDeleteCustomerCommandHandler(c.customerUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateAddCustomerAddressCommandHandler() commands.AddCustomerAddressCommandHandler {
	return commands.NewAddCustomerAddressCommandHandler(c.customerUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateRemoveCustomerAddressCommandHandler() commands.RemoveCustomerAddressCommandHandler {
	return commands.NewRemoveCustomerAddressCommandHandler(c.customerUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateCreateVehicleCommandHandler() commands.CreateVehicleCommandHandler {
	return commands.NewCreateVehicleCommandHandler(c.vehicleUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateUpdateVehicleCommandHandler() commands.UpdateVehicleCommandHandler {
	return commands.NewUpdateVehicleCommandHandler(c.vehicleUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateUpdateVehicleMileageCommandHandler() commands.UpdateVehicleMileageCommandHandler {
	return commands.NewUpdateVehicleMileageCommandHandler(c.vehicleUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateTransferVehicleOwnershipCommandHandler() commands.TransferVehicleOwnershipCommandHandler {
	return commands.NewTransferVehicleOwnershipCommandHandler(c.vehicleUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateChangeVehicleStatusCommandHandler() commands.ChangeVehicleStatusCommandHandler {
	return commands.NewChangeVehicleStatusCommandHandler(c.vehicleUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateDeleteVehicleCommandHandler() commands.DeleteVehicleCommandHandler {
	return commands.NewDeleteVehicleCommandHandler(c.vehicleUoWFactory(), c.dispatcher)
}

func (c *CompositionRoot) CreateCreateTransactionCommandHandler() commands.CreateTransactionCommandHandler {
	return commands.NewCreateTransactionCommandHandler(c.transactionUoWFactory())
}

func (c *CompositionRoot) CreateUpdateTransactionCommandHandler() commands.UpdateTransactionCommandHandler {
	return commands.NewUpdateTransactionCommandHandler(c.transactionUoWFactory())
}

func (c *CompositionRoot) CreateDeleteTransactionCommandHandler() commands.DeleteTransactionCommandHandler {
	return commands.NewDeleteTransactionCommandHandler(c.transactionUoWFactory())
}

func (c *CompositionRoot) CreateCreatePaymentCommandHandler() commands.CreatePaymentCommandHandler {
	return commands.NewCreatePaymentCommandHandler(c.paymentUoWFactory())
}

func (c *CompositionRoot) CreateUpdatePaymentCommandHandler() commands.UpdatePaymentCommandHandler {
	return commands.NewUpdatePaymentCommandHandler(c.paymentUoWFactory())
}

func (c *CompositionRoot) CreateCompletePaymentCommandHandler() commands.CompletePaymentCommandHandler {
	return commands.NewCompletePaymentCommandHandler(c.paymentUoWFactory())
}

func (c *CompositionRoot) CreateRefundPaymentCommandHandler() commands.RefundPaymentCommandHandler {
	return commands.NewRefundPaymentCommandHandler(c.paymentUoWFactory())
}

func (c *CompositionRoot) CreateCancelPaymentCommandHandler() commands.CancelPaymentCommandHandler {
	return commands.NewCancelPaymentCommandHandler(c.paymentUoWFactory())
}

func (c *CompositionRoot) CreateDeletePaymentCommandHandler() commands.DeletePaymentCommandHandler {
	return commands.NewDeletePaymentCommandHandler(c.paymentUoWFactory())
}

func (c *CompositionRoot) CreateGetAllCustomersQueryHandler() queries.GetAllCustomersQueryHandler {
	return queries.NewGetAllCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerQueryHandler() queries.GetCustomerQueryHandler {
	return queries.NewGetCustomerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllVehiclesQueryHandler() queries.GetAllVehiclesQueryHandler {
	return queries.NewGetAllVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVehicleQueryHandler() queries.GetVehicleQueryHandler {
	return queries.NewGetVehicleQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllTransactionsQueryHandler() queries.GetAllTransactionsQueryHandler {
	return queries.NewGetAllTransactionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTransactionQueryHandler() queries.GetTransactionQueryHandler {
	return queries.NewGetTransactionQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllPaymentsQueryHandler() queries.GetAllPaymentsQueryHandler {
	return queries.NewGetAllPaymentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPaymentQueryHandler() queries.GetPaymentQueryHandler {
	return queries.NewGetPaymentQueryHandler(c.gormDB)
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncTransactionUoWFactory func() commands.TransactionUoW

func (f FuncTransactionUoWFactory) Create() commands.TransactionUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}
