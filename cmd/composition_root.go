package cmd

import (
	"stockflow/internal/adapters/out/postgres"
	"stockflow/internal/core/application/usecases/commands"
	"stockflow/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) receiptUoWFactory() commands.ReceiptUoWFactory {
	return FuncReceiptUoWFactory(func() commands.ReceiptUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrdersStatusCommandHandler() commands.ChangeOrdersStatusCommandHandler {
	return commands.NewChangeOrdersStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrdersCommandHandler() commands.DeleteOrdersCommandHandler {
	return commands.NewDeleteOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRestoreOrdersCommandHandler() commands.RestoreOrdersCommandHandler {
	return commands.NewRestoreOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelStaleOrdersCommandHandler() commands.CancelStaleOrdersCommandHandler {
	return commands.NewCancelStaleOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateReceiptCommandHandler() commands.CreateReceiptCommandHandler {
	return commands.NewCreateReceiptCommandHandler(c.receiptUoWFactory())
}

func (c *CompositionRoot) CreateUpdateReceiptCommandHandler() commands.UpdateReceiptCommandHandler {
	return commands.NewUpdateReceiptCommandHandler(c.receiptUoWFactory())
}

func (c *CompositionRoot) CreateChangeReceiptStatusCommandHandler() commands.ChangeReceiptStatusCommandHandler {
	return commands.NewChangeReceiptStatusCommandHandler(c.receiptUoWFactory())
}

func (c *CompositionRoot) CreateChangeReceiptsStatusCommandHandler() commands.ChangeReceiptsStatusCommandHandler {
	return commands.NewChangeReceiptsStatusCommandHandler(c.receiptUoWFactory())
}

func (c *CompositionRoot) CreateDeleteReceiptsCommandHandler() commands.DeleteReceiptsCommandHandler {
	return commands.NewDeleteReceiptsCommandHandler(c.receiptUoWFactory())
}

func (c *CompositionRoot) CreateRestoreReceiptsCommandHandler() commands.RestoreReceiptsCommandHandler {
	return commands.NewRestoreReceiptsCommandHandler(c.receiptUoWFactory())
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReceiptsQueryHandler() queries.GetReceiptsQueryHandler {
	return queries.NewGetReceiptsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncReceiptUoWFactory func() commands.ReceiptUoW

func (f FuncReceiptUoWFactory) Create() commands.ReceiptUoW {
	return f()
}
