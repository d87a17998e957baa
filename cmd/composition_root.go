package cmd

import (
	"bottleshop/internal/adapters/out/postgres"
	"bottleshop/internal/adapters/out/postgres/accountrepo"
	appredis "bottleshop/internal/adapters/out/redis"
	"bottleshop/internal/adapters/out/smtp"
	"bottleshop/internal/core/application/usecases/commands"
	"bottleshop/internal/core/application/usecases/queries"
	"bottleshop/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	sequence   *postgres.GormOrderNumberSequence
	otpStore   *appredis.OtpStore
	mailer     *smtp.Mailer
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
	})

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		sequence:   postgres.NewGormOrderNumberSequence(gormDB),
		otpStore:   appredis.NewOtpStore(redisClient),
		mailer: smtp.NewMailer(
			config.SMTPHost, config.SMTPPort, config.SMTPUser,
			config.SMTPPassword, config.SMTPFrom),
	}
}

func (c *CompositionRoot) CreateRegisterAccountCommandHandler() commands.RegisterAccountCommandHandler {
	return commands.NewRegisterAccountCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateVerifyAccountCommandHandler() commands.VerifyAccountCommandHandler {
	return commands.NewVerifyAccountCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateSendOtpCommandHandler() commands.SendOtpCommandHandler {
	return commands.NewSendOtpCommandHandler(c.accountUoWFactory(), c.otpStore, c.mailer)
}

func (c *CompositionRoot) CreateVerifyOtpCommandHandler() commands.VerifyOtpCommandHandler {
	return commands.NewVerifyOtpCommandHandler(c.accountUoWFactory(), c.otpStore)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductAccountUoWFactory = FuncProductAccountUoWFactory(func() commands.ProductAccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProductCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderProductUoWFactory = FuncOrderProductUoWFactory(func() commands.OrderProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.sequence)
}

func (c *CompositionRoot) CreateVendorDecisionCommandHandler() commands.VendorDecisionCommandHandler {
	return commands.NewVendorDecisionCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateHandOverItemCommandHandler() commands.HandOverItemCommandHandler {
	return commands.NewHandOverItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCourierDecisionCommandHandler() commands.CourierDecisionCommandHandler {
	return commands.NewCourierDecisionCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdatePaymentCommandHandler() commands.UpdatePaymentCommandHandler {
	return commands.NewUpdatePaymentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignCouriersCommandHandler() commands.AssignCouriersCommandHandler {
	var f commands.OrderAccountUoWFactory = FuncOrderAccountUoWFactory(func() commands.OrderAccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCouriersCommandHandler(f)
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVendorOrdersQueryHandler() queries.GetVendorOrdersQueryHandler {
	return queries.NewGetVendorOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierOrdersQueryHandler() queries.GetCourierOrdersQueryHandler {
	return queries.NewGetCourierOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingAccountsQueryHandler() queries.GetPendingAccountsQueryHandler {
	return queries.NewGetPendingAccountsQueryHandler(c.gormDB)
}

// CreateAccountFinder returns a read-only account lookup for login. Reads
// run outside a transaction, so the tracker has nothing to record.
func (c *CompositionRoot) CreateAccountFinder() *accountrepo.GormAccountRepository {
	return accountrepo.NewGormAccountRepository(c.gormDB, noopTracker{})
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncProductAccountUoWFactory func() commands.ProductAccountUoW

func (f FuncProductAccountUoWFactory) Create() commands.ProductAccountUoW {
	return f()
}

type FuncOrderProductUoWFactory func() commands.OrderProductUoW

func (f FuncOrderProductUoWFactory) Create() commands.OrderProductUoW {
	return f()
}

type FuncOrderAccountUoWFactory func() commands.OrderAccountUoW

func (f FuncOrderAccountUoWFactory) Create() commands.OrderAccountUoW {
	return f()
}
