package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	"aquaserve/internal/adapters/out/filestore"
	"aquaserve/internal/adapters/out/identity"
	"aquaserve/internal/adapters/out/notify"
	"aquaserve/internal/adapters/out/postgres"
	"aquaserve/internal/core/application/usecases/commands"
	"aquaserve/internal/core/application/usecases/queries"
	"aquaserve/internal/core/ports"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	fileStore  ports.FileStore
	notifier   ports.NotificationDispatcher
	identity   ports.IdentityResolver
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	fileStore, err := filestore.NewLocalStore(config.FileStoreRoot)
	if err != nil {
		return CompositionRoot{}, err
	}

	resolver, err := identity.NewJwtResolver(config.JwtSecret)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		fileStore:  fileStore,
		notifier:   notify.NewSlogDispatcher(logger),
		identity:   resolver,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) IdentityResolver() ports.IdentityResolver {
	return c.identity
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateReceivePaymentCommandHandler() commands.ReceivePaymentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReceivePaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateReviewOrderKycCommandHandler() commands.ReviewOrderKycCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviewOrderKycCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignTechnicianCommandHandler() commands.AssignTechnicianCommandHandler {
	var f commands.AssignOrderUoWFactory = FuncAssignOrderUoWFactory(func() commands.AssignOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignTechnicianCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveAssignmentCommandHandler() commands.RemoveAssignmentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveAssignmentCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordTechnicianDecisionCommandHandler() commands.RecordTechnicianDecisionCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordTechnicianDecisionCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteInstallationCommandHandler() commands.CompleteInstallationCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteInstallationCommandHandler(f)
}

func (c *CompositionRoot) CreateReviewCustomerKycCommandHandler() commands.ReviewCustomerKycCommandHandler {
	var f commands.KycUoWFactory = FuncKycUoWFactory(func() commands.KycUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviewCustomerKycCommandHandler(f, c.fileStore, c.notifier)
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterTechnicianCommandHandler() commands.RegisterTechnicianCommandHandler {
	var f commands.TechnicianUoWFactory = FuncTechnicianUoWFactory(func() commands.TechnicianUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterTechnicianCommandHandler(f)
}

func (c *CompositionRoot) CreateReviewTechnicianOnboardingCommandHandler() commands.ReviewTechnicianOnboardingCommandHandler {
	var f commands.TechnicianUoWFactory = FuncTechnicianUoWFactory(func() commands.TechnicianUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviewTechnicianOnboardingCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateServiceRequestCommandHandler() commands.CreateServiceRequestCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateServiceRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignServiceRequestCommandHandler() commands.AssignServiceRequestCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignServiceRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateServiceRequestStatusCommandHandler() commands.UpdateServiceRequestStatusCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateServiceRequestStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateReconcileWorkStatusCommandHandler() commands.ReconcileWorkStatusCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcileWorkStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateListAvailableTechniciansQueryHandler() queries.ListAvailableTechniciansQueryHandler {
	return queries.NewListAvailableTechniciansQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenOrdersQueryHandler() queries.GetOpenOrdersQueryHandler {
	return queries.NewGetOpenOrdersQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAssignOrderUoWFactory func() commands.AssignOrderUoW

func (f FuncAssignOrderUoWFactory) Create() commands.AssignOrderUoW {
	return f()
}

type FuncKycUoWFactory func() commands.KycUoW

func (f FuncKycUoWFactory) Create() commands.KycUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncTechnicianUoWFactory func() commands.TechnicianUoW

func (f FuncTechnicianUoWFactory) Create() commands.TechnicianUoW {
	return f()
}

type FuncRequestUoWFactory func() commands.RequestUoW

func (f FuncRequestUoWFactory) Create() commands.RequestUoW {
	return f()
}
