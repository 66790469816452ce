package cmd

import (
	"context"
	"time"

	"levaai/internal/adapters/in/http"
	"levaai/internal/adapters/out/gemini"
	"levaai/internal/adapters/out/memory"
	"levaai/internal/adapters/out/verification"
	"levaai/internal/core/application/estimates"
	"levaai/internal/core/application/usecases/commands"
	"levaai/internal/core/application/usecases/queries"
	"levaai/internal/core/domain/model/kernel"
	"levaai/internal/core/ports"
	"levaai/internal/jobs"
	"levaai/internal/pkg/logger"

	"github.com/rs/zerolog"
)

type CompositionRoot struct {
	cfg    Config
	logger zerolog.Logger
	now    ports.Clock

	store      *memory.Store
	uowFactory *memory.UnitOfWorkFactory
	quoteBook  *memory.QuoteBook

	geminiClient *gemini.Client
	gateway      *estimates.Gateway
	verifier     ports.VerificationService

	// shared so the in-flight check spans requests
	registerDriverHandler commands.RegisterDriverCommandHandler
}

func NewCompositionRoot(cfg Config, log zerolog.Logger) (*CompositionRoot, error) {
	store := memory.NewStore()
	quoteBook, err := memory.NewQuoteBook(cfg.QuoteTTL)
	if err != nil {
		return nil, err
	}

	client := gemini.NewClient(gemini.Config{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		Timeout: cfg.EstimateTimeout,
	}, log)

	gateway := estimates.NewGateway(gemini.NewEstimateProvider(client), estimates.Config{
		Timeout:         cfg.EstimateTimeout,
		MaxRetries:      cfg.EstimateMaxRetries,
		InitialInterval: estimates.DefaultConfig().InitialInterval,
		DefaultDistance: cfg.EstimateDefaultDistance,
	}, log)

	c := &CompositionRoot{
		cfg:          cfg,
		logger:       log,
		now:          time.Now,
		store:        store,
		uowFactory:   memory.NewUnitOfWorkFactory(store),
		quoteBook:    quoteBook,
		geminiClient: client,
		gateway:      gateway,
		verifier:     verification.NewSimulatedService(cfg.VerificationDelay, log),
	}
	c.registerDriverHandler = commands.NewRegisterDriverCommandHandler(
		c.profileUoWFactory(), c.verifier, cfg.VerificationTimeout,
	)

	if cfg.GeminiAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set: estimates use the fallback and support is unavailable")
	}
	return c, nil
}

func (c *CompositionRoot) uowFactoryFor() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) profileUoWFactory() commands.ProfileUoWFactory {
	return FuncProfileUoWFactory(func() commands.ProfileUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) readModelFactory() queries.ReadModelFactory {
	return FuncReadModelFactory(func() queries.ReadModel {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uowFactoryFor(), c.quoteBook, c.now)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.uowFactoryFor())
}

func (c *CompositionRoot) CreateToggleRoleCommandHandler() commands.ToggleRoleCommandHandler {
	return commands.NewToggleRoleCommandHandler(c.profileUoWFactory())
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	return c.registerDriverHandler
}

func (c *CompositionRoot) CreateExpireQuotesCommandHandler() commands.ExpireQuotesCommandHandler {
	return commands.NewExpireQuotesCommandHandler(c.quoteBook, c.now)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.readModelFactory())
}

func (c *CompositionRoot) CreateGetProfileQueryHandler() queries.GetProfileQueryHandler {
	return queries.NewGetProfileQueryHandler(c.readModelFactory())
}

func (c *CompositionRoot) CreateGetEstimateQueryHandler() queries.GetEstimateQueryHandler {
	return queries.NewGetEstimateQueryHandler(c.gateway, c.quoteBook, c.now)
}

func (c *CompositionRoot) CreateAskSupportQueryHandler() queries.AskSupportQueryHandler {
	return queries.NewAskSupportQueryHandler(gemini.NewSupportAssistant(c.geminiClient))
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(http.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		ToggleRole:        c.CreateToggleRoleCommandHandler(),
		RegisterDriver:    c.CreateRegisterDriverCommandHandler(),
		GetOrders:         c.CreateGetOrdersQueryHandler(),
		GetProfile:        c.CreateGetProfileQueryHandler(),
		GetEstimate:       c.CreateGetEstimateQueryHandler(),
		AskSupport:        c.CreateAskSupportQueryHandler(),
	}, kernel.MustUserID(c.cfg.DemoUserID), c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateExpireQuotesCommandHandler(),
		c.cfg.QuoteExpirySchedule,
		logger.Component(c.logger, "jobs"),
	)
}

// Seed loads the demo data when SEED_DEMO_DATA is on.
func (c *CompositionRoot) Seed(ctx context.Context) error {
	if !c.cfg.SeedDemoData {
		return nil
	}
	return seedDemoData(ctx, c.uowFactory.Create(), kernel.MustUserID(c.cfg.DemoUserID), c.now())
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncProfileUoWFactory func() commands.ProfileUoW

func (f FuncProfileUoWFactory) Create() commands.ProfileUoW {
	return f()
}

type FuncReadModelFactory func() queries.ReadModel

func (f FuncReadModelFactory) Create() queries.ReadModel {
	return f()
}
