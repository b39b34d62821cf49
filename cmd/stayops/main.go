package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"stayops/internal/app/commands"
	calendarapp "stayops/internal/app/handlers/calendar"
	pricingapp "stayops/internal/app/handlers/pricing"
	rulesapp "stayops/internal/app/handlers/rules"
	"stayops/internal/app/policies"
	"stayops/internal/app/queries"
	domaincalendar "stayops/internal/domain/calendar"
	domainpricing "stayops/internal/domain/pricing"
	"stayops/internal/infra/broker/kafka"
	"stayops/internal/infra/config"
	"stayops/internal/infra/db/mongo"
	ginserver "stayops/internal/infra/http/gin"
	"stayops/internal/infra/obs"
	"stayops/internal/infra/storage/memory"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger := obs.NewLogger("dev")
		logger.Error("configuration load failed", "error", err)
		os.Exit(1)
	}
	logger := obs.NewLogger(cfg.Env)

	calendarStore := memory.NewCalendarStore()
	ruleRepo, ready, cleanup, err := buildRuleRepository(ctx, cfg)
	if err != nil {
		logger.Error("rule store init failed", "error", err, "mode", cfg.StoreMode)
		os.Exit(1)
	}
	defer cleanup()

	if cfg.FixturesPath != "" {
		if err := memory.LoadFixtures(ctx, cfg.FixturesPath, calendarStore, ruleRepo); err != nil {
			logger.Warn("fixtures load failed", "error", err, "path", cfg.FixturesPath)
		} else {
			logger.Info("fixtures loaded", "path", cfg.FixturesPath)
		}
	}

	ruleEvents, closeEvents := buildRuleEvents(cfg, logger)
	defer closeEvents()

	handlers := buildHandlers(cfg, logger, ruleRepo, calendarStore, ruleEvents)
	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{
		Ready: ready,
	}, handlers)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "store", cfg.StoreMode)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

func buildRuleRepository(ctx context.Context, cfg config.Config) (domainpricing.RuleRepository, func() error, func(), error) {
	if cfg.StoreMode != config.StoreModeMongo {
		return memory.NewRuleStore(), nil, func() {}, nil
	}
	client, err := mongo.New(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := client.Ping(ctx); err != nil {
		return nil, nil, nil, err
	}
	ready := func() error {
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return client.Ping(pingCtx)
	}
	cleanup := func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Close(closeCtx)
	}
	return mongo.NewRuleRepository(client), ready, cleanup, nil
}

func buildRuleEvents(cfg config.Config, logger *slog.Logger) (policies.RuleEvents, func()) {
	if len(cfg.KafkaBrokers) == 0 {
		return policies.NoopRuleEvents{}, func() {}
	}
	producer, err := kafka.NewProducer(cfg.KafkaBrokers, nil)
	if err != nil {
		logger.Warn("kafka producer init failed, rule events disabled", "error", err)
		return policies.NoopRuleEvents{}, func() {}
	}
	closer := func() {
		if err := producer.Close(); err != nil {
			logger.Warn("kafka producer close failed", "error", err)
		}
	}
	return kafka.RuleEventsPublisher{Producer: producer, TopicPrefix: cfg.KafkaTopicPrefix}, closer
}

func buildHandlers(
	cfg config.Config,
	logger *slog.Logger,
	ruleRepo domainpricing.RuleRepository,
	calendarRepo domaincalendar.Repository,
	ruleEvents policies.RuleEvents,
) ginserver.Handlers {
	queryBus := queries.NewInMemoryBus()
	queries.Register(queryBus, pricingapp.GetDailyPricingQuery{}.Key(), &pricingapp.GetDailyPricingHandler{
		Rules:    ruleRepo,
		Calendar: calendarRepo,
	})
	queries.Register(queryBus, pricingapp.GetPricingRangeQuery{}.Key(), &pricingapp.GetPricingRangeHandler{
		Rules:    ruleRepo,
		Calendar: calendarRepo,
	})
	queries.Register(queryBus, calendarapp.GetCalendarRowQuery{}.Key(), &calendarapp.GetCalendarRowHandler{
		Rules:    ruleRepo,
		Calendar: calendarRepo,
	})
	queries.Register(queryBus, rulesapp.ListRulesQuery{}.Key(), &rulesapp.ListRulesHandler{
		Rules: ruleRepo,
	})

	commandBus := commands.NewInMemoryBus()
	commands.Register(commandBus, rulesapp.AddRuleCommand{}.Key(), &rulesapp.AddRuleHandler{
		Rules: ruleRepo, Events: ruleEvents, Logger: logger,
	})
	commands.Register(commandBus, rulesapp.UpdateRuleCommand{}.Key(), &rulesapp.UpdateRuleHandler{
		Rules: ruleRepo, Events: ruleEvents, Logger: logger,
	})
	commands.Register(commandBus, rulesapp.DeleteRuleCommand{}.Key(), &rulesapp.DeleteRuleHandler{
		Rules: ruleRepo, Events: ruleEvents, Logger: logger,
	})
	commands.Register(commandBus, rulesapp.DuplicateRuleCommand{}.Key(), &rulesapp.DuplicateRuleHandler{
		Rules: ruleRepo, Events: ruleEvents, Logger: logger,
	})
	commands.Register(commandBus, rulesapp.ApplyRuleToAllCommand{}.Key(), &rulesapp.ApplyRuleToAllHandler{
		Rules: ruleRepo, Events: ruleEvents, Logger: logger,
	})
	commands.Register(commandBus, rulesapp.SetPriceForRangeCommand{}.Key(), &rulesapp.SetPriceForRangeHandler{
		Rules: ruleRepo, Calendar: calendarRepo, Events: ruleEvents, Logger: logger,
	})

	return ginserver.Handlers{
		Pricing:  ginserver.PricingHandler{Queries: queryBus, Commands: commandBus},
		Calendar: ginserver.CalendarHandler{Queries: queryBus, DefaultCellWidth: cfg.DefaultCellWidthPx},
		Rules:    ginserver.RulesHandler{Queries: queryBus, Commands: commandBus},
	}
}
