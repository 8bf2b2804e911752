package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kopacap/lending/internal/application/usecase"
	"github.com/kopacap/lending/internal/domain/port"
	"github.com/kopacap/lending/internal/domain/service"
	"github.com/kopacap/lending/internal/infrastructure/adapter"
	"github.com/kopacap/lending/internal/infrastructure/config"
	"github.com/kopacap/lending/internal/infrastructure/messaging"
	pgRepo "github.com/kopacap/lending/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/kopacap/lending/internal/presentation/grpc"
	"github.com/kopacap/lending/internal/presentation/rest"
	"github.com/kopacap/lending/pkg/kafka"
	"github.com/kopacap/lending/pkg/observability"
	"github.com/kopacap/lending/pkg/postgres"
)

func main() {
	cfg := config.Load()
	logger := observability.InitLogger(cfg.Log)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("starting lending service",
		"grpc_port", cfg.GRPCPort,
		"http_port", cfg.HTTPPort,
		"metrics_port", cfg.MetricsPort,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Database -----------------------------------------------------------
	if err := postgres.RunMigrations(cfg.DB.DSN(), "file://./migrations"); err != nil {
		logger.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// --- Infrastructure adapters -------------------------------------------
	loanRepo := pgRepo.NewLoanRepo(pool)
	repaymentRepo := pgRepo.NewRepaymentRepo(pool)

	producer := kafka.NewProducer(cfg.Kafka)
	defer producer.Close()
	publisher := messaging.NewKafkaEventPublisher(producer, cfg.EventTopic, logger)

	var featureSource port.FeatureSource = adapter.NewStubFeatureSource()
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()
		ttl := time.Duration(cfg.Redis.TTLSecs) * time.Second
		featureSource = adapter.NewCachedFeatureSource(featureSource, client, ttl, logger)
		logger.Info("feature cache enabled", "addr", cfg.Redis.Addr, "ttl", ttl)
	}

	// --- Domain services ----------------------------------------------------
	engineOpts := []service.Option{service.WithEstimator(adapter.NewLinearScoreEstimator())}
	if table, ok := service.RuleTables()[cfg.RuleTable]; ok {
		engineOpts = append(engineOpts, service.WithRuleTable(table))
	} else {
		logger.Warn("unknown scoring rule table, using default", "requested", cfg.RuleTable)
	}
	engine := service.NewScoringEngine(engineOpts...)
	classifier := service.NewRiskClassifier()
	evaluator := service.NewEligibilityEvaluator(classifier)
	rates := service.NewRateCalculator()

	// --- Use cases ----------------------------------------------------------
	scoreUC := usecase.NewScoreBorrowerUseCase(engine, classifier, featureSource)
	eligibilityUC := usecase.NewCheckEligibilityUseCase(engine, evaluator, featureSource)
	submitUC := usecase.NewSubmitLoanUseCase(loanRepo, publisher, engine, classifier, featureSource)
	decideUC := usecase.NewDecideLoanUseCase(loanRepo, publisher, engine, evaluator, featureSource)
	disburseUC := usecase.NewDisburseLoanUseCase(loanRepo, publisher)
	repayUC := usecase.NewRecordRepaymentUseCase(loanRepo, repaymentRepo, publisher)
	markDefaultUC := usecase.NewMarkDefaultUseCase(loanRepo, publisher)
	getLoanUC := usecase.NewGetLoanUseCase(loanRepo)
	quoteUC := usecase.NewQuoteRepaymentUseCase(engine, rates, featureSource)

	// --- gRPC server --------------------------------------------------------
	handler := grpcPresentation.NewLendingHandler(
		scoreUC, eligibilityUC, submitUC, decideUC, disburseUC,
		repayUC, markDefaultUC, getLoanUC, quoteUC,
	)
	grpcServer := grpcPresentation.NewServer(handler, logger)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			logger.Error("gRPC server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- HTTP health server -------------------------------------------------
	mux := http.NewServeMux()
	rest.NewHealthHandler(pool, logger).RegisterRoutes(mux)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: mux,
	}
	go func() {
		logger.Info("HTTP health server listening", "addr", cfg.HTTPAddr())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- Metrics server -----------------------------------------------------
	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
		Port:        cfg.MetricsPort,
	})
	if err != nil {
		logger.Error("metrics init failed", "error", err)
		os.Exit(1)
	}
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", metricsHandler)
	metricsServer := &http.Server{
		Addr:    cfg.MetricsAddr(),
		Handler: metricsMux,
	}
	go func() {
		logger.Info("metrics server listening", "addr", cfg.MetricsAddr())
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- Graceful shutdown --------------------------------------------------
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received shutdown signal", "signal", sig.String())

	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown error", "error", err)
	}

	logger.Info("lending service stopped")
}
