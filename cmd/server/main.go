package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	httpAdapter "github.com/iho/partyledger/internal/adapter/http"
	"github.com/iho/partyledger/internal/adapter/http/handler"
	"github.com/iho/partyledger/internal/adapter/http/middleware"
	mongoRepo "github.com/iho/partyledger/internal/adapter/repository/mongo"
	postgresRepo "github.com/iho/partyledger/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/partyledger/internal/adapter/repository/redis"
	"github.com/iho/partyledger/internal/infrastructure/config"
	"github.com/iho/partyledger/internal/infrastructure/logger"
	"github.com/iho/partyledger/internal/infrastructure/metrics"
	"github.com/iho/partyledger/internal/infrastructure/mongo"
	"github.com/iho/partyledger/internal/infrastructure/postgres"
	"github.com/iho/partyledger/internal/infrastructure/redis"
	"github.com/iho/partyledger/internal/infrastructure/workerpool"
	"github.com/iho/partyledger/internal/usecase"
)

const limiterIdleTTL = 10 * time.Minute

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	if cfg.RunMigrations {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, log); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL:    cfg.DatabaseURL,
		MaxConns:       cfg.DatabaseMaxConns,
		MinConns:       cfg.DatabaseMinConns,
		ConnectTimeout: cfg.DatabaseTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to MongoDB
	mongoClient, err := mongo.NewClient(ctx, mongo.Config{
		URI:         cfg.MongoURL,
		Database:    cfg.MongoDatabase,
		Timeout:     cfg.MongoTimeout,
		MaxPoolSize: cfg.MongoMaxPoolSize,
	}, log)
	if err != nil {
		return fmt.Errorf("failed to connect to mongo: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Close(closeCtx); err != nil {
			log.Warn().Err(err).Msg("failed to close mongo client")
		}
	}()

	readiness := []handler.Dependency{
		{Name: "postgres", Pinger: pool},
		{Name: "mongo", Pinger: mongoClient},
	}

	// Connect to Redis (optional)
	var health usecase.SourceHealthRecorder
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	switch {
	case errors.Is(err, redis.ErrDisabled):
		log.Info().Msg("redis disabled, source health will not be recorded")
	case err != nil:
		return fmt.Errorf("failed to connect to redis: %w", err)
	default:
		defer redisClient.Close()
		log.Info().Msg("connected to redis")
		health = redisRepo.NewHealthStore(redisClient, cfg.SourceHealthTTL)
		readiness = append(readiness, handler.Dependency{Name: "redis", Pinger: redisPinger(redisClient)})
	}

	// Worker pool for adapter fan-out
	workers, err := workerpool.New(workerpool.Config{Size: cfg.AdapterPoolSize}, log)
	if err != nil {
		return fmt.Errorf("failed to create worker pool: %w", err)
	}
	defer workers.Shutdown()

	// Initialize repositories
	invoices := postgresRepo.NewInvoiceRepository(pool)
	stores := usecase.Stores{
		SalesOrders:    postgresRepo.NewSalesOrderRepository(pool),
		Invoices:       invoices,
		Payments:       postgresRepo.NewPaymentRepository(pool),
		PurchaseOrders: postgresRepo.NewPurchaseOrderRepository(pool),
		VendorPayments: postgresRepo.NewVendorPaymentRepository(pool),
		VendorBills:    postgresRepo.NewVendorBillRepository(pool),
		Expenses:       mongoRepo.NewExpenseRepository(mongoClient.Database()),
		PayrollEntries: postgresRepo.NewPayrollEntryRepository(pool),
		PayrollRecords: postgresRepo.NewPayrollRecordRepository(pool),
	}

	// Initialize use cases
	statementUC := usecase.NewStatementUseCase(usecase.StatementConfig{
		Parties:  postgresRepo.NewPartyRepository(pool),
		Adapters: usecase.NewDefaultSourceAdapterSet(stores),
		Executor: workers,
		Retrier:  newRetrier(cfg, log),
		Health:   health,
		Observer: metrics.New(prometheus.DefaultRegisterer),
		Logger:   log,
		Timeout:  cfg.StatementTimeout,
	})

	// Create router
	rateLimiter := newRateLimiter(cfg)
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		LedgerHandler: handler.NewLedgerHandler(statementUC, log),
		HealthHandler: handler.NewHealthHandler(log, readiness...),
		RateLimiter:   rateLimiter,
		Logger:        log,
	})

	if rateLimiter != nil {
		go sweepLimiters(ctx, rateLimiter)
	}

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server stopped")
	return nil
}

// newRetrier retries connection-level failures of both store families.
func newRetrier(cfg *config.Config, log zerolog.Logger) *postgresRepo.Retrier {
	return postgresRepo.NewRetrier(
		postgresRepo.WithMaxRetries(cfg.SourceRetryMax),
		postgresRepo.WithRetryable(mongoRepo.IsRetryableError),
		postgresRepo.WithLogger(log),
	)
}

func newRateLimiter(cfg *config.Config) *middleware.RateLimiter {
	if cfg.RateLimitRPS <= 0 {
		return nil
	}
	return middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
}

func sweepLimiters(ctx context.Context, rl *middleware.RateLimiter) {
	ticker := time.NewTicker(limiterIdleTTL)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.CleanupLimiters(limiterIdleTTL)
		}
	}
}

func redisPinger(client *goredis.Client) handler.PingFunc {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}
