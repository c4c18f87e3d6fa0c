package app

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/onexocoder/Escova/internal/config"
	"github.com/onexocoder/Escova/internal/repository"
	"github.com/onexocoder/Escova/internal/service"
	httpt "github.com/onexocoder/Escova/internal/transport/http"
	"github.com/onexocoder/Escova/internal/validation"
	"github.com/onexocoder/Escova/pkg/logger"
	"github.com/onexocoder/Escova/pkg/mail"
	"github.com/onexocoder/Escova/pkg/metric"
	"github.com/onexocoder/Escova/pkg/storage/postgres"
	"github.com/onexocoder/Escova/pkg/storage/postgres/transaction"

	"golang.org/x/sync/errgroup"
)

func Run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	eg, ctx := errgroup.WithContext(ctx)

	metrics := initMetrics(eg, &cfg.Metrics, log)

	orderRepo, db, repoErr := initOrderRepository(cfg, log, metrics)
	if repoErr != nil {
		return repoErr
	}
	defer closeDB(db)

	validator, validatorErr := validation.New()
	if validatorErr != nil {
		return fmt.Errorf("app.Run: init validator: %w", validatorErr)
	}

	orderService := service.NewOrderService(
		orderRepo,
		validator,
		log.With("component", "order service"),
	)

	notifyService, notifyErr := initNotificationService(cfg, log, metrics)
	if notifyErr != nil {
		return notifyErr
	}

	if serverErr := initHTTPServer(ctx, eg, &cfg.HTTP, orderService, notifyService, log, metrics); serverErr != nil {
		return serverErr
	}

	return waitForShutdown(eg)
}

func initMetrics(
	eg *errgroup.Group,
	cfg *config.Metrics,
	log logger.Logger,
) metric.Factory {
	metrics := metric.NewFactory()

	hostPort := net.JoinHostPort(cfg.Host, cfg.Port)
	metricsServer := &http.Server{
		Addr:              hostPort,
		Handler:           metrics.Handler(),
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	eg.Go(func() error {
		log.Infow("starting metrics server", "port", cfg.Port)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("app.initMetrics: %w", err)
		}
		return nil
	})

	return metrics
}

// initOrderRepository picks the backing collection per the storage driver.
// The returned *postgres.Postgres is nil for the memory driver.
func initOrderRepository(
	cfg *config.Config,
	log logger.Logger,
	metrics metric.Factory,
) (service.OrderRepository, *postgres.Postgres, error) {
	const op = "app.initOrderRepository"

	if cfg.Storage.Driver == "memory" {
		log.Infow("using in-memory order store")
		return repository.NewMemoryOrderRepository(), nil, nil
	}

	db, err := postgres.NewPostgres(
		&cfg.Postgres,
		log.With("component", "database"),
		postgres.MaxPoolSize(cfg.Postgres.PoolMax),
		postgres.MaxConnAttempts(cfg.Postgres.ConnAttempts),
		postgres.BaseRetryDelay(cfg.Postgres.BaseRetryDelay),
		postgres.MaxRetryDelay(cfg.Postgres.MaxRetryDelay),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	txManager, err := transaction.NewManager(
		db,
		log.With("component", "transaction manager"),
		metrics.Transaction(),
	)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return repository.NewOrderRepository(db, txManager), db, nil
}

func closeDB(db *postgres.Postgres) {
	if db != nil {
		db.Close()
	}
}

func initNotificationService(
	cfg *config.Config,
	log logger.Logger,
	metrics metric.Factory,
) (*service.NotificationService, error) {
	mailer, err := mail.NewResendClient(
		cfg.Mail.APIKey,
		mail.ResendHTTPClient(&http.Client{Timeout: cfg.Mail.Timeout}),
	)
	if err != nil {
		return nil, fmt.Errorf("app.initNotificationService: %w", err)
	}

	return service.NewNotificationService(
		mailer,
		metrics.Mail(),
		log.With("component", "notification service"),
		cfg.Mail.From,
		cfg.Mail.AdminEmail,
	), nil
}

func initHTTPServer(
	ctx context.Context,
	eg *errgroup.Group,
	cfg *config.HTTP,
	orderService *service.OrderService,
	notifyService *service.NotificationService,
	log logger.Logger,
	metrics metric.Factory,
) error {
	httpServer, err := httpt.NewHTTPServer(
		httpt.NewOrderHandler(orderService, notifyService, log, metrics.HTTP()),
		cfg,
		log.With("component", "http server"),
	)
	if err != nil {
		return fmt.Errorf("app.initHTTPServer: %w", err)
	}

	eg.Go(func() error {
		return httpServer.Start(ctx)
	})
	return nil
}

func waitForShutdown(eg *errgroup.Group) error {
	if err := eg.Wait(); err != nil {
		return fmt.Errorf("app.waitForShutdown: application failed: %w", err)
	}
	return nil
}
