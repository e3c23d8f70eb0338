// Package main is the entry point for the gstbill background worker.
// It relays outbox events and watches stock levels.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"gstbill/internal/core/entity"
	"gstbill/internal/domain"
	"gstbill/internal/domain/registers/stock"
	"gstbill/internal/infrastructure/storage/postgres"
	"gstbill/internal/infrastructure/storage/postgres/catalog_repo"
	"gstbill/internal/infrastructure/storage/postgres/register_repo"
	"gstbill/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log.Info("starting gstbill worker")

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(mustEnv("DATABASE_URL")))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	worker := NewWorker(pool, txManager, log)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		worker.Run(ctx)
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancel()

	wg.Wait()
	log.Info("worker stopped")
}

// Worker relays outbox messages and periodically scans stock levels.
type Worker struct {
	pool      *postgres.Pool
	txManager *postgres.TxManager
	relay     *postgres.OutboxRelay
	events    *postgres.OutboxPublisher
	companies *catalog_repo.CompanyRepo
	stock     *stock.Service
	log       *logger.Logger
}

// NewWorker wires worker dependencies.
func NewWorker(pool *postgres.Pool, txManager *postgres.TxManager, log *logger.Logger) *Worker {
	productRepo := catalog_repo.NewProductRepo(txManager)
	stockRepo := register_repo.NewStockRepo(txManager, productRepo)

	w := &Worker{
		pool:      pool,
		txManager: txManager,
		events:    postgres.NewOutboxPublisher(txManager),
		companies: catalog_repo.NewCompanyRepo(txManager),
		stock:     stock.NewService(stockRepo),
		log:       log.WithComponent("worker"),
	}
	w.relay = postgres.NewOutboxRelay(pool.Unwrap(), 100, &loggingHandler{log: w.log})
	return w
}

// Run processes the outbox until the context is cancelled.
func (w *Worker) Run(ctx context.Context) {
	relayTicker := time.NewTicker(500 * time.Millisecond)
	defer relayTicker.Stop()

	dlqTicker := time.NewTicker(1 * time.Hour)
	defer dlqTicker.Stop()

	lowStockTicker := time.NewTicker(getEnvDuration("LOW_STOCK_SCAN_INTERVAL", 15*time.Minute))
	defer lowStockTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-relayTicker.C:
			processed, err := w.relay.ProcessBatch(ctx)
			if err != nil {
				w.log.Errorw("outbox batch failed", "error", err)
				continue
			}
			if processed > 0 {
				w.log.Debugw("processed outbox batch", "count", processed)
			}

		case <-dlqTicker.C:
			moved, err := w.relay.MoveToDLQ(ctx)
			if err != nil {
				w.log.Errorw("dlq sweep failed", "error", err)
				continue
			}
			if moved > 0 {
				w.log.Warnw("moved poisoned messages to dlq", "count", moved)
			}

		case <-lowStockTicker.C:
			w.scanLowStock(ctx)
		}
	}
}

// scanLowStock publishes an alert event for every company with products
// at or below their reorder level.
func (w *Worker) scanLowStock(ctx context.Context) {
	filter := domain.DefaultListFilter()
	filter.Limit = 500

	companies, err := w.companies.List(ctx, filter)
	if err != nil {
		w.log.Errorw("low stock scan: list companies failed", "error", err)
		return
	}

	for _, comp := range companies.Items {
		items, err := w.stock.ListLowStock(ctx, comp.ID)
		if err != nil {
			w.log.Errorw("low stock scan failed", "company_id", comp.ID, "error", err)
			continue
		}
		if len(items) == 0 {
			continue
		}

		payload := entity.Attributes{
			"id":    comp.ID.String(),
			"count": len(items),
			"items": items,
		}
		err = w.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
			return w.events.Publish(ctx, domain.EventLowStockAlert, payload)
		})
		if err != nil {
			w.log.Errorw("low stock alert publish failed", "company_id", comp.ID, "error", err)
			continue
		}

		w.log.Infow("low stock alert published", "company_id", comp.ID, "count", len(items))
	}
}

// loggingHandler is the default outbox delivery target: it logs the
// event. Swap for a broker producer when one is attached.
type loggingHandler struct {
	log *logger.Logger
}

func (h *loggingHandler) Handle(_ context.Context, msg *postgres.OutboxMessage) error {
	h.log.Infow("event delivered",
		"event_type", msg.EventType,
		"aggregate_type", msg.AggregateType,
		"aggregate_id", msg.AggregateID,
	)
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
