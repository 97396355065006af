package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/keisuke-0617/couple-loan-app/internal/config"
	"github.com/keisuke-0617/couple-loan-app/internal/events/kafka"
	"github.com/keisuke-0617/couple-loan-app/internal/interfaces"
	"github.com/keisuke-0617/couple-loan-app/internal/ledger"
	"github.com/keisuke-0617/couple-loan-app/internal/logging"
	"github.com/keisuke-0617/couple-loan-app/internal/server"
	"github.com/keisuke-0617/couple-loan-app/internal/storage"
)

func main() {
	cfg := config.Load()

	logger, err := logging.NewFromEnv()
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	store, closeStore, err := storage.Open(ctx, cfg)
	if err != nil {
		logger.Fatal("open record store", zap.Error(err), zap.String("backend", string(cfg.StoreBackend)))
	}
	defer closeStore()

	var publisher interfaces.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		p := kafka.NewPublisher(cfg.KafkaBrokers)
		defer p.Close()
		publisher = p
		logger.Info("kafka publisher enabled", zap.Strings("brokers", cfg.KafkaBrokers))
	}

	engine := ledger.NewLedger(store, nil, publisher, logger)
	if err := engine.Reload(ctx); err != nil {
		// the store may simply not be reachable yet; handlers reload anyway
		logger.Warn("initial ledger load failed", zap.Error(err))
	}

	srv := server.New(engine, logger, server.Config{
		PartyA: cfg.PartyAWire,
		PartyB: cfg.PartyBWire,
	})

	httpServer := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("loan notebook server listening",
			zap.String("addr", cfg.ListenAddr),
			zap.String("backend", string(cfg.StoreBackend)),
		)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("serve", zap.Error(err))
		}
	}()

	waitForShutdown(httpServer, logger)
}

func waitForShutdown(httpServer *http.Server, logger *zap.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
