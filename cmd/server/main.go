package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/simaogato/rebalancer-backend/internal/adapter/grpc"
	rebalancerv1 "github.com/simaogato/rebalancer-backend/internal/adapter/grpc/rebalancer/v1"
	"github.com/simaogato/rebalancer-backend/internal/adapter/repository/memory"
	"github.com/simaogato/rebalancer-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/rebalancer-backend/internal/config"
	"github.com/simaogato/rebalancer-backend/internal/domain"
	"github.com/simaogato/rebalancer-backend/internal/usecase/rebalance"
	"github.com/simaogato/rebalancer-backend/pkg/logger"
)

func main() {
	// 1. Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		boot := zerolog.New(os.Stderr).With().Timestamp().Logger()
		boot.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	logger.SetGlobalLogger(log)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	// 2. Initialize Repositories (Postgres, or in-memory when storage.driver=memory)
	ctx := context.Background()
	var holdingRepo domain.HoldingRepository
	var allocationRepo domain.AllocationRepository

	if cfg.Storage.Driver == config.StorageDriverMemory {
		store := memory.NewStore()
		holdingRepo, allocationRepo = store, store
		log.Warn().Msg("using in-memory storage; portfolios are lost on restart")
	} else {
		// Give Postgres a moment to come up (simple retry)
		dbCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		db, err := connectWithRetry(dbCtx, cfg.DSN(), log)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer db.Close()

		if err := db.Migrate(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate database")
		}

		holdingRepo = postgres.NewHoldingRepository(db)
		allocationRepo = postgres.NewAllocationRepository(db)
	}

	// 3. Initialize Services (Use Cases)
	// Decisions are returned to clients only; the server does not render them.
	rebalanceService := rebalance.NewRebalanceService(holdingRepo, allocationRepo, nil, cfg.ZeroAllocationPolicy(), log)

	// 4. Start gRPC Server
	grpcServer := grpclib.NewServer(
		grpclib.UnaryInterceptor(grpcadapter.AuthInterceptor(cfg.GRPC.APIToken)),
	)

	rebalancerv1.RegisterRebalancerServiceServer(grpcServer, grpcadapter.NewServer(rebalanceService))
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPC.Addr)
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.GRPC.Addr).Msg("failed to listen")
	}

	go func() {
		log.Info().Str("addr", cfg.GRPC.Addr).Msg("gRPC server listening")
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatal().Err(err).Msg("failed to serve gRPC server")
		}
	}()

	// Graceful shutdown
	waitForShutdown(grpcServer, log)
}

// connectWithRetry pings the database until it answers or ctx expires
func connectWithRetry(ctx context.Context, dsn string, log zerolog.Logger) (*postgres.DB, error) {
	for {
		db, err := postgres.NewDB(ctx, dsn)
		if err == nil {
			return db, nil
		}

		log.Warn().Err(err).Msg("database not ready, retrying")
		select {
		case <-ctx.Done():
			return nil, err
		case <-time.After(time.Second):
		}
	}
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(grpcServer *grpclib.Server, log zerolog.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Info().Str("signal", sig.String()).Msg("shutting down gracefully")

	grpcServer.GracefulStop()
	log.Info().Msg("gRPC server stopped")
}
