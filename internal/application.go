package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/gridlockgames/gridlock-backend/internal/config"
	"github.com/gridlockgames/gridlock-backend/internal/game"
	"github.com/gridlockgames/gridlock-backend/internal/pkg"
	"github.com/gridlockgames/gridlock-backend/internal/repository"
	"github.com/gridlockgames/gridlock-backend/internal/repository/storage"
	"github.com/gridlockgames/gridlock-backend/transport/rest"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	var archive repository.ArchiveRepository
	if addr := conf.Redis.GetRedisAddr(); addr != "" {
		redisStorage, err := storage.New(ctx, addr)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		archive = repository.NewRedisArchive(redisStorage.Connection)
		log.Info("using redis match archive", "addr", addr)
	} else {
		archive = repository.NewMemoryArchive()
		log.Info("using in-memory match archive")
	}

	policy := game.AdvanceBeforeValidation
	if !conf.RejectedMoveCostsTurn {
		policy = game.AdvanceAfterValidation
	}

	registry := game.NewRegistry(logger, pkg.GenerateAlphaNumericCode, policy)
	defer registry.DisposeAll()

	server := rest.New(logger, registry, archive, conf.StaticDir)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		return server.Start(groupCtx, conf.HTTPPort)
	})

	// Disposing the registry closes every push channel, which unblocks the
	// long-lived join handlers so the server can drain.
	group.Go(func() error {
		<-groupCtx.Done()
		registry.DisposeAll()
		return nil
	})

	if err := group.Wait(); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application stopped")

	return nil
}
