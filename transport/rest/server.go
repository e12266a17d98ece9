package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gridlockgames/gridlock-backend/internal/game"
	"github.com/gridlockgames/gridlock-backend/internal/repository"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	logger    *slog.Logger
	registry  *game.Registry
	archive   repository.ArchiveRepository
	staticDir string
}

func New(logger *slog.Logger, registry *game.Registry, archive repository.ArchiveRepository, staticDir string) *Server {
	return &Server{
		logger:    logger,
		registry:  registry,
		archive:   archive,
		staticDir: staticDir,
	}
}

// Routes builds the HTTP handler for the game API, plus static asset
// serving when a directory is configured.
func (that *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", that.handlePing)
	mux.HandleFunc("/game/start", that.handleStart)
	mux.HandleFunc("/game/search", that.handleSearch)
	mux.HandleFunc("/game/join/host", that.handleJoinHost)
	mux.HandleFunc("/game/join/opponent", that.handleJoinOpponent)
	mux.HandleFunc("/game/move", that.handleMove)

	if that.staticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(that.staticDir)))
	}

	return mux
}

// Start - starts the HTTP server and shuts it down when the context is
// canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Routes(),
		ReadTimeout: 10 * time.Second,
		// no write timeout: join connections stream events until the game ends
		WriteTimeout: 0,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}

		return nil
	}
}
