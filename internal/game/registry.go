package game

import (
	"log/slog"
	"sync"

	"github.com/gridlockgames/gridlock-backend/internal/apperror"
)

const (
	accessCodeLength  = 4
	sessionCodeLength = 20
)

// GenerateFunc produces a random alphanumeric string of the given length.
type GenerateFunc func(length int) string

// Registry is the process-wide collection of active games. Completed games
// are removed by the transport layer, so access codes only stay unique among
// games still registered.
type Registry struct {
	logger   *slog.Logger
	generate GenerateFunc
	policy   TurnPolicy

	mu    sync.Mutex
	games []*Game
}

func NewRegistry(logger *slog.Logger, generate GenerateFunc, policy TurnPolicy) *Registry {
	return &Registry{
		logger:   logger,
		generate: generate,
		policy:   policy,
	}
}

// Create builds a new game, registers it and returns it. The access code is
// regenerated until it collides with no active game.
func (that *Registry) Create() *Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	accessCode := that.generate(accessCodeLength)
	for that.findByAccessCode(accessCode) != nil {
		accessCode = that.generate(accessCodeLength)
	}

	gameInstance := NewGame(that.logger, accessCode, that.generate(sessionCodeLength), that.policy)
	that.games = append(that.games, gameInstance)

	that.logger.Info("game created", "accessCode", accessCode, "sessionCode", gameInstance.SessionCode)

	return gameInstance
}

func (that *Registry) FindByAccessCode(code string) (*Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if gameInstance := that.findByAccessCode(code); gameInstance != nil {
		return gameInstance, nil
	}

	return nil, apperror.ErrAccessCodeInvalid
}

func (that *Registry) FindBySessionCode(code string) (*Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	for _, gameInstance := range that.games {
		if gameInstance.SessionCode == code {
			return gameInstance, nil
		}
	}

	return nil, apperror.ErrGameNotFound
}

// Remove drops the game from the active collection; subsequent code lookups
// for it fail.
func (that *Registry) Remove(gameInstance *Game) {
	that.mu.Lock()
	defer that.mu.Unlock()

	for i, active := range that.games {
		if active == gameInstance {
			that.games = append(that.games[:i], that.games[i+1:]...)
			return
		}
	}
}

// DisposeAll disposes every still-registered game, for process shutdown.
func (that *Registry) DisposeAll() {
	that.mu.Lock()
	games := that.games
	that.games = nil
	that.mu.Unlock()

	for _, gameInstance := range games {
		gameInstance.Dispose()
	}
}

func (that *Registry) ActiveGames() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.games)
}

// findByAccessCode must be called with the registry lock held.
func (that *Registry) findByAccessCode(code string) *Game {
	for _, gameInstance := range that.games {
		if gameInstance.AccessCode == code {
			return gameInstance
		}
	}

	return nil
}
