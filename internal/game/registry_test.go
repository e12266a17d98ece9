package game

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridlockgames/gridlock-backend/internal/apperror"
	"github.com/gridlockgames/gridlock-backend/internal/entity"
	"github.com/gridlockgames/gridlock-backend/internal/pkg"
)

func newTestRegistry() *Registry {
	return NewRegistry(testLogger(), pkg.GenerateAlphaNumericCode, AdvanceBeforeValidation)
}

func TestRegistry_Create(t *testing.T) {
	t.Run("Creates a registered game with both codes", func(t *testing.T) {
		// Given: an empty registry
		registry := newTestRegistry()

		// When: creating a game
		gameInstance := registry.Create()

		// Then: the codes have the expected lengths and the game resolves
		// through both lookups
		require.Len(t, gameInstance.AccessCode, 4)
		require.Len(t, gameInstance.SessionCode, 20)

		byAccess, err := registry.FindByAccessCode(gameInstance.AccessCode)
		require.NoError(t, err)
		assert.Same(t, gameInstance, byAccess)

		bySession, err := registry.FindBySessionCode(gameInstance.SessionCode)
		require.NoError(t, err)
		assert.Same(t, gameInstance, bySession)
	})

	t.Run("Regenerates colliding access codes", func(t *testing.T) {
		// Given: a generator that repeats the first access code once
		codes := []string{"AAAA", "11111111111111111111", "AAAA", "BBBB", "22222222222222222222"}
		generate := func(_ int) string {
			code := codes[0]
			codes = codes[1:]
			return code
		}

		registry := NewRegistry(testLogger(), generate, AdvanceBeforeValidation)

		// When: creating two games
		first := registry.Create()
		second := registry.Create()

		// Then: the second game got a fresh access code
		assert.Equal(t, "AAAA", first.AccessCode)
		assert.Equal(t, "BBBB", second.AccessCode)
	})
}

func TestRegistry_Find(t *testing.T) {
	t.Run("Unknown access code", func(t *testing.T) {
		registry := newTestRegistry()

		_, err := registry.FindByAccessCode("ZZZZ")

		require.ErrorIs(t, err, apperror.ErrAccessCodeInvalid)
	})

	t.Run("Unknown session code", func(t *testing.T) {
		registry := newTestRegistry()

		_, err := registry.FindBySessionCode("nope")

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}

func TestRegistry_Remove(t *testing.T) {
	// Given: a registry with one game
	registry := newTestRegistry()
	gameInstance := registry.Create()

	// When: removing it
	registry.Remove(gameInstance)

	// Then: both lookups fail and the active count drops
	_, err := registry.FindByAccessCode(gameInstance.AccessCode)
	require.ErrorIs(t, err, apperror.ErrAccessCodeInvalid)

	_, err = registry.FindBySessionCode(gameInstance.SessionCode)
	require.ErrorIs(t, err, apperror.ErrGameNotFound)

	assert.Equal(t, 0, registry.ActiveGames())

	// Then: removing again is harmless
	registry.Remove(gameInstance)
}

func TestRegistry_DisposeAll(t *testing.T) {
	// Given: two games with attached participants
	registry := newTestRegistry()

	first := registry.Create()
	firstHost := &stubChannel{}
	require.NoError(t, first.AttachParticipant(entity.RoleHost, firstHost))

	second := registry.Create()
	secondOpponent := &stubChannel{}
	require.NoError(t, second.AttachParticipant(entity.RoleOpponent, secondOpponent))

	// When: disposing the registry
	registry.DisposeAll()

	// Then: every attached channel was closed and the registry is empty
	assert.True(t, firstHost.closed)
	assert.True(t, secondOpponent.closed)
	assert.Equal(t, 0, registry.ActiveGames())
}

func TestRegistry_ConcurrentCreate(t *testing.T) {
	// Given: an empty registry
	registry := newTestRegistry()

	// When: creating games from many goroutines
	const workers = 20

	var wg sync.WaitGroup
	sessionCodes := make(chan string, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sessionCodes <- registry.Create().SessionCode
		}()
	}
	wg.Wait()
	close(sessionCodes)

	// Then: every game is registered under a unique session code
	seen := make(map[string]bool)
	for code := range sessionCodes {
		require.False(t, seen[code], fmt.Sprintf("duplicate session code %s", code))
		seen[code] = true

		_, err := registry.FindBySessionCode(code)
		require.NoError(t, err)
	}

	assert.Equal(t, workers, registry.ActiveGames())
}
