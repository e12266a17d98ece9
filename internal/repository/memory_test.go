package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryArchive(t *testing.T) {
	ctx := context.Background()

	t.Run("Record and get round trip", func(t *testing.T) {
		// Given: an in-memory archive and a finished match
		archive := NewMemoryArchive()

		result := &MatchResult{
			AccessCode:  "AB12",
			SessionCode: "abcdefghij1234567890",
			Winner:      "HOST",
			Moves:       5,
			FinishedAt:  time.Now().UTC(),
		}

		// When: recording and reading it back
		require.NoError(t, archive.Record(ctx, result))

		retrieved, err := archive.GetBySessionCode(ctx, result.SessionCode)

		// Then: the stored result matches
		require.NoError(t, err)
		assert.Equal(t, result, retrieved)
	})

	t.Run("Unknown session code", func(t *testing.T) {
		archive := NewMemoryArchive()

		_, err := archive.GetBySessionCode(ctx, "missing")

		require.ErrorIs(t, err, ErrResultNotFound)
	})
}
