package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Mark(t *testing.T) {
	assert.Equal(t, MarkX, RoleHost.Mark())
	assert.Equal(t, MarkO, RoleOpponent.Mark())
}

func TestRole_Other(t *testing.T) {
	assert.Equal(t, RoleOpponent, RoleHost.Other())
	assert.Equal(t, RoleHost, RoleOpponent.Other())
}

func TestParseRole(t *testing.T) {
	t.Run("Accepts known roles", func(t *testing.T) {
		role, ok := ParseRole("HOST")
		assert.True(t, ok)
		assert.Equal(t, RoleHost, role)

		role, ok = ParseRole("OPPONENT")
		assert.True(t, ok)
		assert.Equal(t, RoleOpponent, role)
	})

	t.Run("Rejects anything else", func(t *testing.T) {
		_, ok := ParseRole("host")
		assert.False(t, ok)

		_, ok = ParseRole("")
		assert.False(t, ok)
	})
}
