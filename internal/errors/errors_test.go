package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelMatching(t *testing.T) {
	t.Run("not found sentinels match themselves only", func(t *testing.T) {
		assert.ErrorIs(t, ErrTeamNotFound, ErrTeamNotFound)
		assert.NotErrorIs(t, ErrTeamNotFound, ErrUserNotFound)
		assert.NotErrorIs(t, ErrTeamNotFound, ErrAnnouncementNotFound)
	})

	t.Run("wrapped sentinels still match", func(t *testing.T) {
		wrapped := fmt.Errorf("get team: %w", ErrTeamNotFound)
		assert.ErrorIs(t, wrapped, ErrTeamNotFound)
	})

	t.Run("conflict sentinels are distinct", func(t *testing.T) {
		assert.ErrorIs(t, ErrHandleTaken, ErrHandleTaken)
		assert.NotErrorIs(t, ErrHandleTaken, ErrTeamNameTaken)
	})

	t.Run("authentication sentinels compare by message", func(t *testing.T) {
		assert.ErrorIs(t, ErrInvalidCredentials, ErrInvalidCredentials)
		assert.NotErrorIs(t, ErrInvalidCredentials, ErrInvalidToken)
	})
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "team not found", ErrTeamNotFound.Error())
	assert.Equal(t, "user already exists with this handle", ErrHandleTaken.Error())
	assert.Equal(t, "team already exists with this name", ErrTeamNameTaken.Error())
	assert.Equal(t, "validation error: you already own a team", ErrAlreadyOwnsTeam.Error())
	assert.Equal(t, "invalid credentials", ErrInvalidCredentials.Error())
	assert.Equal(t, "team is banned", ErrTeamBanned.Error())
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(ErrTeamNotFound))
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrUserNotFound)))
	assert.False(t, IsNotFound(ErrHandleTaken))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsNotFound(nil))
}

func TestIsConflict(t *testing.T) {
	assert.True(t, IsConflict(ErrHandleTaken))
	assert.True(t, IsConflict(fmt.Errorf("wrapped: %w", ErrTeamNameTaken)))
	assert.False(t, IsConflict(ErrTeamNotFound))
	assert.False(t, IsConflict(nil))
}
