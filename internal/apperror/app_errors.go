package apperror

import "errors"

var (
	ErrRoleAlreadyJoined = errors.New("role has already joined the game")
	ErrGameNotFound      = errors.New("no game found for session code")
	ErrAccessCodeInvalid = errors.New("no active game matches access code")
)
