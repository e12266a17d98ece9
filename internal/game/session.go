package game

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gridlockgames/gridlock-backend/internal/apperror"
	"github.com/gridlockgames/gridlock-backend/internal/entity"
)

// TurnPolicy decides when the turn pointer advances relative to move
// validation. The original behavior advances it first, so a rejected move
// still costs the actor their turn.
type TurnPolicy int

const (
	AdvanceBeforeValidation TurnPolicy = iota
	AdvanceAfterValidation
)

const maxMoves = 9

// Game is one match's authoritative state: board, turn pointer, move count,
// finished/winner status and the two participant push channels. All
// mutations go through AttachParticipant, SubmitMove and Dispose, each a
// single critical section under the game mutex.
type Game struct {
	AccessCode  string
	SessionCode string

	logger *slog.Logger
	policy TurnPolicy

	mu        sync.Mutex
	board     entity.Board
	host      PushChannel
	opponent  PushChannel
	next      entity.Role
	moveCount int
	finished  bool
	winner    string
}

func NewGame(logger *slog.Logger, accessCode, sessionCode string, policy TurnPolicy) *Game {
	return &Game{
		AccessCode:  accessCode,
		SessionCode: sessionCode,

		logger: logger.With("component", "game", "sessionCode", sessionCode),
		policy: policy,

		next:   entity.RoleHost,
		winner: entity.WinnerNone,
	}
}

// AttachParticipant stores the channel for the role. A role's channel, once
// attached, is never replaced; the rejected channel stays owned by the
// caller.
func (that *Game) AttachParticipant(role entity.Role, channel PushChannel) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.channelOf(role) != nil {
		return fmt.Errorf("%w: %s", apperror.ErrRoleAlreadyJoined, role)
	}

	if role == entity.RoleHost {
		that.host = channel
	} else {
		that.opponent = channel
	}

	return nil
}

// SubmitMove validates and applies a move for the actor, then pushes a
// notification to the other participant's channel. The whole sequence is
// serialized per game.
func (that *Game) SubmitMove(actor entity.Role, x, y int) Outcome {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.finished {
		return OutcomeAlreadyFinished
	}

	if that.next != actor {
		return OutcomeNotYourTurn
	}

	var recipient PushChannel
	if that.policy == AdvanceBeforeValidation {
		recipient = that.advanceTurn(actor)
	}

	if !entity.InBounds(x, y) {
		return OutcomeOutOfBounds
	}

	if that.board.At(x, y) != entity.EmptyCell {
		return OutcomePlacementConflict
	}

	if that.policy == AdvanceAfterValidation {
		recipient = that.advanceTurn(actor)
	}

	that.board.Place(x, y, actor.Mark())
	that.moveCount++

	hostWon := that.board.Wins(entity.MarkX)
	opponentWon := that.board.Wins(entity.MarkO)

	that.finished = hostWon || opponentWon || that.moveCount == maxMoves
	if that.finished {
		switch {
		case hostWon:
			that.winner = entity.WinnerHost
		case opponentWon:
			that.winner = entity.WinnerOpponent
		default:
			that.winner = entity.WinnerNone
		}
	}

	that.logger.Info("move played", "player", actor, "x", x, "y", y, "finished", that.finished)

	event := MoveEvent{
		Location: [2]int{x, y},
		GameOver: that.finished,
		Winner:   that.winner,
	}

	// Delivery failure must not fail the move or corrupt state.
	if err := recipient.Push(event); err != nil {
		that.logger.Error("failed to push move event", "recipient", that.next, "error", err)
	}

	if that.finished {
		return OutcomeFinished
	}

	return OutcomeNotFinished
}

// advanceTurn hands the turn to the other role and resolves that role's
// channel, the recipient of this move's notification. Both roles must be
// attached before any move is accepted; a missing recipient is an invariant
// violation, not a client error.
func (that *Game) advanceTurn(actor entity.Role) PushChannel {
	that.next = actor.Other()

	channel := that.channelOf(that.next)
	if channel == nil {
		panic(fmt.Sprintf("game %s: no %s channel attached", that.SessionCode, that.next))
	}

	return channel
}

func (that *Game) channelOf(role entity.Role) PushChannel {
	if role == entity.RoleHost {
		return that.host
	}
	return that.opponent
}

// Dispose closes both channels if present. Idempotent.
func (that *Game) Dispose() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.host != nil {
		if err := that.host.Close(); err != nil {
			that.logger.Error("failed to close host channel", "error", err)
		}
		that.host = nil
	}

	if that.opponent != nil {
		if err := that.opponent.Close(); err != nil {
			that.logger.Error("failed to close opponent channel", "error", err)
		}
		that.opponent = nil
	}
}

func (that *Game) HasParticipant(role entity.Role) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.channelOf(role) != nil
}

func (that *Game) Board() entity.Board {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.board
}

func (that *Game) NextTurn() entity.Role {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.next
}

func (that *Game) MoveCount() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.moveCount
}

func (that *Game) IsFinished() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.finished
}

// Winner returns "NONE" until the game finishes with a win.
func (that *Game) Winner() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.winner
}
