package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gridlockgames/gridlock-backend/internal/entity"
	"github.com/gridlockgames/gridlock-backend/internal/game"
	"github.com/gridlockgames/gridlock-backend/internal/repository"
)

func (that *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *Server) handleStart(w http.ResponseWriter, _ *http.Request) {
	gameInstance := that.registry.Create()

	that.sendJSON(w, map[string]string{
		"accessCode":  gameInstance.AccessCode,
		"sessionCode": gameInstance.SessionCode,
	})
}

func (that *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	accessCode := r.URL.Query().Get("accessCode")
	if accessCode == "" {
		that.sendError(w, "NO_ACCESS_CODE")
		return
	}

	gameInstance, err := that.registry.FindByAccessCode(accessCode)
	if err != nil {
		that.sendError(w, "ACCESS_CODE_INVALID")
		return
	}

	that.sendJSON(w, map[string]string{
		"sessionCode": gameInstance.SessionCode,
	})
}

func (that *Server) handleJoinHost(w http.ResponseWriter, r *http.Request) {
	that.handleJoin(w, r, entity.RoleHost)
}

func (that *Server) handleJoinOpponent(w http.ResponseWriter, r *http.Request) {
	that.handleJoin(w, r, entity.RoleOpponent)
}

// handleJoin attaches a push channel for the role and holds the connection
// open until the game is disposed or the client goes away.
func (that *Server) handleJoin(w http.ResponseWriter, r *http.Request, role entity.Role) {
	log := that.logger.With("method", "handleJoin", "role", role)

	gameInstance, ok := that.lookupSession(w, r)
	if !ok {
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		log.Error("response writer does not support streaming")
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	channel := newSSEChannel(w, flusher)
	if err := gameInstance.AttachParticipant(role, channel); err != nil {
		that.sendError(w, "ROLE_ALREADY_JOINED")
		return
	}

	log.Info("participant joined", "sessionCode", gameInstance.SessionCode)
	channel.begin()

	select {
	case <-channel.Done():
	case <-r.Context().Done():
		// A dropped connection does not finish the game. The response
		// writer dies with this handler, so the channel marks itself
		// closed; later pushes fail and are logged by the game.
		_ = channel.Close()
		log.Info("join connection closed by client", "sessionCode", gameInstance.SessionCode)
	}
}

func (that *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleMove")

	gameInstance, ok := that.lookupSession(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()

	if !query.Has("x") {
		that.sendError(w, "NO_X")
		return
	}
	if !query.Has("y") {
		that.sendError(w, "NO_Y")
		return
	}
	if !query.Has("player") {
		that.sendError(w, "NO_PLAYER")
		return
	}

	x, err := strconv.Atoi(query.Get("x"))
	if err != nil {
		that.sendError(w, "INVALID_X")
		return
	}

	y, err := strconv.Atoi(query.Get("y"))
	if err != nil {
		that.sendError(w, "INVALID_Y")
		return
	}

	role, ok := entity.ParseRole(query.Get("player"))
	if !ok {
		that.sendError(w, "INVALID_PLAYER")
		return
	}

	outcome := gameInstance.SubmitMove(role, x, y)
	if outcome.IsError() {
		that.sendError(w, outcome.String())
		return
	}

	if outcome == game.OutcomeFinished {
		that.archiveResult(r.Context(), gameInstance)
		that.registry.Remove(gameInstance)
		gameInstance.Dispose()

		log.Info("game finished", "sessionCode", gameInstance.SessionCode, "winner", gameInstance.Winner())
		that.sendJSON(w, map[string]bool{"gameOver": true})
		return
	}

	that.sendJSON(w, map[string]bool{"gameOver": false})
}

// lookupSession resolves the sessionCode query parameter to an active game,
// answering the request itself on failure.
func (that *Server) lookupSession(w http.ResponseWriter, r *http.Request) (*game.Game, bool) {
	sessionCode := r.URL.Query().Get("sessionCode")
	if sessionCode == "" {
		that.sendError(w, "NO_SESSION_CODE")
		return nil, false
	}

	gameInstance, err := that.registry.FindBySessionCode(sessionCode)
	if err != nil {
		that.sendError(w, "NO_GAME_FOUND")
		return nil, false
	}

	return gameInstance, true
}

func (that *Server) archiveResult(ctx context.Context, gameInstance *game.Game) {
	log := that.logger.With("method", "archiveResult")

	result := &repository.MatchResult{
		AccessCode:  gameInstance.AccessCode,
		SessionCode: gameInstance.SessionCode,
		Winner:      gameInstance.Winner(),
		Moves:       gameInstance.MoveCount(),
		FinishedAt:  time.Now().UTC(),
	}

	if err := that.archive.Record(ctx, result); err != nil {
		log.Error("failed to archive match result", "sessionCode", gameInstance.SessionCode, "error", err)
	}
}

func (that *Server) sendJSON(w http.ResponseWriter, payload any) {
	log := that.logger.With("method", "sendJSON")

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("failed to encode response", "error", err)
	}
}

func (that *Server) sendError(w http.ResponseWriter, code string) {
	log := that.logger.With("method", "sendError")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": code}); err != nil {
		log.Error("failed to encode error response", "error", err)
	}
}
