package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/gridlockgames/gridlock-backend/internal/game"
)

var ErrChannelClosed = errors.New("push channel is closed")

// sseChannel delivers move events to one participant over a long-lived
// text/event-stream response. Pushes may come from a different request
// goroutine than the one that opened the stream, so writes are serialized
// under the channel mutex. Headers are written lazily so a rejected join can
// still answer with a regular JSON error.
type sseChannel struct {
	mu      sync.Mutex
	writer  http.ResponseWriter
	flusher http.Flusher
	started bool
	closed  bool
	done    chan struct{}
}

func newSSEChannel(writer http.ResponseWriter, flusher http.Flusher) *sseChannel {
	return &sseChannel{
		writer:  writer,
		flusher: flusher,
		done:    make(chan struct{}),
	}
}

// begin writes the SSE headers and flushes them so the client learns the
// join succeeded before the first move arrives.
func (that *sseChannel) begin() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.beginLocked()
}

func (that *sseChannel) beginLocked() {
	if that.started || that.closed {
		return
	}
	that.started = true

	header := that.writer.Header()
	header.Set("Content-Type", "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	that.writer.WriteHeader(http.StatusOK)
	that.flusher.Flush()
}

func (that *sseChannel) Push(event game.MoveEvent) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return ErrChannelClosed
	}

	that.beginLocked()

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if _, err = fmt.Fprintf(that.writer, "data: %s\n\n", data); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	that.flusher.Flush()

	return nil
}

// Close releases the stream; the join handler blocked on Done returns and
// ends the response. Idempotent.
func (that *sseChannel) Close() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if !that.closed {
		that.closed = true
		close(that.done)
	}

	return nil
}

func (that *sseChannel) Done() <-chan struct{} {
	return that.done
}
