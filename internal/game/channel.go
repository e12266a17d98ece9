package game

// PushChannel is a long-lived, one-directional server-to-client delivery
// path opened at join time. Once attached to a game it is exclusively owned
// by that game and closed only through Dispose.
type PushChannel interface {
	Push(event MoveEvent) error
	Close() error
}

// MoveEvent is pushed to the non-acting participant after every accepted
// move. Winner stays "NONE" until the game is decided.
type MoveEvent struct {
	Location [2]int `json:"location"`
	GameOver bool   `json:"gameOver"`
	Winner   string `json:"winner"`
}
