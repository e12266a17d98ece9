package game

// Outcome classifies the result of a move submission. Terminal results
// (finished / not finished) are success outcomes; everything else is a
// client error surfaced under its wire name.
type Outcome int

const (
	OutcomeNotYourTurn Outcome = iota
	OutcomeOutOfBounds
	OutcomeAlreadyFinished
	OutcomePlacementConflict
	OutcomeFinished
	OutcomeNotFinished
)

// IsError reports whether the outcome is a client error rather than a
// successful move.
func (that Outcome) IsError() bool {
	return that != OutcomeFinished && that != OutcomeNotFinished
}

func (that Outcome) String() string {
	switch that {
	case OutcomeNotYourTurn:
		return "NOT_YOUR_TURN"
	case OutcomeOutOfBounds:
		return "OUT_OF_BOUNDS"
	case OutcomeAlreadyFinished:
		return "GAME_ALREADY_FINISHED"
	case OutcomePlacementConflict:
		return "PLACEMENT_CONFLICT"
	case OutcomeFinished:
		return "GAME_FINISHED"
	case OutcomeNotFinished:
		return "GAME_NOT_FINISHED"
	default:
		return "UNKNOWN_OUTCOME"
	}
}
