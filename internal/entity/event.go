package entity

type EventKind string

const (
	EventCellFilled   EventKind = "cell_filled"
	EventGameEnded    EventKind = "game_ended"
	EventScoreChanged EventKind = "score_changed"
	EventGameReset    EventKind = "game_reset"
)

const (
	ResultWon  = "won"
	ResultTied = "tied"
)

// Event - something a renderer has to show. Only the fields of the given kind are set.
type Event struct {
	Kind EventKind `json:"event"`

	// cell_filled, game_ended (won)
	Cell *int `json:"cell,omitempty"`
	Mark Mark `json:"mark,omitempty"`

	// game_ended
	Result string `json:"result,omitempty"`
	Combo  *int   `json:"combo,omitempty"`

	// score_changed, game_reset
	Score        *Score `json:"score,omitempty"`
	ScoreVisible bool   `json:"score_visible,omitempty"`
	Mode         Mode   `json:"mode,omitempty"`
}

func CellFilled(move Move) Event {
	cell := move.Cell
	return Event{Kind: EventCellFilled, Cell: &cell, Mark: move.Mark}
}

func GameWon(mark Mark, combo int) Event {
	return Event{Kind: EventGameEnded, Result: ResultWon, Mark: mark, Combo: &combo}
}

func GameTied() Event {
	return Event{Kind: EventGameEnded, Result: ResultTied}
}

func ScoreChanged(score Score, visible bool) Event {
	return Event{Kind: EventScoreChanged, Score: &score, ScoreVisible: visible}
}

func GameReset(mode Mode) Event {
	return Event{Kind: EventGameReset, Mode: mode}
}
