package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	StatusAwaiting = "awaiting"
	StatusWon      = "won"
	StatusTied     = "tied"
)

type Mode string

const (
	ModeAI     Mode = "ai"
	ModePlayer Mode = "player"
)

// NoCombo - winning combo index of a game that nobody has won.
const NoCombo = -1

// ParseMode - validates a mode coming from config or user input.
func ParseMode(value string) (Mode, error) {
	switch mode := Mode(value); mode {
	case ModeAI, ModePlayer:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownMode, value)
	}
}

// Toggle - switches between playing against the AI and two players.
func (that Mode) Toggle() Mode {
	if that == ModeAI {
		return ModePlayer
	}
	return ModeAI
}

type Score struct {
	XWins int `json:"x_wins"`
	OWins int `json:"o_wins"`
	Ties  int `json:"ties"`
}

// Game - a snapshot of a game for renderers.
type Game struct {
	Board  Board  `json:"board"`
	Status string `json:"status"`
	Mode   Mode   `json:"mode"`
	Turn   Mark   `json:"player_turn"`
	Winner Mark   `json:"winner"`
	Combo  int    `json:"combo"`
	Score  Score  `json:"score"`
}

func NewGame(mode Mode) *Game {
	return &Game{
		Status: StatusAwaiting,
		Mode:   mode,
		Turn:   PlayerX,
		Combo:  NoCombo,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusTied
}

func (that *Game) IsAwaiting() bool {
	return that.Status == StatusAwaiting
}

// ScoreVisible - the score panel is only shown in two-player mode.
func (that *Game) ScoreVisible() bool {
	return that.Mode == ModePlayer
}
