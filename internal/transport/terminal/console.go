package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	colorBlue  = "4"
	colorRed   = "1"
	colorGreen = "2"
)

const helpText = "enter a cell 0-8, m to switch mode, r for a new game, q to quit"

type game interface {
	CellActivated(ctx context.Context, cell int) bool
	Reset(ctx context.Context)
	ToggleMode(ctx context.Context)
	Snapshot() entity.Game
}

// Console - line based front end. It feeds commands to the game and prints
// the board after each of them; game events are printed as they arrive.
type Console struct {
	logger *slog.Logger
	out    *termenv.Output
	game   game
}

func New(logger *slog.Logger, w io.Writer, game game, opts ...termenv.OutputOption) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		out:    termenv.NewOutput(w, opts...),
		game:   game,
	}
}

// Run - reads commands until q, end of input or ctx cancellation.
func (that *Console) Run(ctx context.Context, in io.Reader) error {
	that.println(helpText)
	that.renderBoard()

	var scanErr error
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr = scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				if scanErr != nil {
					return fmt.Errorf("failed to read input: %w", scanErr)
				}
				return nil
			}

			if quit := that.handleCommand(ctx, strings.TrimSpace(line)); quit {
				return nil
			}
		}
	}
}

// handleCommand - executes one input line. Returns true when the user quits.
func (that *Console) handleCommand(ctx context.Context, command string) bool {
	switch strings.ToLower(command) {
	case "":
		return false
	case "q", "quit":
		return true
	case "r", "reset":
		that.game.Reset(ctx)
	case "m", "mode":
		that.game.ToggleMode(ctx)
	default:
		cell, err := strconv.Atoi(command)
		if err != nil {
			that.println(helpText)
			return false
		}

		if !that.game.CellActivated(ctx, cell) {
			that.rejectMove(cell)
			return false
		}
	}

	that.renderBoard()

	return false
}

func (that *Console) rejectMove(cell int) {
	snapshot := that.game.Snapshot()

	switch {
	case snapshot.IsFinished():
		that.println("the game is over, press r for a new one")
	case cell < 0 || cell >= entity.BoardSize:
		that.println("there is no cell " + strconv.Itoa(cell))
	default:
		that.println("cell " + strconv.Itoa(cell) + " is taken")
	}
}

// Publish - prints a game event.
func (that *Console) Publish(_ context.Context, event entity.Event) error {
	snapshot := that.game.Snapshot()

	switch event.Kind {
	case entity.EventCellFilled:
		if event.Cell == nil {
			return nil
		}
		that.println(fmt.Sprintf("%s took cell %d", playerName(snapshot.Mode, event.Mark), *event.Cell))
	case entity.EventGameEnded:
		that.println(that.banner(snapshot.Mode, event))
	case entity.EventScoreChanged:
		if event.ScoreVisible && event.Score != nil {
			that.println(fmt.Sprintf("Player 1 (X): %d  Player 2 (O): %d  Ties: %d",
				event.Score.XWins, event.Score.OWins, event.Score.Ties))
		}
	case entity.EventGameReset:
		that.println("new game: " + modeName(event.Mode))
	default:
		that.logger.Warn("unknown event", "event", event.Kind)
	}

	return nil
}

func (that *Console) banner(mode entity.Mode, event entity.Event) string {
	if event.Result == entity.ResultTied {
		return that.out.String("Tie!").Foreground(that.out.Color(colorGreen)).Bold().String()
	}

	var text string
	switch {
	case mode == entity.ModeAI && event.Mark == entity.PlayerX:
		text = "You win!"
	case mode == entity.ModeAI:
		text = "You lose..."
	case event.Mark == entity.PlayerX:
		text = "Player 1 wins!"
	default:
		text = "Player 2 wins!"
	}

	return that.out.String(text).Foreground(that.out.Color(winColor(event.Mark))).Bold().String()
}

// renderBoard - draws the grid, free cells show their index.
// Winning cells are blue for X and red for O, a tied board is green.
func (that *Console) renderBoard() {
	snapshot := that.game.Snapshot()

	highlight := make(map[int]string, entity.BoardSize)
	switch snapshot.Status {
	case entity.StatusWon:
		for _, cell := range entity.WinCombos[snapshot.Combo] {
			highlight[cell] = winColor(snapshot.Winner)
		}
	case entity.StatusTied:
		for cell := range entity.BoardSize {
			highlight[cell] = colorGreen
		}
	}

	var sb strings.Builder
	for i, mark := range snapshot.Board.Cells() {
		text := strconv.Itoa(i)
		if mark != entity.EmptyCell {
			text = string(mark)
		}

		style := that.out.String(" " + text + " ")
		if color, ok := highlight[i]; ok {
			style = style.Background(that.out.Color(color))
		} else if mark == entity.EmptyCell {
			style = style.Faint()
		}
		sb.WriteString(style.String())

		switch {
		case i == entity.BoardSize-1:
			sb.WriteString("\n")
		case i%3 == 2:
			sb.WriteString("\n---+---+---\n")
		default:
			sb.WriteString("|")
		}
	}

	that.print(sb.String())
}

func (that *Console) println(text string) {
	that.print(text + "\n")
}

func (that *Console) print(text string) {
	if _, err := io.WriteString(that.out, text); err != nil {
		that.logger.Error("failed to write to terminal", "error", err)
	}
}

func winColor(mark entity.Mark) string {
	if mark == entity.PlayerX {
		return colorBlue
	}
	return colorRed
}

func playerName(mode entity.Mode, mark entity.Mark) string {
	switch {
	case mode == entity.ModeAI && mark == entity.PlayerO:
		return "AI"
	case mode == entity.ModeAI:
		return "You"
	case mark == entity.PlayerX:
		return "Player 1"
	default:
		return "Player 2"
	}
}

func modeName(mode entity.Mode) string {
	if mode == entity.ModeAI {
		return "playing against the AI"
	}
	return "two players"
}
