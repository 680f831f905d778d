package game

import (
	"time"

	"snake-console/game/manager"
	"snake-console/game/types"

	"github.com/rs/zerolog"
)

const GameOverMessage = "Game over!"

// Printer turns a board into the text shown to the player.
type Printer interface {
	Print(board Board) string
}

// Console is the player's terminal: one token in, one line out.
type Console interface {
	Read() string
	Print(line string)
}

// Keys maps console tokens to headings. Anything else keeps the heading.
var Keys = map[string]types.Direction{
	"w": types.Up,
	"a": types.Left,
	"s": types.Down,
	"d": types.Right,
}

// outcomer is implemented by boards that know why the game ended.
type outcomer interface {
	Outcome() manager.CollisionType
}

type Runner struct {
	board   Board
	printer Printer
	console Console
	log     zerolog.Logger
	session *Session
}

func NewRunner(board Board, printer Printer, console Console, logger zerolog.Logger) *Runner {
	return &Runner{
		board:   board,
		printer: printer,
		console: console,
		log:     logger,
	}
}

// PlayGame runs until the board reports game over. The board is printed
// once before the first move and once after every tact; game over is checked
// after each cycle, so at least one tact always runs.
func (r *Runner) PlayGame() {
	r.session = NewSession()
	r.log.Info().Str("session", r.session.UUID).Int("size", r.board.GetSize()).Msg("game started")

	r.printBoard()
	for {
		key := r.console.Read()
		if dir, ok := Keys[key]; ok {
			r.board.GetSnake().Turn(dir)
		}

		r.board.Tact()
		r.session.Ticks++
		r.log.Debug().Int("tick", r.session.Ticks).Str("key", key).Msg("tact")

		r.printBoard()
		if r.board.IsGameOver() {
			break
		}
	}
	r.console.Print(GameOverMessage)
	r.finish()
}

// Session returns the summary of the last PlayGame call.
func (r *Runner) Session() *Session {
	return r.session
}

func (r *Runner) printBoard() {
	r.console.Print(r.printer.Print(r.board))
}

func (r *Runner) finish() {
	s := r.session
	s.EndTime = time.Now()
	if snake := r.board.GetSnake(); snake != nil {
		s.Length = snake.Len()
	}
	if b, ok := r.board.(outcomer); ok {
		s.Outcome = b.Outcome().String()
	}
	r.log.Info().
		Str("session", s.UUID).
		Int("ticks", s.Ticks).
		Int("length", s.Length).
		Str("outcome", s.Outcome).
		Float64("duration", s.Duration()).
		Msg("game over")
}
