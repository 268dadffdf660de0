package engine

import (
	"errors"
	"fmt"

	"github.com/notnil/chess"
)

var (
	// ErrNoLegalMoves means the side to move has no legal moves, so the game
	// is already over. Callers are expected to check game state before asking
	// the engine for a move.
	ErrNoLegalMoves = errors.New("no legal moves: game is over")

	// ErrDeadPosition means the position is already drawn by rule (fifty-move
	// clock or insufficient material); legal moves may exist but none is worth
	// searching.
	ErrDeadPosition = errors.New("dead position: drawn by rule")

	// ErrMalformedBoard means the position itself is invalid (wrong king
	// count, pawns on a back rank, side not to move left in check).
	ErrMalformedBoard = errors.New("malformed board")

	// ErrNotEngineTurn means ChooseMove was called while the opponent is to
	// move. The engine never guesses a side; build a new engine for the side
	// to move instead (see SelfPlay).
	ErrNotEngineTurn = errors.New("engine color does not match side to move")
)

// IllegalMoveError reports an attempt to apply a move that is not among the
// legal moves of the position it was applied to.
type IllegalMoveError struct {
	From      chess.Square
	To        chess.Square
	Promotion chess.PieceType
}

func (e *IllegalMoveError) Error() string {
	if e.Promotion != chess.NoPieceType {
		return fmt.Sprintf("illegal move %s%s=%s", e.From, e.To, e.Promotion)
	}
	return fmt.Sprintf("illegal move %s%s", e.From, e.To)
}
