// Package engine is the chess opponent: legal-move bookkeeping over
// notnil/chess positions, a material+positional evaluator, a fixed-depth
// alpha-beta search, and a persona-voiced explanation for the chosen move.
//
// An Engine holds no board state. Every ChooseMove call receives a position
// snapshot, searches it, and returns a result without mutating the caller's
// copy, so concurrent games never need coordination.
package engine

import (
	"fmt"

	"github.com/notnil/chess"
)

// Difficulty selects the search depth. The engine itself is depth-agnostic;
// this table belongs to the product around it.
type Difficulty string

const (
	Easy   Difficulty = "easy"   // depth 2
	Medium Difficulty = "medium" // depth 3
	Hard   Difficulty = "hard"   // depth 4
)

// ParseDifficulty maps a request string onto a difficulty, defaulting to
// medium for anything unrecognized.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(s) {
	case Easy, Medium, Hard:
		return Difficulty(s)
	}
	return Medium
}

// Depth returns the search depth in plies for the difficulty.
func (d Difficulty) Depth() int {
	switch d {
	case Easy:
		return 2
	case Hard:
		return 4
	}
	return 3
}

// Engine plays one side at a fixed search depth.
type Engine struct {
	Color     chess.Color
	Depth     int
	Explainer *Explainer
}

// New builds an engine for the given side and difficulty, commenting in the
// default persona.
func New(color chess.Color, difficulty Difficulty) *Engine {
	return NewWithDepth(color, difficulty.Depth())
}

// NewWithDepth builds an engine with an explicit search depth.
func NewWithDepth(color chess.Color, depth int) *Engine {
	if depth < 1 {
		depth = 1
	}
	return &Engine{Color: color, Depth: depth, Explainer: NewExplainer(DefaultPersona)}
}

// SetPersona switches the commentary persona.
func (e *Engine) SetPersona(name string) {
	e.Explainer = NewExplainer(name)
}

// ChooseMove searches the position and returns the best move, its score in
// centipawns from the engine's perspective, the principal line, and a
// rendered explanation.
//
// The position must be valid, it must be the engine's turn, at least one
// legal move must exist and the position must not already be drawn by rule;
// violations surface as ErrMalformedBoard, ErrNotEngineTurn, ErrNoLegalMoves
// and ErrDeadPosition respectively. The engine never substitutes a fallback
// move on error.
func (e *Engine) ChooseMove(pos *chess.Position) (*SearchResult, error) {
	if err := Validate(pos); err != nil {
		return nil, err
	}
	if pos.Turn() != e.Color {
		return nil, ErrNotEngineTurn
	}
	if len(pos.ValidMoves()) == 0 {
		return nil, ErrNoLegalMoves
	}
	if IsDraw(pos) {
		return nil, ErrDeadPosition
	}

	scoreBefore := Evaluate(pos, e.Color).Total
	score, line := Search(pos, e.Depth)
	best := line[0]

	after := pos.Update(best)
	breakdown := Evaluate(after, e.Color)

	return &SearchResult{
		BestMove:      best,
		Score:         score,
		PrincipalLine: line,
		Explanation:   e.Explainer.Explain(pos, best, breakdown, scoreBefore, score),
	}, nil
}

// ChooseMove is the package-level facade: position in, best move out.
func ChooseMove(pos *chess.Position, color chess.Color, difficulty Difficulty) (*SearchResult, error) {
	return New(color, difficulty).ChooseMove(pos)
}

// FormatScore renders a search score the way the move log shows it:
// fractional pawns, or the mate distance once one is forced.
func FormatScore(score int) string {
	if score >= mateThreshold {
		return fmt.Sprintf("Mate in %d", (MateScore-score+1)/2)
	}
	if score <= -mateThreshold {
		return fmt.Sprintf("Mated in %d", (MateScore+score+1)/2)
	}
	return fmt.Sprintf("Eval: %.2f", float64(score)/100)
}
