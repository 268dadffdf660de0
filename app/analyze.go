package app

import (
	"github.com/notnil/chess"

	"github.com/pramod-motupalli/Chess.IO/app/models"
	"github.com/pramod-motupalli/Chess.IO/engine"
)

const (
	InaccuracyThreshold = 50  // 0.50 pawns
	MistakeThreshold    = 100 // 1.00 pawns
	BlunderThreshold    = 200 // 2.00 pawns
)

// AnalyzeHumanMove measures how the player's move shifted the static
// evaluation from their own perspective. The returned delta is negative when
// the move lost ground.
func AnalyzeHumanMove(before, after *chess.Position, mover chess.Color) (models.MoveAnalysis, int) {
	cpBefore := engine.Evaluate(before, mover).Total
	cpAfter := engine.Evaluate(after, mover).Total

	// Forced-mate territory; centipawn classification is meaningless there.
	if engine.IsMateScore(cpBefore) || engine.IsMateScore(cpAfter) {
		return models.MoveAnalysis{}, 0
	}

	delta := cpAfter - cpBefore
	return GetMoveAnalysis(delta), delta
}

// GetMoveAnalysis classifies an evaluation change from the mover's POV.
func GetMoveAnalysis(delta int) models.MoveAnalysis {
	res := models.MoveAnalysis{}

	// If positive, the mover gained ground; nothing to flag.
	loss := 0
	if delta < 0 {
		loss = -delta
	}
	res.CPLoss = loss

	switch {
	case loss >= BlunderThreshold:
		res.IsBlunder = true
	case loss >= MistakeThreshold:
		res.IsMistake = true
	case loss >= InaccuracyThreshold:
		res.IsInaccuracy = true
	}

	return res
}
