package models

// Evaluation is the static score of a position from White's point of view,
// split the way the engine computes it. Display carries the human-readable
// form ("Eval: 0.35", "Mate in 2").
type Evaluation struct {
	Material   int    `json:"material"`
	Positional int    `json:"positional"`
	Total      int    `json:"total"`
	Display    string `json:"display"`
}

// MoveAnalysis classifies a played move by how many centipawns it gave away
// against the engine's best continuation.
type MoveAnalysis struct {
	CPLoss       int  `json:"cp_loss"`
	IsInaccuracy bool `json:"is_inaccuracy"`
	IsMistake    bool `json:"is_mistake"`
	IsBlunder    bool `json:"is_blunder"`
}
