package engine

import "github.com/notnil/chess"

// Material values in centipawns. The king carries no material value; losing
// it is handled by the mate scores in the search.
const (
	PawnValue   = 100
	KnightValue = 320
	BishopValue = 330
	RookValue   = 500
	QueenValue  = 900
)

const (
	mobilityWeight  = 2  // centipawns per reachable square
	kingShieldBonus = 12 // per own pawn directly in front of a back-rank king
)

// MateScore is the sentinel for a delivered checkmate. Search subtracts the
// ply distance so nearer mates score higher.
const MateScore = 100000

// Breakdown splits a static evaluation into its material and positional
// parts, both from the perspective color's point of view.
type Breakdown struct {
	Material   int `json:"material"`
	Positional int `json:"positional"`
	Total      int `json:"total"`
}

func pieceValue(t chess.PieceType) int {
	switch t {
	case chess.Pawn:
		return PawnValue
	case chess.Knight:
		return KnightValue
	case chess.Bishop:
		return BishopValue
	case chess.Rook:
		return RookValue
	case chess.Queen:
		return QueenValue
	}
	return 0
}

// Piece-square tables, written as seen from White's side of the board: the
// first row is rank 8, the last row is rank 1. The pawn and knight tables
// are the classic simplified set; the rest follow the same source.
var pawnPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopPST = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenPST = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

// Midgame king table: stay castled, stay home.
var kingPST = [64]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

// pstValue looks up the table bonus for a piece on sq. White indexes the
// tables top-down, Black mirrors the rank.
func pstValue(t chess.PieceType, color chess.Color, sq chess.Square) int {
	file, rank := int(sq.File()), int(sq.Rank())
	idx := (7-rank)*8 + file
	if color == chess.Black {
		idx = rank*8 + file
	}
	switch t {
	case chess.Pawn:
		return pawnPST[idx]
	case chess.Knight:
		return knightPST[idx]
	case chess.Bishop:
		return bishopPST[idx]
	case chess.Rook:
		return rookPST[idx]
	case chess.Queen:
		return queenPST[idx]
	case chess.King:
		return kingPST[idx]
	}
	return 0
}

// Evaluate scores the position from perspective's point of view, in
// centipawns. It is a pure function of the position: no search, no
// randomness, and Evaluate(pos, White) == -Evaluate(pos, Black).
//
// Terminal positions short-circuit: a checkmate against the side to move
// scores ±MateScore depending on the perspective, stalemate and dead draws
// score zero.
func Evaluate(pos *chess.Position, perspective chess.Color) Breakdown {
	if len(pos.ValidMoves()) == 0 {
		if IsInCheck(pos, pos.Turn()) {
			score := MateScore
			if pos.Turn() == perspective {
				score = -MateScore
			}
			return Breakdown{Total: score}
		}
		return Breakdown{}
	}
	if IsDraw(pos) {
		return Breakdown{}
	}

	b := pos.Board()
	var material, positional int
	for sq := chess.A1; sq <= chess.H8; sq++ {
		p := b.Piece(sq)
		if p == chess.NoPiece {
			continue
		}
		sign := 1
		if p.Color() != perspective {
			sign = -1
		}
		material += sign * pieceValue(p.Type())
		positional += sign * pstValue(p.Type(), p.Color(), sq)

		switch p.Type() {
		case chess.Knight, chess.Bishop, chess.Rook, chess.Queen:
			positional += sign * mobilityWeight * attackCount(b, sq)
		case chess.King:
			positional += sign * kingShield(b, sq, p.Color())
		}
	}

	return Breakdown{
		Material:   material,
		Positional: positional,
		Total:      material + positional,
	}
}

// kingShield rewards pawns covering a king that still sits on its back two
// ranks. An advanced king earns nothing here; the king table already
// penalizes wandering in the midgame.
func kingShield(b *chess.Board, king chess.Square, color chess.Color) int {
	rank := int(king.Rank())
	dir := 1
	if color == chess.Black {
		dir = -1
		if rank < 6 {
			return 0
		}
	} else if rank > 1 {
		return 0
	}
	bonus := 0
	file := int(king.File())
	for df := -1; df <= 1; df++ {
		if sq, ok := squareAt(file+df, rank+dir); ok {
			p := b.Piece(sq)
			if p.Color() == color && p.Type() == chess.Pawn {
				bonus += kingShieldBonus
			}
		}
	}
	return bonus
}
