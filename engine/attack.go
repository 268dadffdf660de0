package engine

import "github.com/notnil/chess"

// Move-pattern tables for the six piece kinds. Check and attack questions are
// answered from the target square outward, so a single table drives both
// king-safety lookups and the evaluator's mobility counts.

var (
	knightOffsets = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets   = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	bishopRays    = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	rookRays      = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
)

func squareAt(file, rank int) (chess.Square, bool) {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return chess.NoSquare, false
	}
	return chess.NewSquare(chess.File(file), chess.Rank(rank)), true
}

// squareAttacked reports whether any piece of color by attacks the target
// square on the given board. Occupancy of the target itself does not matter.
func squareAttacked(b *chess.Board, target chess.Square, by chess.Color) bool {
	file, rank := int(target.File()), int(target.Rank())

	// Pawns. A white pawn attacks from one rank below the target, a black
	// pawn from one rank above.
	pawnRank := rank - 1
	if by == chess.Black {
		pawnRank = rank + 1
	}
	for _, df := range []int{-1, 1} {
		if sq, ok := squareAt(file+df, pawnRank); ok {
			p := b.Piece(sq)
			if p.Color() == by && p.Type() == chess.Pawn {
				return true
			}
		}
	}

	for _, off := range knightOffsets {
		if sq, ok := squareAt(file+off[0], rank+off[1]); ok {
			p := b.Piece(sq)
			if p.Color() == by && p.Type() == chess.Knight {
				return true
			}
		}
	}

	for _, off := range kingOffsets {
		if sq, ok := squareAt(file+off[0], rank+off[1]); ok {
			p := b.Piece(sq)
			if p.Color() == by && p.Type() == chess.King {
				return true
			}
		}
	}

	if rayAttacked(b, file, rank, by, bishopRays, chess.Bishop) {
		return true
	}
	return rayAttacked(b, file, rank, by, rookRays, chess.Rook)
}

// rayAttacked walks each ray away from the target square and reports whether
// the first piece found is an attacker of the given slider kind (or a queen).
func rayAttacked(b *chess.Board, file, rank int, by chess.Color, rays [4][2]int, slider chess.PieceType) bool {
	for _, dir := range rays {
		for step := 1; ; step++ {
			sq, ok := squareAt(file+dir[0]*step, rank+dir[1]*step)
			if !ok {
				break
			}
			p := b.Piece(sq)
			if p == chess.NoPiece {
				continue
			}
			if p.Color() == by && (p.Type() == slider || p.Type() == chess.Queen) {
				return true
			}
			break
		}
	}
	return false
}

// attackCount returns the number of squares the piece on sq could move to or
// capture on, ignoring pins and check. Used as a cheap mobility measure.
func attackCount(b *chess.Board, sq chess.Square) int {
	piece := b.Piece(sq)
	if piece == chess.NoPiece {
		return 0
	}
	file, rank := int(sq.File()), int(sq.Rank())
	count := 0

	countStep := func(f, r int) {
		if target, ok := squareAt(f, r); ok {
			p := b.Piece(target)
			if p == chess.NoPiece || p.Color() != piece.Color() {
				count++
			}
		}
	}

	switch piece.Type() {
	case chess.Knight:
		for _, off := range knightOffsets {
			countStep(file+off[0], rank+off[1])
		}
	case chess.Bishop:
		count = slideCount(b, piece, file, rank, bishopRays[:])
	case chess.Rook:
		count = slideCount(b, piece, file, rank, rookRays[:])
	case chess.Queen:
		count = slideCount(b, piece, file, rank, bishopRays[:]) +
			slideCount(b, piece, file, rank, rookRays[:])
	}
	return count
}

func slideCount(b *chess.Board, piece chess.Piece, file, rank int, rays [][2]int) int {
	count := 0
	for _, dir := range rays {
		for step := 1; ; step++ {
			sq, ok := squareAt(file+dir[0]*step, rank+dir[1]*step)
			if !ok {
				break
			}
			p := b.Piece(sq)
			if p == chess.NoPiece {
				count++
				continue
			}
			if p.Color() != piece.Color() {
				count++
			}
			break
		}
	}
	return count
}

// kingSquare returns the square of color's king, or NoSquare if absent.
func kingSquare(b *chess.Board, color chess.Color) chess.Square {
	for sq := chess.A1; sq <= chess.H8; sq++ {
		p := b.Piece(sq)
		if p.Color() == color && p.Type() == chess.King {
			return sq
		}
	}
	return chess.NoSquare
}
