package engine

import (
	"sort"

	"github.com/notnil/chess"
)

// Alpha-beta bounds. Kept clear of MateScore so mate-distance adjustments
// never collide with the window sentinels.
const (
	scoreInfinity = MateScore * 2

	// mateThreshold separates mate scores from positional ones; anything at
	// or above it means a forced mate was found.
	mateThreshold = MateScore - 1000
)

// SearchResult is what one engine invocation produces.
type SearchResult struct {
	BestMove      *chess.Move
	Score         int           // centipawns from the root mover's perspective
	PrincipalLine []*chess.Move // root move first
	Explanation   string
}

// orderMoves sorts captures first, then checks, keeping the generator's
// order within each class. Ordering only changes which equally good move is
// found first, never the score, so the tie-break stays deterministic.
func orderMoves(moves []*chess.Move) []*chess.Move {
	weight := func(m *chess.Move) int {
		w := 0
		if m.HasTag(chess.Capture) || m.HasTag(chess.EnPassant) {
			w += 10
		}
		if m.HasTag(chess.Check) {
			w++
		}
		return w
	}
	sort.SliceStable(moves, func(i, j int) bool {
		return weight(moves[i]) > weight(moves[j])
	})
	return moves
}

// negamax searches depth plies below pos and returns the score from the
// side-to-move's perspective together with the line that produced it.
//
// halfMoves is the fifty-move counter at this node; it is threaded through
// the recursion instead of re-parsed from FEN at every node.
func negamax(pos *chess.Position, depth, ply, alpha, beta, halfMoves int) (int, []*chess.Move) {
	moves := pos.ValidMoves()
	if len(moves) == 0 {
		if IsInCheck(pos, pos.Turn()) {
			// Mated here; deeper mates score closer to zero so the loser
			// drags the game out and the winner finishes early.
			return -(MateScore - ply), nil
		}
		return 0, nil // stalemate
	}
	if halfMoves >= 100 || insufficientMaterial(pos.Board()) {
		return 0, nil
	}
	if depth == 0 {
		return Evaluate(pos, pos.Turn()).Total, nil
	}

	best := -scoreInfinity
	var bestLine []*chess.Move
	for _, m := range orderMoves(moves) {
		hm := halfMoves + 1
		if m.HasTag(chess.Capture) || m.HasTag(chess.EnPassant) ||
			pos.Board().Piece(m.S1()).Type() == chess.Pawn {
			hm = 0
		}
		score, line := negamax(pos.Update(m), depth-1, ply+1, -beta, -alpha, hm)
		score = -score
		if score > best {
			best = score
			bestLine = append([]*chess.Move{m}, line...)
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break // remaining moves cannot improve the outcome
		}
	}
	return best, bestLine
}

// Search runs a full-window alpha-beta search to the given depth and returns
// the best move, its score from the root mover's perspective, and the
// principal line. The line is empty when the root has no legal moves or is
// already drawn by rule; ChooseMove screens both cases before searching.
func Search(pos *chess.Position, depth int) (int, []*chess.Move) {
	return negamax(pos, depth, 0, -scoreInfinity, scoreInfinity, HalfMoveClock(pos))
}

// IsMateScore reports whether score encodes a forced mate.
func IsMateScore(score int) bool {
	return score >= mateThreshold || score <= -mateThreshold
}
