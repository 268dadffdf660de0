package engine

import (
	"errors"
	"testing"

	"github.com/notnil/chess"
)

func mustPosition(t *testing.T, fen string) *chess.Position {
	t.Helper()
	pos, err := PositionFromFEN(fen)
	if err != nil {
		t.Fatalf("PositionFromFEN(%q) error = %v", fen, err)
	}
	return pos
}

func TestLegalMovesInitialPosition(t *testing.T) {
	pos := chess.StartingPosition()
	moves := LegalMoves(pos)
	if len(moves) != 20 {
		t.Fatalf("initial position has %d legal moves, want 20", len(moves))
	}

	// No legal move may leave the mover's own king in check.
	for _, m := range moves {
		after := pos.Update(m)
		if IsInCheck(after, chess.White) {
			t.Fatalf("move %s leaves white king in check", chess.UCINotation{}.Encode(nil, m))
		}
	}
}

func TestPinnedPawnCannotMove(t *testing.T) {
	// Bishop on b4 pins the d2 pawn against the king on e1.
	pos := mustPosition(t, "4k3/8/8/8/1b6/8/3P4/4K3 w - - 0 1")

	_, err := FindMove(pos, chess.D2, chess.D3, chess.NoPieceType)
	var illegal *IllegalMoveError
	if !errors.As(err, &illegal) {
		t.Fatalf("moving a pinned pawn: err = %v, want IllegalMoveError", err)
	}
}

func TestCastling(t *testing.T) {
	t.Run("both sides available", func(t *testing.T) {
		pos := mustPosition(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
		if _, err := FindMove(pos, chess.E1, chess.G1, chess.NoPieceType); err != nil {
			t.Fatalf("kingside castle: %v", err)
		}
		if _, err := FindMove(pos, chess.E1, chess.C1, chess.NoPieceType); err != nil {
			t.Fatalf("queenside castle: %v", err)
		}
	})

	t.Run("not through an attacked square", func(t *testing.T) {
		// Black rook on f3 covers f1, so only queenside castling is legal.
		pos := mustPosition(t, "r3k2r/8/8/8/8/5r2/8/R3K2R w KQkq - 0 1")
		if _, err := FindMove(pos, chess.E1, chess.G1, chess.NoPieceType); err == nil {
			t.Fatalf("kingside castle through f1 should be illegal")
		}
		if _, err := FindMove(pos, chess.E1, chess.C1, chess.NoPieceType); err != nil {
			t.Fatalf("queenside castle: %v", err)
		}
	})
}

func TestEnPassant(t *testing.T) {
	pos := mustPosition(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")

	m, err := FindMove(pos, chess.E5, chess.D6, chess.NoPieceType)
	if err != nil {
		t.Fatalf("en passant capture: %v", err)
	}
	if !m.HasTag(chess.EnPassant) {
		t.Fatalf("e5xd6 should carry the en passant tag")
	}

	after := pos.Update(m)
	if after.Board().Piece(chess.D5) != chess.NoPiece {
		t.Fatalf("captured pawn still on d5 after en passant")
	}
}

func TestFindMovePromotionDefaultsToQueen(t *testing.T) {
	pos := mustPosition(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")

	m, err := FindMove(pos, chess.A7, chess.A8, chess.NoPieceType)
	if err != nil {
		t.Fatalf("promotion: %v", err)
	}
	if m.Promo() != chess.Queen {
		t.Fatalf("default promotion = %v, want queen", m.Promo())
	}

	m, err = FindMove(pos, chess.A7, chess.A8, chess.Knight)
	if err != nil {
		t.Fatalf("underpromotion: %v", err)
	}
	if m.Promo() != chess.Knight {
		t.Fatalf("explicit promotion = %v, want knight", m.Promo())
	}
}

func TestApplyMove(t *testing.T) {
	pos := chess.StartingPosition()
	before := pos.String()

	m, err := FindMove(pos, chess.E2, chess.E4, chess.NoPieceType)
	if err != nil {
		t.Fatalf("FindMove e2e4: %v", err)
	}

	after, err := ApplyMove(pos, m)
	if err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	if after.Turn() != chess.Black {
		t.Fatalf("turn after e4 = %v, want black", after.Turn())
	}
	if p := after.Board().Piece(chess.E4); p.Type() != chess.Pawn || p.Color() != chess.White {
		t.Fatalf("e4 holds %v after the move", p)
	}
	if HalfMoveClock(after) != 0 || FullMoveNumber(after) != 1 {
		t.Fatalf("clocks after e4 = %d/%d, want 0/1", HalfMoveClock(after), FullMoveNumber(after))
	}
	if pos.String() != before {
		t.Fatalf("ApplyMove mutated its input: %s -> %s", before, pos.String())
	}

	// Knight move: the fifty-move clock ticks.
	knight, err := FindMove(pos, chess.G1, chess.F3, chess.NoPieceType)
	if err != nil {
		t.Fatalf("FindMove g1f3: %v", err)
	}
	afterKnight, err := ApplyMove(pos, knight)
	if err != nil {
		t.Fatalf("ApplyMove g1f3: %v", err)
	}
	if HalfMoveClock(afterKnight) != 1 {
		t.Fatalf("half-move clock after knight move = %d, want 1", HalfMoveClock(afterKnight))
	}
}

func TestApplyMoveRejectsForeignMove(t *testing.T) {
	pos := chess.StartingPosition()

	// Black's reply belongs to a different position.
	mid := pos.Update(mustFindMove(t, pos, chess.E2, chess.E4))
	reply := mustFindMove(t, mid, chess.E7, chess.E5)

	_, err := ApplyMove(pos, reply)
	var illegal *IllegalMoveError
	if !errors.As(err, &illegal) {
		t.Fatalf("err = %v, want IllegalMoveError", err)
	}
	if pos.Board().Piece(chess.E7).Type() != chess.Pawn {
		t.Fatalf("rejected move still altered the board")
	}
}

func mustFindMove(t *testing.T, pos *chess.Position, from, to chess.Square) *chess.Move {
	t.Helper()
	m, err := FindMove(pos, from, to, chess.NoPieceType)
	if err != nil {
		t.Fatalf("FindMove %s%s: %v", from, to, err)
	}
	return m
}

func TestFindMoveIllegal(t *testing.T) {
	pos := chess.StartingPosition()
	_, err := FindMove(pos, chess.E2, chess.E5, chess.NoPieceType)

	var illegal *IllegalMoveError
	if !errors.As(err, &illegal) {
		t.Fatalf("err = %v, want IllegalMoveError", err)
	}
	if illegal.From != chess.E2 || illegal.To != chess.E5 {
		t.Fatalf("IllegalMoveError squares = %s %s, want e2 e5", illegal.From, illegal.To)
	}
}

func TestPositionFromFENMalformed(t *testing.T) {
	cases := []struct {
		name string
		fen  string
	}{
		{"garbage", "not a fen"},
		{"two white kings", "4k3/8/8/8/8/8/8/K3K3 w - - 0 1"},
		{"pawn on back rank", "4k3/8/8/8/8/8/8/P3K3 w - - 0 1"},
		{"opponent left in check", "4k3/4R3/8/8/8/8/8/4K3 w - - 0 1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := PositionFromFEN(tc.fen); !errors.Is(err, ErrMalformedBoard) {
				t.Fatalf("PositionFromFEN(%q) err = %v, want ErrMalformedBoard", tc.fen, err)
			}
		})
	}
}

func TestCheckmateAndStalemate(t *testing.T) {
	mate := mustPosition(t, "7k/6Q1/6K1/8/8/8/8/8 b - - 0 1")
	if !IsCheckmate(mate) {
		t.Fatalf("queen+king mate position not detected as checkmate")
	}
	if IsStalemate(mate) {
		t.Fatalf("checkmate misreported as stalemate")
	}

	stale := mustPosition(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if !IsStalemate(stale) {
		t.Fatalf("stalemate position not detected")
	}
	if IsCheckmate(stale) {
		t.Fatalf("stalemate misreported as checkmate")
	}
}

func TestIsDraw(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		want bool
	}{
		{"bare kings", "8/8/8/8/8/8/8/K6k w - - 0 1", true},
		{"king and bishop", "k7/8/8/8/8/8/1B6/K7 w - - 0 1", true},
		{"king and knight", "k7/8/8/8/8/8/1N6/K7 w - - 0 1", true},
		{"king and rook", "k7/8/8/8/8/8/1R6/K7 w - - 0 1", false},
		{"fifty move clock", "4k3/8/8/8/8/8/1R6/4K3 w - - 100 80", true},
		{"pawns remain", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsDraw(mustPosition(t, tc.fen)); got != tc.want {
				t.Fatalf("IsDraw(%q) = %v, want %v", tc.fen, got, tc.want)
			}
		})
	}
}

func TestHalfMoveClock(t *testing.T) {
	pos := mustPosition(t, "4k3/8/8/8/8/8/1R6/4K3 w - - 42 30")
	if got := HalfMoveClock(pos); got != 42 {
		t.Fatalf("HalfMoveClock = %d, want 42", got)
	}
	if got := FullMoveNumber(pos); got != 30 {
		t.Fatalf("FullMoveNumber = %d, want 30", got)
	}
}

func TestThreefoldRepetition(t *testing.T) {
	game := chess.NewGame()

	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	play := func(u string) {
		t.Helper()
		for _, m := range game.Position().ValidMoves() {
			if (chess.UCINotation{}).Encode(nil, m) == u {
				if err := game.Move(m); err != nil {
					t.Fatalf("move %s: %v", u, err)
				}
				return
			}
		}
		t.Fatalf("move %s not legal here", u)
	}

	for _, u := range shuffle {
		play(u)
	}
	if IsThreefold(game) {
		t.Fatalf("threefold after one shuffle cycle")
	}

	for _, u := range shuffle {
		play(u)
	}
	if !IsThreefold(game) {
		t.Fatalf("starting position occurred three times, threefold not detected")
	}
	if got := RepetitionCount(game); got != 3 {
		t.Fatalf("RepetitionCount = %d, want 3", got)
	}
}
