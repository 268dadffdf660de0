package app

import (
	"testing"

	"github.com/notnil/chess"

	"github.com/pramod-motupalli/Chess.IO/engine"
)

func sessionFromFEN(t *testing.T, fen string) *GameSession {
	t.Helper()
	opt, err := chess.FEN(fen)
	if err != nil {
		t.Fatalf("chess.FEN(%q) error = %v", fen, err)
	}
	return &GameSession{
		ID:     "test",
		Game:   chess.NewGame(opt),
		Engine: engine.New(chess.Black, engine.Easy),
	}
}

func TestParseSquare(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		sq, err := parseSquare("e2")
		if err != nil || sq != chess.E2 {
			t.Fatalf("parseSquare(e2) = (%v,%v), want (e2,nil)", sq, err)
		}
		if sq, _ := parseSquare("H8"); sq != chess.H8 {
			t.Fatalf("parseSquare should be case-insensitive, got %v", sq)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, in := range []string{"", "e", "e9", "i2", "22", "ee"} {
			if _, err := parseSquare(in); err == nil {
				t.Fatalf("parseSquare(%q) should error", in)
			}
		}
	})
}

func TestParsePromotion(t *testing.T) {
	cases := map[string]chess.PieceType{
		"q":  chess.Queen,
		"R":  chess.Rook,
		"b":  chess.Bishop,
		"n":  chess.Knight,
		"":   chess.Queen,
		"xx": chess.Queen,
	}
	for in, want := range cases {
		if got := parsePromotion(in); got != want {
			t.Fatalf("parsePromotion(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseColor(t *testing.T) {
	if got := parseColor("white", chess.Black); got != chess.White {
		t.Fatalf("parseColor(white) = %v", got)
	}
	if got := parseColor("B", chess.White); got != chess.Black {
		t.Fatalf("parseColor(B) = %v", got)
	}
	if got := parseColor("purple", chess.Black); got != chess.Black {
		t.Fatalf("parseColor fallback = %v, want black", got)
	}
}

func TestParsePositiveInt(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := parsePositiveInt("42")
		if err != nil || got != 42 {
			t.Fatalf("parsePositiveInt valid = (%d,%v), want (42,nil)", got, err)
		}
	})
	t.Run("invalid", func(t *testing.T) {
		if _, err := parsePositiveInt("not-an-int"); err == nil {
			t.Fatalf("parsePositiveInt should error for invalid input")
		}
	})
}

func TestGameStateAndWinner(t *testing.T) {
	cases := []struct {
		name   string
		fen    string
		state  string
		winner string
	}{
		{"ongoing", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "ongoing", ""},
		{"checkmate", "7k/6Q1/6K1/8/8/8/8/8 b - - 0 1", "checkmate", "white"},
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", "stalemate", ""},
		{"insufficient material", "8/8/8/8/8/8/8/K6k w - - 0 1", "draw", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := sessionFromFEN(t, tc.fen)
			if got := gameState(s); got != tc.state {
				t.Fatalf("gameState = %q, want %q", got, tc.state)
			}
			if got := winner(s); got != tc.winner {
				t.Fatalf("winner = %q, want %q", got, tc.winner)
			}
		})
	}
}

func TestLegalMoveList(t *testing.T) {
	moves := legalMoveList(chess.StartingPosition())
	if len(moves) != 20 {
		t.Fatalf("initial legal move list has %d entries, want 20", len(moves))
	}
	for _, m := range moves {
		if len(m.From) != 2 || len(m.To) != 2 {
			t.Fatalf("badly formatted legal move: %+v", m)
		}
		if m.Promotion != "" {
			t.Fatalf("unexpected promotion on opening move: %+v", m)
		}
	}
}

func TestSnapshot(t *testing.T) {
	s := sessionFromFEN(t, "7k/6Q1/6K1/8/8/8/8/8 b - - 0 1")
	snap := snapshot(s)

	if snap.GameID != "test" || snap.Turn != "black" {
		t.Fatalf("snapshot basics wrong: %+v", snap)
	}
	if !snap.InCheck || snap.GameState != "checkmate" || snap.Winner != "white" {
		t.Fatalf("snapshot terminal state wrong: %+v", snap)
	}
	if len(snap.LegalMoves) != 0 {
		t.Fatalf("checkmated side has %d legal moves", len(snap.LegalMoves))
	}
}

func TestEvaluation(t *testing.T) {
	ev := evaluation(chess.StartingPosition())
	if ev.Total != 0 || ev.Material != 0 {
		t.Fatalf("initial evaluation = %+v, want zero", ev)
	}
	if ev.Display != "Eval: 0.00" {
		t.Fatalf("display = %q, want %q", ev.Display, "Eval: 0.00")
	}
}

func TestEvaluationTerminalDisplay(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		want string
	}{
		{"checkmate", "7k/6Q1/6K1/8/8/8/8/8 b - - 0 1", "Checkmate"},
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", "Stalemate"},
		{"dead draw", "8/8/8/8/8/8/8/K6k w - - 0 1", "Draw"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := sessionFromFEN(t, tc.fen)
			if got := evaluation(s.Game.Position()).Display; got != tc.want {
				t.Fatalf("display = %q, want %q", got, tc.want)
			}
		})
	}
}
