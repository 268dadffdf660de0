package app

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"

	"github.com/pramod-motupalli/Chess.IO/app/models"
	"github.com/pramod-motupalli/Chess.IO/engine"
)

// parseSquare converts coordinate notation ("e2") into a board square.
func parseSquare(s string) (chess.Square, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return chess.NoSquare, fmt.Errorf("invalid square %q", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	return chess.Square(rank*8 + file), nil
}

// parsePromotion maps a promotion letter to a piece type. Empty or unknown
// input promotes to a queen, which is what nearly everyone wants anyway.
func parsePromotion(s string) chess.PieceType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "r":
		return chess.Rook
	case "b":
		return chess.Bishop
	case "n":
		return chess.Knight
	default:
		return chess.Queen
	}
}

func parseColor(s string, fallback chess.Color) chess.Color {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return chess.White
	case "black", "b":
		return chess.Black
	}
	return fallback
}

func colorName(c chess.Color) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

func promotionLetter(t chess.PieceType) string {
	switch t {
	case chess.Queen:
		return "q"
	case chess.Rook:
		return "r"
	case chess.Bishop:
		return "b"
	case chess.Knight:
		return "n"
	}
	return ""
}

// converts string to int safely
func parsePositiveInt(s string) (int, error) {
	var n int
	_, err := fmt.Sscanf(s, "%d", &n)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// gameState classifies the session's current position. Threefold repetition
// needs the move history, so it lives here rather than in the engine's
// position predicates.
func gameState(s *GameSession) string {
	pos := s.Game.Position()
	switch {
	case engine.IsCheckmate(pos):
		return "checkmate"
	case engine.IsStalemate(pos):
		return "stalemate"
	case engine.IsDraw(pos), engine.IsThreefold(s.Game):
		return "draw"
	}
	return "ongoing"
}

// winner names the side that delivered mate, or "" for anything else.
func winner(s *GameSession) string {
	pos := s.Game.Position()
	if !engine.IsCheckmate(pos) {
		return ""
	}
	return colorName(pos.Turn().Other())
}

func legalMoveList(pos *chess.Position) []models.LegalMove {
	moves := pos.ValidMoves()
	out := make([]models.LegalMove, 0, len(moves))
	for _, m := range moves {
		out = append(out, models.LegalMove{
			From:      m.S1().String(),
			To:        m.S2().String(),
			Promotion: promotionLetter(m.Promo()),
		})
	}
	return out
}

// snapshot builds the board-facing response block. Caller holds the session
// lock.
func snapshot(s *GameSession) models.GameSnapshot {
	pos := s.Game.Position()
	return models.GameSnapshot{
		GameID:     s.ID,
		BoardFEN:   pos.String(),
		Turn:       colorName(pos.Turn()),
		InCheck:    engine.IsInCheck(pos, pos.Turn()),
		GameState:  gameState(s),
		Winner:     winner(s),
		LegalMoves: legalMoveList(pos),
	}
}

// evaluation scores the position from White's point of view for the frontend
// eval bar. Finished games get a plain verdict instead of a mate distance.
func evaluation(pos *chess.Position) *models.Evaluation {
	bd := engine.Evaluate(pos, chess.White)
	display := engine.FormatScore(bd.Total)
	switch {
	case engine.IsCheckmate(pos):
		display = "Checkmate"
	case engine.IsStalemate(pos):
		display = "Stalemate"
	case engine.IsDraw(pos):
		display = "Draw"
	}
	return &models.Evaluation{
		Material:   bd.Material,
		Positional: bd.Positional,
		Total:      bd.Total,
		Display:    display,
	}
}
