package engine

import (
	"fmt"

	"github.com/notnil/chess"
)

// significantDelta is the evaluation swing (centipawns) above which the
// explanation mentions winning or losing material.
const significantDelta = 150

// Explainer turns a chosen move into one or two sentences of rationale,
// voiced by its persona. Output is template-based and deterministic.
type Explainer struct {
	persona Persona
}

// NewExplainer builds an explainer for the named persona (teacher fallback).
func NewExplainer(personaName string) *Explainer {
	return &Explainer{persona: PersonaByName(personaName)}
}

func (ex *Explainer) Persona() Persona { return ex.persona }

func pieceName(t chess.PieceType) string {
	switch t {
	case chess.Pawn:
		return "Pawn"
	case chess.Knight:
		return "Knight"
	case chess.Bishop:
		return "Bishop"
	case chess.Rook:
		return "Rook"
	case chess.Queen:
		return "Queen"
	case chess.King:
		return "King"
	}
	return "Piece"
}

func isCentralSquare(sq chess.Square) bool {
	return sq == chess.D4 || sq == chess.E4 || sq == chess.D5 || sq == chess.E5
}

// Explain describes the move from the position it was generated on. The
// breakdown is the static evaluation after the move; scoreBefore/scoreAfter
// bracket the move from the mover's perspective so material swings and mate
// announcements come straight from the numbers the search produced.
func (ex *Explainer) Explain(pos *chess.Position, m *chess.Move, bd Breakdown, scoreBefore, scoreAfter int) string {
	p := ex.persona
	mover := pos.Board().Piece(m.S1())

	if m.HasTag(chess.KingSideCastle) || m.HasTag(chess.QueenSideCastle) {
		return fmt.Sprintf("%s: I am castling to keep my King safe.", p.Name)
	}

	if m.HasTag(chess.Capture) || m.HasTag(chess.EnPassant) {
		captured := pos.Board().Piece(m.S2())
		detail := "En passant"
		if captured != chess.NoPiece {
			detail = "Capturing " + pieceName(captured.Type())
		}
		return fmt.Sprintf("%s: %s (%s)%s", p.Name, p.CaptureQuote, detail, ex.materialNote(scoreBefore, scoreAfter))
	}

	after := pos.Update(m)
	if IsCheckmate(after) || scoreAfter >= mateThreshold {
		return fmt.Sprintf("%s: %s", p.Name, p.WinQuote)
	}
	if m.HasTag(chess.Check) {
		return fmt.Sprintf("%s: %s", p.Name, p.CheckQuote)
	}

	if m.Promo() != chess.NoPieceType {
		return fmt.Sprintf("%s: Promoting my Pawn to a %s.", p.Name, pieceName(m.Promo()))
	}

	if mover.Type() == chess.Pawn && isCentralSquare(m.S2()) {
		return fmt.Sprintf("%s: I am pushing my Pawn to %s to fight for the center.", p.Name, m.S2())
	}

	if (mover.Type() == chess.Knight || mover.Type() == chess.Bishop) && onBackRank(m.S1(), mover.Color()) {
		return fmt.Sprintf("%s: Developing my %s to %s.", p.Name, pieceName(mover.Type()), m.S2())
	}

	return fmt.Sprintf("%s: I am moving %s to %s.%s",
		p.Name, pieceName(mover.Type()), m.S2(), ex.materialNote(scoreBefore, scoreAfter))
}

// AnnotateOpponentMove comments on the other side's move after the fact:
// a persona blunder quote for a big evaluation drop, a brief nod for a
// capture, nothing otherwise. delta is from the opponent's perspective.
func (ex *Explainer) AnnotateOpponentMove(m *chess.Move, delta int) string {
	if delta <= -significantDelta {
		return fmt.Sprintf("%s: %s", ex.persona.Name, ex.persona.BlunderQuote)
	}
	if m.HasTag(chess.Capture) || m.HasTag(chess.EnPassant) {
		return fmt.Sprintf("%s: Interesting capture.", ex.persona.Name)
	}
	return ""
}

func (ex *Explainer) materialNote(before, after int) string {
	delta := after - before
	if IsMateScore(after) || IsMateScore(before) {
		return ""
	}
	if delta >= significantDelta {
		return fmt.Sprintf(" This should win me about %.1f pawns of material.", float64(delta)/100)
	}
	if delta <= -significantDelta {
		return " I am giving up material here, but it is the best I have."
	}
	return ""
}

func onBackRank(sq chess.Square, color chess.Color) bool {
	if color == chess.White {
		return sq.Rank() == chess.Rank1
	}
	return sq.Rank() == chess.Rank8
}
