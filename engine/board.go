package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/notnil/chess"
)

// The board model wraps notnil/chess positions with the game-state queries
// the search and the HTTP layer need. Positions are value snapshots: applying
// a move always yields a new *chess.Position and never mutates the input.

// PositionFromFEN parses a FEN string into a position. All six FEN fields are
// honored, so castling rights, the en-passant target and both clocks survive
// the round trip. Returns ErrMalformedBoard for unparseable or invalid input.
func PositionFromFEN(fen string) (*chess.Position, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBoard, err)
	}
	pos := chess.NewGame(opt).Position()
	if err := Validate(pos); err != nil {
		return nil, err
	}
	return pos, nil
}

// Validate rejects positions no real game can reach: a missing or duplicated
// king, pawns on the first or last rank, or the side not on move left in
// check (which would mean the previous mover ignored a capture of the king).
func Validate(pos *chess.Position) error {
	b := pos.Board()
	var whiteKings, blackKings int
	for sq := chess.A1; sq <= chess.H8; sq++ {
		p := b.Piece(sq)
		switch {
		case p == chess.NoPiece:
			continue
		case p.Type() == chess.King && p.Color() == chess.White:
			whiteKings++
		case p.Type() == chess.King && p.Color() == chess.Black:
			blackKings++
		case p.Type() == chess.Pawn && (sq.Rank() == chess.Rank1 || sq.Rank() == chess.Rank8):
			return fmt.Errorf("%w: pawn on %s", ErrMalformedBoard, sq)
		}
	}
	if whiteKings != 1 || blackKings != 1 {
		return fmt.Errorf("%w: expected one king per color, got %d white / %d black",
			ErrMalformedBoard, whiteKings, blackKings)
	}
	opponent := pos.Turn().Other()
	if IsInCheck(pos, opponent) {
		return fmt.Errorf("%w: %s is in check but %s is to move",
			ErrMalformedBoard, opponent, pos.Turn())
	}
	return nil
}

// LegalMoves returns every legal move for the side to move. Pseudo-legal
// moves (pinned pieces, castling through check, en passant exposing the
// king) are already filtered out by the move generator.
func LegalMoves(pos *chess.Position) []*chess.Move {
	return pos.ValidMoves()
}

// FindMove looks up the legal move matching from/to (and promotion kind, if
// any). A pawn reaching the last rank with no promotion kind given promotes
// to a queen. Returns an *IllegalMoveError when no legal move matches.
func FindMove(pos *chess.Position, from, to chess.Square, promotion chess.PieceType) (*chess.Move, error) {
	want := promotion
	if want == chess.NoPieceType {
		want = chess.Queen
	}
	var fallback *chess.Move
	for _, m := range pos.ValidMoves() {
		if m.S1() != from || m.S2() != to {
			continue
		}
		if m.Promo() == chess.NoPieceType {
			return m, nil
		}
		if m.Promo() == want {
			return m, nil
		}
		if fallback == nil {
			fallback = m
		}
	}
	if promotion == chess.NoPieceType && fallback != nil {
		return fallback, nil
	}
	return nil, &IllegalMoveError{From: from, To: to, Promotion: promotion}
}

// ApplyMove returns the position after the move without touching the input
// position. The move must come from LegalMoves/FindMove on the same position.
func ApplyMove(pos *chess.Position, m *chess.Move) (*chess.Position, error) {
	for _, legal := range pos.ValidMoves() {
		if legal.S1() == m.S1() && legal.S2() == m.S2() && legal.Promo() == m.Promo() {
			return pos.Update(legal), nil
		}
	}
	return nil, &IllegalMoveError{From: m.S1(), To: m.S2(), Promotion: m.Promo()}
}

// IsInCheck reports whether color's king is attacked in the given position.
func IsInCheck(pos *chess.Position, color chess.Color) bool {
	b := pos.Board()
	king := kingSquare(b, color)
	if king == chess.NoSquare {
		return false
	}
	return squareAttacked(b, king, color.Other())
}

// IsCheckmate reports whether the side to move is checkmated.
func IsCheckmate(pos *chess.Position) bool {
	return len(pos.ValidMoves()) == 0 && IsInCheck(pos, pos.Turn())
}

// IsStalemate reports whether the side to move has no legal moves but is not
// in check.
func IsStalemate(pos *chess.Position) bool {
	return len(pos.ValidMoves()) == 0 && !IsInCheck(pos, pos.Turn())
}

// IsDraw reports a fifty-move-rule or insufficient-material draw. Threefold
// repetition needs position history, which a bare position does not carry;
// see RepetitionCount for the game-level check.
func IsDraw(pos *chess.Position) bool {
	if HalfMoveClock(pos) >= 100 {
		return true
	}
	return insufficientMaterial(pos.Board())
}

// insufficientMaterial is true when neither side can possibly mate: bare
// kings, king+knight or king+bishop against a bare king, or king+bishop each
// with both bishops on the same square color.
func insufficientMaterial(b *chess.Board) bool {
	var knights, bishops, others int
	bishopColorSum := 0
	for sq := chess.A1; sq <= chess.H8; sq++ {
		switch b.Piece(sq).Type() {
		case chess.NoPieceType, chess.King:
		case chess.Knight:
			knights++
		case chess.Bishop:
			bishops++
			bishopColorSum += (int(sq.File()) + int(sq.Rank())) % 2
		default:
			others++
		}
	}
	if others > 0 {
		return false
	}
	switch {
	case knights == 0 && bishops == 0:
		return true
	case knights == 1 && bishops == 0:
		return true
	case knights == 0 && bishops == 1:
		return true
	case knights == 0 && bishops == 2:
		// Same-color bishops cannot force mate even across two armies.
		return bishopColorSum == 0 || bishopColorSum == 2
	}
	return false
}

// HalfMoveClock reads the fifty-move counter out of the position's FEN.
// The position type keeps the clock internal, but it always serializes it.
func HalfMoveClock(pos *chess.Position) int {
	parts := strings.Split(pos.String(), " ")
	if len(parts) < 5 {
		return 0
	}
	n, err := strconv.Atoi(parts[4])
	if err != nil {
		return 0
	}
	return n
}

// FullMoveNumber reads the full-move counter out of the position's FEN.
func FullMoveNumber(pos *chess.Position) int {
	parts := strings.Split(pos.String(), " ")
	if len(parts) < 6 {
		return 1
	}
	n, err := strconv.Atoi(parts[5])
	if err != nil {
		return 1
	}
	return n
}

// repetitionKey strips the clocks from a FEN so repeated positions compare
// equal: <pieces> <side> <castling> <en-passant>.
func repetitionKey(pos *chess.Position) string {
	parts := strings.Split(pos.String(), " ")
	if len(parts) < 4 {
		return pos.String()
	}
	return strings.Join(parts[:4], " ")
}

// RepetitionCount returns how many times the game's current position has
// occurred over the whole game, current occurrence included.
func RepetitionCount(game *chess.Game) int {
	positions := game.Positions()
	if len(positions) == 0 {
		return 0
	}
	key := repetitionKey(positions[len(positions)-1])
	count := 0
	for _, p := range positions {
		if repetitionKey(p) == key {
			count++
		}
	}
	return count
}

// IsThreefold reports whether the game's current position has occurred at
// least three times.
func IsThreefold(game *chess.Game) bool {
	return RepetitionCount(game) >= 3
}
