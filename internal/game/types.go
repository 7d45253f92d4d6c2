// path: internal/game/types.go
package game

import (
	"fmt"
	"strings"
)

// ---------------------------
// Color
// ---------------------------

// Color identifies a side.
type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Letter returns the FEN-style side letter.
func (c Color) Letter() string {
	if c == White {
		return "w"
	}
	return "b"
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	switch string(text) {
	case "white", "w":
		*c = White
	case "black", "b":
		*c = Black
	default:
		return fmt.Errorf("invalid color %q", text)
	}
	return nil
}

// Opposite returns the other side.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// PawnDirection is the rank delta a pawn of this color advances by.
func (c Color) PawnDirection() int {
	if c == White {
		return 1
	}
	return -1
}

// backRank is the rank index (0-7) of the color's home rank.
func (c Color) backRank() int {
	if c == White {
		return 0
	}
	return 7
}

// lastRank is the rank index a pawn of this color promotes on.
func (c Color) lastRank() int {
	if c == White {
		return 7
	}
	return 0
}

// ---------------------------
// PieceType
// ---------------------------

// PieceType identifies the movement class of a piece.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

var (
	pieceNames   = [...]string{"pawn", "knight", "bishop", "rook", "queen", "king"}
	pieceLetters = [...]string{"P", "N", "B", "R", "Q", "K"}
	pieceValues  = [...]int{1, 3, 3, 5, 9, 100}
)

func (pt PieceType) String() string {
	if int(pt) < len(pieceNames) {
		return pieceNames[pt]
	}
	return fmt.Sprintf("piece(%d)", uint8(pt))
}

// Letter returns the uppercase algebraic letter ("P" for pawns).
func (pt PieceType) Letter() string {
	if int(pt) < len(pieceLetters) {
		return pieceLetters[pt]
	}
	return "?"
}

// Value returns the conventional material value; kings are priced
// high enough that no exchange sequence trades one away.
func (pt PieceType) Value() int {
	if int(pt) < len(pieceValues) {
		return pieceValues[pt]
	}
	return 0
}

// MarshalText implements encoding.TextMarshaler.
func (pt PieceType) MarshalText() ([]byte, error) {
	return []byte(pt.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (pt *PieceType) UnmarshalText(text []byte) error {
	for i, name := range pieceNames {
		if name == string(text) {
			*pt = PieceType(i)
			return nil
		}
	}
	return fmt.Errorf("invalid piece type %q", text)
}

// PieceTypeFromLetter maps an algebraic letter to a piece type.
// The empty string and "P" both mean pawn.
func PieceTypeFromLetter(letter string) (PieceType, bool) {
	switch strings.ToUpper(letter) {
	case "", "P":
		return Pawn, true
	case "N":
		return Knight, true
	case "B":
		return Bishop, true
	case "R":
		return Rook, true
	case "Q":
		return Queen, true
	case "K":
		return King, true
	}
	return Pawn, false
}

// ---------------------------
// Square
// ---------------------------

// Square is a board cell index, 0..63, a1=0 .. h8=63.
type Square uint8

const squareCount = 64

// NoSquare is the sentinel for "no square"; always paired with a
// validity flag or an error at the sites that can produce it.
const NoSquare Square = 255

// SquareFromCoords builds a square from rank and file indices (0-7).
func SquareFromCoords(rank, file int) (Square, bool) {
	if rank < 0 || rank > 7 || file < 0 || file > 7 {
		return NoSquare, false
	}
	return Square(rank*8 + file), true
}

// CoordToSquare parses algebraic notation like "e4".
func CoordToSquare(coord string) (Square, bool) {
	if len(coord) != 2 {
		return NoSquare, false
	}
	file := int(coord[0] - 'a')
	rank := int(coord[1] - '1')
	return SquareFromCoords(rank, file)
}

// ParseSquare is CoordToSquare with an error describing the rejection.
func ParseSquare(coord string) (Square, error) {
	sq, ok := CoordToSquare(coord)
	if !ok {
		return NoSquare, &MoveError{Kind: KindInvalidSquare, From: NoSquare, To: NoSquare, Detail: fmt.Sprintf("coordinate %q is not a board square", coord)}
	}
	return sq, nil
}

// Rank returns the rank index 0-7 (rank 1 is 0).
func (s Square) Rank() int { return int(s) / 8 }

// File returns the file index 0-7 (file a is 0).
func (s Square) File() int { return int(s) % 8 }

// Valid reports whether the square is on the board.
func (s Square) Valid() bool { return s < squareCount }

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string(rune('a'+s.File())) + string(rune('1'+s.Rank()))
}

// MarshalText implements encoding.TextMarshaler.
func (s Square) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Square) UnmarshalText(text []byte) error {
	if string(text) == "-" {
		*s = NoSquare
		return nil
	}
	sq, ok := CoordToSquare(string(text))
	if !ok {
		return fmt.Errorf("invalid square %q", text)
	}
	*s = sq
	return nil
}

// Offset returns the square displaced by (fileDelta, rankDelta),
// reporting false when the result leaves the board.
func (s Square) Offset(fileDelta, rankDelta int) (Square, bool) {
	return SquareFromCoords(s.Rank()+rankDelta, s.File()+fileDelta)
}

// Delta returns the signed (fileDelta, rankDelta) from s to other.
func (s Square) Delta(other Square) (int, int) {
	return other.File() - s.File(), other.Rank() - s.Rank()
}

// Line returns the squares strictly between from and to when they
// share a rank, file or diagonal; otherwise nil. Endpoints excluded.
func Line(from, to Square) []Square {
	df, dr := from.Delta(to)
	if df == 0 && dr == 0 {
		return nil
	}
	if df != 0 && dr != 0 && abs(df) != abs(dr) {
		return nil
	}
	stepF, stepR := sign(df), sign(dr)
	var between []Square
	f, r := from.File()+stepF, from.Rank()+stepR
	for f != to.File() || r != to.Rank() {
		sq, ok := SquareFromCoords(r, f)
		if !ok {
			return nil
		}
		between = append(between, sq)
		f += stepF
		r += stepR
	}
	return between
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// ---------------------------
// EnPassantTarget
// ---------------------------

// EnPassantTarget is the square a pawn may capture onto en passant.
// The zero value means no target.
type EnPassantTarget struct {
	square Square
	valid  bool
}

// NoEnPassantTarget returns the empty target.
func NoEnPassantTarget() EnPassantTarget { return EnPassantTarget{} }

// NewEnPassantTarget returns a target for the given square.
func NewEnPassantTarget(sq Square) EnPassantTarget {
	return EnPassantTarget{square: sq, valid: sq.Valid()}
}

// Valid reports whether a target square is set.
func (e EnPassantTarget) Valid() bool { return e.valid }

// Square returns the target square; only meaningful when Valid.
func (e EnPassantTarget) Square() Square { return e.square }

func (e EnPassantTarget) String() string {
	if !e.valid {
		return "-"
	}
	return e.square.String()
}

// MarshalText implements encoding.TextMarshaler.
func (e EnPassantTarget) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *EnPassantTarget) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" || s == "-" {
		*e = EnPassantTarget{}
		return nil
	}
	sq, ok := CoordToSquare(s)
	if !ok {
		return fmt.Errorf("invalid en passant target %q", s)
	}
	*e = NewEnPassantTarget(sq)
	return nil
}

// ---------------------------
// CastleSide
// ---------------------------

// CastleSide selects kingside or queenside castling.
type CastleSide uint8

const (
	Kingside CastleSide = iota
	Queenside
)

func (cs CastleSide) String() string {
	if cs == Kingside {
		return "O-O"
	}
	return "O-O-O"
}

// ParseCastleToken recognizes the castle notation tokens, with an
// optional check or mate suffix.
func ParseCastleToken(text string) (CastleSide, bool) {
	trimmed := strings.TrimRight(text, "+#")
	switch trimmed {
	case "O-O", "0-0":
		return Kingside, true
	case "O-O-O", "0-0-0":
		return Queenside, true
	}
	return Kingside, false
}
