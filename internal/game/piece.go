// path: internal/game/piece.go
package game

import "fmt"

// Piece is a live or captured piece. Kind selects the movement rules;
// there is no per-kind subtype.
type Piece struct {
	Kind     PieceType
	Color    Color
	Square   Square
	Captured bool
	HasMoved bool
}

// NewPiece returns a piece standing on sq.
func NewPiece(color Color, kind PieceType, sq Square) *Piece {
	return &Piece{Kind: kind, Color: color, Square: sq}
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s %s at %s", p.Color, p.Kind, p.Square)
}

// Value returns the piece's material value.
func (p *Piece) Value() int { return p.Kind.Value() }

// Letter returns the piece letter, lowercase for black.
func (p *Piece) Letter() string {
	letter := p.Kind.Letter()
	if p.Color == Black {
		return lower(letter)
	}
	return letter
}

func lower(s string) string {
	if len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z' {
		return string(s[0] + 'a' - 'A')
	}
	return s
}

// CanMoveTo reports whether the piece could relocate to dest on a
// quiet move. Geometry and path occupancy only; whether dest itself
// is free, and whether the move exposes the mover's king, are the
// game's concern. Kings additionally refuse squares the opponent
// attacks.
func (p *Piece) CanMoveTo(dest Square, g *Game) bool {
	if p.Captured || !dest.Valid() || dest == p.Square {
		return false
	}
	df, dr := p.Square.Delta(dest)
	switch p.Kind {
	case Pawn:
		if df != 0 {
			return false
		}
		dir := p.Color.PawnDirection()
		if dr == dir {
			return g.board.PieceAt(dest) == nil
		}
		if dr == 2*dir && !p.HasMoved {
			mid, ok := p.Square.Offset(0, dir)
			if !ok {
				return false
			}
			return g.board.PieceAt(mid) == nil && g.board.PieceAt(dest) == nil
		}
		return false
	case Knight:
		return isKnightHop(df, dr)
	case Bishop:
		return abs(df) == abs(dr) && g.board.IsPathClear(p.Square, dest)
	case Rook:
		return (df == 0 || dr == 0) && g.board.IsPathClear(p.Square, dest)
	case Queen:
		if df != 0 && dr != 0 && abs(df) != abs(dr) {
			return false
		}
		return g.board.IsPathClear(p.Square, dest)
	case King:
		if abs(df) > 1 || abs(dr) > 1 {
			return false
		}
		return !g.isSquareAttacked(p.Color.Opposite(), dest)
	}
	return false
}

// CanTake reports whether the piece could capture on dest. Pawns use
// their diagonal capture geometry; every other kind captures the way
// it moves. The presence of a victim is the game's concern.
func (p *Piece) CanTake(dest Square, g *Game) bool {
	if p.Captured || !dest.Valid() || dest == p.Square {
		return false
	}
	if p.Kind == Pawn {
		df, dr := p.Square.Delta(dest)
		return abs(df) == 1 && dr == p.Color.PawnDirection()
	}
	return p.CanMoveTo(dest, g)
}

// onMoved runs the piece's post-move side effects: the has-moved flag
// and the en-passant window a double step opens.
func (p *Piece) onMoved(from, to Square, g *Game) {
	p.HasMoved = true
	if p.Kind != Pawn {
		return
	}
	_, dr := from.Delta(to)
	if abs(dr) == 2 {
		mid, ok := from.Offset(0, p.Color.PawnDirection())
		if ok {
			g.enPassant = NewEnPassantTarget(mid)
		}
	}
}

// geometryReaches is the pure movement pattern with no board lookups,
// used to tell a blocked path from an impossible shape.
func (p *Piece) geometryReaches(dest Square, capture bool) bool {
	if !dest.Valid() || dest == p.Square {
		return false
	}
	df, dr := p.Square.Delta(dest)
	switch p.Kind {
	case Pawn:
		dir := p.Color.PawnDirection()
		if capture {
			return abs(df) == 1 && dr == dir
		}
		if df != 0 {
			return false
		}
		return dr == dir || (dr == 2*dir && !p.HasMoved)
	case Knight:
		return isKnightHop(df, dr)
	case Bishop:
		return abs(df) == abs(dr)
	case Rook:
		return df == 0 || dr == 0
	case Queen:
		return df == 0 || dr == 0 || abs(df) == abs(dr)
	case King:
		return abs(df) <= 1 && abs(dr) <= 1
	}
	return false
}

func isKnightHop(df, dr int) bool {
	a, b := abs(df), abs(dr)
	return (a == 1 && b == 2) || (a == 2 && b == 1)
}
