// path: internal/game/board.go
package game

import (
	"fmt"
	"strings"
)

// Board is the square table. It owns no rules; it keeps the
// square -> piece mapping and each piece's Square field consistent.
type Board struct {
	squares [squareCount]*Piece
}

// PieceAt returns the piece on sq, nil when empty or off-board.
func (b *Board) PieceAt(sq Square) *Piece {
	if !sq.Valid() {
		return nil
	}
	return b.squares[sq]
}

// place puts p on its own Square. The cell must be empty.
func (b *Board) place(p *Piece) error {
	if !p.Square.Valid() {
		return fmt.Errorf("place %s: off board", p)
	}
	if b.squares[p.Square] != nil {
		return fmt.Errorf("place %s: square occupied by %s", p, b.squares[p.Square])
	}
	b.squares[p.Square] = p
	return nil
}

// remove clears sq and returns whatever stood there.
func (b *Board) remove(sq Square) *Piece {
	if !sq.Valid() {
		return nil
	}
	p := b.squares[sq]
	b.squares[sq] = nil
	return p
}

// clear empties the whole table.
func (b *Board) clear() {
	for i := range b.squares {
		b.squares[i] = nil
	}
}

// IsPathClear reports whether every square strictly between from and
// to is empty. Endpoints are never inspected. Non-collinear pairs
// (knight hops) have no between squares and are trivially clear.
func (b *Board) IsPathClear(from, to Square) bool {
	for _, sq := range Line(from, to) {
		if b.squares[sq] != nil {
			return false
		}
	}
	return true
}

// ForceMove relocates the piece on from to to unconditionally. No
// legality checks; any occupant of to is silently dropped from the
// table, so callers detach victims first.
func (b *Board) ForceMove(from, to Square) {
	if !from.Valid() || !to.Valid() {
		return
	}
	p := b.squares[from]
	if p == nil {
		return
	}
	b.squares[from] = nil
	b.squares[to] = p
	p.Square = to
}

// Text renders the position as an ASCII diagram, white uppercase,
// black lowercase, rank 8 on top. Used in diagnostics.
func (b *Board) Text() string {
	var sb strings.Builder
	sb.WriteString("   abcdefgh\n")
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d |", rank+1)
		for file := 0; file < 8; file++ {
			sq, _ := SquareFromCoords(rank, file)
			if p := b.squares[sq]; p != nil {
				sb.WriteString(p.Letter())
			} else {
				sb.WriteString(".")
			}
		}
		fmt.Fprintf(&sb, "| %d\n", rank+1)
	}
	sb.WriteString("   abcdefgh\n")
	return sb.String()
}
