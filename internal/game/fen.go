// path: internal/game/fen.go
package game

import (
	"fmt"
	"strings"
)

// ExportFEN renders the position in a FEN-like form: placement,
// active color, castling letters, en-passant field, halfmove clock
// and turn number.
//
// Two deliberate departures from the FEN standard: the castling
// letters are computed from the current position (attacked transit
// squares drop the letter, a standard FEN would not), and the
// en-passant field is a fixed "-" placeholder. The output is not
// round-trip safe.
func (g *Game) ExportFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq, _ := SquareFromCoords(rank, file)
			p := g.board.PieceAt(sq)
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(fmt.Sprintf("%d", empty))
				empty = 0
			}
			sb.WriteString(p.Letter())
		}
		if empty > 0 {
			sb.WriteString(fmt.Sprintf("%d", empty))
		}
		if rank > 0 {
			sb.WriteString("/")
		}
	}
	fmt.Fprintf(&sb, " %s %s - %d %d", g.active.Letter(), g.castlingLetters(), g.halfmoveClock, g.turnNumber)
	return sb.String()
}

// castlingLetters is the KQkq field, derived from live castle
// availability rather than stored rights.
func (g *Game) castlingLetters() string {
	var sb strings.Builder
	if g.CanCastle(White, Kingside) {
		sb.WriteString("K")
	}
	if g.CanCastle(White, Queenside) {
		sb.WriteString("Q")
	}
	if g.CanCastle(Black, Kingside) {
		sb.WriteString("k")
	}
	if g.CanCastle(Black, Queenside) {
		sb.WriteString("q")
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
