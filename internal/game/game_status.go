// path: internal/game/game_status.go
package game

// Game status strings surfaced to API consumers.
const (
	StatusOngoing   = "ongoing"
	StatusCheck     = "check"
	StatusCheckmate = "checkmate"
)

// CheckForCheckmate probes the waiting player's opponent, the side
// that just moved when called from finalize. Results are reported,
// never enforced: a "mated" game still accepts moves.
func (g *Game) CheckForCheckmate() bool {
	return g.kingIsMated(g.active.Opposite())
}

// kingIsMated reports whether color's king has no legal escape among
// its eight adjacent squares. Off-board and friendly-occupied squares
// are excluded; the rest are tested with the king's CanMoveTo, which
// refuses attacked squares.
//
// Known gap, preserved deliberately: the probe never asks whether
// another defender could block or capture the attacker, and it does
// not require the king to be in check at all. See the tests for the
// positions this misjudges.
func (g *Game) kingIsMated(color Color) bool {
	king := g.King(color)
	if king == nil {
		return false
	}
	for _, off := range kingOffsets {
		sq, ok := king.Square.Offset(off[0], off[1])
		if !ok {
			continue
		}
		if occ := g.board.PieceAt(sq); occ != nil && occ.Color == color {
			continue
		}
		if king.CanMoveTo(sq, g) {
			return false
		}
	}
	return true
}

// Status summarizes the position for the side to move.
func (g *Game) Status() string {
	switch {
	case g.kingIsMated(g.active):
		return StatusCheckmate
	case g.IsKingInCheck(g.active):
		return StatusCheck
	default:
		return StatusOngoing
	}
}
