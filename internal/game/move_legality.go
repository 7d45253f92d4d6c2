// path: internal/game/move_legality.go
package game

// kingOffsets are the eight adjacent square deltas (fileDelta, rankDelta).
var kingOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// isSquareAttacked reports whether any live piece of color `by` can
// capture on target. Enemy kings are handled geometrically rather
// than through their CanTake, which would recurse back into attack
// queries when both kings are near the same square.
func (g *Game) isSquareAttacked(by Color, target Square) bool {
	for _, p := range g.pieces[by] {
		if p.Captured {
			continue
		}
		if p.Kind == King {
			df, dr := p.Square.Delta(target)
			if (df != 0 || dr != 0) && abs(df) <= 1 && abs(dr) <= 1 {
				return true
			}
			continue
		}
		if p.CanTake(target, g) {
			return true
		}
	}
	return false
}

// IsKingInCheck reports whether color's king stands on an attacked
// square. A missing king (bare test positions) is never in check.
func (g *Game) IsKingInCheck(color Color) bool {
	king := g.King(color)
	if king == nil {
		return false
	}
	return g.isSquareAttacked(color.Opposite(), king.Square)
}

// WhoCanMoveTo enumerates color's live pieces of the given kind that
// could quietly move to dest. fromFile/fromRank of -1 disable the
// source filters.
func (g *Game) WhoCanMoveTo(dest Square, color Color, kind PieceType, fromFile, fromRank int) []*Piece {
	return g.collectCandidates(dest, color, kind, fromFile, fromRank, false)
}

// WhoCanCapture enumerates color's live pieces of the given kind that
// could capture on dest.
func (g *Game) WhoCanCapture(dest Square, color Color, kind PieceType, fromFile, fromRank int) []*Piece {
	return g.collectCandidates(dest, color, kind, fromFile, fromRank, true)
}

func (g *Game) collectCandidates(dest Square, color Color, kind PieceType, fromFile, fromRank int, capture bool) []*Piece {
	var out []*Piece
	for _, p := range g.pieces[color] {
		if p.Captured || p.Kind != kind {
			continue
		}
		if fromFile >= 0 && p.Square.File() != fromFile {
			continue
		}
		if fromRank >= 0 && p.Square.Rank() != fromRank {
			continue
		}
		if capture {
			if p.CanTake(dest, g) {
				out = append(out, p)
			}
		} else if p.CanMoveTo(dest, g) {
			out = append(out, p)
		}
	}
	return out
}

// moveCausesSelfCheck plays from->to inside a rollback scope and
// reports whether the mover's own king ends up attacked. Errors from
// the probed move propagate; the scope restores state either way.
func (g *Game) moveCausesSelfCheck(from, to Square) (bool, error) {
	mover := g.active
	var inCheck bool
	err := g.TempMove(func() error {
		if err := g.Move(from, to); err != nil {
			return err
		}
		g.active = mover
		inCheck = g.IsKingInCheck(mover)
		return nil
	})
	return inCheck, err
}
