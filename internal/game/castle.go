// path: internal/game/castle.go
package game

// castlePlan is the fixed square choreography for one color/side.
type castlePlan struct {
	kingFrom Square
	kingTo   Square
	rookFrom Square
	rookTo   Square
	between  []Square // strictly between king and rook, must be empty
	kingPath []Square // king start, transit and destination, must be unattacked
}

func mustSquare(coord string) Square {
	sq, ok := CoordToSquare(coord)
	if !ok {
		panic("bad castle plan coordinate " + coord)
	}
	return sq
}

var castlePlans = map[Color]map[CastleSide]castlePlan{
	White: {
		Kingside: {
			kingFrom: mustSquare("e1"), kingTo: mustSquare("g1"),
			rookFrom: mustSquare("h1"), rookTo: mustSquare("f1"),
			between:  []Square{mustSquare("f1"), mustSquare("g1")},
			kingPath: []Square{mustSquare("e1"), mustSquare("f1"), mustSquare("g1")},
		},
		Queenside: {
			kingFrom: mustSquare("e1"), kingTo: mustSquare("c1"),
			rookFrom: mustSquare("a1"), rookTo: mustSquare("d1"),
			between:  []Square{mustSquare("b1"), mustSquare("c1"), mustSquare("d1")},
			kingPath: []Square{mustSquare("e1"), mustSquare("d1"), mustSquare("c1")},
		},
	},
	Black: {
		Kingside: {
			kingFrom: mustSquare("e8"), kingTo: mustSquare("g8"),
			rookFrom: mustSquare("h8"), rookTo: mustSquare("f8"),
			between:  []Square{mustSquare("f8"), mustSquare("g8")},
			kingPath: []Square{mustSquare("e8"), mustSquare("f8"), mustSquare("g8")},
		},
		Queenside: {
			kingFrom: mustSquare("e8"), kingTo: mustSquare("c8"),
			rookFrom: mustSquare("a8"), rookTo: mustSquare("d8"),
			between:  []Square{mustSquare("b8"), mustSquare("c8"), mustSquare("d8")},
			kingPath: []Square{mustSquare("e8"), mustSquare("d8"), mustSquare("c8")},
		},
	},
}

// castleRejection explains why the castle is unavailable, "" if legal.
func (g *Game) castleRejection(color Color, side CastleSide) string {
	plan := castlePlans[color][side]
	king := g.board.PieceAt(plan.kingFrom)
	if king == nil || king.Kind != King || king.Color != color {
		return "king is not on its home square"
	}
	if king.HasMoved {
		return "king has already moved"
	}
	rook := g.board.PieceAt(plan.rookFrom)
	if rook == nil || rook.Kind != Rook || rook.Color != color {
		return "rook is not on its home square"
	}
	if rook.HasMoved {
		return "rook has already moved"
	}
	for _, sq := range plan.between {
		if g.board.PieceAt(sq) != nil {
			return "squares between king and rook are occupied"
		}
	}
	enemy := color.Opposite()
	for _, sq := range plan.kingPath {
		if g.isSquareAttacked(enemy, sq) {
			return "king path crosses an attacked square"
		}
	}
	return ""
}

// CanCastle reports whether color may castle on side right now.
func (g *Game) CanCastle(color Color, side CastleSide) bool {
	return g.castleRejection(color, side) == ""
}

// Castle performs castling for the active player.
func (g *Game) Castle(side CastleSide) error {
	color := g.active
	if reason := g.castleRejection(color, side); reason != "" {
		plan := castlePlans[color][side]
		return newMoveError(KindIllegalCastle, King, plan.kingFrom, plan.kingTo, reason)
	}
	plan := castlePlans[color][side]
	king := g.board.PieceAt(plan.kingFrom)
	rook := g.board.PieceAt(plan.rookFrom)
	g.enPassant = NoEnPassantTarget()
	g.board.ForceMove(plan.kingFrom, plan.kingTo)
	g.board.ForceMove(plan.rookFrom, plan.rookTo)
	king.HasMoved = true
	rook.HasMoved = true
	g.finalize(MoveRecord{
		Color:  color,
		Piece:  King,
		From:   plan.kingFrom,
		To:     plan.kingTo,
		Castle: side.String(),
	})
	return nil
}
