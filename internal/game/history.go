// path: internal/game/history.go
package game

// pieceEntry pairs a live pointer with its saved value so restore can
// write the value back in place, keeping pointer identity stable for
// callers that hold piece references across a rollback.
type pieceEntry struct {
	ptr   *Piece
	saved Piece
}

// gameSnapshot is the full mutable state of a Game. Restore works by
// assignment, so snapshots nest in strict LIFO order.
type gameSnapshot struct {
	pieces        map[Color][]pieceEntry
	captured      map[Color][]pieceEntry
	active        Color
	turnNumber    int
	halfmoveClock int
	enPassant     EnPassantTarget
	moveCount     int
}

// snapshot saves every piece by value plus the scalar bookkeeping.
// The square table is not stored; restore rebuilds it from the pieces.
func (g *Game) snapshot() gameSnapshot {
	s := gameSnapshot{
		pieces:        map[Color][]pieceEntry{},
		captured:      map[Color][]pieceEntry{},
		active:        g.active,
		turnNumber:    g.turnNumber,
		halfmoveClock: g.halfmoveClock,
		enPassant:     g.enPassant,
		moveCount:     len(g.moves),
	}
	for _, color := range []Color{White, Black} {
		s.pieces[color] = saveEntries(g.pieces[color])
		s.captured[color] = saveEntries(g.captured[color])
	}
	return s
}

func saveEntries(list []*Piece) []pieceEntry {
	if list == nil {
		return nil
	}
	out := make([]pieceEntry, len(list))
	for i, p := range list {
		out[i] = pieceEntry{ptr: p, saved: *p}
	}
	return out
}

// restore writes every saved piece value back into its original
// struct, rebuilds the registries and the square table, and resets
// the scalars. Pieces created inside the scope (promotions) are
// simply dropped from the registries.
func (g *Game) restore(s gameSnapshot) {
	g.board.clear()
	g.pieces = map[Color][]*Piece{}
	g.captured = map[Color][]*Piece{}
	for _, color := range []Color{White, Black} {
		g.pieces[color] = restoreEntries(s.pieces[color])
		g.captured[color] = restoreEntries(s.captured[color])
		for _, p := range g.pieces[color] {
			if !p.Captured {
				g.board.squares[p.Square] = p
			}
		}
	}
	g.active = s.active
	g.turnNumber = s.turnNumber
	g.halfmoveClock = s.halfmoveClock
	g.enPassant = s.enPassant
	if len(g.moves) > s.moveCount {
		g.moves = g.moves[:s.moveCount]
	}
}

func restoreEntries(entries []pieceEntry) []*Piece {
	if entries == nil {
		return nil
	}
	out := make([]*Piece, len(entries))
	for i, e := range entries {
		*e.ptr = e.saved
		out[i] = e.ptr
	}
	return out
}

// TempMove runs fn inside a rollback scope: whatever fn does to the
// game, including returning an error, the pre-entry state is restored
// on exit. Used for self-check probing during notation resolution.
func (g *Game) TempMove(fn func() error) error {
	s := g.snapshot()
	defer g.restore(s)
	return fn()
}
