// path: internal/game/state.go
package game

// ---------------------------
// Renderer-facing snapshots
// ---------------------------

// PieceState is one piece in a serialized snapshot.
type PieceState struct {
	Kind     string `json:"kind"`
	Letter   string `json:"letter"`
	Color    string `json:"color"`
	Square   string `json:"square"`
	HasMoved bool   `json:"has_moved"`
	Value    int    `json:"value"`
}

func pieceState(p *Piece) PieceState {
	return PieceState{
		Kind:     p.Kind.String(),
		Letter:   p.Letter(),
		Color:    p.Color.String(),
		Square:   p.Square.String(),
		HasMoved: p.HasMoved,
		Value:    p.Value(),
	}
}

// BoardState is the full serializable game snapshot handed to
// rendering layers. It is a copy; mutating it does not touch the game.
type BoardState struct {
	Pieces        []PieceState    `json:"pieces"`
	CapturedWhite []PieceState    `json:"captured_white"`
	CapturedBlack []PieceState    `json:"captured_black"`
	Grid          [8][8]string    `json:"grid"`
	Active        string          `json:"active"`
	Status        string          `json:"status"`
	InCheck       bool            `json:"in_check"`
	Checkmate     bool            `json:"checkmate"`
	EnPassant     EnPassantTarget `json:"en_passant"`
	HalfmoveClock int             `json:"halfmove_clock"`
	TurnNumber    int             `json:"turn_number"`
	Moves         []MoveRecord    `json:"moves"`
	FEN           string          `json:"fen"`
}

// State builds the current snapshot. InCheck refers to the side to
// move; Checkmate comes from the adjacent-escape probe against the
// side that just moved, matching the per-move detection.
func (g *Game) State() BoardState {
	st := BoardState{
		Grid:          g.Grid(),
		Active:        g.active.String(),
		Status:        g.Status(),
		InCheck:       g.IsKingInCheck(g.active),
		Checkmate:     g.CheckForCheckmate(),
		EnPassant:     g.enPassant,
		HalfmoveClock: g.halfmoveClock,
		TurnNumber:    g.turnNumber,
		Moves:         append([]MoveRecord(nil), g.moves...),
		FEN:           g.ExportFEN(),
	}
	for _, color := range []Color{White, Black} {
		for _, p := range g.pieces[color] {
			st.Pieces = append(st.Pieces, pieceState(p))
		}
	}
	for _, p := range g.captured[White] {
		st.CapturedWhite = append(st.CapturedWhite, pieceState(p))
	}
	for _, p := range g.captured[Black] {
		st.CapturedBlack = append(st.CapturedBlack, pieceState(p))
	}
	return st
}

// Grid returns the 8x8 occupancy snapshot, Grid[rank][file] holding
// the piece letter ("" for empty), rank 0 being rank 1.
func (g *Game) Grid() [8][8]string {
	var grid [8][8]string
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq, _ := SquareFromCoords(rank, file)
			if p := g.board.PieceAt(sq); p != nil {
				grid[rank][file] = p.Letter()
			}
		}
	}
	return grid
}
