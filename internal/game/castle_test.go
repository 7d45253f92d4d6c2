// path: internal/game/castle_test.go
package game

import (
	"errors"
	"testing"
)

func TestKingsideCastle(t *testing.T) {
	g := bareGame(t)
	mustAdd(t, g, White, King, "e1")
	mustAdd(t, g, White, Rook, "h1")
	mustAdd(t, g, Black, King, "a8")

	if !g.CanCastle(White, Kingside) {
		t.Fatal("kingside castle should be available")
	}
	if err := g.Castle(Kingside); err != nil {
		t.Fatalf("castle: %v", err)
	}

	king := g.PieceAt(mustSq(t, "g1"))
	rook := g.PieceAt(mustSq(t, "f1"))
	if king == nil || king.Kind != King || !king.HasMoved {
		t.Errorf("expected moved king on g1, got %v", king)
	}
	if rook == nil || rook.Kind != Rook || !rook.HasMoved {
		t.Errorf("expected moved rook on f1, got %v", rook)
	}
	if g.PieceAt(mustSq(t, "e1")) != nil || g.PieceAt(mustSq(t, "h1")) != nil {
		t.Error("e1 and h1 should be vacated")
	}
	if g.ActivePlayer() != Black {
		t.Error("castle should pass the turn")
	}
	rec := g.Moves()[len(g.Moves())-1]
	if rec.Castle != "O-O" {
		t.Errorf("move record castle = %q, want O-O", rec.Castle)
	}
}

func TestQueensideCastle(t *testing.T) {
	g := bareGame(t)
	mustAdd(t, g, Black, King, "e8")
	mustAdd(t, g, Black, Rook, "a8")
	mustAdd(t, g, White, King, "h1")
	g.SetActivePlayer(Black)

	if err := g.Castle(Queenside); err != nil {
		t.Fatalf("castle: %v", err)
	}
	if p := g.PieceAt(mustSq(t, "c8")); p == nil || p.Kind != King {
		t.Errorf("expected king on c8, got %v", p)
	}
	if p := g.PieceAt(mustSq(t, "d8")); p == nil || p.Kind != Rook {
		t.Errorf("expected rook on d8, got %v", p)
	}
}

func TestCastleRejections(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, g *Game)
		side  CastleSide
	}{
		{
			name: "transit square attacked",
			setup: func(t *testing.T, g *Game) {
				mustAdd(t, g, Black, Rook, "f8") // covers f1
			},
			side: Kingside,
		},
		{
			name: "king in check",
			setup: func(t *testing.T, g *Game) {
				mustAdd(t, g, Black, Rook, "e7")
			},
			side: Kingside,
		},
		{
			name: "destination attacked",
			setup: func(t *testing.T, g *Game) {
				mustAdd(t, g, Black, Bishop, "a7") // covers g1
			},
			side: Kingside,
		},
		{
			name: "king has moved",
			setup: func(t *testing.T, g *Game) {
				g.PieceAt(mustSq(t, "e1")).HasMoved = true
			},
			side: Kingside,
		},
		{
			name: "rook has moved",
			setup: func(t *testing.T, g *Game) {
				g.PieceAt(mustSq(t, "h1")).HasMoved = true
			},
			side: Kingside,
		},
		{
			name: "piece between king and rook",
			setup: func(t *testing.T, g *Game) {
				mustAdd(t, g, White, Knight, "g1")
			},
			side: Kingside,
		},
		{
			name: "queenside b-file occupied",
			setup: func(t *testing.T, g *Game) {
				mustAdd(t, g, White, Knight, "b1")
			},
			side: Queenside,
		},
		{
			name: "rook missing",
			setup: func(t *testing.T, g *Game) {
				if _, err := g.RemovePieceAt(mustSq(t, "h1")); err != nil {
					t.Fatalf("remove rook: %v", err)
				}
			},
			side: Kingside,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			g := bareGame(t)
			mustAdd(t, g, White, King, "e1")
			mustAdd(t, g, White, Rook, "h1")
			mustAdd(t, g, White, Rook, "a1")
			mustAdd(t, g, Black, King, "h8")
			tt.setup(t, g)

			err := g.Castle(tt.side)
			if !errors.Is(err, ErrIllegalCastle) {
				t.Fatalf("castle error = %v, want ErrIllegalCastle", err)
			}
		})
	}
}

func TestCastleClearsEnPassantWindow(t *testing.T) {
	g := bareGame(t)
	mustAdd(t, g, White, King, "e1")
	mustAdd(t, g, White, Rook, "h1")
	mustAdd(t, g, Black, King, "a8")
	mustAdd(t, g, Black, Pawn, "d7")
	g.SetActivePlayer(Black)
	mustMove(t, g, "d7", "d5")
	if !g.EnPassant().Valid() {
		t.Fatal("double step should open the window")
	}
	if err := g.Castle(Kingside); err != nil {
		t.Fatalf("castle: %v", err)
	}
	if g.EnPassant().Valid() {
		t.Error("castling should close the en passant window")
	}
}
