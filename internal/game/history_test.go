// path: internal/game/history_test.go
package game

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var stateCmpOpts = cmp.Options{cmp.AllowUnexported(EnPassantTarget{})}

func TestTempMoveRestoresEverything(t *testing.T) {
	g := NewGame(nil)
	mustMove(t, g, "e2", "e4")
	mustMove(t, g, "d7", "d5")
	before := g.State()

	err := g.TempMove(func() error {
		mustMove(t, g, "e4", "d5") // capture
		mustMove(t, g, "d8", "d5") // recapture
		mustMove(t, g, "b1", "c3")
		return nil
	})
	if err != nil {
		t.Fatalf("temp move: %v", err)
	}

	after := g.State()
	if diff := cmp.Diff(before, after, stateCmpOpts); diff != "" {
		t.Fatalf("state changed across rollback (-before +after):\n%s", diff)
	}
}

func TestTempMoveRestoresOnError(t *testing.T) {
	g := NewGame(nil)
	before := g.State()
	sentinel := errors.New("probe failed")

	err := g.TempMove(func() error {
		mustMove(t, g, "e2", "e4")
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("TempMove error = %v, want the probe error", err)
	}
	if diff := cmp.Diff(before, g.State(), stateCmpOpts); diff != "" {
		t.Fatalf("state changed across failed rollback:\n%s", diff)
	}
}

func TestTempMoveKeepsPieceIdentity(t *testing.T) {
	g := NewGame(nil)
	e2 := mustSq(t, "e2")
	pawn := g.PieceAt(e2)

	err := g.TempMove(func() error {
		mustMove(t, g, "e2", "e4")
		return nil
	})
	if err != nil {
		t.Fatalf("temp move: %v", err)
	}
	if got := g.PieceAt(e2); got != pawn {
		t.Fatal("rollback must restore the same piece struct, not a copy")
	}
	if pawn.Square != e2 || pawn.HasMoved {
		t.Fatalf("piece fields not restored: %+v", pawn)
	}
}

func TestTempMoveNests(t *testing.T) {
	g := NewGame(nil)
	before := g.State()

	err := g.TempMove(func() error {
		mustMove(t, g, "e2", "e4")
		mid := g.State()
		inner := g.TempMove(func() error {
			mustMove(t, g, "e7", "e5")
			mustMove(t, g, "g1", "f3")
			return nil
		})
		if inner != nil {
			return inner
		}
		if diff := cmp.Diff(mid, g.State(), stateCmpOpts); diff != "" {
			t.Fatalf("inner rollback broke the outer scope:\n%s", diff)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("temp move: %v", err)
	}
	if diff := cmp.Diff(before, g.State(), stateCmpOpts); diff != "" {
		t.Fatalf("outer rollback incomplete:\n%s", diff)
	}
}

func TestTempMoveDiscardsLogEntries(t *testing.T) {
	g := NewGame(nil)
	mustMove(t, g, "e2", "e4")
	_ = g.TempMove(func() error {
		mustMove(t, g, "e7", "e5")
		mustMove(t, g, "g1", "f3")
		return nil
	})
	if len(g.Moves()) != 1 {
		t.Fatalf("move log has %d entries after rollback, want 1", len(g.Moves()))
	}
}

func TestTempMoveRestoresCapturedLists(t *testing.T) {
	g := NewGame(nil)
	mustMove(t, g, "e2", "e4")
	mustMove(t, g, "d7", "d5")

	_ = g.TempMove(func() error {
		mustMove(t, g, "e4", "d5")
		if len(g.CapturedPieces(Black)) != 1 {
			t.Fatal("capture inside the scope should be visible inside it")
		}
		return nil
	})
	if len(g.CapturedPieces(Black)) != 0 {
		t.Fatal("captured list must be restored on exit")
	}
	if p := g.PieceAt(mustSq(t, "d5")); p == nil || p.Color != Black || p.Captured {
		t.Fatalf("black pawn should be back on d5, got %v", p)
	}
}
