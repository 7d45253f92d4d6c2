// path: internal/api/server_test.go
package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"chess_arbiter/internal/game"
)

func newTestServer(t *testing.T) (*Server, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	s := NewServer(game.NewGame(nil), nil)
	return s, s.Router()
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	_, router := newTestServer(t)
	w := doJSON(t, router, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("health status = %d", w.Code)
	}
}

func TestStateEndpoint(t *testing.T) {
	_, router := newTestServer(t)
	w := doJSON(t, router, http.MethodGet, "/state", "")
	if w.Code != http.StatusOK {
		t.Fatalf("state status = %d", w.Code)
	}
	var state game.BoardState
	if err := json.Unmarshal(w.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	if len(state.Pieces) != 32 {
		t.Errorf("start position has %d pieces, want 32", len(state.Pieces))
	}
	if state.Active != "white" {
		t.Errorf("active = %q, want white", state.Active)
	}
}

func TestMoveEndpoint(t *testing.T) {
	_, router := newTestServer(t)
	w := doJSON(t, router, http.MethodPost, "/move", `{"from":"e2","to":"e4"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("move status = %d body = %s", w.Code, w.Body.String())
	}
	var state game.BoardState
	if err := json.Unmarshal(w.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	if state.Active != "black" {
		t.Errorf("active after move = %q, want black", state.Active)
	}
}

func TestMoveEndpointRejectsIllegalMove(t *testing.T) {
	_, router := newTestServer(t)
	w := doJSON(t, router, http.MethodPost, "/move", `{"from":"a1","to":"a5"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("illegal move status = %d, want 422", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if resp["kind"] != game.ErrBlockedPath.Error() {
		t.Errorf("error kind = %q, want %q", resp["kind"], game.ErrBlockedPath.Error())
	}
}

func TestMoveEndpointRejectsBadSquare(t *testing.T) {
	_, router := newTestServer(t)
	w := doJSON(t, router, http.MethodPost, "/move", `{"from":"z9","to":"a5"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad square status = %d, want 400", w.Code)
	}
}

func TestMoveEndpointRequiresBody(t *testing.T) {
	_, router := newTestServer(t)
	w := doJSON(t, router, http.MethodPost, "/move", `{"from":"e2"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing field status = %d, want 400", w.Code)
	}
}

func TestCompactMoveEndpoint(t *testing.T) {
	_, router := newTestServer(t)
	for _, move := range []string{"e4", "e5", "Nf3"} {
		w := doJSON(t, router, http.MethodPost, "/move/compact", `{"move":"`+move+`"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("compact %s status = %d body = %s", move, w.Code, w.Body.String())
		}
	}
	w := doJSON(t, router, http.MethodPost, "/move/compact", `{"move":"Nf3"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("wrong-turn compact move status = %d, want 422", w.Code)
	}
}

func TestFENEndpoint(t *testing.T) {
	_, router := newTestServer(t)
	w := doJSON(t, router, http.MethodGet, "/fen", "")
	if w.Code != http.StatusOK {
		t.Fatalf("fen status = %d", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode fen: %v", err)
	}
	if !strings.HasPrefix(resp["fen"], "rnbqkbnr/pppppppp/") {
		t.Errorf("fen = %q", resp["fen"])
	}
}

func TestResetEndpoint(t *testing.T) {
	_, router := newTestServer(t)
	doJSON(t, router, http.MethodPost, "/move", `{"from":"e2","to":"e4"}`)
	w := doJSON(t, router, http.MethodPost, "/reset", "")
	if w.Code != http.StatusOK {
		t.Fatalf("reset status = %d", w.Code)
	}
	var state game.BoardState
	if err := json.Unmarshal(w.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	if state.Active != "white" || len(state.Moves) != 0 {
		t.Errorf("reset state active=%q moves=%d", state.Active, len(state.Moves))
	}
}

func TestPromotionOverMoveEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	g := game.NewGame(nil)
	g.ClearBoard()
	for _, setup := range []struct {
		color game.Color
		kind  game.PieceType
		coord string
	}{
		{game.White, game.King, "e1"},
		{game.Black, game.King, "h8"},
		{game.White, game.Pawn, "a7"},
	} {
		sq, _ := game.CoordToSquare(setup.coord)
		p := game.NewPiece(setup.color, setup.kind, sq)
		p.HasMoved = true
		if err := g.AddPiece(p); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}
	s := NewServer(g, nil)
	router := s.Router()

	w := doJSON(t, router, http.MethodPost, "/move", `{"from":"a7","to":"a8","promotion":"Q"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("promotion move status = %d body = %s", w.Code, w.Body.String())
	}
	sq, _ := game.CoordToSquare("a8")
	if p := g.PieceAt(sq); p == nil || p.Kind != game.Queen {
		t.Fatalf("expected queen on a8, got %v", p)
	}
}

func TestWrongTurnOwnerOverAPI(t *testing.T) {
	_, router := newTestServer(t)
	w := doJSON(t, router, http.MethodPost, "/move", `{"from":"e7","to":"e5"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("wrong turn status = %d, want 422", w.Code)
	}
}
