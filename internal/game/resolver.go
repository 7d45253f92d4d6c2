// path: internal/game/resolver.go
package game

import (
	"fmt"
	"regexp"
)

// sanPattern covers piece letter, optional source file/rank
// disambiguators, capture marker, destination, promotion and a
// check/mate suffix. Castle tokens are matched separately.
var sanPattern = regexp.MustCompile(`^(?P<piece>[KQRBN])?(?P<file>[a-h])?(?P<rank>[1-8])?(?P<capture>x)?(?P<dest>[a-h][1-8])(?:=(?P<promo>[QRBN]))?(?P<suffix>[+#])?$`)

// parsedMove is the decoded form of one compact move token.
type parsedMove struct {
	text      string
	kind      PieceType
	fromFile  int // -1 when not given
	fromRank  int // -1 when not given
	dest      Square
	capture   bool
	promotion PieceType
	promote   bool
	castle    CastleSide
	isCastle  bool
}

// parseCompactMove decodes a SAN-like token. Castle tokens short
// circuit; everything else must satisfy sanPattern.
func parseCompactMove(text string) (parsedMove, error) {
	pm := parsedMove{text: text, fromFile: -1, fromRank: -1}
	if side, ok := ParseCastleToken(text); ok {
		pm.castle = side
		pm.isCastle = true
		return pm, nil
	}
	m := sanPattern.FindStringSubmatch(text)
	if m == nil {
		return pm, &MoveError{Kind: KindInvalidSquare, From: NoSquare, To: NoSquare, Text: text, Detail: "unparseable move"}
	}
	groups := map[string]string{}
	for i, name := range sanPattern.SubexpNames() {
		if name != "" {
			groups[name] = m[i]
		}
	}
	pm.kind, _ = PieceTypeFromLetter(groups["piece"])
	if f := groups["file"]; f != "" {
		pm.fromFile = int(f[0] - 'a')
	}
	if r := groups["rank"]; r != "" {
		pm.fromRank = int(r[0] - '1')
	}
	pm.capture = groups["capture"] == "x"
	dest, ok := CoordToSquare(groups["dest"])
	if !ok {
		return pm, &MoveError{Kind: KindInvalidSquare, From: NoSquare, To: NoSquare, Text: text, Detail: "bad destination square"}
	}
	pm.dest = dest
	if p := groups["promo"]; p != "" {
		pm.promotion, _ = PieceTypeFromLetter(p)
		pm.promote = true
	}
	return pm, nil
}

// ResolveMove turns a compact token into concrete endpoints without
// applying anything. Castle tokens are not resolvable this way.
func (g *Game) ResolveMove(text string) (Square, Square, error) {
	pm, err := parseCompactMove(text)
	if err != nil {
		return NoSquare, NoSquare, err
	}
	if pm.isCastle {
		return NoSquare, NoSquare, &MoveError{Kind: KindIllegalCastle, From: NoSquare, To: NoSquare, Text: text, Detail: "castle tokens have no single source square"}
	}
	return g.resolve(pm)
}

// resolve enumerates candidates, filters the ones whose move would
// expose their own king, and demands exactly one survivor.
func (g *Game) resolve(pm parsedMove) (Square, Square, error) {
	fromFile, fromRank := pm.fromFile, pm.fromRank
	if pm.kind == King && fromFile < 0 && fromRank < 0 {
		// A king move can only come from the king's own square.
		if king := g.King(g.active); king != nil {
			fromFile = king.Square.File()
			fromRank = king.Square.Rank()
		}
	}

	var candidates []*Piece
	switch {
	case pm.capture && g.board.PieceAt(pm.dest) == nil:
		if pm.kind == Pawn && g.enPassant.Valid() && pm.dest == g.enPassant.Square() {
			candidates = g.WhoCanCapture(pm.dest, g.active, Pawn, fromFile, fromRank)
		} else {
			return NoSquare, NoSquare, &MoveError{Kind: KindIllegalCapture, From: NoSquare, To: pm.dest, Piece: pm.kind, Text: pm.text, Detail: fmt.Sprintf("no piece to capture on %s", pm.dest)}
		}
	case pm.capture:
		candidates = g.WhoCanCapture(pm.dest, g.active, pm.kind, fromFile, fromRank)
	default:
		candidates = g.WhoCanMoveTo(pm.dest, g.active, pm.kind, fromFile, fromRank)
	}

	if len(candidates) == 0 {
		return NoSquare, NoSquare, &MoveError{Kind: KindNoLegalCandidate, From: NoSquare, To: pm.dest, Piece: pm.kind, Text: pm.text, Detail: fmt.Sprintf("no %s %s can reach %s", g.active, pm.kind, pm.dest)}
	}

	var survivors []*Piece
	for _, cand := range candidates {
		selfCheck, err := g.moveCausesSelfCheck(cand.Square, pm.dest)
		if err != nil {
			return NoSquare, NoSquare, err
		}
		if !selfCheck {
			survivors = append(survivors, cand)
		}
	}

	switch len(survivors) {
	case 0:
		return NoSquare, NoSquare, &MoveError{Kind: KindSelfCheck, From: candidates[0].Square, To: pm.dest, Piece: pm.kind, Text: pm.text, Detail: "every candidate leaves the king in check"}
	case 1:
		return survivors[0].Square, pm.dest, nil
	default:
		return NoSquare, NoSquare, &MoveError{Kind: KindAmbiguousMove, From: NoSquare, To: pm.dest, Piece: pm.kind, Text: pm.text, Detail: fmt.Sprintf("%d pieces can play %s", len(survivors), pm.text)}
	}
}

// MakeCompactMove resolves and applies one SAN-like token for the
// active player, including castles and promotions.
func (g *Game) MakeCompactMove(text string) error {
	pm, err := parseCompactMove(text)
	if err != nil {
		return err
	}
	if pm.isCastle {
		return g.Castle(pm.castle)
	}
	from, to, err := g.resolve(pm)
	if err != nil {
		return err
	}
	if err := g.Move(from, to); err != nil {
		return err
	}
	if rec := g.lastMove(); rec != nil {
		rec.Notation = pm.text
	}
	if pm.promote {
		return g.PromotePawn(to, pm.promotion)
	}
	return nil
}

func (g *Game) lastMove() *MoveRecord {
	if len(g.moves) == 0 {
		return nil
	}
	return &g.moves[len(g.moves)-1]
}
