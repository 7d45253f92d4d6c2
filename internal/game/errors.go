// path: internal/game/errors.go
package game

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, one per rejection kind. MoveError unwraps to these
// so callers can branch with errors.Is without losing the context the
// struct carries.
var (
	ErrInvalidSquare    = errors.New("invalid square")
	ErrEmptySource      = errors.New("no piece on source square")
	ErrWrongTurnOwner   = errors.New("piece belongs to the waiting player")
	ErrBlockedPath      = errors.New("path is blocked")
	ErrIllegalGeometry  = errors.New("piece cannot move that way")
	ErrIllegalCapture   = errors.New("illegal capture")
	ErrSelfCheck        = errors.New("move leaves own king in check")
	ErrAmbiguousMove    = errors.New("ambiguous move")
	ErrNoLegalCandidate = errors.New("no piece can make that move")
	ErrIllegalCastle    = errors.New("castling unavailable")
	ErrPromotion        = errors.New("illegal promotion")
)

// MoveErrorKind tags a MoveError with its rejection category.
type MoveErrorKind uint8

const (
	KindInvalidSquare MoveErrorKind = iota + 1
	KindEmptySource
	KindWrongTurnOwner
	KindBlockedPath
	KindIllegalGeometry
	KindIllegalCapture
	KindSelfCheck
	KindAmbiguousMove
	KindNoLegalCandidate
	KindIllegalCastle
	KindPromotion
)

func (k MoveErrorKind) sentinel() error {
	switch k {
	case KindInvalidSquare:
		return ErrInvalidSquare
	case KindEmptySource:
		return ErrEmptySource
	case KindWrongTurnOwner:
		return ErrWrongTurnOwner
	case KindBlockedPath:
		return ErrBlockedPath
	case KindIllegalGeometry:
		return ErrIllegalGeometry
	case KindIllegalCapture:
		return ErrIllegalCapture
	case KindSelfCheck:
		return ErrSelfCheck
	case KindAmbiguousMove:
		return ErrAmbiguousMove
	case KindNoLegalCandidate:
		return ErrNoLegalCandidate
	case KindIllegalCastle:
		return ErrIllegalCastle
	case KindPromotion:
		return ErrPromotion
	}
	return nil
}

func (k MoveErrorKind) String() string {
	if s := k.sentinel(); s != nil {
		return s.Error()
	}
	return fmt.Sprintf("move error kind(%d)", uint8(k))
}

// MoveError is a rejected move with enough context to render a
// diagnostic. From and To hold the offending squares when known.
type MoveError struct {
	Kind   MoveErrorKind
	From   Square
	To     Square
	Piece  PieceType
	Text   string // the notation that was being resolved, if any
	Detail string
}

func (e *MoveError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Text != "" {
		fmt.Fprintf(&b, " (%s)", e.Text)
	} else if e.From.Valid() || e.To.Valid() {
		fmt.Fprintf(&b, " (%s %s -> %s)", e.Piece, e.From, e.To)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

// Unwrap maps the error onto its kind sentinel.
func (e *MoveError) Unwrap() error { return e.Kind.sentinel() }

func newMoveError(kind MoveErrorKind, piece PieceType, from, to Square, detail string) *MoveError {
	return &MoveError{Kind: kind, Piece: piece, From: from, To: to, Detail: detail}
}
