package parser

import (
	"fmt"

	"github.com/sdob/keenquotes/lex"
)

// TokenType identifies the kind of quotation mark found while parsing
// prose.
type TokenType int8

const (
	// NoToken marks the absence of a token.
	NoToken TokenType = iota

	OpeningSingle
	OpeningDouble
	ClosingSingle
	ClosingDouble
	Apostrophe
	StraightSingle
	StraightDouble
	PrimeSingle
	PrimeDouble
	PrimeTriple
	PrimeQuadruple

	// AmbiguousLeading is a straight single quote sitting before a word
	// whose contraction status is unclear; AmbiguousLagging sits after such
	// a word. Ambiguous carries no directional hint. The three are distinct
	// because different resolver rules consume them.
	AmbiguousLeading
	AmbiguousLagging
	Ambiguous
)

var tokenTypeNames = map[TokenType]string{
	NoToken:          "none",
	OpeningSingle:    "opening-single",
	OpeningDouble:    "opening-double",
	ClosingSingle:    "closing-single",
	ClosingDouble:    "closing-double",
	Apostrophe:       "apostrophe",
	StraightSingle:   "straight-single",
	StraightDouble:   "straight-double",
	PrimeSingle:      "prime-single",
	PrimeDouble:      "prime-double",
	PrimeTriple:      "prime-triple",
	PrimeQuadruple:   "prime-quadruple",
	AmbiguousLeading: "leading-ambiguous",
	AmbiguousLagging: "lagging-ambiguous",
	Ambiguous:        "ambiguous",
}

func (t TokenType) String() string {
	if n, ok := tokenTypeNames[t]; ok {
		return n
	}
	return "token"
}

// A Token is a classified quotation mark: a type plus the lexeme it was
// minted from. The only mutation a token permits is the ambiguous-to-
// definite transition performed by the resolver; the offsets never change.
type Token struct {
	typ    TokenType
	lexeme lex.Lexeme
}

// NewToken mints a token from a lexeme. Negative or inverted offsets are
// programmer errors.
func NewToken(t TokenType, l lex.Lexeme) *Token {
	if l.Began() < 0 || l.Ended() < l.Began() {
		panic(fmt.Sprintf("parser: token interval out of order [%d, %d)", l.Began(), l.Ended()))
	}
	return &Token{typ: t, lexeme: l}
}

// Type returns the current classification.
func (t *Token) Type() TokenType {
	return t.typ
}

// Is answers whether the token has the given type.
func (t *Token) Is(tt TokenType) bool {
	return t.typ == tt
}

// Began returns the byte offset of the first character of the mark.
func (t *Token) Began() int {
	return t.lexeme.Began()
}

// Ended returns the byte offset one past the last character of the mark.
func (t *Token) Ended() int {
	return t.lexeme.Ended()
}

// Glyph returns the international quotation glyph the token was minted
// from, or the zero glyph for ASCII straight quotes.
func (t *Token) Glyph() lex.Glyph {
	return t.lexeme.Glyph
}

// IsAmbiguous answers whether the token still awaits resolution.
func (t *Token) IsAmbiguous() bool {
	switch t.typ {
	case AmbiguousLeading, AmbiguousLagging, Ambiguous:
		return true
	}
	return false
}

// setType mutates an ambiguous token into a definite one, preserving the
// indexes into the document.
func (t *Token) setType(tt TokenType) {
	if !t.IsAmbiguous() {
		panic("parser: only ambiguous tokens may be reclassified")
	}
	t.typ = tt
}

// isBefore answers whether this token's span ends before o's begins.
func (t *Token) isBefore(o *Token) bool {
	return t.Ended() <= o.Began()
}

func (t *Token) String() string {
	return fmt.Sprintf("<%s began='%d' ended='%d'/>", t.typ, t.Began(), t.Ended())
}
