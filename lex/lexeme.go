package lex

// LexemeType classifies a span of characters produced by the lexer.
type LexemeType int8

// Lexeme types in roughly the order the lexer tests for them. Ending is a
// meta-type matching any of EOL, EOP and EOT; Any matches every type. SOT
// and EOT bracket the stream so that rule matching needs no boundary checks.
const (
	None LexemeType = iota
	Word
	Number
	Space
	Period
	Ellipsis
	Punct
	Hyphen
	Dash
	Equals
	OpeningGroup
	ClosingGroup
	QuoteSingle
	QuoteDouble
	QuoteSingleOpening
	QuoteSingleClosing
	QuoteDoubleOpening
	QuoteDoubleClosing
	EscSingle
	EscDouble
	PrimeDouble
	EOL
	EOP
	SOT
	EOT
	Ending
	Any
)

var lexemeTypeNames = map[LexemeType]string{
	None: "none", Word: "word", Number: "number", Space: "space",
	Period: "period", Ellipsis: "ellipsis", Punct: "punct",
	Hyphen: "hyphen", Dash: "dash", Equals: "equals",
	OpeningGroup: "opening-group", ClosingGroup: "closing-group",
	QuoteSingle: "quote-single", QuoteDouble: "quote-double",
	QuoteSingleOpening: "quote-single-opening",
	QuoteSingleClosing: "quote-single-closing",
	QuoteDoubleOpening: "quote-double-opening",
	QuoteDoubleClosing: "quote-double-closing",
	EscSingle: "esc-single", EscDouble: "esc-double",
	PrimeDouble: "prime-double",
	EOL:         "eol", EOP: "eop", SOT: "sot", EOT: "eot",
	Ending: "ending", Any: "any",
}

func (t LexemeType) String() string {
	if n, ok := lexemeTypeNames[t]; ok {
		return n
	}
	return "unknown"
}

// Glyph preserves the exact quotation mark character a lexeme was minted
// from, so that international marks round-trip through the replacer. The
// zero Glyph marks lexemes that are not international quotation marks,
// including the ASCII straight quotes.
type Glyph rune

// International quotation mark glyphs recognized by the lexer.
const (
	GlyphNone               Glyph = 0
	GlyphSingleOpening      Glyph = '‘'
	GlyphSingleClosing      Glyph = '’'
	GlyphDoubleOpening      Glyph = '“'
	GlyphDoubleClosing      Glyph = '”'
	GlyphDoubleLow          Glyph = '„'
	GlyphSingleChevronLeft  Glyph = '‹'
	GlyphSingleChevronRight Glyph = '›'
	GlyphDoubleChevronLeft  Glyph = '«'
	GlyphDoubleChevronRight Glyph = '»'
)

func (g Glyph) String() string {
	if g == GlyphNone {
		return ""
	}
	return string(rune(g))
}

// A Lexeme is a half-open byte interval [Began, Ended) of the input,
// tagged with a type and, for international quotation marks, the exact
// glyph. Lexemes are values; they carry no reference to the input string
// and slice it by offset on demand.
type Lexeme struct {
	Type  LexemeType
	Glyph Glyph
	began int
	ended int
}

// Sentinel lexemes bracketing and padding the stream.
var (
	LexemeNone = Lexeme{Type: None}
	LexemeSOT  = Lexeme{Type: SOT}
	LexemeEOT  = Lexeme{Type: EOT}
)

// NewLexeme creates a lexeme spanning [began, ended). Equal offsets are
// only valid for synthesized sentinels.
func NewLexeme(t LexemeType, began, ended int) Lexeme {
	if began < 0 || ended < began {
		panic("lex: lexeme interval out of order")
	}
	return Lexeme{Type: t, began: began, ended: ended}
}

// NewGlyphLexeme creates a lexeme carrying an international glyph.
func NewGlyphLexeme(t LexemeType, g Glyph, began, ended int) Lexeme {
	l := NewLexeme(t, began, ended)
	l.Glyph = g
	return l
}

// Began returns the byte offset of the first character.
func (l Lexeme) Began() int { return l.began }

// Ended returns the byte offset one past the last character.
func (l Lexeme) Ended() int { return l.ended }

// Text slices the lexeme's span out of the document it was lexed from.
func (l Lexeme) Text(doc string) string {
	return doc[l.began:l.ended]
}

// Is answers whether the lexeme matches t. Any matches every lexeme and
// Ending matches the EOL, EOP and EOT types; otherwise the types must be
// equal.
func (l Lexeme) Is(t LexemeType) bool {
	switch t {
	case Any:
		return true
	case Ending:
		return l.Type == EOL || l.Type == EOP || l.Type == EOT
	}
	return l.Type == t
}

// IsAny answers whether the lexeme matches one of the given types.
func (l Lexeme) IsAny(types []LexemeType) bool {
	for _, t := range types {
		if l.Is(t) {
			return true
		}
	}
	return false
}
