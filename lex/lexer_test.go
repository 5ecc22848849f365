package lex_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sdob/keenquotes/lex"
)

func lexemeTypes(text string, filter lex.Filter) []lex.LexemeType {
	var types []lex.LexemeType
	lex.Lex(text, func(l lex.Lexeme) {
		types = append(types, l.Type)
	}, filter)
	return types
}

func TestLexemeStream(t *testing.T) {
	tests := []struct {
		input string
		types []lex.LexemeType
	}{
		{
			"That's a yacht!",
			[]lex.LexemeType{
				lex.SOT, lex.Word, lex.QuoteSingle, lex.Word, lex.Space,
				lex.Word, lex.Space, lex.Word, lex.Punct,
				lex.EOL, lex.EOP, lex.EOT,
			},
		},
		{
			// Digits following letters stay in the word.
			"T1000",
			[]lex.LexemeType{lex.SOT, lex.Word, lex.EOL, lex.EOP, lex.EOT},
		},
		{
			"35'×10\"",
			[]lex.LexemeType{
				lex.SOT, lex.Number, lex.QuoteSingle, lex.Punct, lex.Number,
				lex.QuoteDouble, lex.EOL, lex.EOP, lex.EOT,
			},
		},
		{
			// A numeric connector joins digits into one number.
			"-2,000.2^2",
			[]lex.LexemeType{lex.SOT, lex.Number, lex.EOL, lex.EOP, lex.EOT},
		},
		{
			"3½",
			[]lex.LexemeType{lex.SOT, lex.Number, lex.EOL, lex.EOP, lex.EOT},
		},
		{
			"one...two",
			[]lex.LexemeType{
				lex.SOT, lex.Word, lex.Ellipsis, lex.Word,
				lex.EOL, lex.EOP, lex.EOT,
			},
		},
		{
			// Space-separated dots still collapse to an ellipsis.
			"so . . . yes",
			[]lex.LexemeType{
				lex.SOT, lex.Word, lex.Space, lex.Ellipsis, lex.Space,
				lex.Word, lex.EOL, lex.EOP, lex.EOT,
			},
		},
		{
			"end.",
			[]lex.LexemeType{lex.SOT, lex.Word, lex.Period, lex.EOL, lex.EOP, lex.EOT},
		},
		{
			"a\nb",
			[]lex.LexemeType{lex.SOT, lex.Word, lex.EOL, lex.Word, lex.EOL, lex.EOP, lex.EOT},
		},
		{
			// A blank line separates paragraphs.
			"a\r\n\r\nb",
			[]lex.LexemeType{lex.SOT, lex.Word, lex.EOP, lex.Word, lex.EOL, lex.EOP, lex.EOT},
		},
		{
			"well-known",
			[]lex.LexemeType{lex.SOT, lex.Word, lex.Hyphen, lex.Word, lex.EOL, lex.EOP, lex.EOT},
		},
		{
			"wait---now",
			[]lex.LexemeType{lex.SOT, lex.Word, lex.Dash, lex.Word, lex.EOL, lex.EOP, lex.EOT},
		},
		{
			"(a)",
			[]lex.LexemeType{
				lex.SOT, lex.OpeningGroup, lex.Word, lex.ClosingGroup,
				lex.EOL, lex.EOP, lex.EOT,
			},
		},
		{
			`\'`,
			[]lex.LexemeType{lex.SOT, lex.EscSingle, lex.EOL, lex.EOP, lex.EOT},
		},
		{
			`\"`,
			[]lex.LexemeType{lex.SOT, lex.EscDouble, lex.EOL, lex.EOP, lex.EOT},
		},
		{
			// Other escapes pass as a punct plus the escaped character.
			`\n`,
			[]lex.LexemeType{lex.SOT, lex.Punct, lex.Word, lex.EOL, lex.EOP, lex.EOT},
		},
		{
			"a=b",
			[]lex.LexemeType{lex.SOT, lex.Word, lex.Equals, lex.Word, lex.EOL, lex.EOP, lex.EOT},
		},
		{
			"«mot»",
			[]lex.LexemeType{
				lex.SOT, lex.QuoteDoubleOpening, lex.Word, lex.QuoteDoubleClosing,
				lex.EOL, lex.EOP, lex.EOT,
			},
		},
		{
			",,zitat",
			[]lex.LexemeType{lex.SOT, lex.QuoteDoubleOpening, lex.Word, lex.EOL, lex.EOP, lex.EOT},
		},
	}
	for _, tc := range tests {
		got := lexemeTypes(tc.input, lex.PlainFilter)
		if diff := cmp.Diff(tc.types, got); diff != "" {
			t.Errorf("lexing %q: unexpected stream (-want +got):\n%s", tc.input, diff)
		}
	}
}

func TestLexemeOffsets(t *testing.T) {
	var lexemes []lex.Lexeme
	lex.Lex("a «b»", func(l lex.Lexeme) {
		lexemes = append(lexemes, l)
	}, lex.PlainFilter)
	// SOT, Word, Space, QuoteDoubleOpening, Word, QuoteDoubleClosing, EOL, EOP, EOT
	chevron := lexemes[3]
	if chevron.Type != lex.QuoteDoubleOpening {
		t.Fatalf("expected a double opening quote, is %v", chevron.Type)
	}
	if chevron.Began() != 2 || chevron.Ended() != 4 {
		t.Errorf("expected the chevron to span bytes [2, 4), is [%d, %d)",
			chevron.Began(), chevron.Ended())
	}
	if chevron.Glyph != lex.GlyphDoubleChevronLeft {
		t.Errorf("expected the original glyph to be preserved, is %q", chevron.Glyph)
	}
	word := lexemes[4]
	if word.Text("a «b»") != "b" {
		t.Errorf("expected word text 'b', is %q", word.Text("a «b»"))
	}
}

func TestLexemeGlyphLowQuote(t *testing.T) {
	var lexemes []lex.Lexeme
	lex.Lex(",,ja", func(l lex.Lexeme) {
		lexemes = append(lexemes, l)
	}, lex.PlainFilter)
	low := lexemes[1]
	if low.Type != lex.QuoteDoubleOpening || low.Glyph != lex.GlyphDoubleLow {
		t.Fatalf("expected a low opening double quote, is %v/%q", low.Type, low.Glyph)
	}
	if low.Began() != 0 || low.Ended() != 2 {
		t.Errorf("expected the comma run to span [0, 2), is [%d, %d)", low.Began(), low.Ended())
	}
}

func TestLexemeMatching(t *testing.T) {
	eol := lex.NewLexeme(lex.EOL, 0, 0)
	if !eol.Is(lex.Ending) || !eol.Is(lex.Any) || !eol.Is(lex.EOL) {
		t.Errorf("expected EOL to match ending, any, and itself")
	}
	if eol.Is(lex.Word) {
		t.Errorf("expected EOL not to match word")
	}
	none := lex.LexemeNone
	if !none.Is(lex.None) || none.Is(lex.Ending) {
		t.Errorf("expected the none lexeme to match only none and any")
	}
}
