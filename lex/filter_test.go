package lex_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sdob/keenquotes/lex"
)

func TestPlainFilterSkipsNothing(t *testing.T) {
	it := lex.NewIterator("<em>hi</em>")
	if lex.PlainFilter(it) {
		t.Errorf("expected the plain filter to decline")
	}
	if it.Index() != 0 {
		t.Errorf("expected the cursor untouched, is at %d", it.Index())
	}
}

func TestXMLFilterSkipsTags(t *testing.T) {
	got := lexemeTypes("<em>'twas</em>", lex.NewXMLFilter())
	want := []lex.LexemeType{
		lex.SOT, lex.QuoteSingle, lex.Word, lex.EOL, lex.EOP, lex.EOT,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected stream (-want +got):\n%s", diff)
	}
}

func TestXMLFilterSkipsAbuttingTags(t *testing.T) {
	got := lexemeTypes("<p><em>a</em></p>", lex.NewXMLFilter())
	want := []lex.LexemeType{lex.SOT, lex.Word, lex.EOL, lex.EOP, lex.EOT}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected stream (-want +got):\n%s", diff)
	}
}

func TestXMLFilterSkipsUntouchableContents(t *testing.T) {
	got := lexemeTypes("a <code>x = 'y'</code> b", lex.NewXMLFilter())
	want := []lex.LexemeType{
		lex.SOT, lex.Word, lex.Space, lex.Space, lex.Word,
		lex.EOL, lex.EOP, lex.EOT,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected stream (-want +got):\n%s", diff)
	}
}

func TestXMLFilterUntouchableWithAttributes(t *testing.T) {
	// The element name is the first whitespace-terminated identifier.
	got := lexemeTypes(`<pre class="x">'tis</pre>`, lex.NewXMLFilter())
	want := []lex.LexemeType{lex.SOT, lex.EOL, lex.EOP, lex.EOT}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected stream (-want +got):\n%s", diff)
	}
}

func TestXMLFilterMalformedYields(t *testing.T) {
	// An unterminated tag must not loop or panic; the filter yields.
	got := lexemeTypes("a <b", lex.NewXMLFilter())
	want := []lex.LexemeType{lex.SOT, lex.Word, lex.Space, lex.EOL, lex.EOP, lex.EOT}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected stream (-want +got):\n%s", diff)
	}
}

func TestXMLFilterUnterminatedUntouchable(t *testing.T) {
	got := lexemeTypes("<pre>'tis", lex.NewXMLFilter())
	want := []lex.LexemeType{lex.SOT, lex.EOL, lex.EOP, lex.EOT}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected stream (-want +got):\n%s", diff)
	}
}
