package keenquotes_test

import (
	"testing"

	"github.com/sdob/keenquotes"
	"github.com/sdob/keenquotes/lex"
	"github.com/sdob/keenquotes/parser"
)

func TestCurlEntities(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{
			"That's a 35'×10\" yacht!",
			"That&apos;s a 35&prime;×10&Prime; yacht!",
		},
		{
			`"I am Sam"`,
			"&ldquo;I am Sam&rdquo;",
		},
		{
			"'Twas and 'tis whate'er lay 'twixt dawn and dusk 'n River Styx.",
			"&apos;Twas and &apos;tis whate&apos;er lay &apos;twixt dawn and dusk &apos;n River Styx.",
		},
		{
			"Fish-'n'-chips!",
			"Fish-&apos;n&apos;-chips!",
		},
		{
			`"'I'm trouble.'"`,
			"&ldquo;&lsquo;I&apos;m trouble.&rsquo;&rdquo;",
		},
		{
			"'A', 'B', and 'C' are letters.",
			"&lsquo;A&rsquo;, &lsquo;B&rsquo;, and &lsquo;C&rsquo; are letters.",
		},
		{
			`"She said, 'Llamas'll languish, they'll--`,
			"&ldquo;She said, &lsquo;Llamas&apos;ll languish, they&apos;ll--",
		},
	}
	for _, tc := range tests {
		got := keenquotes.Curl(tc.input, nil, parser.Entities, lex.FilterPlain)
		if got != tc.want {
			t.Errorf("curling %q:\n got: %s\nwant: %s", tc.input, got, tc.want)
		}
	}
}

func TestCurlXMLMode(t *testing.T) {
	got := keenquotes.Curl("<em>'twas</em>", nil, parser.Entities, lex.FilterXML)
	if got != "<em>&apos;twas</em>" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestCurlGlyphs(t *testing.T) {
	got := keenquotes.Curl(`"I am Sam"`, nil, parser.Glyphs, lex.FilterPlain)
	if got != "“I am Sam”" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestCurlCustomContractions(t *testing.T) {
	c := parser.NewContractions(parser.WordLists{
		BeganUnambiguous: []string{"brillig"},
	})
	got := keenquotes.Curl("'brillig toves", c, parser.Entities, lex.FilterPlain)
	if got != "&apos;brillig toves" {
		t.Errorf("unexpected output %q", got)
	}
}
