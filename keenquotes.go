package keenquotes

import (
	"github.com/sdob/keenquotes/lex"
	"github.com/sdob/keenquotes/parser"
)

// Curl converts straight quotation marks in text to curly quotes,
// apostrophes and primes. Marks that remain ambiguous after resolution are
// left as they were found.
//
// A nil contractions argument uses the built-in English contraction sets.
// The mode selects HTML entities or Unicode glyphs for the replacements;
// the filter selects whether XML markup is skipped while scanning.
//
// Curl is re-entrant but a single call sequence is not safe for concurrent
// use of shared state it does not own; callers converting documents in
// parallel should do so with independent invocations.
func Curl(text string, c *parser.Contractions, mode parser.OutputMode, filter lex.FilterType) string {
	if c == nil {
		c = parser.NewContractions(parser.WordLists{})
	}
	return parser.NewCurler(c, mode, filter).Curl(text)
}
