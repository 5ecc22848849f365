/*
Package parser classifies straight quotation marks in prose and resolves
the ambiguous ones.

The quote emitter is the first pass: it slides a four-lexeme window over
the lexer's output and applies an ordered rule table, consulting an oracle
of English contractions. Most marks come out definite — apostrophes,
primes, opening and closing quotes; the rest are emitted as ambiguous with
a directional hint.

The ambiguity resolver is the second pass: it arranges the tokens into a
tree of nested quotations and applies tree-local rules plus one global
rule, exploiting the structural alternation of nested quotes. Marks that
survive both passes unresolved are left untouched by the replacer, so a
reader can see exactly where intervention is needed.

The Curler drives both passes and splices replacements into the document,
preserving every byte outside the classified quote spans.

BSD License

Copyright (c) 2022–24, Simon Dobson

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package parser

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/sdob/keenquotes/lex"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// OutputMode selects the wire form of replacements.
type OutputMode int8

const (
	// Entities replaces quotes with HTML entities; straight quotes remain
	// literal characters.
	Entities OutputMode = iota

	// Glyphs replaces quotes with their Unicode curly equivalents.
	Glyphs
)

// Entity-based token replacements.
var entityTable = map[TokenType]string{
	OpeningSingle:  "&lsquo;",
	ClosingSingle:  "&rsquo;",
	OpeningDouble:  "&ldquo;",
	ClosingDouble:  "&rdquo;",
	StraightSingle: "'",
	StraightDouble: `"`,
	Apostrophe:     "&apos;",
	PrimeSingle:    "&prime;",
	PrimeDouble:    "&Prime;",
	PrimeTriple:    "&tprime;",
	PrimeQuadruple: "&qprime;",
}

// Character-based token replacements.
var glyphTable = map[TokenType]string{
	OpeningSingle:  "‘",
	ClosingSingle:  "’",
	OpeningDouble:  "“",
	ClosingDouble:  "”",
	StraightSingle: "'",
	StraightDouble: `"`,
	Apostrophe:     "’",
	PrimeSingle:    "′",
	PrimeDouble:    "″",
	PrimeTriple:    "‴",
	PrimeQuadruple: "⁗",
}

// Entity forms for international glyphs; glyphs not found here use the
// token's type replacement.
var i18nEntities = map[lex.Glyph]string{
	lex.GlyphDoubleLow:          "&#8222;",
	lex.GlyphDoubleChevronLeft:  "&laquo;",
	lex.GlyphDoubleChevronRight: "&raquo;",
	lex.GlyphSingleChevronLeft:  "&lsaquo;",
	lex.GlyphSingleChevronRight: "&rsaquo;",
}

// Curler resolves straight quotes into curly quotes throughout a document.
// A Curler may convert any number of documents sequentially; it is not
// safe for concurrent use.
type Curler struct {
	contractions *Contractions
	mode         OutputMode
	filter       lex.Filter
}

// NewCurler creates a converter for the given output mode and skip filter.
func NewCurler(c *Contractions, mode OutputMode, ft lex.FilterType) *Curler {
	return &Curler{contractions: c, mode: mode, filter: ft.Filter()}
}

// Curl converts straight quotes to curly quotes and primes. Quotation
// marks that cannot be disambiguated are left as they were found. The
// method is re-entrant but not thread-safe.
func (c *Curler) Curl(text string) string {
	out, _ := c.curl(text)
	return out
}

// CurlAmbiguous converts like Curl and additionally reports the tokens
// left unresolved, for callers that surface residual ambiguity.
func (c *Curler) CurlAmbiguous(text string) (string, []*Token) {
	return c.curl(text)
}

func (c *Curler) curl(text string) (string, []*Token) {
	buffer := []byte(text)
	offset := 0
	var ambiguous []*Token

	Resolve(text, c.contractions, func(t *Token) {
		if t.IsAmbiguous() {
			ambiguous = append(ambiguous, t)
			return
		}
		repl := c.replacement(t)
		began := t.Began() + offset
		ended := t.Ended() + offset
		T().Debugf("curler: [%d, %d) -> %q", began, ended, repl)
		buffer = splice(buffer, began, ended, repl)
		offset += len(repl) - (t.Ended() - t.Began())
	}, c.filter)

	return string(buffer), ambiguous
}

// replacement picks the wire form of one token. International marks pass
// their original glyph through in glyph mode and consult the i18n entity
// table first in entity mode.
func (c *Curler) replacement(t *Token) string {
	glyph := t.Glyph()
	if c.mode == Entities {
		if e, ok := i18nEntities[glyph]; ok {
			return e
		}
		return entityTable[t.Type()]
	}
	if glyph != lex.GlyphNone {
		return glyph.String()
	}
	return glyphTable[t.Type()]
}

// splice rewrites b[began:ended] with repl, shifting the tail.
func splice(b []byte, began, ended int, repl string) []byte {
	out := make([]byte, 0, len(b)+len(repl)-(ended-began))
	out = append(out, b[:began]...)
	out = append(out, repl...)
	out = append(out, b[ended:]...)
	return out
}
