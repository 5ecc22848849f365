/*
Package lex turns prose into lexemes: words, numbers, spaces, line and
paragraph endings, quotation marks, dashes, and punctuation. The stream is
bracketed by synthetic start- and end-of-text lexemes so that consumers
matching on a sliding window never need boundary checks.

An optional filter lets the lexer jump over character sequences that must
not be touched, such as XML tags and the contents of preformatted elements.

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
package lex

import (
	"unicode"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/rangetable"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Rune classes that are sets rather than single characters.
var (
	vulgarFractions = rangetable.New(
		'¼', '½', '¾', '⅐', '⅑', '⅒', '⅓', '⅔',
		'⅕', '⅖', '⅗', '⅘', '⅙', '⅚', '⅛', '⅜', '⅝', '⅞',
	)
	dashes = rangetable.New('-', '–', '—', '―')
)

// isLetter answers whether r can be part of a word. This includes '_' and
// '*' because plain text formats use them to emphasize a word.
func isLetter(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '*'
}

func isDigit(r rune) bool {
	return unicode.IsDigit(r) || unicode.Is(vulgarFractions, r)
}

// isNumeric answers whether r can join digits into a single number, as in
// -2,000.2^2. Digits themselves are checked independently.
func isNumeric(r rune) bool {
	switch r {
	case '.', ',', '-', '+', '^', '⅟', '⁄':
		return true
	}
	return false
}

// isDash answers whether r may be part of an en- or em-dash run. Must be
// called after it is known that r isn't a lone hyphen.
func isDash(r rune) bool {
	return unicode.Is(dashes, r)
}

// Lex tokenizes text and hands each lexeme to emit in document order. The
// order of comparisons is optimized towards the probability of a character
// occurring in English prose: letters, space, new lines, numbers, quotation
// marks, then the long tail.
//
// The stream always starts with a start-of-text lexeme and finishes with an
// end-of-line, an end-of-paragraph and an end-of-text lexeme, so a consumer
// holding a four-lexeme window sees every real lexeme with context on both
// sides.
//
// The filter runs at every outer iteration and may advance the iterator
// past regions that must not be lexed. It is re-applied until it declines,
// because two skippable regions may abut.
func Lex(text string, emit func(Lexeme), filter Filter) {
	it := NewIterator(text)
	emit(LexemeSOT)

	for it.HasNext() {
		for filter(it) {
		}
		if !it.HasNext() {
			break
		}

		began := it.Index()
		curr := it.Current()
		typ := Punct
		glyph := GlyphNone

		switch {
		case isLetter(curr):
			// T1000 is one word, not a word and a number.
			it.Skip(func(r rune) bool { return isLetter(r) || isDigit(r) })
			typ = Word
		case curr == ' ':
			it.Skip(func(r rune) bool { return r == ' ' })
			typ = Space
		case curr == '\r' || curr == '\n':
			cr, lf := 0, 0
			if curr == '\r' {
				cr = 1
			} else {
				lf = 1
			}
			// Swallow all consecutive CR (Mac), CRLF (Windows), LF (Unix).
			it.Skip(func(r rune) bool {
				switch r {
				case '\r':
					cr++
					return true
				case '\n':
					lf++
					return true
				}
				return false
			})
			if cr+lf == 1 || cr == 1 && lf == 1 {
				typ = EOL
			} else {
				typ = EOP
			}
		case unicode.IsSpace(curr):
			it.Skip(unicode.IsSpace)
			typ = Space
		case isDigit(curr) || isNumeric(curr) && isDigit(it.Peek()):
			it.Skip(func(r rune) bool {
				return isDigit(r) || isNumeric(r) && isDigit(it.Peek())
			})
			typ = Number
		case curr == '.':
			it.Skip(func(r rune) bool {
				return r == '.' || r == ' ' && it.Peek() == '.'
			})
			if it.Index() == began {
				typ = Period
			} else {
				typ = Ellipsis
			}
		case curr == '"':
			typ = QuoteDouble
		case curr == '\'':
			typ = QuoteSingle
		case curr == '-' && it.Peek() != '-':
			typ = Hyphen
		case isDash(curr):
			it.Skip(isDash)
			typ = Dash
		case curr == '(' || curr == '{' || curr == '[':
			typ = OpeningGroup
		case curr == ')' || curr == '}' || curr == ']':
			typ = ClosingGroup
		case curr == rune(GlyphDoubleOpening):
			typ, glyph = QuoteDoubleOpening, GlyphDoubleOpening
		case curr == rune(GlyphDoubleClosing):
			typ, glyph = QuoteDoubleClosing, GlyphDoubleClosing
		case curr == rune(GlyphSingleOpening):
			typ, glyph = QuoteSingleOpening, GlyphSingleOpening
		case curr == rune(GlyphSingleClosing):
			typ, glyph = QuoteSingleClosing, GlyphSingleClosing
		case curr == '\\':
			next := it.Advance()
			if next == '\'' {
				typ = EscSingle
			} else if next == '"' {
				typ = EscDouble
			} else {
				// Push back; the escaped character wasn't a straight quote.
				it.Prev()
			}
		case curr == '=':
			typ = Equals
		case curr == ',' && it.Peek() == ',':
			it.Skip(func(r rune) bool { return r == ',' })
			typ, glyph = QuoteDoubleOpening, GlyphDoubleLow
		case curr == rune(GlyphDoubleLow):
			typ, glyph = QuoteDoubleOpening, GlyphDoubleLow
		case curr == rune(GlyphSingleChevronLeft):
			typ, glyph = QuoteSingleOpening, GlyphSingleChevronLeft
		case curr == rune(GlyphDoubleChevronLeft):
			typ, glyph = QuoteDoubleOpening, GlyphDoubleChevronLeft
		case curr == rune(GlyphSingleChevronRight):
			typ, glyph = QuoteSingleClosing, GlyphSingleChevronRight
		case curr == rune(GlyphDoubleChevronRight):
			typ, glyph = QuoteDoubleClosing, GlyphDoubleChevronRight
		}

		l := Lexeme{Type: typ, Glyph: glyph, began: began, ended: it.Index() + it.Width()}
		emit(l)
		it.Next()
	}

	// Simulate an end of line and end of paragraph before the end of text,
	// so the consumer can match lexemes at the end of the string without
	// extra conditions.
	n := len(text)
	emit(Lexeme{Type: EOL, began: n, ended: n})
	emit(Lexeme{Type: EOP, began: n, ended: n})
	emit(LexemeEOT)
}
