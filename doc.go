/*
Package keenquotes converts straight quotation marks in prose into their
typographic equivalents.

Description

English prose written on a keyboard uses the straight apostrophe and the
straight double quote for at least nine distinct marks: opening and closing
single and double quotation marks, apostrophes, and single, double, triple
and quadruple primes. Recovering the intended mark is not a local decision.
An apostrophe and a closing single quote are the same character, and whether
'em opens a quotation or abbreviates "them" depends on the word, the
neighbouring punctuation, and the structure of any enclosing quotation.

This package curls quotes with a three-stage pipeline:

1. A lexer (package lex) segments the input into lexemes: words, numbers,
spaces, line and paragraph endings, quotation marks, dashes, and so on.
An optional filter skips XML markup and the contents of preformatted
elements.

2. A quote emitter (package parser) slides a four-lexeme window over the
stream and classifies each quotation mark by an ordered rule table, aided
by an oracle of known English contractions. Marks the rules cannot decide
are emitted as ambiguous, tagged with a directional hint.

3. An ambiguity resolver (package parser) arranges the classified marks
into a tree of nested quotations and applies tree-local rules, exploiting
the fact that nested quotations alternate between double and single marks.
Marks that remain ambiguous after resolution are left untouched in the
output, surfacing the ambiguity to the reader instead of guessing.

The root package provides a one-call facade; the driver type sits in
sub-package parser:

	out := keenquotes.Curl(text, nil, parser.Glyphs, lex.FilterPlain)

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
package keenquotes

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
