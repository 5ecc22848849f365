package parser

import (
	"strings"

	"github.com/sdob/keenquotes/lex"
)

// Lexeme type sets shared by the rule table.
var (
	wordPeriodNumber        = []lex.LexemeType{lex.Word, lex.Period, lex.Number}
	punctPeriodEllipsisDash = []lex.LexemeType{lex.Punct, lex.Period, lex.Ellipsis, lex.Dash}
	punctPeriod             = []lex.LexemeType{lex.Punct, lex.Period}
	spaceDashEnding         = []lex.LexemeType{lex.Space, lex.Dash, lex.Ending}
	spaceEnding             = []lex.LexemeType{lex.Space, lex.Ending}
	spaceHyphen             = []lex.LexemeType{lex.Space, lex.Hyphen}
	spacePunct              = []lex.LexemeType{lex.Space, lex.Punct}
	spaceSOT                = []lex.LexemeType{lex.Space, lex.SOT}

	// Single quotes preceded by these types may be opening quotes.
	leadingOpeningSingle = []lex.LexemeType{
		lex.SOT, lex.Space, lex.Dash, lex.QuoteDouble, lex.OpeningGroup,
		lex.EOL, lex.EOP,
	}

	// Single quotes succeeded by these types may be opening quotes.
	laggingOpeningSingle = []lex.LexemeType{
		lex.Word, lex.Ellipsis, lex.QuoteSingle, lex.QuoteDouble,
	}

	// Single quotes preceded by these types may be closing quotes.
	leadingClosingSingle = []lex.LexemeType{
		lex.Word, lex.Number, lex.Period, lex.Punct, lex.Ellipsis,
		lex.QuoteDouble,
	}

	// Single quotes succeeded by these types may be closing quotes.
	laggingClosingSingle = []lex.LexemeType{
		lex.Space, lex.Hyphen, lex.Dash, lex.Punct, lex.Period,
		lex.Ellipsis, lex.QuoteDouble, lex.ClosingGroup, lex.Ending,
	}

	// Double quotes preceded by these types may be opening quotes.
	leadingOpeningDouble = []lex.LexemeType{
		lex.SOT, lex.Space, lex.Dash, lex.Equals, lex.OpeningGroup,
		lex.EOL, lex.EOP,
	}

	// Double quotes succeeded by these types may be opening quotes.
	laggingOpeningDouble = []lex.LexemeType{
		lex.Word, lex.Punct, lex.Number, lex.Dash, lex.Ellipsis,
		lex.OpeningGroup, lex.QuoteSingle, lex.QuoteSingleOpening,
		lex.QuoteSingleClosing, lex.QuoteDouble,
	}

	// Double quotes preceded by these types may be closing quotes.
	leadingClosingDouble = []lex.LexemeType{
		lex.Word, lex.Number, lex.Period, lex.Punct, lex.Dash,
		lex.Ellipsis, lex.ClosingGroup, lex.QuoteSingle,
		lex.QuoteSingleClosing, lex.QuoteSingleOpening,
	}

	// Double quotes succeeded by these types may be closing quotes.
	laggingClosingDouble = []lex.LexemeType{
		lex.Space, lex.Punct, lex.Period, lex.Equals, lex.Hyphen,
		lex.Dash, lex.QuoteSingle, lex.ClosingGroup, lex.Ending,
	}
)

func one(t lex.LexemeType) []lex.LexemeType {
	return []lex.LexemeType{t}
}

// A rule matches the four-lexeme window against per-slot admissible type
// sets (a nil set admits anything), an optional semantic guard, and fires
// an action. Rules are tried in table order; the first full match wins.
type rule struct {
	name  string
	slots [4][]lex.LexemeType
	guard func(*QuoteEmitter) bool
	fire  func(*QuoteEmitter)
}

// QuoteEmitter transforms lexemes into classified quote tokens. It holds a
// four-lexeme sliding window and applies the rule table whenever the window
// is full. The quotation mark under classification sits at slot 1, with
// slot 0 as left context and slots 2 and 3 as lookahead; the escape rules
// classify slot 0 instead.
//
// Compound rules that consume a quote ahead of the window overwrite its
// slot with the none-lexeme instead of compacting the window; the
// none-type matches only explicit none patterns, so an obliterated quote
// is never emitted twice.
type QuoteEmitter struct {
	doc          string
	contractions *Contractions
	emit         func(*Token)
	window       [4]lex.Lexeme
	filled       int
}

// NewQuoteEmitter creates an emitter over doc that classifies quotes with
// the help of the contractions oracle and hands tokens to emit.
func NewQuoteEmitter(doc string, c *Contractions, emit func(*Token)) *QuoteEmitter {
	return &QuoteEmitter{doc: doc, contractions: c, emit: emit}
}

// Analyze scans doc for quotation marks and passes each classified token
// to emit, in document order.
func Analyze(doc string, c *Contractions, emit func(*Token), filter lex.Filter) {
	e := NewQuoteEmitter(doc, c, emit)
	lex.Lex(doc, e.Accept, filter)
}

// Accept appends a lexeme to the window and, once the window holds four
// entries, runs the rule table.
func (e *QuoteEmitter) Accept(l lex.Lexeme) {
	if e.filled < len(e.window) {
		e.window[e.filled] = l
		e.filled++
	} else {
		e.window[0], e.window[1], e.window[2] = e.window[1], e.window[2], e.window[3]
		e.window[3] = l
	}
	if e.filled == len(e.window) {
		e.parse()
	}
}

func (e *QuoteEmitter) parse() {
	for i := range rules {
		r := &rules[i]
		if !e.match(r.slots) {
			continue
		}
		if r.guard != nil && !r.guard(e) {
			continue
		}
		T().Debugf("emitter: rule %s fires on %v", r.name, e.window[1])
		r.fire(e)
		return
	}
}

func (e *QuoteEmitter) match(p [4][]lex.LexemeType) bool {
	for i, set := range p {
		if set == nil {
			continue
		}
		if !e.window[i].IsAny(set) {
			return false
		}
	}
	return true
}

func (e *QuoteEmitter) emitToken(t TokenType, l lex.Lexeme) {
	e.emit(NewToken(t, l))
}

// obliterate marks a window slot as consumed by a compound rule.
func (e *QuoteEmitter) obliterate(slot int) {
	e.window[slot] = lex.LexemeNone
}

func (e *QuoteEmitter) text(slot int) string {
	return e.window[slot].Text(e.doc)
}

// The rule table. Quote under classification at slot 1 unless noted; the
// escape rules classify slot 0.
var rules = []rule{
	{
		// <y'all>, <Ph.D.'ll>, <20's>, <she's>
		name:  "apostrophe-contraction",
		slots: [4][]lex.LexemeType{wordPeriodNumber, one(lex.QuoteSingle), one(lex.Word), nil},
		fire: func(e *QuoteEmitter) {
			e.emitToken(Apostrophe, e.window[1])
		},
	},
	{
		// <'n'>, <'N'>, <'owlin'>
		name:  "apostrophe-bounded",
		slots: [4][]lex.LexemeType{nil, one(lex.QuoteSingle), one(lex.Word), one(lex.QuoteSingle)},
		guard: func(e *QuoteEmitter) bool {
			return e.contractions.boundedUnambiguously(e.text(2))
		},
		fire: func(e *QuoteEmitter) {
			e.emitToken(Apostrophe, e.window[1])
			e.emitToken(Apostrophe, e.window[3])
			e.obliterate(3)
		},
	},
	{
		// <2''>
		name:  "prime-double-run",
		slots: [4][]lex.LexemeType{one(lex.Number), one(lex.QuoteSingle), one(lex.QuoteSingle), nil},
		fire: func(e *QuoteEmitter) {
			// Fuse both quote columns into a single prime lexeme.
			l := lex.NewLexeme(lex.PrimeDouble, e.window[1].Began(), e.window[2].Ended())
			e.emitToken(PrimeDouble, l)
			e.obliterate(2)
		},
	},
	{
		// <2'>
		name:  "prime-single",
		slots: [4][]lex.LexemeType{one(lex.Number), one(lex.QuoteSingle), nil, nil},
		fire: func(e *QuoteEmitter) {
			e.emitToken(PrimeSingle, e.window[1])
		},
	},
	{
		// <2">
		name:  "prime-double",
		slots: [4][]lex.LexemeType{one(lex.Number), one(lex.QuoteDouble), nil, nil},
		fire: func(e *QuoteEmitter) {
			e.emitToken(PrimeDouble, e.window[1])
		},
	},
	{
		// <thinkin'>
		name:  "apostrophe-ended",
		slots: [4][]lex.LexemeType{one(lex.Word), one(lex.QuoteSingle), nil, nil},
		guard: func(e *QuoteEmitter) bool {
			return e.contractions.EndedUnambiguously(e.text(0))
		},
		fire: func(e *QuoteEmitter) {
			e.emitToken(Apostrophe, e.window[1])
		},
	},
	{
		// <'02>
		name:  "apostrophe-year",
		slots: [4][]lex.LexemeType{nil, one(lex.QuoteSingle), one(lex.Number), spacePunct},
		fire: func(e *QuoteEmitter) {
			e.emitToken(Apostrophe, e.window[1])
		},
	},
	{
		// <'20s>
		name:  "apostrophe-decade",
		slots: [4][]lex.LexemeType{nil, one(lex.QuoteSingle), one(lex.Number), one(lex.Word)},
		guard: func(e *QuoteEmitter) bool {
			return strings.EqualFold(e.text(3), "s")
		},
		fire: func(e *QuoteEmitter) {
			e.emitToken(Apostrophe, e.window[1])
		},
	},
	{
		// <.'\n>
		name:  "closing-single-ending",
		slots: [4][]lex.LexemeType{punctPeriodEllipsisDash, one(lex.QuoteSingle), one(lex.Ending), nil},
		fire: func(e *QuoteEmitter) {
			e.emitToken(ClosingSingle, e.window[1])
		},
	},
	{
		// <\'>
		name:  "straight-single",
		slots: [4][]lex.LexemeType{one(lex.EscSingle), nil, nil, nil},
		fire: func(e *QuoteEmitter) {
			e.emitToken(StraightSingle, e.window[0])
		},
	},
	{
		// <\">, and <\"'---> closes a nested quotation
		name:  "straight-double",
		slots: [4][]lex.LexemeType{one(lex.EscDouble), nil, nil, nil},
		fire: func(e *QuoteEmitter) {
			e.emitToken(StraightDouble, e.window[0])
			if e.match([4][]lex.LexemeType{one(lex.EscDouble), one(lex.QuoteSingle), spaceDashEnding, nil}) {
				e.emitToken(ClosingSingle, e.window[1])
			}
		},
	},
	{
		// <---'" >
		name:  "closing-single-at-dash",
		slots: [4][]lex.LexemeType{one(lex.Dash), one(lex.QuoteSingle), one(lex.QuoteDouble), spaceEnding},
		fire: func(e *QuoteEmitter) {
			e.emitToken(ClosingSingle, e.window[1])
		},
	},
	{
		// <o'-lantern>, <o' fellow>, <O'-the>
		name:  "apostrophe-o",
		slots: [4][]lex.LexemeType{one(lex.Word), one(lex.QuoteSingle), spaceHyphen, one(lex.Word)},
		guard: func(e *QuoteEmitter) bool {
			return strings.EqualFold(e.text(0), "o")
		},
		fire: func(e *QuoteEmitter) {
			e.emitToken(Apostrophe, e.window[1])
		},
	},
	{
		// <"">, <"...>, <"word>, <---"word>
		name:  "opening-double",
		slots: [4][]lex.LexemeType{leadingOpeningDouble, one(lex.QuoteDouble), laggingOpeningDouble, nil},
		fire: func(e *QuoteEmitter) {
			e.emitToken(OpeningDouble, e.window[1])
		},
	},
	{
		// <..."'>, <word"'>, <?"'>, <word"?>
		name:  "closing-double",
		slots: [4][]lex.LexemeType{leadingClosingDouble, one(lex.QuoteDouble), laggingClosingDouble, nil},
		fire: func(e *QuoteEmitter) {
			e.emitToken(ClosingDouble, e.window[1])
		},
	},
	{
		// < ''E>
		name:  "opening-single-dialect",
		slots: [4][]lex.LexemeType{spaceSOT, one(lex.QuoteSingle), one(lex.QuoteSingle), one(lex.Word)},
		fire: func(e *QuoteEmitter) {
			// Consume both immediately to avoid the false ambiguity <'e>.
			e.emitToken(OpeningSingle, e.window[1])
			e.emitToken(Apostrophe, e.window[2])
			e.obliterate(1)
			e.obliterate(2)
		},
	},
	{
		// <'...>, <'word>, <---'word>, < 'nation>
		name:  "opening-single",
		slots: [4][]lex.LexemeType{leadingOpeningSingle, one(lex.QuoteSingle), laggingOpeningSingle, nil},
		fire: func(e *QuoteEmitter) {
			word := e.text(2)
			switch {
			case e.contractions.BeganAmbiguously(word):
				e.emitToken(AmbiguousLeading, e.window[1])
			case e.contractions.BeganUnambiguously(word):
				e.emitToken(Apostrophe, e.window[1])
			case e.match([4][]lex.LexemeType{one(lex.QuoteDouble), one(lex.QuoteSingle), one(lex.QuoteDouble), one(lex.Word)}):
				// <"'"nested>
				e.emitToken(OpeningSingle, e.window[1])
			case e.match([4][]lex.LexemeType{one(lex.QuoteDouble), one(lex.QuoteSingle), one(lex.QuoteDouble), nil}):
				// <"'" >
				e.emitToken(Ambiguous, e.window[1])
			default:
				// The lagging lexeme is in the opening set.
				e.emitToken(OpeningSingle, e.window[1])
			}
		},
	},
	{
		// <word'">, <...'--->, <"' >
		name:  "closing-single",
		slots: [4][]lex.LexemeType{leadingClosingSingle, one(lex.QuoteSingle), laggingClosingSingle, nil},
		fire: func(e *QuoteEmitter) {
			if e.contractions.EndedAmbiguously(e.text(0)) {
				e.emitToken(AmbiguousLagging, e.window[1])
			} else {
				e.emitToken(ClosingSingle, e.window[1])
			}
		},
	},
	{
		// <word';> (contraction inferred by previous matches)
		name:  "apostrophe-residual",
		slots: [4][]lex.LexemeType{one(lex.Word), one(lex.QuoteSingle), punctPeriod, nil},
		fire: func(e *QuoteEmitter) {
			e.emitToken(Apostrophe, e.window[1])
		},
	},
	{
		// <---'">
		name:  "closing-single-dash",
		slots: [4][]lex.LexemeType{one(lex.Dash), one(lex.QuoteSingle), one(lex.QuoteDouble), nil},
		fire: func(e *QuoteEmitter) {
			e.emitToken(ClosingSingle, e.window[1])
		},
	},
	{
		// <'42>, <'-3.14>
		name:  "opening-single-number",
		slots: [4][]lex.LexemeType{nil, one(lex.QuoteSingle), one(lex.Number), nil},
		fire: func(e *QuoteEmitter) {
			e.emitToken(OpeningSingle, e.window[1])
		},
	},
	{
		// An obliterated slot precedes <'---.>
		name:  "closing-single-consumed",
		slots: [4][]lex.LexemeType{one(lex.None), one(lex.QuoteSingle), nil, nil},
		fire: func(e *QuoteEmitter) {
			e.emitToken(ClosingSingle, e.window[1])
		},
	},
	{
		// <''Cause >
		name:  "leading-pair",
		slots: [4][]lex.LexemeType{one(lex.QuoteSingle), one(lex.QuoteSingle), one(lex.Word), nil},
		fire: func(e *QuoteEmitter) {
			word := e.text(2)
			switch {
			case e.contractions.BeganAmbiguously(word):
				e.emitToken(AmbiguousLeading, e.window[1])
			case e.contractions.BeganUnambiguously(word):
				e.emitToken(Apostrophe, e.window[1])
			default:
				e.emitToken(Ambiguous, e.window[1])
			}
		},
	},
	{
		name:  "ambiguous-double",
		slots: [4][]lex.LexemeType{nil, one(lex.QuoteDouble), nil, nil},
		fire: func(e *QuoteEmitter) {
			e.emitToken(Ambiguous, e.window[1])
		},
	},
	{
		// International opening quotation mark.
		name:  "opening-double-intl",
		slots: [4][]lex.LexemeType{nil, one(lex.QuoteDoubleOpening), nil, nil},
		fire: func(e *QuoteEmitter) {
			e.emitToken(OpeningDouble, e.window[1])
		},
	},
	{
		// Ambiguous (no match).
		name:  "ambiguous-single",
		slots: [4][]lex.LexemeType{nil, one(lex.QuoteSingle), nil, nil},
		fire: func(e *QuoteEmitter) {
			e.emitToken(Ambiguous, e.window[1])
		},
	},
}
