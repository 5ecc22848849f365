package lex

import (
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
)

// Filter is a predicate applied at every outer iteration of the lexer. A
// filter that recognizes the current position advances the iterator past
// the region to skip and reports true; the lexer re-applies it until it
// declines, because skippable regions may abut.
type Filter func(*Iterator) bool

// FilterType selects the filtering applied while scanning for quotes.
type FilterType int8

const (
	// FilterPlain curls all quotation marks.
	FilterPlain FilterType = iota

	// FilterXML suppresses curling quotation marks within XML tags and
	// within the contents of untouchable (preformatted) elements.
	FilterXML
)

// Filter returns the filter function for the type.
func (ft FilterType) Filter() Filter {
	if ft == FilterXML {
		return NewXMLFilter()
	}
	return PlainFilter
}

// PlainFilter skips nothing.
func PlainFilter(*Iterator) bool {
	return false
}

// Elements whose contents are preformatted text with intentional straight
// quotes.
var untouchable = hashset.New(
	"pre", "code", "tt", "tex", "kbd", "samp", "var", "l", "blockcode",
)

// NewXMLFilter returns a filter that skips XML tags found within the prose.
// The document must be sane and well-formed: angle brackets balanced, and
// any literal less-than or greater-than symbols entity-encoded. The filter
// is not meant for documents in the wild with hand-injected HTML; on
// malformed input it yields control back to the lexer rather than failing.
//
// Attribute values are hidden by tag skipping and pass through verbatim.
// The contents of untouchable elements (pre, code, and friends) are skipped
// wholesale.
func NewXMLFilter() Filter {
	return func(it *Iterator) bool {
		if it.Current() != '<' {
			return false
		}
		tag, ok := nextTag(it)
		if !ok {
			// Ran out of characters; the XML is not well-formed.
			return false
		}
		name := elementName(tag)
		if untouchable.Contains(strings.ToLower(name)) {
			// Consume tags until the element closes.
			for {
				closing, ok := nextTag(it)
				if !ok {
					return false
				}
				if strings.HasSuffix(closing, name) {
					break
				}
			}
		}
		return true
	}
}

// nextTag skips to the next angle bracket and returns the characters in
// between, consuming a trailing greater-than symbol. Reports false when the
// text ends before the bracket closes.
func nextTag(it *Iterator) (string, bool) {
	began := it.Index()
	it.Skip(func(r rune) bool {
		return r != '>' && r != '<' && r != Done
	})
	it.Next() // onto the terminating bracket
	if !it.HasNext() {
		return "", false
	}
	ended := it.Index()
	it.Next() // first character following the bracket
	return it.Substring(began+1, ended), true
}

// elementName extracts the tag name: the first whitespace-terminated
// identifier inside the brackets.
func elementName(tag string) string {
	fields := strings.Fields(tag)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
