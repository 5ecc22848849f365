package parser

import (
	"sort"

	"github.com/sdob/keenquotes/lex"
)

// AmbiguityResolver resolves ambiguous quotes that a first pass over the
// document could not decide. It arranges the emitted tokens into a tree of
// nested quotations and exploits the alternation of nested quotes: a
// string such as "Is Iris' name Greek?" has its single quote resolved
// because the mark stands alone within double quotes.
type AmbiguityResolver struct {
	emit    func(*Token)
	current *Tree
}

// Resolve scans doc, disambiguates what it can, and relays every token to
// emit in document order. Tokens still ambiguous after resolution are
// relayed as such; downstream replacement skips them.
func Resolve(doc string, c *Contractions, emit func(*Token), filter lex.Filter) {
	r := &AmbiguityResolver{emit: emit, current: borrowTree(nil, nil)}
	Analyze(doc, c, r.Accept, filter)
	r.resolve()
}

// Accept threads one token into the nesting tree. Opening marks branch a
// subtree, closing marks seal the current node, and everything else —
// ambiguous marks, apostrophes, primes, straight quotes — attaches as a
// leaf of the current node.
func (r *AmbiguityResolver) Accept(t *Token) {
	switch {
	case t.Is(OpeningSingle) || t.Is(OpeningDouble):
		r.current = r.current.branch(t)
	case t.Is(ClosingSingle) || t.Is(ClosingDouble):
		r.current = r.current.close(t)
	default:
		r.current.add(t)
	}
}

// resolve runs after the document's tree is built.
func (r *AmbiguityResolver) resolve() {
	// Opening and closing quotes aren't necessarily balanced; the tree may
	// dangle anywhere below the root. Traverse the whole structure from the
	// top down.
	root := r.current.root()
	r.current = root

	T().Debugf("resolver: %v", root)

	// Replace the tree's tokens in situ with their deduced quotation mark.
	root.visit(disambiguate)

	// Tokens are neither replaced nor constructed in offset order.
	var tokens []*Token
	root.visit(func(t *Tree) {
		t.eachToken(func(tok *Token) { tokens = append(tokens, tok) })
	})
	sort.SliceStable(tokens, func(i, j int) bool {
		return tokens[i].Began() < tokens[j].Began()
	})

	// All laggards appearing before the first leader are apostrophes.
	resolveLaggards(tokens)

	// Replacing laggards may have made leaders resolvable.
	root.visit(disambiguate)

	// Relay the tokens, in order, for updating the parsed document.
	for _, tok := range tokens {
		r.emit(tok)
	}

	// The conversion is over; hand the nodes back to the pool.
	var nodes []*Tree
	root.visit(func(t *Tree) { nodes = append(nodes, t) })
	for _, n := range nodes {
		n.releaseIntoPool()
	}
}

// resolveLaggards converts laggards into apostrophes up until the first
// leader: a trailing apostrophe cannot close a quotation that never
// opened.
func resolveLaggards(tokens []*Token) {
	for _, t := range tokens {
		if t.Is(AmbiguousLeading) {
			// From here on, any laggard could be a closing quote.
			break
		}
		if t.Is(AmbiguousLagging) {
			t.setType(Apostrophe)
		}
	}
}

// disambiguate replaces ambiguous marks at one tree level with resolvable
// equivalents. Whatever it cannot decide stays in the structure, still
// marked ambiguous.
func disambiguate(t *Tree) {
	countLeading := t.count(AmbiguousLeading)
	countLagging := t.count(AmbiguousLagging)
	countUnknown := t.count(Ambiguous)

	if t.hasOpeningSingle() && !t.hasClosingSingle() {
		if countUnknown == 0 && countLeading == 0 && countLagging == 1 {
			t.replaceAll(AmbiguousLagging, ClosingSingle)
		} else if countUnknown == 1 && countLagging == 0 {
			t.replaceAll(Ambiguous, ClosingSingle)
		}
	}

	if countUnknown == 0 && countLeading == 1 && countLagging == 0 &&
		!t.hasOpeningSingle() && t.hasClosingSingle() {
		t.replaceAll(AmbiguousLeading, OpeningSingle)
	}

	if !t.hasOpeningSingle() && !t.hasClosingSingle() || t.isBalanced() {
		if countUnknown == 0 && countLeading > 0 && countLagging == 0 {
			t.replaceAll(AmbiguousLeading, Apostrophe)
		}
		if countUnknown == 0 && countLeading == 0 && countLagging > 0 {
			t.replaceAll(AmbiguousLagging, Apostrophe)
		}
	}
}
