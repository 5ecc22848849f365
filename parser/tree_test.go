package parser

import (
	"strings"
	"testing"

	"github.com/sdob/keenquotes/lex"
)

func quoteToken(t TokenType, began, ended int) *Token {
	return NewToken(t, lex.NewLexeme(lex.QuoteSingle, began, ended))
}

func TestTreeBranchAndClose(t *testing.T) {
	root := borrowTree(nil, nil)
	child := root.branch(quoteToken(OpeningDouble, 0, 1))
	if child.parent != root {
		t.Fatalf("expected the child to back-reference the root")
	}
	back := child.close(quoteToken(ClosingDouble, 9, 10))
	if back != root {
		t.Errorf("expected closing to step back to the parent")
	}
	if !child.isBalanced() {
		t.Errorf("expected a double/double pair to be balanced")
	}
	if child.root() != root {
		t.Errorf("expected root lookup from a child")
	}
}

func TestTreeUnbalancedPair(t *testing.T) {
	root := borrowTree(nil, nil)
	child := root.branch(quoteToken(OpeningDouble, 0, 1))
	child.close(quoteToken(ClosingSingle, 5, 6))
	if child.isBalanced() {
		t.Errorf("expected a double/single pair not to be balanced")
	}
	if !child.hasClosingSingle() || child.hasOpeningSingle() {
		t.Errorf("unexpected single quote flags")
	}
}

func TestTreeClosingAtRootStaysPut(t *testing.T) {
	root := borrowTree(nil, nil)
	if back := root.close(quoteToken(ClosingDouble, 0, 1)); back != root {
		t.Errorf("expected the root to absorb an unmatched closing quote")
	}
	// A second unmatched closing attaches as a leaf so it still curls.
	root.close(quoteToken(ClosingDouble, 5, 6))
	n := 0
	root.eachToken(func(*Token) { n++ })
	if n != 2 {
		t.Errorf("expected both closing quotes in the token walk, have %d", n)
	}
}

func TestTreeCountAndReplace(t *testing.T) {
	root := borrowTree(nil, nil)
	node := root.branch(quoteToken(OpeningSingle, 0, 1))
	node.add(quoteToken(AmbiguousLagging, 4, 5))
	node.add(quoteToken(Apostrophe, 7, 8))
	if node.count(AmbiguousLagging) != 1 || node.count(Apostrophe) != 1 {
		t.Fatalf("unexpected counts")
	}
	node.replaceAll(AmbiguousLagging, ClosingSingle)
	if node.count(AmbiguousLagging) != 0 || node.count(ClosingSingle) != 1 {
		t.Errorf("expected the laggard to become a closing quote")
	}
}

func TestTreeVisitBreadthFirst(t *testing.T) {
	root := borrowTree(nil, nil)
	a := root.branch(quoteToken(OpeningDouble, 0, 1))
	a.branch(quoteToken(OpeningSingle, 1, 2))
	root.branch(quoteToken(OpeningDouble, 10, 11))
	var order []*Tree
	root.visit(func(n *Tree) { order = append(order, n) })
	if len(order) != 4 {
		t.Fatalf("expected 4 nodes, visited %d", len(order))
	}
	if order[0] != root || order[3].parent != a {
		t.Errorf("expected a breadth-first visit, root first and the deepest node last")
	}
}

func TestTreeString(t *testing.T) {
	root := borrowTree(nil, nil)
	node := root.branch(quoteToken(OpeningSingle, 0, 1))
	node.add(quoteToken(Apostrophe, 2, 3))
	s := root.String()
	if !strings.HasPrefix(s, "<root>") || !strings.HasSuffix(s, "</root>") {
		t.Errorf("expected a root element, is %q", s)
	}
	if !strings.Contains(s, "<tree>") || !strings.Contains(s, "apostrophe") {
		t.Errorf("expected the subtree and its leaf in the dump, is %q", s)
	}
}
