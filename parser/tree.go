package parser

import (
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
)

// Tree is one level in the nesting hierarchy of quotations. A node is
// created only when an opening quotation mark is found; its closing mark is
// assigned at most once. Child stems — subtrees and leaf tokens — keep
// insertion order, which equals document order. The parent link is a
// read-only back-reference, nil at the root.
//
// Trees live for the duration of one document conversion; nodes are
// borrowed from a pool and returned when the resolver is done.
type Tree struct {
	parent  *Tree
	opening *Token // nil at the root
	closing *Token // nil until closed
	stems   *arraylist.List
}

// branch adds a subtree under t for an opening quotation mark and returns
// it.
func (t *Tree) branch(opening *Token) *Tree {
	child := borrowTree(t, opening)
	t.stems.Add(child)
	return child
}

// close assigns the closing quotation mark and steps back to the parent,
// staying put at the root. A second closing mark arriving at the root
// attaches as a leaf so that it still participates in replacement.
func (t *Tree) close(closing *Token) *Tree {
	if t.closing != nil {
		t.stems.Add(closing)
	} else {
		if t.opening != nil && !t.opening.isBefore(closing) {
			panic("parser: closing quote precedes its opening quote")
		}
		t.closing = closing
	}
	if t.parent == nil {
		return t
	}
	return t.parent
}

// add attaches a leaf token: an ambiguous mark, apostrophe, prime, or
// straight quote.
func (t *Tree) add(token *Token) {
	t.stems.Add(token)
}

// root returns the earliest ancestor.
func (t *Tree) root() *Tree {
	ancestor := t
	for ancestor.parent != nil {
		ancestor = ancestor.parent
	}
	return ancestor
}

func (t *Tree) hasOpeningSingle() bool {
	return t.opening != nil && t.opening.Is(OpeningSingle)
}

func (t *Tree) hasClosingSingle() bool {
	return t.closing != nil && t.closing.Is(ClosingSingle)
}

// isBalanced answers whether the opening and closing marks of this node
// are the same kind, both double or both single.
func (t *Tree) isBalanced() bool {
	return t.opening != nil && t.closing != nil &&
		(t.opening.Is(OpeningDouble) && t.closing.Is(ClosingDouble) ||
			t.opening.Is(OpeningSingle) && t.closing.Is(ClosingSingle))
}

// count tallies tokens of the given type at this level only, not in
// ancestors or descendants.
func (t *Tree) count(tt TokenType) int {
	n := 0
	t.eachToken(func(tok *Token) {
		if tok.Is(tt) {
			n++
		}
	})
	return n
}

// eachToken passes every token at this level to f: the opening mark, leaf
// stems, then the closing mark.
func (t *Tree) eachToken(f func(*Token)) {
	if t.opening != nil {
		f(t.opening)
	}
	t.stems.Each(func(_ int, stem interface{}) {
		if tok, ok := stem.(*Token); ok {
			f(tok)
		}
	})
	if t.closing != nil {
		f(t.closing)
	}
}

// visit performs an iterative breadth-first walk over the whole hierarchy.
func (t *Tree) visit(f func(*Tree)) {
	queue := []*Tree{t}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		f(current)
		queue = append(queue, current.subtrees()...)
	}
}

func (t *Tree) subtrees() []*Tree {
	var result []*Tree
	t.stems.Each(func(_ int, stem interface{}) {
		if sub, ok := stem.(*Tree); ok {
			result = append(result, sub)
		}
	})
	return result
}

// replaceAll reclassifies every leaf stem of the given type.
func (t *Tree) replaceAll(old, new TokenType) {
	t.stems.Each(func(_ int, stem interface{}) {
		if tok, ok := stem.(*Token); ok && tok.Is(old) {
			tok.setType(new)
		}
	})
}

// String renders the node and its descendants as a well-formed XML
// fragment, for debugging.
func (t *Tree) String() string {
	var sb strings.Builder
	t.xml(&sb)
	return sb.String()
}

func (t *Tree) xml(sb *strings.Builder) {
	name := "tree"
	if t.parent == nil {
		name = "root"
	}
	sb.WriteByte('<')
	sb.WriteString(name)
	sb.WriteByte('>')
	if t.opening != nil {
		sb.WriteString(t.opening.String())
	}
	t.stems.Each(func(_ int, stem interface{}) {
		switch s := stem.(type) {
		case *Token:
			sb.WriteString(s.String())
		case *Tree:
			s.xml(sb)
		}
	})
	if t.closing != nil {
		sb.WriteString(t.closing.String())
	}
	sb.WriteString("</")
	sb.WriteString(name)
	sb.WriteByte('>')
}
