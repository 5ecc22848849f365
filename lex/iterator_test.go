package lex_test

import (
	"testing"

	"github.com/sdob/keenquotes/lex"
)

func TestIteratorStepping(t *testing.T) {
	it := lex.NewIterator("ab")
	if it.Current() != 'a' || it.Index() != 0 {
		t.Errorf("expected to start on 'a' at 0, is %q at %d", it.Current(), it.Index())
	}
	if it.Peek() != 'b' {
		t.Errorf("expected peek 'b', is %q", it.Peek())
	}
	if it.Advance() != 'b' {
		t.Errorf("expected advance to 'b'")
	}
	if !it.HasNext() {
		t.Errorf("expected more characters on the last rune")
	}
	it.Next()
	if it.HasNext() {
		t.Errorf("expected end of input")
	}
	if it.Current() != lex.Done {
		t.Errorf("expected the sentinel beyond the end, is %q", it.Current())
	}
}

func TestIteratorMultibyte(t *testing.T) {
	it := lex.NewIterator("«a»")
	if it.Current() != '«' {
		t.Errorf("expected '«', is %q", it.Current())
	}
	it.Next()
	if it.Index() != 2 {
		t.Errorf("expected byte offset 2 after a two-byte rune, is %d", it.Index())
	}
	if it.Peek() != '»' {
		t.Errorf("expected peek '»', is %q", it.Peek())
	}
	it.Prev()
	if it.Index() != 0 || it.Current() != '«' {
		t.Errorf("expected to step back onto '«' at 0, is %q at %d", it.Current(), it.Index())
	}
}

func TestIteratorSkip(t *testing.T) {
	it := lex.NewIterator("aaab")
	it.Skip(func(r rune) bool { return r == 'a' })
	// Skip overshoots by one and backs up onto the last match.
	if it.Index() != 2 || it.Current() != 'a' {
		t.Errorf("expected to rest on the last 'a' at 2, is %q at %d", it.Current(), it.Index())
	}
}

func TestIteratorSkipToEnd(t *testing.T) {
	it := lex.NewIterator("aaa")
	it.Skip(func(r rune) bool { return r == 'a' })
	if it.Index() != 2 {
		t.Errorf("expected to rest on the last rune, is at %d", it.Index())
	}
	it.Next()
	if it.HasNext() {
		t.Errorf("expected end of input")
	}
}

func TestIteratorSubstring(t *testing.T) {
	it := lex.NewIterator("quotes")
	if s := it.Substring(1, 4); s != "uot" {
		t.Errorf("expected substring 'uot', is %q", s)
	}
}
