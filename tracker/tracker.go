/*
File    : gomix-bc/tracker/tracker.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package tracker implements the partial-allocation tracker of
// spec.md §4.1: a bookkeeping stack owning every AST fragment not yet
// attached to a larger fragment during the parse of one command.
//
// Go's garbage collector means nothing here actually frees memory —
// but the tracker's bookkeeping discipline is not about memory, it is
// about making "what is currently orphaned" an explicit, checkable
// set. Parsing is post-order: children exist before their parent. On
// success every child is adopted (popped) by its parent before the
// command finishes, leaving the tracker empty (testable property #1
// of spec.md §8). On failure ReleaseAll drops everything still
// tracked, so a half-built command never leaks into the next one.
package tracker

// Tracker owns every fragment pushed since the last release or
// successful drain. It is reused across commands: call ReleaseAll (on
// error) or verify Len() == 0 (on success) at each command boundary.
type Tracker struct {
	nodes   []any
	strings []*string
}

// New returns an empty Tracker.
func New() *Tracker {
	return &Tracker{}
}

// Push records ownership of a freshly built fragment.
func (t *Tracker) Push(node any) {
	t.nodes = append(t.nodes, node)
}

// Pop surrenders ownership of the top n entries, returning them in
// the order they were pushed (oldest of the n first). The caller must
// pop exactly the fragments it is about to attach as children of a
// new parent; the order in which they were pushed relative to each
// other is the only thing Pop guarantees — which of several
// concurrently-orphaned fragments is "on top" is not otherwise
// observable.
func (t *Tracker) Pop(n int) []any {
	if n <= 0 {
		return nil
	}
	if n > len(t.nodes) {
		panic("tracker: pop exceeds tracked fragment count")
	}
	start := len(t.nodes) - n
	popped := make([]any, n)
	copy(popped, t.nodes[start:])
	t.nodes = t.nodes[:start]
	return popped
}

// PopAndPush is the common shorthand: adopt the top n fragments into
// parent, then track parent itself as the new orphan.
func (t *Tracker) PopAndPush(n int, parent any) any {
	t.Pop(n)
	t.Push(parent)
	return parent
}

// NoteString tracks an identifier string produced by the tokenizer.
// Identifiers are tracked separately from AST fragments because a
// one-token lookahead in the parser may mean the most recently noted
// string belongs to the *next* token, not the one currently being
// reduced.
func (t *Tracker) NoteString(s *string) {
	t.strings = append(t.strings, s)
}

// ConsumeString locates s by pointer identity — not by stack position
// — and removes it. This is what makes NoteString/ConsumeString safe
// under lookahead: the caller names exactly the string it is done
// with, regardless of how many other strings were noted after it.
func (t *Tracker) ConsumeString(s *string) {
	for i, tracked := range t.strings {
		if tracked == s {
			t.strings = append(t.strings[:i], t.strings[i+1:]...)
			return
		}
	}
}

// ReleaseAll destroys every tracked fragment and noted string. Called
// after a parse or semantic error aborts a command.
func (t *Tracker) ReleaseAll() {
	t.nodes = nil
	t.strings = nil
}

// Len reports the number of fragments still tracked (AST nodes plus
// noted strings). A successfully completed command must leave this at
// 0.
func (t *Tracker) Len() int {
	return len(t.nodes) + len(t.strings)
}
