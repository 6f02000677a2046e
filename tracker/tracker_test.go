/*
File    : gomix-bc/tracker/tracker_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker_PushPopAdopts(t *testing.T) {
	tr := New()
	tr.Push("left")
	tr.Push("right")
	assert.Equal(t, 2, tr.Len())

	children := tr.Pop(2)
	assert.Equal(t, []any{"left", "right"}, children)
	assert.Equal(t, 0, tr.Len())
}

func TestTracker_PopAndPush(t *testing.T) {
	tr := New()
	tr.Push("left")
	tr.Push("right")
	parent := tr.PopAndPush(2, "left+right")
	assert.Equal(t, "left+right", parent)
	assert.Equal(t, 1, tr.Len())
}

func TestTracker_ReleaseAllEmptiesTracker(t *testing.T) {
	tr := New()
	tr.Push("a")
	tr.Push("b")
	s := "ident"
	tr.NoteString(&s)
	tr.ReleaseAll()
	assert.Equal(t, 0, tr.Len())
}

func TestTracker_ConsumeStringByIdentity(t *testing.T) {
	tr := New()
	a := "alpha"
	b := "alpha" // same text, different identity
	tr.NoteString(&a)
	tr.NoteString(&b)
	assert.Equal(t, 2, tr.Len())

	tr.ConsumeString(&a)
	assert.Equal(t, 1, tr.Len())

	// b is still tracked even though its text matches the consumed a.
	tr.ConsumeString(&b)
	assert.Equal(t, 0, tr.Len())
}

func TestTracker_PopPanicsOnUnderflow(t *testing.T) {
	tr := New()
	tr.Push("only")
	assert.Panics(t, func() {
		tr.Pop(2)
	})
}
