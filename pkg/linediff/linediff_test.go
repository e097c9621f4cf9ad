package linediff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffWithOptionsReplace(t *testing.T) {
	old := []byte("a\nb\nc\n")
	new := []byte("a\nx\nc\n")

	u := DiffWithOptions("old", old, "new", new, Options{Context: 3})

	if assert.Len(t, u.Hunks, 1) {
		h := u.Hunks[0]
		assert.Equal(t, 1, h.LineOld)
		assert.Equal(t, 3, h.CountOld)
		assert.Equal(t, 1, h.LineNew)
		assert.Equal(t, 3, h.CountNew)
		assert.Equal(t, []HunkLine{
			{NumberX: 1, NumberY: 1, Value: " a"},
			{NumberX: 2, NumberY: -1, Value: "-b"},
			{NumberX: -1, NumberY: 2, Value: "+x"},
			{NumberX: 3, NumberY: 3, Value: " c"},
		}, h.Lines)
	}

	assert.Equal(t, "diff old new\n--- old\n+++ new\n@@ -1,3 +1,3 @@\n a\n-b\n+x\n c\n", u.String())
}

func TestDiffIdentical(t *testing.T) {
	same := []byte("a\nb\nc\n")
	u := Diff("old", same, "new", same)
	assert.Empty(t, u.Hunks)
	assert.Equal(t, "", u.String())
}

func TestHunkLineTypeAndContent(t *testing.T) {
	assert.Equal(t, TypeInsert, HunkLine{Value: "+x"}.Type())
	assert.Equal(t, TypeDelete, HunkLine{Value: "-x"}.Type())
	assert.Equal(t, TypeEqual, HunkLine{Value: " x"}.Type())
	assert.Equal(t, "x", HunkLine{Value: "+x"}.Content())
	assert.Equal(t, byte('+'), HunkLine{Value: "+x"}.Symbol())
}

func TestDiffWithOptionsNoTrailingNewline(t *testing.T) {
	old := []byte("a\nb")
	new := []byte("a\nc")

	u := DiffWithOptions("old", old, "new", new, Options{Context: 3})
	if assert.Len(t, u.Hunks, 1) {
		h := u.Hunks[0]
		assert.Equal(t, "-b\n\\ No newline at end of file", h.Lines[1].Value)
		assert.Equal(t, "+c\n\\ No newline at end of file", h.Lines[2].Value)
	}
}
