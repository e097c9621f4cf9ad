package classic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pilediff/pilediff/pkg/patience"
)

func blocksOf(a, b string) []patience.Block {
	return lcsBlocks([]rune(a), []rune(b))
}

func TestLCSBlocksIdentical(t *testing.T) {
	assert.Equal(t, []patience.Block{{I: 0, J: 0, N: 6}, {I: 6, J: 6, N: 0}}, blocksOf("abcdef", "abcdef"))
}

func TestLCSBlocksEmptyInputs(t *testing.T) {
	assert.Equal(t, []patience.Block{{I: 0, J: 0, N: 0}}, blocksOf("", ""))
	assert.Equal(t, []patience.Block{{I: 0, J: 3, N: 0}}, blocksOf("", "xyz"))
	assert.Equal(t, []patience.Block{{I: 3, J: 0, N: 0}}, blocksOf("xyz", ""))
}

// TestLCSMatchesRepeatedElements is the case patience.Matcher cannot
// handle at all: since every element of "aa" occurs twice, UniqueLCS
// finds no anchors and the matcher reports the two strings as
// completely different. The plain DP-based LCS here has no such
// restriction.
func TestLCSMatchesRepeatedElements(t *testing.T) {
	assert.Equal(t, []patience.Block{{I: 0, J: 0, N: 2}, {I: 2, J: 2, N: 0}}, blocksOf("aa", "aa"))
}

func TestGetOpCodesRoundtrip(t *testing.T) {
	apply := func(a, b []rune, ops []patience.OpCode) string {
		var out []rune
		for _, op := range ops {
			switch op.Tag {
			case patience.Equal:
				out = append(out, a[op.I1:op.I2]...)
			default:
				out = append(out, b[op.J1:op.J2]...)
			}
		}
		return string(out)
	}

	tt := []struct{ a, b string }{
		{"aa", "aa"},
		{"abab", "baba"},
		{"", "xyz"},
		{"xyz", ""},
		{"same", "same"},
	}
	for _, tc := range tt {
		m := NewMatcher([]rune(tc.a), []rune(tc.b))
		got := apply([]rune(tc.a), []rune(tc.b), m.GetOpCodes())
		assert.Equal(t, tc.b, got)
	}
}

func TestMatcherSetSeqsInvalidatesCache(t *testing.T) {
	m := NewMatcher([]rune("ab"), []rune("ab"))
	first := m.GetMatchingBlocks()
	assert.Equal(t, []patience.Block{{I: 0, J: 0, N: 2}, {I: 2, J: 2, N: 0}}, first)

	m.SetSeqs([]rune("ab"), []rune("ac"))
	second := m.GetMatchingBlocks()
	assert.Equal(t, []patience.Block{{I: 0, J: 0, N: 1}, {I: 2, J: 2, N: 0}}, second)
}
