package patience

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueLCS(t *testing.T) {
	tt := []struct {
		name string
		a, b string
		want []Pair
	}{
		{"empty", "", "", nil},
		{"single", "a", "a", []Pair{{0, 0}}},
		{"both_unique", "ab", "ab", []Pair{{0, 0}, {1, 1}}},
		{"reordered", "abcde", "cdeab", []Pair{{2, 0}, {3, 1}, {4, 2}}},
		{"duplicates_discarded", "acbac", "abc", []Pair{{2, 1}}},
		{"middle_differs", "abXde", "abYde", []Pair{{0, 0}, {1, 1}, {3, 3}, {4, 4}}},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			a, b := []rune(tc.a), []rune(tc.b)
			got := UniqueLCS(a, b, 0, len(a), 0, len(b))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUniqueLCSEmptySide(t *testing.T) {
	x := []rune("hello")
	assert.Nil(t, UniqueLCS([]rune{}, x, 0, 0, 0, len(x)))
	assert.Nil(t, UniqueLCS(x, []rune{}, 0, len(x), 0, 0))
}

func blocksOf(a, b string) []Block {
	return matchingBlocks([]rune(a), []rune(b))
}

func TestMatchingBlocks(t *testing.T) {
	tt := []struct {
		name string
		a, b string
		want []Block
	}{
		{
			"identical",
			"abcdef", "abcdef",
			[]Block{{0, 0, 6}, {6, 6, 0}},
		},
		{
			"anchored_insert_sticks_to_preceding_context",
			"abcdefghijklmnop", "abcdefxydefghijklmnop",
			[]Block{{0, 0, 6}, {6, 11, 10}, {16, 21, 0}},
		},
		{
			"non_unique_surrounded_by_mismatch_not_matched",
			"aBccDe", "abccde",
			[]Block{{0, 0, 1}, {5, 5, 1}, {6, 6, 0}},
		},
		{
			"locally_unique_recovery",
			"aBcDec", "abcdec",
			[]Block{{0, 0, 1}, {2, 2, 1}, {4, 4, 2}, {6, 6, 0}},
		},
		{
			// Regression: a repeated-token run ("bc" each appearing
			// twice) sits immediately before the only unique anchor
			// ('a' at the end), with no preceding anchor to absorb it
			// via right-extension. Left-extension must walk the run
			// back to the start and emit each position exactly once,
			// not re-emit the anchor after already consuming it.
			"repeated_run_before_first_anchor",
			"bcbca", "bcbca",
			[]Block{{0, 0, 5}, {5, 5, 0}},
		},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, blocksOf(tc.a, tc.b))
		})
	}
}

func TestMatchingBlocksEmptyInputs(t *testing.T) {
	assert.Equal(t, []Block{{0, 0, 0}}, blocksOf("", ""))
	assert.Equal(t, []Block{{0, 3, 0}}, blocksOf("", "xyz"))
	assert.Equal(t, []Block{{3, 0, 0}}, blocksOf("xyz", ""))
}

func TestGetOpCodes(t *testing.T) {
	m := NewMatcher([]rune("abcdefghijklmnop"), []rune("abcdefxydefghijklmnop"))
	ops := m.GetOpCodes()
	assert.Equal(t, []OpCode{
		{Equal, 0, 6, 0, 6},
		{Insert, 6, 6, 6, 11},
		{Equal, 6, 16, 11, 21},
	}, ops)
}

func TestGetOpCodesIdentity(t *testing.T) {
	m := NewMatcher([]rune("hello"), []rune("hello"))
	assert.Equal(t, []OpCode{{Equal, 0, 5, 0, 5}}, m.GetOpCodes())
	assert.Nil(t, m.GetGroupedOpCodes(3))
}

func TestGetOpCodesEmptyInputs(t *testing.T) {
	m := NewMatcher([]rune(""), []rune("xyz"))
	assert.Equal(t, []OpCode{{Insert, 0, 0, 0, 3}}, m.GetOpCodes())

	m2 := NewMatcher([]rune("xyz"), []rune(""))
	assert.Equal(t, []OpCode{{Delete, 0, 3, 0, 0}}, m2.GetOpCodes())

	m3 := NewMatcher([]rune(""), []rune(""))
	assert.Nil(t, m3.GetOpCodes())
}

func TestGroupOpCodesContext(t *testing.T) {
	a := []rune("123456789")
	b := []rune("1234X6789")
	m := NewMatcher(a, b)

	groups := m.GetGroupedOpCodes(1)
	if assert.Len(t, groups, 1) {
		assert.Equal(t, []OpCode{
			{Equal, 3, 4, 3, 4},
			{Replace, 4, 5, 4, 5},
			{Equal, 5, 6, 5, 6},
		}, groups[0])
	}
}

func TestRoundtrip(t *testing.T) {
	apply := func(a, b []rune, ops []OpCode) string {
		var out []rune
		for _, op := range ops {
			switch op.Tag {
			case Equal:
				out = append(out, a[op.I1:op.I2]...)
			default:
				out = append(out, b[op.J1:op.J2]...)
			}
		}
		return string(out)
	}

	tt := []struct{ a, b string }{
		{"abcdefghijklmnop", "abcdefxydefghijklmnop"},
		{"aBcDec", "abcdec"},
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
	assert.Equal(t, []Block{{0, 0, 2}, {2, 2, 0}}, first)

	m.SetSeqs([]rune("ab"), []rune("ac"))
	second := m.GetMatchingBlocks()
	assert.Equal(t, []Block{{0, 0, 1}, {2, 2, 0}}, second)
}
