package patience

// Matcher is a stateful façade over two sequences, caching the derived
// matching blocks and opcodes across queries. The zero value is not
// usable; construct one with [NewMatcher].
//
// A Matcher is not safe for concurrent use while its sequences are
// being changed via SetSeq1/SetSeq2/SetSeqs, but concurrent read-only
// queries are fine once the caches below have been populated by a
// single goroutine.
type Matcher[E comparable] struct {
	a, b []E

	blocks []Block
	ops    []OpCode
}

// NewMatcher returns a Matcher over a and b. The junk predicate slot
// present in other SequenceMatcher implementations has no equivalent
// here: patience diff anchors on uniqueness alone and does not
// special-case "junk" elements.
func NewMatcher[E comparable](a, b []E) *Matcher[E] {
	return &Matcher[E]{a: a, b: b}
}

// SetSeq1 replaces the first sequence and invalidates any cached
// results.
func (m *Matcher[E]) SetSeq1(a []E) {
	m.a = a
	m.invalidate()
}

// SetSeq2 replaces the second sequence and invalidates any cached
// results.
func (m *Matcher[E]) SetSeq2(b []E) {
	m.b = b
	m.invalidate()
}

// SetSeqs replaces both sequences and invalidates any cached results.
func (m *Matcher[E]) SetSeqs(a, b []E) {
	m.a, m.b = a, b
	m.invalidate()
}

func (m *Matcher[E]) invalidate() {
	m.blocks = nil
	m.ops = nil
}

// GetMatchingBlocks returns the matching blocks for the two sequences,
// computing and caching them on first call. The result always ends
// with the sentinel block (len(a), len(b), 0).
func (m *Matcher[E]) GetMatchingBlocks() []Block {
	if m.blocks == nil {
		m.blocks = matchingBlocks(m.a, m.b)
	}
	return m.blocks
}

// GetOpCodes returns the opcodes describing how to turn the first
// sequence into the second, computing and caching them on first call.
func (m *Matcher[E]) GetOpCodes() []OpCode {
	if m.ops == nil {
		m.ops = OpCodesFromBlocks(m.GetMatchingBlocks())
	}
	return m.ops
}

// GetGroupedOpCodes groups the opcodes into hunks with n elements of
// context around each change; see [GroupOpCodes]. It does not cache
// its result, since n varies across calls.
func (m *Matcher[E]) GetGroupedOpCodes(n int) [][]OpCode {
	return GroupOpCodes(m.GetOpCodes(), n)
}
