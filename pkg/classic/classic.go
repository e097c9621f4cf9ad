// MIT License

// Copyright (c) 2022 Peter Evans

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package classic implements a plain longest-common-subsequence
// matcher, with no restriction that matched elements be unique in
// either sequence. It is the --difflib alternative to package
// patience's unique-anchor heuristic: slower (the DP table is
// O(len(a)*len(b))) and more willing to align repeated lines such as
// blank lines or closing braces.
package classic

import "github.com/pilediff/pilediff/pkg/patience"

// Matcher mirrors patience.Matcher's façade, letting callers swap
// matching strategies without touching downstream rendering code.
type Matcher[E comparable] struct {
	a, b []E

	blocks []patience.Block
	ops    []patience.OpCode
}

// NewMatcher returns a Matcher over a and b.
func NewMatcher[E comparable](a, b []E) *Matcher[E] {
	return &Matcher[E]{a: a, b: b}
}

func (m *Matcher[E]) SetSeq1(a []E)    { m.a = a; m.invalidate() }
func (m *Matcher[E]) SetSeq2(b []E)    { m.b = b; m.invalidate() }
func (m *Matcher[E]) SetSeqs(a, b []E) { m.a, m.b = a, b; m.invalidate() }

func (m *Matcher[E]) invalidate() {
	m.blocks = nil
	m.ops = nil
}

// GetMatchingBlocks returns the matching blocks for the two sequences,
// computing and caching them on first call.
func (m *Matcher[E]) GetMatchingBlocks() []patience.Block {
	if m.blocks == nil {
		m.blocks = lcsBlocks(m.a, m.b)
	}
	return m.blocks
}

// GetOpCodes returns the opcodes describing how to turn the first
// sequence into the second.
func (m *Matcher[E]) GetOpCodes() []patience.OpCode {
	if m.ops == nil {
		m.ops = patience.OpCodesFromBlocks(m.GetMatchingBlocks())
	}
	return m.ops
}

// GetGroupedOpCodes groups the opcodes into hunks with n elements of
// context around each change.
func (m *Matcher[E]) GetGroupedOpCodes(n int) [][]patience.OpCode {
	return patience.GroupOpCodes(m.GetOpCodes(), n)
}

// lcsPairs computes the longest common subsequence of a and b via the
// classic dynamic programming table, then backtracks it into the
// matched index pairs in increasing order.
func lcsPairs[E comparable](a, b []E) []patience.Pair {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return nil
	}

	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			switch {
			case a[i-1] == b[j-1]:
				lcs[i][j] = lcs[i-1][j-1] + 1
			case lcs[i-1][j] > lcs[i][j-1]:
				lcs[i][j] = lcs[i-1][j]
			default:
				lcs[i][j] = lcs[i][j-1]
			}
		}
	}

	pairs := make([]patience.Pair, 0, lcs[n][m])
	for i, j := n, m; i > 0 && j > 0; {
		switch {
		case a[i-1] == b[j-1]:
			i--
			j--
			pairs = append(pairs, patience.Pair{I: i, J: j})
		case lcs[i-1][j] > lcs[i][j-1]:
			i--
		default:
			j--
		}
	}
	for l, r := 0, len(pairs)-1; l < r; l, r = l+1, r-1 {
		pairs[l], pairs[r] = pairs[r], pairs[l]
	}
	return pairs
}

// lcsBlocks consolidates the pairs from lcsPairs into the same Block
// representation package patience produces, terminated by the
// sentinel block (len(a), len(b), 0).
func lcsBlocks[E comparable](a, b []E) []patience.Block {
	pairs := lcsPairs(a, b)

	blocks := make([]patience.Block, 0, len(pairs)+1)
	for _, p := range pairs {
		if n := len(blocks); n > 0 {
			last := &blocks[n-1]
			if last.I+last.N == p.I && last.J+last.N == p.J {
				last.N++
				continue
			}
		}
		blocks = append(blocks, patience.Block{I: p.I, J: p.J, N: 1})
	}
	blocks = append(blocks, patience.Block{I: len(a), J: len(b), N: 0})
	return blocks
}
