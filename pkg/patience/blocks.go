package patience

import "sort"

// matchingBlocks runs the recursive matcher over the full sequences and
// consolidates the resulting pairs into the canonical block list,
// terminated by the sentinel block (lenA, lenB, 0).
func matchingBlocks[E comparable](a, b []E) []Block {
	var pairs []Pair
	recurseMatches(a, b, 0, 0, len(a), len(b), &pairs, maxRecursionDepth)

	// recurseMatches emits pairs in increasing order of both I and J;
	// sort anyway, defensively, before coalescing.
	sort.Slice(pairs, func(x, y int) bool {
		if pairs[x].I != pairs[y].I {
			return pairs[x].I < pairs[y].I
		}
		return pairs[x].J < pairs[y].J
	})

	blocks := make([]Block, 0, len(pairs)+1)
	for _, p := range pairs {
		if n := len(blocks); n > 0 {
			last := &blocks[n-1]
			if last.I+last.N == p.I && last.J+last.N == p.J {
				last.N++
				continue
			}
		}
		blocks = append(blocks, Block{I: p.I, J: p.J, N: 1})
	}

	blocks = append(blocks, Block{I: len(a), J: len(b), N: 0})
	return blocks
}
