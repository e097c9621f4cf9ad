package patience

import "sort"

// UniqueLCS returns the longest common subsequence of a[aLo:aHi] and
// b[bLo:bHi], considering only elements that appear exactly once in
// each sub-slice. Pairs are returned in increasing order of both I and
// J, with absolute indices into a and b.
func UniqueLCS[E comparable](a, b []E, aLo, aHi, bLo, bHi int) []Pair {
	// Index elements of a that occur exactly once in the sub-slice.
	aIndex := make(map[E]int, aHi-aLo)
	seen := make(map[E]bool, aHi-aLo)
	for i := aLo; i < aHi; i++ {
		v := a[i]
		if seen[v] {
			delete(aIndex, v)
			continue
		}
		seen[v] = true
		aIndex[v] = i
	}

	// Walk b in order, keeping only elements unique in a that also turn
	// out to be unique in b. bCount tracks how many times each such
	// value has been seen so far in b.
	type occurrence struct{ i, j int }
	bCount := make(map[E]int, bHi-bLo)
	occurrences := make([]occurrence, 0, len(aIndex))
	for j := bLo; j < bHi; j++ {
		v := b[j]
		i, ok := aIndex[v]
		if !ok {
			continue
		}
		bCount[v]++
		if bCount[v] == 1 {
			occurrences = append(occurrences, occurrence{i, j})
		}
	}

	// Filter out occurrences whose value turned out non-unique in b.
	// Safe to filter in place: the write index never exceeds the read
	// index.
	pairs := occurrences[:0]
	for _, o := range occurrences {
		if bCount[b[o.j]] == 1 {
			pairs = append(pairs, o)
		}
	}
	if len(pairs) == 0 {
		return nil
	}

	// Patience sort: pairs is already sorted by J (built in b-order), so
	// the longest common subsequence is the longest increasing
	// subsequence of I. Maintain one pile per subsequence length; each
	// pile's top is the index (into pairs) of the smallest I ending a
	// subsequence of that length, with back to chain to the previous
	// element.
	piles := make([]int, 0, len(pairs))
	back := make([]int, len(pairs))
	for idx, p := range pairs {
		k := sort.Search(len(piles), func(k int) bool {
			return pairs[piles[k]].i >= p.i
		})
		if k > 0 {
			back[idx] = piles[k-1]
		} else {
			back[idx] = -1
		}
		if k == len(piles) {
			piles = append(piles, idx)
		} else {
			piles[k] = idx
		}
	}

	result := make([]Pair, len(piles))
	idx := piles[len(piles)-1]
	for k := len(piles) - 1; k >= 0; k-- {
		result[k] = Pair{pairs[idx].i, pairs[idx].j}
		idx = back[idx]
	}
	return result
}
