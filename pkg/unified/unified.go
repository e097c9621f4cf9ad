// Package unified renders opcodes produced by a matcher (see package
// patience) into unified-diff text, following the same header and hunk
// layout as bzrlib's unified_diff.
package unified

import (
	"fmt"

	"github.com/pilediff/pilediff/pkg/patience"
)

// Matcher is the subset of patience.Matcher's surface Diff needs. A
// caller can substitute an alternate matcher (see package classic)
// without this package knowing the difference.
type Matcher interface {
	GetGroupedOpCodes(n int) [][]patience.OpCode
}

// Options configures the unified diff header and hunk size. FromFile
// and ToFile are rendered in the --- /+++ header lines; the date
// fields are appended after a tab when non-empty. Context is the
// number of unchanged lines kept around each change. LineTerm
// defaults to "\n" when empty.
type Options struct {
	FromFile     string
	ToFile       string
	FromFileDate string
	ToFileDate   string
	Context      int
	LineTerm     string
}

// Diff renders the unified diff between a and b, already split into
// lines (each including its own trailing terminator), using matcher
// to derive grouped opcodes. It returns nil if the two sequences are
// identical, matching GroupOpCodes' convention of reporting "no
// hunks" rather than an empty header.
func Diff(a, b []string, matcher Matcher, opts Options) []string {
	groups := matcher.GetGroupedOpCodes(opts.Context)
	if len(groups) == 0 {
		return nil
	}

	lineTerm := opts.LineTerm
	if lineTerm == "" {
		lineTerm = "\n"
	}

	out := make([]string, 0, len(groups)*4)
	out = append(out, fromToHeader("---", opts.FromFile, opts.FromFileDate, lineTerm))
	out = append(out, fromToHeader("+++", opts.ToFile, opts.ToFileDate, lineTerm))

	for _, group := range groups {
		first, last := group[0], group[len(group)-1]
		out = append(out, fmt.Sprintf("@@ -%s +%s @@%s",
			rangeStr(first.I1, last.I2), rangeStr(first.J1, last.J2), lineTerm))

		for _, op := range group {
			switch op.Tag {
			case patience.Equal:
				out = appendPrefixed(out, ' ', a[op.I1:op.I2])
			case patience.Delete:
				out = appendPrefixed(out, '-', a[op.I1:op.I2])
			case patience.Insert:
				out = appendPrefixed(out, '+', b[op.J1:op.J2])
			case patience.Replace:
				out = appendPrefixed(out, '-', a[op.I1:op.I2])
				out = appendPrefixed(out, '+', b[op.J1:op.J2])
			}
		}
	}
	return out
}

func appendPrefixed(out []string, prefix byte, lines []string) []string {
	for _, l := range lines {
		out = append(out, string(prefix)+l)
	}
	return out
}

func fromToHeader(marker, name, date, lineTerm string) string {
	if date != "" {
		return marker + " " + name + "\t" + date + lineTerm
	}
	return marker + " " + name + lineTerm
}

// rangeStr renders a half-open interval [lo,hi) in the 1-based,
// start-and-length form unified diff hunk headers use, regardless of
// the interval's length (an empty or single-element range is not
// special-cased).
func rangeStr(lo, hi int) string {
	return fmt.Sprintf("%d,%d", lo+1, hi-lo)
}
