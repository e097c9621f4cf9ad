// Package linediff renders a line-oriented unified diff of two texts
// as a sequence of hunks suitable for driving an HTML template, using
// package patience as its matching engine.
package linediff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pilediff/pilediff/pkg/patience"
)

// Unified is returned by [Diff] as the representation of the unified diff.
type Unified struct {
	OldName string
	NewName string
	Hunks   []Hunk
}

// Hunk is a single hunk of the [Unified] diff.
type Hunk struct {
	LineOld  int
	CountOld int
	LineNew  int
	CountNew int
	Lines    []HunkLine
}

// SplitRow is one row of a side-by-side rendering of a [Hunk]: an
// equal line populates both sides, while a replace run pairs up
// delete and insert lines positionally, leaving the shorter side's
// extra rows blank.
type SplitRow struct {
	Left  *HunkLine
	Right *HunkLine
}

// SplitRows pairs up the hunk's lines for a split-view rendering.
func (h Hunk) SplitRows() []SplitRow {
	var rows []SplitRow
	for i := 0; i < len(h.Lines); {
		if h.Lines[i].Type() == TypeEqual {
			rows = append(rows, SplitRow{Left: &h.Lines[i], Right: &h.Lines[i]})
			i++
			continue
		}
		ins, del := countNextInsertDelete(h.Lines[i:])
		for k := 0; k < max(ins, del); k++ {
			var row SplitRow
			if k < del {
				row.Left = &h.Lines[i+k]
			}
			if k < ins {
				row.Right = &h.Lines[i+del+k]
			}
			rows = append(rows, row)
		}
		i += ins + del
	}
	return rows
}

func countNextInsertDelete(ll []HunkLine) (ins, del int) {
	for _, l := range ll {
		switch l.Type() {
		case TypeInsert:
			ins++
		case TypeDelete:
			del++
		default:
			return
		}
	}
	return
}

// HunkLine is an individual line in a [Hunk].
type HunkLine struct {
	NumberX int
	NumberY int
	Value   string
}

// Possible results of [HunkLine.Type].
const (
	TypeInsert  = "insert"
	TypeDelete  = "delete"
	TypeEqual   = "equal"
	TypeInvalid = "invalid"
)

func (l HunkLine) Type() string {
	switch l.Value[0] {
	case '+':
		return TypeInsert
	case '-':
		return TypeDelete
	case ' ':
		return TypeEqual
	}
	return TypeInvalid
}

func (l HunkLine) Symbol() byte { return l.Value[0] }

func (l HunkLine) Content() string { return string(l.Value[1:]) }

func (d Unified) String() string {
	if len(d.Hunks) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "diff %s %s\n", d.OldName, d.NewName)
	fmt.Fprintf(&b, "--- %s\n", d.OldName)
	fmt.Fprintf(&b, "+++ %s\n", d.NewName)

	for _, hunk := range d.Hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", hunk.LineOld, hunk.CountOld, hunk.LineNew, hunk.CountNew)
		for _, s := range hunk.Lines {
			b.WriteString(s.Value)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Diff returns an anchored diff of the two texts old and new in the
// "unified diff" format. If old and new are identical, Diff returns a
// Unified with no hunks.
//
// The underlying matcher (package patience) anchors on lines that
// appear exactly once in both old and new, recursing into the gaps
// between those anchors. This keeps the diff from reusing unrelated
// blank lines or closing braces the way a naive longest-common-
// subsequence diff can.
func Diff(oldName string, old []byte, newName string, new []byte) Unified {
	return DiffWithOptions(oldName, old, newName, new, Options{Context: 3})
}

// Options are the options that can be passed to [DiffWithOptions].
type Options struct {
	// Normal is a function that "normalizes" the strings, to correct comparison.
	Normal func(s string) string
	// Context are the lines of context to add to the hunks.
	// [Diff] uses a default value of 3.
	Context int
}

// DiffWithOptions performs the diff on the given files, using the given [Options].
func DiffWithOptions(oldName string, old []byte, newName string, new []byte, opts Options) Unified {
	u := Unified{OldName: oldName, NewName: newName}
	if bytes.Equal(old, new) {
		return u
	}

	xDisp, x := lines(old, opts.Normal)
	yDisp, y := lines(new, opts.Normal)

	m := patience.NewMatcher(x, y)
	for _, group := range m.GetGroupedOpCodes(opts.Context) {
		u.Hunks = append(u.Hunks, buildHunk(group, xDisp, yDisp))
	}
	return u
}

func buildHunk(group []patience.OpCode, xDisp, yDisp []string) Hunk {
	first, last := group[0], group[len(group)-1]
	countOld := last.I2 - first.I1
	countNew := last.J2 - first.J1

	h := Hunk{CountOld: countOld, CountNew: countNew}
	if countOld > 0 {
		h.LineOld = first.I1 + 1
	}
	if countNew > 0 {
		h.LineNew = first.J1 + 1
	}

	runningX, runningY := first.I1, first.J1
	for _, op := range group {
		switch op.Tag {
		case patience.Equal:
			for _, s := range xDisp[op.I1:op.I2] {
				runningX++
				runningY++
				h.Lines = append(h.Lines, HunkLine{NumberX: runningX, NumberY: runningY, Value: " " + s})
			}
		case patience.Delete:
			for _, s := range xDisp[op.I1:op.I2] {
				runningX++
				h.Lines = append(h.Lines, HunkLine{NumberX: runningX, NumberY: -1, Value: "-" + s})
			}
		case patience.Insert:
			for _, s := range yDisp[op.J1:op.J2] {
				runningY++
				h.Lines = append(h.Lines, HunkLine{NumberX: -1, NumberY: runningY, Value: "+" + s})
			}
		case patience.Replace:
			for _, s := range xDisp[op.I1:op.I2] {
				runningX++
				h.Lines = append(h.Lines, HunkLine{NumberX: runningX, NumberY: -1, Value: "-" + s})
			}
			for _, s := range yDisp[op.J1:op.J2] {
				runningY++
				h.Lines = append(h.Lines, HunkLine{NumberX: -1, NumberY: runningY, Value: "+" + s})
			}
		}
	}
	return h
}

// lines returns the lines in the file x, without their newlines.
// If the file does not end in a newline, the last line gets a
// newline and a warning about the missing newline appended.
func lines(x []byte, normal func(s string) string) ([]string, []string) {
	// disp is how the lines are displayed and how they originate from the
	// source, while cmp is how they are compared.
	disp := strings.Split(string(x), "\n")
	if disp[len(disp)-1] == "" {
		disp = disp[:len(disp)-1]
	} else {
		// Treat last line as having a message about the missing newline attached,
		// using the same text as BSD/GNU diff (including the leading backslash).
		disp[len(disp)-1] += "\n\\ No newline at end of file"
	}
	if normal == nil {
		return disp, disp
	}

	cmp := make([]string, len(disp))
	for i, s := range disp {
		cmp[i] = normal(s)
	}
	return disp, cmp
}
