// Command patiencediff prints a unified diff of two files, in the
// style of the reference `python -m patiencediff`.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pilediff/pilediff/pkg/classic"
	"github.com/pilediff/pilediff/pkg/patience"
	"github.com/pilediff/pilediff/pkg/unified"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("patiencediff", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Bool("patience", true, "use the patience matcher (default)")
	useDifflib := fs.Bool("difflib", false, "use the classic longest-common-subsequence matcher instead of patience")
	context := fs.Int("u", 3, "number of context lines")
	fs.IntVar(context, "context", 3, "number of context lines (alias of -u)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() != 2 {
		fmt.Fprintln(stderr, "usage: patiencediff [--patience|--difflib] [-u N] file_a file_b")
		return 2
	}
	nameA, nameB := fs.Arg(0), fs.Arg(1)

	a, err := readLines(nameA)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	b, err := readLines(nameB)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	var matcher unified.Matcher
	if *useDifflib {
		matcher = classic.NewMatcher(a, b)
	} else {
		matcher = patience.NewMatcher(a, b)
	}

	w := bufio.NewWriter(stdout)
	for _, line := range unified.Diff(a, b, matcher, unified.Options{
		FromFile: nameA,
		ToFile:   nameB,
		Context:  *context,
	}) {
		w.WriteString(line)
	}
	w.Flush()
	return 0
}

// readLines reads name (or stdin, when name is "-") and splits it on
// '\n', keeping each line's terminator attached, mirroring Python's
// readlines().
func readLines(name string) ([]string, error) {
	var data []byte
	var err error
	if name == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	var lines []string
	start := 0
	for i, c := range data {
		if c == '\n' {
			lines = append(lines, string(data[start:i+1]))
			start = i + 1
		}
	}
	if start < len(data) {
		lines = append(lines, string(data[start:]))
	}
	return lines, nil
}
