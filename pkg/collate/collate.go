// Package collate orders line spans alphabetically and by rhyme.
//
// Both orderings fold ASCII case and ignore the non-alphabetic bytes at the
// end they start from. Comparison runs only over the shorter of the two
// trimmed lines, so a line that is a case-folded prefix (or, for rhymes, a
// suffix) of another compares equal to it. There is no length tie-break.
package collate

import (
	"slices"

	"github.com/yaklabco/rhymesort/pkg/lines"
)

// Rule names an ordering.
type Rule string

const (
	// RuleAlphabet orders lines from their first letter forward.
	RuleAlphabet Rule = "alphabet"

	// RuleRhyme orders lines from their last letter backward.
	RuleRhyme Rule = "rhyme"
)

// Func compares two spans and returns a negative number, zero, or a positive number.
type Func func(a, b lines.Span) int

// For returns the comparison function for rule over buf.
// It returns nil for an unknown rule.
func For(rule Rule, buf []byte) Func {
	switch rule {
	case RuleAlphabet:
		return Alphabetic(buf)
	case RuleRhyme:
		return Rhyme(buf)
	default:
		return nil
	}
}

// Sort orders spans in place by rule. Only the span slice is reordered.
func Sort(buf []byte, spans []lines.Span, rule Rule) {
	cmp := For(rule, buf)
	if cmp == nil {
		panic("collate: unknown rule " + string(rule))
	}
	slices.SortStableFunc(spans, cmp)
}

// fold lowercases an ASCII letter and returns other bytes unchanged.
func fold(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func sign(a, b byte) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
