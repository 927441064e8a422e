package collate_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/yaklabco/rhymesort/pkg/collate"
	"github.com/yaklabco/rhymesort/pkg/lines"
)

func benchCollection(b *testing.B, n int) *lines.Collection {
	b.Helper()

	words := []string{"moon", "June", "spoon", "tune", "night", "light", "Bright!", "...sight", "day", "May"}
	var sb strings.Builder
	for i := range n {
		fmt.Fprintf(&sb, "%s %d %s\n", words[i%len(words)], i, words[(i*7)%len(words)])
	}

	coll, err := lines.Extract([]byte(sb.String()), lines.DefaultLimits())
	if err != nil {
		b.Fatalf("extract: %v", err)
	}
	return coll
}

func benchmarkSort(b *testing.B, rule collate.Rule) {
	coll := benchCollection(b, 10_000)
	b.ResetTimer()
	for range b.N {
		collate.Sort(coll.Buffer, coll.Clone(), rule)
	}
}

func BenchmarkSortAlphabet(b *testing.B) {
	benchmarkSort(b, collate.RuleAlphabet)
}

func BenchmarkSortRhyme(b *testing.B) {
	benchmarkSort(b, collate.RuleRhyme)
}

func BenchmarkExtract(b *testing.B) {
	coll := benchCollection(b, 10_000)
	b.ResetTimer()
	for range b.N {
		if _, err := lines.Extract(coll.Buffer, lines.DefaultLimits()); err != nil {
			b.Fatal(err)
		}
	}
}
