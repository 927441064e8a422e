package collate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/rhymesort/pkg/collate"
	"github.com/yaklabco/rhymesort/pkg/lines"
)

// extract splits the given lines into a collection without a trailing empty line.
func extract(t *testing.T, text ...string) *lines.Collection {
	t.Helper()

	coll, err := lines.Extract([]byte(strings.Join(text, "\n")), lines.DefaultLimits())
	require.NoError(t, err)
	require.Equal(t, len(text), coll.Len())

	return coll
}

func render(coll *lines.Collection, spans []lines.Span) []string {
	out := make([]string, 0, len(spans))
	for _, span := range spans {
		out = append(out, string(lines.Bytes(coll.Buffer, span)))
	}
	return out
}

func TestAlphabeticScenario(t *testing.T) {
	t.Parallel()

	coll, err := lines.Extract([]byte("Banana\napple\nCherry\n"), lines.DefaultLimits())
	require.NoError(t, err)

	spans := coll.Clone()
	collate.Sort(coll.Buffer, spans, collate.RuleAlphabet)

	var got []string
	for _, span := range spans {
		if !span.Trivial() {
			got = append(got, string(lines.Bytes(coll.Buffer, span)))
		}
	}
	assert.Equal(t, []string{"apple", "Banana", "Cherry"}, got)
}

func TestRhymeOrder(t *testing.T) {
	t.Parallel()

	coll := extract(t, "cat", "dog", "bat")

	spans := coll.Clone()
	collate.Sort(coll.Buffer, spans, collate.RuleRhyme)

	assert.Equal(t, []string{"dog", "bat", "cat"}, render(coll, spans))
}

func TestComparePairs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     string
		alphabet int
		rhyme    int
	}{
		{"identical", "apple", "apple", 0, 0},
		{"case folded", "APPLE", "apple", 0, 0},
		{"leading punctuation ignored", "...Apple", "apple", 0, 0},
		{"trailing punctuation ignored by rhyme", "Hello!", "Hello", 0, 0},
		{"same rhyme different start", "say hello, world", "Hello, WORLD!", 1, 0},
		{"rhyme diverges inside the line", "Hello, world", "GOODBYE WORLD", 1, -1},
		{"alphabetic less", "apple", "Banana", -1, 1},
		{"rhyme greater", "fish", "bird", 1, 1},
		{"prefix compares equal", "app", "Apple", 0, 1},
		{"suffix compares equal under rhyme", "ring", "string", -1, 0},
		{"all punctuation vs word", "!!!", "word", 0, 0},
		{"both all punctuation", "!!!", "###", 0, 0},
		{"digits are skipped at the front", "1. zebra", "zebra", 0, 0},
		{"inner punctuation compares by byte", "a-b", "a b", 1, 1},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			coll := extract(t, testCase.a, testCase.b)
			a, b := coll.Spans[0], coll.Spans[1]

			assert.Equal(t, testCase.alphabet, collate.CompareAlphabetic(coll.Buffer, a, b), "alphabetic")
			assert.Equal(t, -testCase.alphabet, collate.CompareAlphabetic(coll.Buffer, b, a), "alphabetic reversed")
			assert.Equal(t, testCase.rhyme, collate.CompareRhyme(coll.Buffer, a, b), "rhyme")
			assert.Equal(t, -testCase.rhyme, collate.CompareRhyme(coll.Buffer, b, a), "rhyme reversed")
		})
	}
}

func TestOrderingProperties(t *testing.T) {
	t.Parallel()

	coll := extract(t,
		"pear", "Apple", "banana", "...cherry", "date!", "", "x",
		"!!!", "Fig tree", "grape?", "  kiwi", "LEMON", "melon.",
	)

	for _, rule := range []collate.Rule{collate.RuleAlphabet, collate.RuleRhyme} {
		t.Run(string(rule), func(t *testing.T) {
			t.Parallel()

			cmp := collate.For(rule, coll.Buffer)
			require.NotNil(t, cmp)

			for _, a := range coll.Spans {
				assert.Zero(t, cmp(a, a), "reflexive for %q", lines.Bytes(coll.Buffer, a))
				for _, b := range coll.Spans {
					assert.Equal(t, cmp(a, b), -cmp(b, a), "antisymmetric for %q, %q",
						lines.Bytes(coll.Buffer, a), lines.Bytes(coll.Buffer, b))
				}
			}

			first := coll.Clone()
			collate.Sort(coll.Buffer, first, rule)

			second := append([]lines.Span(nil), first...)
			collate.Sort(coll.Buffer, second, rule)

			assert.Equal(t, first, second, "sorting twice must be a no-op")
			assert.ElementsMatch(t, coll.Spans, first, "sorting must only permute spans")
		})
	}
}

func TestSortLeavesBufferUntouched(t *testing.T) {
	t.Parallel()

	content := "zeta\nalpha\nmu\n"
	coll, err := lines.Extract([]byte(content), lines.DefaultLimits())
	require.NoError(t, err)

	spans := coll.Clone()
	collate.Sort(coll.Buffer, spans, collate.RuleAlphabet)
	collate.Sort(coll.Buffer, spans, collate.RuleRhyme)

	assert.Equal(t, content, string(coll.Buffer))
	assert.Equal(t, "zeta", string(coll.Line(0)))
}

func TestAllPunctuationInput(t *testing.T) {
	t.Parallel()

	coll, err := lines.Extract([]byte("!!!\n###\n"), lines.DefaultLimits())
	require.NoError(t, err)

	for _, rule := range []collate.Rule{collate.RuleAlphabet, collate.RuleRhyme} {
		spans := coll.Clone()
		assert.NotPanics(t, func() { collate.Sort(coll.Buffer, spans, rule) })

		cmp := collate.For(rule, coll.Buffer)
		for _, a := range coll.Spans {
			for _, b := range coll.Spans {
				assert.Zero(t, cmp(a, b))
			}
		}
	}
}

func TestUnknownRule(t *testing.T) {
	t.Parallel()

	assert.Nil(t, collate.For("length", []byte("a")))
	assert.Panics(t, func() {
		collate.Sort([]byte("a"), []lines.Span{{Start: 0, Len: 1}}, "length")
	})
}
