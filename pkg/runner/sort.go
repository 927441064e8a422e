package runner

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/rhymesort/pkg/collate"
	"github.com/yaklabco/rhymesort/pkg/lines"
)

// Views holds the two sorted orderings of one collection.
type Views struct {
	Alphabetic []lines.Span
	Rhyme      []lines.Span
}

// SortViews sorts two independent copies of the collection's spans, one per
// rule. With jobs == 1 the sorts run one after the other; otherwise they run
// concurrently. The collection itself is not reordered.
func SortViews(ctx context.Context, coll *lines.Collection, jobs int) (Views, error) {
	views := Views{
		Alphabetic: coll.Clone(),
		Rhyme:      coll.Clone(),
	}

	if jobs == 1 {
		if err := sortView(ctx, coll.Buffer, views.Alphabetic, collate.RuleAlphabet); err != nil {
			return Views{}, err
		}
		if err := sortView(ctx, coll.Buffer, views.Rhyme, collate.RuleRhyme); err != nil {
			return Views{}, err
		}
		return views, nil
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return sortView(groupCtx, coll.Buffer, views.Alphabetic, collate.RuleAlphabet)
	})
	group.Go(func() error {
		return sortView(groupCtx, coll.Buffer, views.Rhyme, collate.RuleRhyme)
	})

	if err := group.Wait(); err != nil {
		return Views{}, err
	}
	return views, nil
}

// sortView sorts spans by rule, turning a panic into ErrInternal.
func sortView(ctx context.Context, buf []byte, spans []lines.Span, rule collate.Rule) (err error) {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("sort by %s: %w", rule, err)
	}

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: sort by %s: %v", ErrInternal, rule, p)
		}
	}()

	collate.Sort(buf, spans, rule)
	return nil
}
