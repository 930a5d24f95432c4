package docdiff

import (
	"context"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Pair holds the page texts of two documents to compare.
type Pair struct {
	Old []string
	New []string
}

// CompareAll runs Compare on every pair concurrently. The returned results are
// index-aligned with pairs. Once ctx is done no further pairs are started and
// ctx.Err() is returned; comparisons already running finish normally.
func CompareAll(ctx context.Context, pairs []Pair, o ...FuncOption) ([]*Result, error) {
	cfg := newConfig(o)

	limit := cfg.concurrency
	if limit < 1 {
		limit = runtime.GOMAXPROCS(0)
	}

	results := make([]*Result, len(pairs))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)

	for n, p := range pairs {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			r, err := Compare(p.Old, p.New, o...)
			if err != nil {
				return err
			}
			results[n] = r
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		cfg.logger.Warn("batch comparison stopped", zap.Error(err))
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg.logger.Debug("batch comparison complete", zap.Int("pairs", len(pairs)))
	return results, nil
}
