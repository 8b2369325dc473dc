package bench

import (
	"context"
	"sort"
)

// SweepResult holds metrics for one buffer size.
type SweepResult struct {
	BufferSize int
	Metrics    Metrics
}

// SweepBufferSizes returns sizes from min up to max, doubling each step.
func SweepBufferSizes(min, max int) []int {
	if min < 2 {
		min = 2
	}
	var sizes []int
	for n := min; n <= max; n *= 2 {
		sizes = append(sizes, n)
	}
	return sizes
}

// Sweep evaluates the corpus at each buffer size and returns results
// sorted by weighted score. Small buffers force cuts inside sentences,
// which shows up as lost accuracy.
func Sweep(ctx context.Context, docs []*Document, cfg Config, sizes []int) ([]SweepResult, error) {
	var results []SweepResult

	for _, size := range sizes {
		cfg.BufferSize = size
		m, err := EvaluateCorpus(ctx, docs, cfg)
		if err != nil {
			return nil, err
		}
		results = append(results, SweepResult{BufferSize: size, Metrics: m})
	}

	// Sort by weighted score descending, larger buffers first on ties
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Metrics.WeightedScore != results[j].Metrics.WeightedScore {
			return results[i].Metrics.WeightedScore > results[j].Metrics.WeightedScore
		}
		return results[i].BufferSize > results[j].BufferSize
	})

	return results, nil
}
