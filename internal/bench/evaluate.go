package bench

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/jamesainslie/go-tinyseg"
	"github.com/jamesainslie/go-tinyseg/batch"
)

// TokenBoundaries returns the sorted, distinct start and end offsets of
// tokens.
func TokenBoundaries(tokens []tinyseg.Token) []int {
	return lo.Uniq(lo.FlatMap(tokens, func(t tinyseg.Token, _ int) []int {
		return []int{t.Start, t.End}
	}))
}

// EvaluateDocument tokenizes one document and scores its boundaries.
func EvaluateDocument(doc *Document, cfg Config) Metrics {
	tokens := tinyseg.Tokenize(doc.Text, tinyseg.WithBufferSize(cfg.BufferSize))
	return Evaluate(TokenBoundaries(tokens), Boundaries(doc.Words), cfg)
}

// EvaluateCorpus tokenizes every document concurrently and returns the
// pooled metrics.
func EvaluateCorpus(ctx context.Context, docs []*Document, cfg Config) (Metrics, error) {
	pool := batch.NewPool(cfg.Workers, tinyseg.WithBufferSize(cfg.BufferSize))
	defer func() { _ = pool.Close() }()

	texts := lo.Map(docs, func(d *Document, _ int) string { return d.Text })
	results, err := pool.TokenizeAll(ctx, texts)
	if err != nil {
		return Metrics{}, fmt.Errorf("tokenizing corpus: %w", err)
	}

	var total Metrics
	for i, doc := range docs {
		m := Evaluate(TokenBoundaries(results[i]), Boundaries(doc.Words), cfg)
		total = total.Add(m, cfg)
	}
	return total, nil
}
