package bench

import "github.com/jamesainslie/go-tinyseg/internal/charbuf"

// Config holds evaluation parameters.
type Config struct {
	BufferSize      int // tokenizer buffer, in UTF-16 code units
	Workers         int // documents tokenized concurrently
	Tolerance       int // byte match tolerance
	PrecisionWeight float64
	RecallWeight    float64
}

// DefaultConfig returns default evaluation configuration.
func DefaultConfig() Config {
	return Config{
		BufferSize:      charbuf.DefaultSize,
		Workers:         4,
		Tolerance:       0,
		PrecisionWeight: 1.0,
		RecallWeight:    1.0,
	}
}

// Metrics holds evaluation results.
type Metrics struct {
	TruePositives  int
	FalsePositives int
	FalseNegatives int
	Precision      float64
	Recall         float64
	F1             float64
	WeightedScore  float64
}

// Add accumulates counts from other and recomputes the ratios.
func (m Metrics) Add(other Metrics, cfg Config) Metrics {
	return score(m.TruePositives+other.TruePositives,
		m.FalsePositives+other.FalsePositives,
		m.FalseNegatives+other.FalseNegatives, cfg)
}

// Evaluate compares predicted boundaries against ground truth. Both slices
// must be sorted ascending. Uses greedy left-to-right matching within
// tolerance.
func Evaluate(predicted, truth []int, cfg Config) Metrics {
	matched := make([]bool, len(truth))
	tp := 0
	first := 0

	for _, p := range predicted {
		for first < len(truth) && (matched[first] || truth[first] < p-cfg.Tolerance) {
			first++
		}
		for i := first; i < len(truth) && truth[i] <= p+cfg.Tolerance; i++ {
			if !matched[i] {
				matched[i] = true
				tp++
				break
			}
		}
	}

	return score(tp, len(predicted)-tp, len(truth)-tp, cfg)
}

func score(tp, fp, fn int, cfg Config) Metrics {
	m := Metrics{
		TruePositives:  tp,
		FalsePositives: fp,
		FalseNegatives: fn,
	}

	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}

	wp := cfg.PrecisionWeight
	wr := cfg.RecallWeight
	if wp+wr > 0 {
		m.WeightedScore = (wp*m.Precision + wr*m.Recall) / (wp + wr)
	}

	return m
}
