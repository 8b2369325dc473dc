package bench

import (
	"context"
	"slices"
	"testing"
)

func TestSweepBufferSizes(t *testing.T) {
	got := SweepBufferSizes(64, 1024)
	want := []int{64, 128, 256, 512, 1024}
	if !slices.Equal(got, want) {
		t.Errorf("SweepBufferSizes() = %v, want %v", got, want)
	}

	if got := SweepBufferSizes(0, 8); !slices.Equal(got, []int{2, 4, 8}) {
		t.Errorf("SweepBufferSizes(0, 8) = %v", got)
	}
}

func TestSweep(t *testing.T) {
	docs := []*Document{testDocument()}
	results, err := Sweep(context.Background(), docs, DefaultConfig(), []int{4, 4096})
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Metrics.WeightedScore < results[1].Metrics.WeightedScore {
		t.Errorf("results not sorted: %+v", results)
	}
	for _, r := range results {
		if r.BufferSize == 4096 && r.Metrics.FalseNegatives != 1 {
			t.Errorf("4096 unit buffer: %+v", r.Metrics)
		}
	}
}
