// Command tinyseg-bench scores segmentation against a hand-segmented corpus.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/jamesainslie/go-tinyseg/internal/bench"
)

var version = "dev"

type options struct {
	corpus   string
	cfg      bench.Config
	sweep    bool
	sweepMin int
	sweepMax int
}

func main() {
	if err := fang.Execute(context.Background(), newRootCmd(os.Stdout), fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{cfg: bench.DefaultConfig()}

	cmd := &cobra.Command{
		Use:          "tinyseg-bench",
		Short:        "Measure word boundary precision and recall on a gold corpus",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}
	cmd.SetOut(out)

	f := cmd.Flags()
	f.StringVar(&opts.corpus, "corpus", "testdata/ud", "directory of space-segmented .txt files")
	f.IntVar(&opts.cfg.BufferSize, "buffer-size", opts.cfg.BufferSize, "tokenizer buffer size in UTF-16 code units")
	f.IntVar(&opts.cfg.Workers, "workers", opts.cfg.Workers, "documents tokenized concurrently")
	f.IntVar(&opts.cfg.Tolerance, "tolerance", opts.cfg.Tolerance, "byte tolerance for boundary matching")
	f.Float64Var(&opts.cfg.PrecisionWeight, "wp", opts.cfg.PrecisionWeight, "precision weight")
	f.Float64Var(&opts.cfg.RecallWeight, "wr", opts.cfg.RecallWeight, "recall weight")
	f.BoolVar(&opts.sweep, "sweep", false, "evaluate a range of buffer sizes")
	f.IntVar(&opts.sweepMin, "sweep-min", 16, "smallest buffer size in the sweep")
	f.IntVar(&opts.sweepMax, "sweep-max", 4096, "largest buffer size in the sweep")
	return cmd
}

func run(ctx context.Context, out io.Writer, opts *options) error {
	docs, err := bench.LoadCorpus(opts.corpus)
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}
	fmt.Fprintf(out, "Loaded %d documents from %s\n\n", len(docs), opts.corpus)

	if opts.sweep {
		return runSweep(ctx, out, docs, opts)
	}

	m, err := bench.EvaluateCorpus(ctx, docs, opts.cfg)
	if err != nil {
		return err
	}
	printMetrics(out, m)
	return nil
}

func runSweep(ctx context.Context, out io.Writer, docs []*bench.Document, opts *options) error {
	sizes := bench.SweepBufferSizes(opts.sweepMin, opts.sweepMax)
	results, err := bench.Sweep(ctx, docs, opts.cfg, sizes)
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}

	fmt.Fprintf(out, "Buffer Size Sweep (wp=%.1f, wr=%.1f)\n", opts.cfg.PrecisionWeight, opts.cfg.RecallWeight)
	fmt.Fprintln(out, strings.Repeat("-", 50))
	fmt.Fprintf(out, "%-8s %-8s %-8s %-8s %-8s\n", "Buffer", "Prec", "Rec", "F1", "Weighted")

	// Print sorted by size for readability
	bySize := slices.Clone(results)
	slices.SortFunc(bySize, func(a, b bench.SweepResult) int { return a.BufferSize - b.BufferSize })
	for _, r := range bySize {
		fmt.Fprintf(out, "%-8d %-8.4f %-8.4f %-8.4f %-8.4f\n",
			r.BufferSize, r.Metrics.Precision, r.Metrics.Recall, r.Metrics.F1, r.Metrics.WeightedScore)
	}

	fmt.Fprintln(out, strings.Repeat("-", 50))
	if len(results) > 0 {
		best := results[0]
		fmt.Fprintf(out, "Optimal: %d (Weighted: %.4f)\n", best.BufferSize, best.Metrics.WeightedScore)
	}
	return nil
}

func printMetrics(out io.Writer, m bench.Metrics) {
	fmt.Fprintf(out, "Precision: %.4f  Recall: %.4f  F1: %.4f  Weighted: %.4f\n",
		m.Precision, m.Recall, m.F1, m.WeightedScore)
	fmt.Fprintf(out, "(TP: %d, FP: %d, FN: %d)\n", m.TruePositives, m.FalsePositives, m.FalseNegatives)
}
