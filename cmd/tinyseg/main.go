// Command tinyseg splits Japanese text into words.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/jamesainslie/go-tinyseg"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type options struct {
	bufferSize int
	locale     string
	verbose    bool
	format     string
}

func main() {
	root := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	err := fang.Execute(context.Background(), root,
		fang.WithVersion(version),
		fang.WithCommit(commit),
	)
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "tinyseg",
		Short:        "Dictionary-free Japanese word segmentation",
		Long:         "tinyseg splits text into words with a compact boundary model.\nText is read from the arguments, or from stdin when none are given.",
		Version:      fmt.Sprintf("%s (%s, %s)", version, commit, date),
		SilenceUsage: true,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.IntVar(&opts.bufferSize, "buffer-size", 4096, "read buffer size in UTF-16 code units")
	pf.StringVar(&opts.locale, "locale", "ja", "BCP 47 tag selecting the sentence rules")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		newTokenizeCmd(opts),
		newSentencesCmd(opts),
		newBreaksCmd(opts),
		newAnalyzeCmd(opts),
	)
	return root
}

// tokenizerOptions turns the shared flags into tokenizer options.
func (o *options) tokenizerOptions(cmd *cobra.Command) ([]tinyseg.Option, error) {
	tag, err := language.Parse(o.locale)
	if err != nil {
		return nil, fmt.Errorf("invalid --locale %q: %w", o.locale, err)
	}

	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return []tinyseg.Option{
		tinyseg.WithBufferSize(o.bufferSize),
		tinyseg.WithLocale(tag),
		tinyseg.WithLogger(logger),
	}, nil
}

// input returns the text named by args, or stdin when there are none.
func input(cmd *cobra.Command, args []string) io.Reader {
	if len(args) > 0 {
		return strings.NewReader(strings.Join(args, " "))
	}
	return cmd.InOrStdin()
}
