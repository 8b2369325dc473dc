package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf16"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/jamesainslie/go-tinyseg"
	"github.com/jamesainslie/go-tinyseg/analysis"
	"github.com/jamesainslie/go-tinyseg/model"
	"github.com/jamesainslie/go-tinyseg/sentence"
	"github.com/jamesainslie/go-tinyseg/wire"
)

var formats = []string{"text", "tsv", "json", "wire"}

func newTokenizeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [text...]",
		Short: "Print the words of the input",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !lo.Contains(formats, opts.format) {
				return fmt.Errorf("unknown format %q, want one of %v", opts.format, formats)
			}
			topts, err := opts.tokenizerOptions(cmd)
			if err != nil {
				return err
			}
			tok := tinyseg.New(input(cmd, args), topts...)
			return writeTokens(cmd.OutOrStdout(), opts.format, tok)
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format: text, tsv, json or wire")
	return cmd
}

func writeTokens(out io.Writer, format string, tok *tinyseg.Tokenizer) error {
	if format == "wire" {
		_, err := wire.NewEncoder(out).Copy(tok.All())
		return err
	}

	w := bufio.NewWriter(out)
	enc := json.NewEncoder(w)
	for t, err := range tok.All() {
		if err != nil {
			return err
		}
		switch format {
		case "text":
			fmt.Fprintln(w, t.Text)
		case "tsv":
			fmt.Fprintf(w, "%s\t%d\t%d\n", t.Text, t.Start, t.End)
		case "json":
			if err := enc.Encode(t); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format %q", format)
		}
	}
	return w.Flush()
}

func newSentencesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sentences [text...]",
		Short: "Print the sentences of the input, one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := language.Parse(opts.locale)
			if err != nil {
				return fmt.Errorf("invalid --locale %q: %w", opts.locale, err)
			}
			units, err := readUnits(input(cmd, args))
			if err != nil {
				return err
			}

			w := bufio.NewWriter(cmd.OutOrStdout())
			for _, s := range sentence.Split(sentence.ForLocale(tag), units) {
				fmt.Fprintf(w, "%q\n", string(utf16.Decode(units[s.Start:s.End])))
			}
			return w.Flush()
		},
	}
}

func newBreaksCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "breaks [text...]",
		Short: "Print the boundary score between each pair of characters",
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := language.Parse(opts.locale)
			if err != nil {
				return fmt.Errorf("invalid --locale %q: %w", opts.locale, err)
			}
			units, err := readUnits(input(cmd, args))
			if err != nil {
				return err
			}

			w := bufio.NewWriter(cmd.OutOrStdout())
			for _, s := range sentence.Split(sentence.ForLocale(tag), units) {
				writeScores(w, units, s)
			}
			return w.Flush()
		},
	}
}

// writeScores prints one line per position inside s: the unit before it,
// the unit after it, the score and whether it breaks.
func writeScores(w io.Writer, units []uint16, s sentence.Span) {
	var state model.State
	for i := 1; i < s.Len(); i++ {
		pos := s.Start + i
		win := model.WindowAt(units, s.Start, s.End, pos)
		score := model.Score(win, state)
		var brk bool
		brk, state = model.Decide(win, state)
		mark := ""
		if brk {
			mark = "|"
		}
		fmt.Fprintf(w, "%d\t%c\t%c\t%d\t%s\n", pos, rune(units[pos-1]), rune(units[pos]), score, mark)
	}
}

func newAnalyzeCmd(opts *options) *cobra.Command {
	var (
		keywords  []string
		stopWords []string
	)
	cmd := &cobra.Command{
		Use:   "analyze [text...]",
		Short: "Print search terms after width folding, stemming and stop word removal",
		RunE: func(cmd *cobra.Command, args []string) error {
			topts, err := opts.tokenizerOptions(cmd)
			if err != nil {
				return err
			}
			aopts := []analysis.Option{
				analysis.WithKeywords(keywords...),
				analysis.WithTokenizerOptions(topts...),
			}
			if cmd.Flags().Changed("stop") {
				aopts = append(aopts, analysis.WithStopWords(stopWords...))
			}
			a := analysis.NewJapanese(aopts...)

			w := bufio.NewWriter(cmd.OutOrStdout())
			for t, err := range a.Stream(input(cmd, args)) {
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%d\t%d\n", t.Text, t.Start, t.End)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringSliceVar(&keywords, "keyword", nil, "words protected from stemming")
	cmd.Flags().StringSliceVar(&stopWords, "stop", nil, "stop words replacing the English default")
	return cmd
}

func readUnits(r io.Reader) ([]uint16, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return utf16.Encode([]rune(string(data))), nil
}
