// Package bench measures word segmentation accuracy against a corpus of
// hand-segmented text.
package bench

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// Header contains metadata parsed from a corpus file header.
type Header struct {
	Source string
	Title  string
	Genre  string
}

// ParseHeader extracts metadata from header comments.
// Returns the header, remaining text after header, and any error.
func ParseHeader(text string) (Header, string, error) {
	var h Header
	scanner := bufio.NewScanner(strings.NewReader(text))
	var bodyStart int
	var lineEnd int

	for scanner.Scan() {
		line := scanner.Text()
		lineEnd += len(line) + 1 // +1 for newline

		if !strings.HasPrefix(line, "#") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			bodyStart = lineEnd - len(line) - 1
			break
		}

		line = strings.TrimPrefix(line, "# ")
		if value, ok := strings.CutPrefix(line, "Source:"); ok {
			h.Source = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "Title:"); ok {
			h.Title = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "Genre:"); ok {
			h.Genre = strings.TrimSpace(value)
		}
	}

	if err := scanner.Err(); err != nil {
		return Header{}, "", fmt.Errorf("scan header: %w", err)
	}

	if h.Source == "" {
		return Header{}, "", errors.New("missing Source in header")
	}

	return h, strings.TrimSpace(text[bodyStart:]), nil
}

// Word is a gold word with byte offsets into the unsegmented text.
type Word struct {
	Text  string
	Start int
	End   int
}

// ParseGold reads space-segmented lines. It returns the text with the
// spaces removed (lines joined by "\n") and the gold words located in it.
func ParseGold(body string) (string, []Word) {
	var (
		text  strings.Builder
		words []Word
	)
	for i, line := range strings.Split(body, "\n") {
		if i > 0 {
			text.WriteByte('\n')
		}
		for _, w := range strings.Fields(line) {
			start := text.Len()
			text.WriteString(w)
			words = append(words, Word{Text: w, Start: start, End: text.Len()})
		}
	}
	return text.String(), words
}

// Boundaries returns the sorted, distinct start and end offsets of words
// that contain a letter or digit. Punctuation-only words are left out since
// the tokenizer drops them.
func Boundaries(words []Word) []int {
	content := lo.Filter(words, func(w Word, _ int) bool {
		return strings.IndexFunc(w.Text, isContent) >= 0
	})
	edges := lo.FlatMap(content, func(w Word, _ int) []int {
		return []int{w.Start, w.End}
	})
	return lo.Uniq(edges)
}

func isContent(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Document is a loaded corpus file.
type Document struct {
	ID     string // filename without extension
	Source string
	Title  string
	Genre  string
	Text   string // unsegmented body
	Words  []Word
}

// LoadDocument loads and parses a corpus file.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	header, body, err := ParseHeader(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	base := filepath.Base(path)
	text, words := ParseGold(body)

	return &Document{
		ID:     strings.TrimSuffix(base, filepath.Ext(base)),
		Source: header.Source,
		Title:  header.Title,
		Genre:  header.Genre,
		Text:   text,
		Words:  words,
	}, nil
}

// LoadCorpus loads all .txt corpus files from a directory.
func LoadCorpus(dir string) ([]*Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var docs []*Document
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".txt" {
			continue
		}

		doc, err := LoadDocument(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		docs = append(docs, doc)
	}

	return docs, nil
}
