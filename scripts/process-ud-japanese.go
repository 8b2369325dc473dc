//go:build ignore

// Process UD Japanese GSD CoNLL-U files into benchmark corpus format.
// Each output file holds a header and one space-segmented sentence per line.
// Usage: go run ./scripts/process-ud-japanese.go
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	source  = "https://github.com/UniversalDependencies/UD_Japanese-GSD"
	perFile = 200 // sentences per corpus document
)

func main() {
	inDir := "testdata/ud-gsd"
	outDir := "testdata/ud"

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", outDir, err)
		os.Exit(1)
	}

	for _, split := range []string{"train", "dev", "test"} {
		inFile := filepath.Join(inDir, fmt.Sprintf("ja_gsd-ud-%s.conllu", split))

		fmt.Printf("Processing %s...\n", split)
		sentences, err := processCoNLLU(inFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inFile, err)
			continue
		}

		files := 0
		for start := 0; start < len(sentences); start += perFile {
			end := min(start+perFile, len(sentences))
			name := fmt.Sprintf("%s-%03d", split, files)
			outFile := filepath.Join(outDir, name+".txt")
			if err := writeDocument(outFile, name, sentences[start:end]); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", outFile, err)
				continue
			}
			files++
		}

		fmt.Printf("  -> %d files (%d sentences)\n", files, len(sentences))
	}

	fmt.Println("\nDone! Corpus files created in testdata/ud/")
}

// processCoNLLU returns each sentence as its surface forms joined by spaces.
func processCoNLLU(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	var (
		sentences []string
		forms     []string
	)

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "#") {
			continue
		}

		// Blank line = end of sentence
		if line == "" {
			if len(forms) > 0 {
				sentences = append(sentences, strings.Join(forms, " "))
				forms = forms[:0]
			}
			continue
		}

		cols := strings.Split(line, "\t")
		if len(cols) < 2 {
			continue
		}
		// Skip multiword ranges (1-2) and empty nodes (1.1)
		if strings.ContainsAny(cols[0], "-.") {
			continue
		}
		forms = append(forms, cols[1])
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning file: %w", err)
	}

	// Don't forget last sentence if no trailing blank
	if len(forms) > 0 {
		sentences = append(sentences, strings.Join(forms, " "))
	}

	return sentences, nil
}

func writeDocument(path, title string, sentences []string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "# Source: %s\n# Title: %s\n# Genre: wikipedia\n\n", source, title)
	for _, s := range sentences {
		fmt.Fprintln(w, s)
	}
	return w.Flush()
}
