//go:build stave

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

// Default target when running `stave` with no arguments.
var Default = CI

// Aliases for common targets.
var Aliases = map[string]interface{}{
	"b": Build,
	"t": Test,
	"l": Lint,
}

// Init tidies go.mod and writes go.sum.
func Init() error {
	return sh.Run("go", "mod", "tidy")
}

// Build compiles tinyseg and tinyseg-bench into bin/.
func Build() error {
	st.Deps(Init)
	st.Deps(Build_CLI, Build_Bench)
	return nil
}

// Build_CLI compiles the tinyseg binary.
func Build_CLI() error {
	st.Deps(Init)
	return buildBinary("tinyseg")
}

// Build_Bench compiles the tinyseg-bench binary.
func Build_Bench() error {
	st.Deps(Init)
	return buildBinary("tinyseg-bench")
}

// buildBinary compiles ./cmd/<name> into bin/<name> when a source changed.
func buildBinary(name string) error {
	out := "bin/" + name
	rebuild, err := target.Glob(out, "**/*.go", "go.mod", "go.sum")
	if err != nil {
		return fmt.Errorf("checking %s: %w", out, err)
	}
	if !rebuild {
		if st.Verbose() {
			fmt.Printf("%s is up to date\n", name)
		}
		return nil
	}
	return sh.RunV("go", "build", "-ldflags", versionFlags(), "-o", out, "./cmd/"+name)
}

// versionFlags stamps main.version, main.commit and main.date from git.
func versionFlags() string {
	version, _ := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	commit, _ := sh.Output("git", "rev-parse", "--short", "HEAD")
	return fmt.Sprintf("-X main.version=%s -X main.commit=%s -X main.date=%s",
		strings.TrimSpace(version), strings.TrimSpace(commit), time.Now().Format(time.RFC3339))
}

// Test runs every package's tests with the race detector.
func Test() error {
	st.Deps(Init)
	return sh.RunV("go", "test", "-race", "-cover", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes bin/.
func Clean() error {
	return sh.Rm("bin/")
}

// Golden namespace for golden file targets.
type Golden st.Namespace

// Update regenerates testdata/golden.json from the current model.
func (Golden) Update() error {
	return sh.RunV("go", "test", "-run", "TestGolden", ".", "-update")
}

// Fuzz runs the tokenizer fuzz target for FUZZTIME (default 30s).
func Fuzz() error {
	fuzztime := os.Getenv("FUZZTIME")
	if fuzztime == "" {
		fuzztime = "30s"
	}
	return sh.RunV("go", "test", "-run", "^$", "-fuzz", "FuzzTokenize", "-fuzztime", fuzztime, ".")
}

// Bench namespace for segmentation accuracy targets.
type Bench st.Namespace

// corpusDir returns TINYSEG_CORPUS, or testdata/ud when unset.
func corpusDir() string {
	if dir := os.Getenv("TINYSEG_CORPUS"); dir != "" {
		return dir
	}
	return "testdata/ud"
}

// Corpus converts the UD Japanese GSD treebank in testdata/ud-gsd into
// benchmark documents.
func (Bench) Corpus() error {
	return sh.RunV("go", "run", "./scripts/process-ud-japanese.go")
}

// Run scores the tokenizer against the gold corpus.
func (Bench) Run() error {
	st.Deps(Build_Bench)
	return sh.RunV("./bin/tinyseg-bench", "--corpus", corpusDir())
}

// Sweep scores the corpus across buffer sizes.
func (Bench) Sweep() error {
	st.Deps(Build_Bench)
	return sh.RunV("./bin/tinyseg-bench", "--corpus", corpusDir(), "--sweep")
}

// CI lints, tests and builds in that order.
func CI() error {
	st.Deps(Init)
	st.SerialDeps(Lint, Test, Build)
	return nil
}
