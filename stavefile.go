//go:build stave

package main

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

const binary = "bin/rhymesort"

// Default target runs build.
var Default = Build

// Aliases for common targets.
var Aliases = map[string]any{
	"b":   Build,
	"t":   Test,
	"sm":  Smoke,
	"big": Bench.Large,
}

// Bench groups the benchmark targets.
type Bench st.Namespace

// Build compiles the rhymesort binary with version info when sources changed.
func Build() error {
	rebuild, err := target.Dir(binary, "cmd/", "pkg/", "internal/", "go.mod", "go.sum")
	if err != nil {
		return err
	}
	if !rebuild {
		fmt.Println(binary, "is up to date")
		return nil
	}
	fmt.Println("Building rhymesort...")
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binary, "./cmd/rhymesort")
}

// Test runs the test suite through gotestsum with the race detector.
func Test() error {
	n := cmp.Or(os.Getenv("STAVE_NUM_PROCESSORS"), "4")
	return sh.RunV("go", "tool", "gotestsum", "-f", "pkgname-and-test-fails", "--",
		"-race", "-p", n, "-parallel", n, "-coverprofile=coverage.out", "./...")
}

// Smoke sorts a small poem with the built binary and checks the document.
func Smoke() error {
	st.Deps(Build)
	return inScratchDir(func(dir string) error {
		input, err := writeInput(dir, "Banana\napple\n\nCherry\n")
		if err != nil {
			return err
		}

		out, err := sh.Output(binary, "sort", input, "-o", "-", "--quiet")
		if err != nil {
			return fmt.Errorf("run rhymesort: %w", err)
		}

		// sh.Output trims trailing newlines.
		want := "Sorting by alphabet\napple\nBanana\nCherry\n\n" +
			"Sorting by rhymes\nBanana\napple\nCherry\n\n" +
			"Origin text\nBanana\napple\n\nCherry"
		if out != want {
			return fmt.Errorf("unexpected document:\n%s", out)
		}
		fmt.Println("✓ Smoke test passed")
		return nil
	})
}

// Default runs the Go benchmarks.
func (Bench) Default() error {
	return sh.RunV("go", "test", "-run", "^$", "-bench", ".", "-benchmem", "./...")
}

// Large times the binary on a generated input near the default size limit.
func (Bench) Large() error {
	st.Deps(Build)
	return inScratchDir(func(dir string) error {
		words := []string{"moon", "June", "spoon", "tune", "night", "light", "Bright!", "...sight", "day", "May"}
		var b strings.Builder
		for i := range 200_000 {
			fmt.Fprintf(&b, "%s %s %d\n", words[i%len(words)], words[(i*7)%len(words)], i)
		}

		input, err := writeInput(dir, b.String())
		if err != nil {
			return err
		}
		output := filepath.Join(dir, "result.txt")

		start := time.Now()
		if err := sh.RunV(binary, "sort", input, "-o", output, "--quiet", "--no-backups"); err != nil {
			return fmt.Errorf("sort benchmark input: %w", err)
		}
		elapsed := time.Since(start)

		info, err := os.Stat(output)
		if err != nil {
			return fmt.Errorf("stat result: %w", err)
		}
		fmt.Printf("✓ Sorted %d bytes into %d in %s\n", b.Len(), info.Size(), elapsed.Round(time.Millisecond))
		return nil
	})
}

// inScratchDir runs fn with a temporary directory that is removed afterwards.
func inScratchDir(fn func(dir string) error) error {
	dir, err := os.MkdirTemp("", "rhymesort-stave-")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)
	return fn(dir)
}

func writeInput(dir, content string) (string, error) {
	path := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write input: %w", err)
	}
	return path, nil
}

// ldflags injects the version, commit and build date into main.
func ldflags() string {
	git := func(args ...string) string {
		out, err := sh.Output("git", args...)
		if err != nil {
			return ""
		}
		return strings.TrimSpace(out)
	}
	return fmt.Sprintf("-X main.version=%s -X main.commit=%s -X main.date=%s",
		cmp.Or(git("describe", "--tags", "--always", "--dirty"), "dev"),
		cmp.Or(git("rev-parse", "--short", "HEAD"), "none"),
		time.Now().UTC().Format(time.RFC3339))
}
