// Package checker validates datetime strings from arguments and files.
package checker

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/semaphore"

	"github.com/w3cdtf/w3cdtf"
	"github.com/w3cdtf/w3cdtf/internal/report"
)

// Options contains all checking parameters.
type Options struct {
	Inputs []string // datetime strings given directly on the command line
	Globs  []string // glob patterns selecting files to check line by line
	Jobs   int      // maximum number of concurrently checked files
}

// Checker orchestrates the checking process.
type Checker struct {
	output *report.Output
}

// New creates a new Checker that reports through output.
func New(output *report.Output) *Checker {
	return &Checker{output: output}
}

// Check validates every input and every line of every matched file, and
// returns the number of inputs that failed to parse. Unreadable files
// are warned about and skipped; Check fails only when every matched
// file was unreadable.
func (c *Checker) Check(ctx context.Context, opts *Options) (int, error) {
	invalid := 0
	for _, input := range opts.Inputs {
		if !c.checkInput("", input) {
			invalid++
		}
	}

	if len(opts.Globs) == 0 {
		return invalid, nil
	}

	files, err := expandGlobs(opts.Globs)
	if err != nil {
		return invalid, err
	}
	if len(files) == 0 {
		c.output.Warningf("No files match the given patterns")
		return invalid, nil
	}

	// Process files concurrently with bounded parallelism
	var wg sync.WaitGroup
	var invalidCount, errorCount atomic.Int32
	sem := semaphore.NewWeighted(int64(opts.Jobs))

	for _, file := range files {
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return invalid + int(invalidCount.Load()), err
		}

		wg.Add(1)
		go func(file string) {
			defer wg.Done()
			defer sem.Release(1)

			n, err := c.checkFile(file)
			invalidCount.Add(int32(n))
			if err != nil {
				errorCount.Add(1)
				c.output.Warningf("%s: %v", file, err)
			}
		}(file)
	}

	wg.Wait()

	invalid += int(invalidCount.Load())
	if int(errorCount.Load()) == len(files) {
		return invalid, fmt.Errorf("failed to read all %d files", len(files))
	}

	return invalid, nil
}

// checkInput parses a single datetime string and reports the result.
// The location is an optional "file:line" origin for file-sourced input.
func (c *Checker) checkInput(location, input string) bool {
	t, err := w3cdtf.Parse(input)
	if err != nil {
		var perr *w3cdtf.ParseError
		if errors.As(err, &perr) {
			c.output.Invalid(location, input, perr)
		} else {
			c.output.Warningf("%s: %v", input, err)
		}
		return false
	}
	c.output.Valid(location, w3cdtf.Format(t))
	return true
}

// checkFile checks a file line by line, skipping blank lines, and
// returns how many lines failed to parse.
func (c *Checker) checkFile(name string) (int, error) {
	f, err := os.Open(name)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	invalid := 0
	line := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if !c.checkInput(fmt.Sprintf("%s:%d", name, line), text) {
			invalid++
		}
	}
	if err := scanner.Err(); err != nil {
		return invalid, err
	}
	return invalid, nil
}

// expandGlobs expands glob patterns into a file list. Patterns could
// overlap (e.g. "*.txt" alongside "logs/../a.txt"), so matches are
// deduplicated while preserving input order.
func expandGlobs(globs []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range globs {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				files = append(files, match)
			}
		}
	}
	return files, nil
}
