package spell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/gammazero/workerpool"
)

var (
	// ErrNotSupported is returned when no aspell executable can be
	// found. Callers should treat spell checking as disabled.
	ErrNotSupported = errors.New("aspell executable not found")
	// ErrNoOutput is returned when aspell exits without any output.
	ErrNoOutput = errors.New("aspell had no output")
)

const (
	defaultCommand = "aspell"
	// defaultPath is tried when PATH lookup is impossible, for example
	// in a stripped-down environment.
	defaultPath = "/usr/bin/aspell"
)

type Config struct {
	// Command is the spell checker executable, looked up in PATH
	Command string
	// MaxWorkers specifies how many aspell processes CheckWords runs
	// at the same time. Zero value mean that it will be equal to
	// number of logical CPU
	MaxWorkers int
}

// Result is the outcome of checking a single word.
type Result struct {
	Word        string
	Correct     bool
	Suggestions []string
}

type Checker struct {
	exe    string
	config *Config
}

// New locates the spell checker executable and returns a ready Checker.
func New(config *Config) (*Checker, error) {
	if config == nil {
		config = &Config{}
	}
	if config.Command == "" {
		config.Command = defaultCommand
	}
	if config.MaxWorkers < 1 {
		config.MaxWorkers = runtime.NumCPU()
	}
	exe, err := exec.LookPath(config.Command)
	if err != nil {
		if config.Command != defaultCommand {
			return nil, fmt.Errorf("%w: %s", ErrNotSupported, config.Command)
		}
		if _, statErr := os.Stat(defaultPath); statErr != nil {
			return nil, ErrNotSupported
		}
		exe = defaultPath
	}
	return &Checker{exe: exe, config: config}, nil
}

// CheckWord runs one aspell process in pipe mode with word on stdin.
func (c *Checker) CheckWord(ctx context.Context, word string) (Result, error) {
	cmd := exec.CommandContext(ctx, c.exe, "-a")
	cmd.Stdin = strings.NewReader(word + "\n")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return Result{}, fmt.Errorf("aspell failed: %s: %w",
			strings.TrimSpace(stderr.String()), err)
	}
	if stderr.Len() != 0 {
		return Result{}, fmt.Errorf("aspell returned an error: %s",
			strings.TrimSpace(stderr.String()))
	}
	if stdout.Len() == 0 {
		return Result{}, ErrNoOutput
	}
	return parseOutput(word, stdout.String())
}

// CheckWords checks every word with a bounded pool of aspell processes.
// Results keep the order of words. The first error encountered wins.
func (c *Checker) CheckWords(ctx context.Context, words []string) ([]Result, error) {
	pool := workerpool.New(c.config.MaxWorkers)
	results := make([]Result, len(words))
	errs := make([]error, len(words))
	for i := range words {
		i := i
		pool.Submit(func() {
			results[i], errs[i] = c.CheckWord(ctx, words[i])
		})
	}
	pool.StopWait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
