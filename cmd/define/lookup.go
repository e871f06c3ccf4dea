package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/darkclainer/webster/pkg/dict"
	"github.com/darkclainer/webster/pkg/querier"
	"github.com/darkclainer/webster/pkg/render"
	"github.com/darkclainer/webster/pkg/spell"
)

// maxRetries bounds the root-word retries after the initial lookup.
const maxRetries = 2

func runLookup(conf *Config, logger *zap.Logger, words []string) int {
	q := querier.NewFallback(openDB(conf, logger), querier.NewFile(conf.Dict), logger)
	defer func() {
		if err := q.Close(context.Background()); err != nil {
			logger.Warn("querier close failed", zap.Error(err))
		}
	}()
	checker := newChecker(logger)

	failed := 0
	for _, word := range words {
		fmt.Println(render.Status("Searching for:", word))
		failed += lookupWord(context.Background(), q, checker, word)
	}
	// Exit code shows how many lookups failed.
	return failed
}

func openDB(conf *Config, logger *zap.Logger) querier.Querier {
	db, err := querier.OpenDB(conf.DB)
	if err != nil {
		logger.Warn("database unavailable, lookups will scan the text file",
			zap.String("path", conf.DB),
			zap.Error(err),
		)
		return nil
	}
	return db
}

func newChecker(logger *zap.Logger) *spell.Checker {
	checker, err := spell.New(nil)
	if err != nil {
		// Spell checking is optional, lookups work without it.
		logger.Debug("spell checker disabled", zap.Error(err))
		return nil
	}
	return checker
}

// lookupWord resolves a single word: querier first, then spelling
// suggestions, then root-word retries like "slay" for "slayed".
// It returns the number of failures, 0 or 1.
func lookupWord(ctx context.Context, q querier.Querier, checker *spell.Checker, word string) int {
	start := time.Now()
	current := word
	for attempt := 0; ; attempt++ {
		entry, err := q.Define(ctx, current)
		if err == nil {
			fmt.Printf("\n%s\n", render.Entry(entry))
			elapsed := fmt.Sprintf("%.3f", time.Since(start).Seconds())
			fmt.Println(render.Status("\nTime:", elapsed))
			return 0
		}
		if !errors.Is(err, dict.ErrNotFound) {
			fmt.Println(render.Errorf("Lookup failed: %s", err))
			return 1
		}
		if attempt == 0 {
			if suggestions, ok := getSuggestions(ctx, checker, current); ok {
				fmt.Println(render.Status("Can't find:", current))
				fmt.Println(render.Status("Did you mean one of these?:", ""))
				fmt.Println(render.Suggestions(current, suggestions))
				return 1
			}
		}
		if attempt >= maxRetries {
			fmt.Println(render.Status("Too many attempts,", "giving up."))
			break
		}
		root := rootWord(current)
		if root == "" {
			break
		}
		fmt.Println(render.Status("Trying", root+" instead..."))
		current = root
	}
	fmt.Println(render.Status("Can't find:", word))
	return 1
}

// getSuggestions reports spelling corrections for word. It reports
// false when the checker is disabled, failed or found the word correct.
func getSuggestions(ctx context.Context, checker *spell.Checker, word string) ([]string, bool) {
	if checker == nil {
		return nil, false
	}
	result, err := checker.CheckWord(ctx, word)
	if err != nil || result.Correct {
		return nil, false
	}
	return result.Suggestions, true
}

// rootWord strips a common suffix, so "slayed" can be retried as
// "slay". An empty result means there is nothing to strip.
func rootWord(word string) string {
	switch {
	case hasAnySuffix(word, "ed", "er", "es"):
		return word[:len(word)-2]
	case hasAnySuffix(word, "ing", "ify", "ize"):
		return word[:len(word)-3]
	}
	return ""
}

func hasAnySuffix(word string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if len(word) > len(suffix) && strings.HasSuffix(word, suffix) {
			return true
		}
	}
	return false
}
