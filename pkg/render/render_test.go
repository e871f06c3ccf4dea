package render

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/darkclainer/webster/pkg/dict"
)

// Color codes are disabled for the whole package, the tests assert
// layout only.
func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestEntry(t *testing.T) {
	testCases := map[string]struct {
		entry    dict.Entry
		expected string
	}{
		"single definition": {
			entry: dict.Entry{
				Word:        "HELLO",
				Definitions: []string{"A greeting."},
			},
			expected: "HELLO\nA greeting.",
		},
		"numbered list items": {
			entry: dict.Entry{
				Word: "SLAY",
				Definitions: []string{
					"Slay, v. t.\n\n1. To put to death.\n\n2. To destroy.",
				},
			},
			expected: "SLAY\nSlay, v. t.\n\n1. To put to death.\n\n2. To destroy.",
		},
		"multiple definitions repeat the headword": {
			entry: dict.Entry{
				Word: "ABACUS",
				Definitions: []string{
					"A calculating frame.",
					"The uppermost member of the capital of a column.",
				},
			},
			expected: "ABACUS\nA calculating frame.\n\nABACUS\n" +
				"The uppermost member of the capital of a column.",
		},
	}
	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Entry(tc.entry))
		})
	}
}

func TestSuggestions(t *testing.T) {
	testCases := map[string]struct {
		word        string
		suggestions []string
		expected    string
	}{
		"no suggestions": {
			word:     "qwkj",
			expected: "qwkj:\n    <not found>",
		},
		"single row": {
			word:        "helo",
			suggestions: []string{"hello", "help"},
			expected:    "helo:\n    hello help  ",
		},
	}
	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Suggestions(tc.word, tc.suggestions))
		})
	}
}

func TestSuggestionsRowWidth(t *testing.T) {
	// 19 columns of width 4 fit in a row of 76, the 20th wraps.
	suggestions := make([]string, 20)
	for i := range suggestions {
		suggestions[i] = "abc"
	}
	rendered := Suggestions("abd", suggestions)
	assert.Equal(t, 3, len(splitLines(rendered)))
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "Searching for: hello", Status("Searching for:", "hello"))
	assert.Equal(t, "User cancelled.", Status("User cancelled.", ""))
}

func TestErrorf(t *testing.T) {
	assert.Equal(t, "lookup failed: boom", Errorf("lookup failed: %s", "boom"))
}
