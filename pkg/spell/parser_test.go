package spell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const aspellBanner = "@(#) International Ispell Version 3.1.20 (but really Aspell 0.60.8)\n"

func TestParseOutput(t *testing.T) {
	testCases := map[string]struct {
		word     string
		output   string
		expected Result
		wantErr  bool
	}{
		"correct word": {
			word:   "hello",
			output: aspellBanner + "*\n\n",
			expected: Result{
				Word:    "hello",
				Correct: true,
			},
		},
		"misspelled with suggestions": {
			word:   "helo",
			output: aspellBanner + "& helo 5 0: hello, help, helot, hellos, hell\n\n",
			expected: Result{
				Word:        "helo",
				Suggestions: []string{"hello", "help", "helot", "hellos", "hell"},
			},
		},
		"not found": {
			word:   "qwkj",
			output: aspellBanner + "# qwkj 0\n\n",
			expected: Result{
				Word: "qwkj",
			},
		},
		"banner only": {
			word:   "hello",
			output: aspellBanner,
			expected: Result{
				Word:    "hello",
				Correct: true,
			},
		},
		"correction line without colon": {
			word:    "helo",
			output:  aspellBanner + "& helo 5 0\n",
			wantErr: true,
		},
		"truncated not-found line": {
			word:    "qwkj",
			output:  aspellBanner + "#\n",
			wantErr: true,
		},
	}
	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			result, err := parseOutput(tc.word, tc.output)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}
