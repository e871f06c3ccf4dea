package spell

import (
	"fmt"
	"strings"
)

/*
parseOutput interprets the ispell -a line protocol that aspell speaks:

	*                          word is correct
	& orig count offset: s1, s2, ...   misspelled, with suggestions
	# orig offset              misspelled, nothing to suggest

Every other line (version banner, empty line after each word) is
ignored.
*/
func parseOutput(word, output string) (Result, error) {
	result := Result{Word: word, Correct: true}
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "&"):
			head, tail, ok := strings.Cut(line, ":")
			if !ok {
				return Result{}, fmt.Errorf("malformed correction line: %q", line)
			}
			fields := strings.Fields(head)
			if len(fields) < 2 { // nolint:gomnd // marker and word
				return Result{}, fmt.Errorf("malformed correction line: %q", line)
			}
			result.Word = fields[1]
			result.Correct = false
			result.Suggestions = nil
			for _, suggestion := range strings.Split(tail, ",") {
				result.Suggestions = append(result.Suggestions, strings.TrimSpace(suggestion))
			}
		case strings.HasPrefix(line, "#"):
			fields := strings.Fields(line)
			if len(fields) < 2 { // nolint:gomnd // marker and word
				return Result{}, fmt.Errorf("malformed not-found line: %q", line)
			}
			result.Word = fields[1]
			result.Correct = false
			result.Suggestions = nil
		}
	}
	return result, nil
}
