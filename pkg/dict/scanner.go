package dict

import (
	"bufio"
	"errors"
	"io"
	"regexp"
	"strings"
)

// ErrNotFound is returned by Search when the dictionary has no entry
// for the requested word.
var ErrNotFound = errors.New("word not found")

var (
	headwordRegexp = regexp.MustCompile(`^[A-Z-]+$`)
	listItemRegexp = regexp.MustCompile(`^[1-9][0-9]{0,2}\.`)
)

// defnPrefix marks the first line of a definition body in the Webster's
// plain text format. The prefix itself is not part of the definition.
const defnPrefix = "Defn: "

// endMarkers terminate the dictionary body (Project Gutenberg trailer).
var endMarkers = []string{"*** END", "End of Project"}

func isEndMarker(line string) bool {
	for _, marker := range endMarkers {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}
	return false
}

// IsHeadword reports whether line is a headword line: the whole line
// uppercase ASCII letters or hyphens.
func IsHeadword(line string) bool {
	return headwordRegexp.MatchString(line)
}

// IsListItem reports whether line starts a numbered definition item,
// like "1." or "12.".
func IsListItem(line string) bool {
	return listItemRegexp.MatchString(line)
}

// Scanner reads dictionary entries from a line-oriented Webster's plain
// text file. Lines before the first headword are header and skipped,
// consecutive blocks with the same headword merge into a single entry
// with several definitions.
type Scanner struct {
	scanner *bufio.Scanner
	entry   Entry
	err     error
	done    bool
	started bool
	word    string
	lines   []string
	defs    []string
}

func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Scanner{scanner: s}
}

// Scan advances to the next entry, which is then available through
// Entry. It returns false when the input is exhausted, an end-of-data
// marker was reached or reading failed.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	for s.scanner.Scan() {
		line := strings.TrimSpace(s.scanner.Text())
		if line == "" {
			continue
		}
		if isEndMarker(line) {
			s.done = true
			return s.flushEntry()
		}
		if IsHeadword(line) {
			if !s.started {
				s.started = true
				s.word = line
				continue
			}
			if line == s.word {
				// Another definition block of the same headword.
				s.flushDefinition()
				continue
			}
			emitted := s.flushEntry()
			s.word = line
			if emitted {
				return true
			}
			continue
		}
		if !s.started {
			// File header.
			continue
		}
		s.appendLine(line)
	}
	s.done = true
	if err := s.scanner.Err(); err != nil {
		s.err = err
		return false
	}
	return s.flushEntry()
}

// Entry returns the entry produced by the last successful Scan.
func (s *Scanner) Entry() Entry {
	return s.entry
}

func (s *Scanner) Err() error {
	return s.err
}

func (s *Scanner) appendLine(line string) {
	switch {
	case IsListItem(line):
		s.lines = append(s.lines, "\n"+line)
	case strings.HasPrefix(line, defnPrefix):
		s.lines = append(s.lines, "\n"+strings.TrimPrefix(line, defnPrefix))
	default:
		s.lines = append(s.lines, line)
	}
}

func (s *Scanner) flushDefinition() {
	if len(s.lines) == 0 {
		return
	}
	text := strings.TrimSpace(strings.Join(s.lines, "\n"))
	if text != "" {
		s.defs = append(s.defs, text)
	}
	s.lines = nil
}

// flushEntry finalizes the pending entry and reports whether there was
// one. Headwords without any definition lines are dropped.
func (s *Scanner) flushEntry() bool {
	s.flushDefinition()
	if s.word == "" || len(s.defs) == 0 {
		s.defs = nil
		return false
	}
	s.entry = Entry{Word: s.word, Definitions: s.defs}
	s.defs = nil
	return true
}

// ParseAll reads every entry from r. Use it for conversion, not for
// lookups.
func ParseAll(r io.Reader) ([]Entry, error) {
	var entries []Entry
	s := NewScanner(r)
	for s.Scan() {
		entries = append(entries, s.Entry())
	}
	return entries, s.Err()
}

// Search scans r for word in a single pass. The word is uppercased to
// match the file layout. The scan stops right after the matching blocks,
// entries of one headword are contiguous in the Webster's file.
func Search(r io.Reader, word string) (Entry, error) {
	want := strings.ToUpper(word)
	s := NewScanner(r)
	for s.Scan() {
		if entry := s.Entry(); entry.Word == want {
			return entry, nil
		}
	}
	if err := s.Err(); err != nil {
		return Entry{}, err
	}
	return Entry{}, ErrNotFound
}
