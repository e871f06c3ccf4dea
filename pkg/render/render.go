// Package render formats dictionary entries, spelling suggestions and
// status messages for an ANSI terminal.
package render

import (
	"strings"

	"github.com/fatih/color"

	"github.com/darkclainer/webster/pkg/dict"
)

const (
	// lineWidth keeps suggestion rows within a classic terminal.
	lineWidth = 80
	indent    = "    "
)

var (
	headwordColor   = color.New(color.FgGreen, color.Bold)
	definitionColor = color.New(color.FgBlue)
	listItemColor   = color.New(color.FgHiBlack)
	misspelledColor = color.New(color.FgRed, color.Bold)
	correctColor    = color.New(color.FgGreen)
	suggestionColor = color.New(color.FgBlue)
	statusColor     = color.New(color.FgGreen)
	valueColor      = color.New(color.FgBlue, color.Bold)
	errorColor      = color.New(color.FgRed)
)

// Entry renders a colorized definition block in the dictionary file
// layout: the headword, then every definition with numbered list items
// dimmed.
func Entry(entry dict.Entry) string {
	var b strings.Builder
	for i, definition := range entry.Definitions {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(headwordColor.Sprint(entry.Word))
		b.WriteString("\n")
		for _, line := range strings.Split(definition, "\n") {
			if line == "" {
				b.WriteString("\n")
				continue
			}
			if dict.IsListItem(line) {
				b.WriteString(listItemColor.Sprint(line))
			} else {
				b.WriteString(definitionColor.Sprint(line))
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// Suggestions renders correction suggestions for a misspelled word in
// indented columns fitted to lineWidth. An empty suggestion list means
// the word was not even close to anything known.
func Suggestions(word string, suggestions []string) string {
	var b strings.Builder
	b.WriteString(misspelledColor.Sprint(word))
	b.WriteString(":")
	if len(suggestions) == 0 {
		b.WriteString("\n")
		b.WriteString(indent)
		b.WriteString(suggestionColor.Sprint("<not found>"))
		return b.String()
	}
	longest := 0
	for _, suggestion := range suggestions {
		if len(suggestion) > longest {
			longest = len(suggestion)
		}
	}
	// Room for a space between columns.
	longest++
	perRow := (lineWidth - len(indent)) / longest
	if perRow < 1 {
		perRow = 1
	}
	for i := 0; i < len(suggestions); i += perRow {
		end := i + perRow
		if end > len(suggestions) {
			end = len(suggestions)
		}
		b.WriteString("\n")
		b.WriteString(indent)
		for _, suggestion := range suggestions[i:end] {
			padded := suggestion + strings.Repeat(" ", longest-len(suggestion))
			b.WriteString(suggestionColor.Sprint(padded))
		}
	}
	return b.String()
}

// Correct renders a correctly spelled word.
func Correct(word string) string {
	return correctColor.Sprint(word)
}

// Status renders a green label with an optional blue bold value.
func Status(label, value string) string {
	if value == "" {
		return statusColor.Sprint(label)
	}
	return statusColor.Sprint(label) + " " + valueColor.Sprint(value)
}

// Errorf renders an error message in red.
func Errorf(format string, args ...interface{}) string {
	return errorColor.Sprintf(format, args...)
}
