package dict

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureDict = `Webster's Unabridged Dictionary

Produced by volunteers from scans of public domain material.

A
A (named a in the English, and most commonly a in other languages).

Defn: The first letter of the English alphabet.

AARDVARK
Aard"vark, n. Etym: [D., earth-pig.]

Defn: An edentate mammal, of the genus Orycteropus, somewhat
resembling a pig, common in some parts of Southern Africa.

ABACUS
Ab"a*cus, n. Etym: [L. abacus, abax.]

1. A table or tray strewn with sand, anciently used for drawing,
calculating, etc.

2. A calculating table or frame; an instrument for performing
arithmetical calculations.

ABACUS
Defn: The uppermost member or division of the capital of a column.

*** END OF THE PROJECT GUTENBERG EBOOK ***

LEFTOVER
Defn: Anything after the end marker must be ignored.
`

var fixtureEntries = []Entry{
	{
		Word: "A",
		Definitions: []string{
			"A (named a in the English, and most commonly a in other languages).\n\n" +
				"The first letter of the English alphabet.",
		},
	},
	{
		Word: "AARDVARK",
		Definitions: []string{
			"Aard\"vark, n. Etym: [D., earth-pig.]\n\n" +
				"An edentate mammal, of the genus Orycteropus, somewhat\n" +
				"resembling a pig, common in some parts of Southern Africa.",
		},
	},
	{
		Word: "ABACUS",
		Definitions: []string{
			"Ab\"a*cus, n. Etym: [L. abacus, abax.]\n\n" +
				"1. A table or tray strewn with sand, anciently used for drawing,\n" +
				"calculating, etc.\n\n" +
				"2. A calculating table or frame; an instrument for performing\n" +
				"arithmetical calculations.",
			"The uppermost member or division of the capital of a column.",
		},
	},
}

func TestParseAll(t *testing.T) {
	entries, err := ParseAll(strings.NewReader(fixtureDict))
	require.NoError(t, err)
	assert.Equal(t, fixtureEntries, entries)
}

func TestScanner(t *testing.T) {
	testCases := map[string]struct {
		input    string
		expected []Entry
	}{
		"empty input": {
			input: "",
		},
		"header only": {
			input: "Webster's Unabridged Dictionary\n\nProduced by volunteers.\n",
		},
		"last entry flushed without end marker": {
			input: "HELLO\nDefn: An exclamation used as a greeting.",
			expected: []Entry{
				{
					Word:        "HELLO",
					Definitions: []string{"An exclamation used as a greeting."},
				},
			},
		},
		"headword without body dropped": {
			input: "EMPTY\nWORD\nDefn: Something.\n",
			expected: []Entry{
				{
					Word:        "WORD",
					Definitions: []string{"Something."},
				},
			},
		},
		"hyphenated headword": {
			input: "A-B\nDefn: A sequence.\n",
			expected: []Entry{
				{
					Word:        "A-B",
					Definitions: []string{"A sequence."},
				},
			},
		},
		"alternate end marker": {
			input: "HELLO\nDefn: A greeting.\nEnd of Project Gutenberg's dictionary.\nJUNK\nDefn: Not an entry.",
			expected: []Entry{
				{
					Word:        "HELLO",
					Definitions: []string{"A greeting."},
				},
			},
		},
		"consecutive blocks merge": {
			input: "HELLO\nDefn: A greeting.\nHELLO\nDefn: A call for attention.\nWORLD\nDefn: The earth.",
			expected: []Entry{
				{
					Word: "HELLO",
					Definitions: []string{
						"A greeting.",
						"A call for attention.",
					},
				},
				{
					Word:        "WORLD",
					Definitions: []string{"The earth."},
				},
			},
		},
	}
	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			var entries []Entry
			s := NewScanner(strings.NewReader(tc.input))
			for s.Scan() {
				entries = append(entries, s.Entry())
			}
			require.NoError(t, s.Err())
			assert.Equal(t, tc.expected, entries)
			assert.False(t, s.Scan(), "Scan after exhaustion must keep returning false")
		})
	}
}

func TestSearch(t *testing.T) {
	testCases := map[string]struct {
		word     string
		expected Entry
		err      error
	}{
		"first entry": {
			word:     "A",
			expected: fixtureEntries[0],
		},
		"lowercase query": {
			word:     "aardvark",
			expected: fixtureEntries[1],
		},
		"multiple definition blocks": {
			word:     "ABACUS",
			expected: fixtureEntries[2],
		},
		"missing word": {
			word: "ZYMURGY",
			err:  ErrNotFound,
		},
		"word after end marker": {
			word: "LEFTOVER",
			err:  ErrNotFound,
		},
	}
	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			entry, err := Search(strings.NewReader(fixtureDict), tc.word)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, entry)
		})
	}
}

func TestIsHeadword(t *testing.T) {
	testCases := map[string]struct {
		line     string
		headword bool
	}{
		"uppercase word":       {line: "HELLO", headword: true},
		"hyphenated":           {line: "TO-DAY", headword: true},
		"mixed case":           {line: "Hello", headword: false},
		"with trailing period": {line: "HELLO.", headword: false},
		"empty":                {line: "", headword: false},
		"with digits":          {line: "HELLO2", headword: false},
	}
	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.headword, IsHeadword(tc.line))
		})
	}
}

func TestIsListItem(t *testing.T) {
	testCases := map[string]struct {
		line     string
		listItem bool
	}{
		"single digit":    {line: "1. First sense.", listItem: true},
		"three digits":    {line: "123. Deep sense.", listItem: true},
		"leading zero":    {line: "01. Nope.", listItem: false},
		"no dot":          {line: "1 First sense.", listItem: false},
		"plain body line": {line: "A table or tray.", listItem: false},
	}
	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.listItem, IsListItem(tc.line))
		})
	}
}
