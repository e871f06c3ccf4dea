package dict

// Entry is a single headword with its ordered definition texts.
type Entry struct {
	Word        string
	Definitions []string
}
