package navigate

import "strings"

// closingDelimiters are the lines that consist solely of block-closing
// punctuation, optionally chained with one more closing mark and/or a
// trailing semicolon. Such a line is structurally part of the block above
// it: when a folded function body leaves only its header and closing brace
// visible, stopping on the brace would produce a useless one-line jump.
var closingDelimiters = map[string]struct{}{
	"}":   {},
	"]":   {},
	")":   {},
	"};":  {},
	"];":  {},
	");":  {},
	"});": {},
	"})":  {},
	"]);": {},
	"])":  {},
}

// IsClosingDelimiterLine returns true if the trimmed text is exactly a
// standalone closing delimiter.
func IsClosingDelimiterLine(text string) bool {
	_, ok := closingDelimiters[strings.TrimSpace(text)]
	return ok
}
