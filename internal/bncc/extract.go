package bncc

import (
	"strings"

	"elotools/internal/logging"

	"github.com/dlclark/regexp2"
)

// Record is one competency or skill: a code and its description.
type Record struct {
	Code        string
	Description string
}

// entryPattern matches one **CODE** - description entry. The description runs
// lazily, across lines, up to a blank line, a line starting with "**", or the
// end of the text (a single final newline excluded). Spaces around the dash
// may be any Unicode space, as in text pasted from PDFs.
var entryPattern = regexp2.MustCompile(
	`\*\*([A-Z0-9]+)\*\*[\s\p{Zs}]*-[\s\p{Zs}]*(.+?)(?=\n\n|\n\*\*|$)`,
	regexp2.Singleline,
)

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Extract returns every **CODE** - description entry in document order.
// CRLF and lone CR line endings are read as LF. Matches never overlap.
func Extract(text string) []Record {
	text = newlines.Replace(text)

	var out []Record
	m, err := entryPattern.FindStringMatch(text)
	for m != nil && err == nil {
		out = append(out, Record{
			Code:        m.GroupByNumber(1).String(),
			Description: normalizeSpace(m.GroupByNumber(2).String()),
		})
		m, err = entryPattern.FindNextMatch(m)
	}
	if err != nil {
		logging.Get(logging.CategoryBNCC).Warn("extraction stopped after %d entries: %v", len(out), err)
	}
	return out
}

// normalizeSpace collapses runs of whitespace, line breaks included, to one space.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
