package bncc

import (
	"fmt"
	"io"
	"os"

	"elotools/internal/logging"
	"elotools/internal/textio"
)

// Summary describes one conversion run.
type Summary struct {
	Source    string
	Output    string
	Extracted int // entries found in the document
	Dropped   int // entries no band accepted
	Bands     int
	Total     int // records in the tree, fan-out copies included
}

// Parse reads the source document and builds the curriculum tree.
func Parse(source string) (*Tree, Summary, error) {
	text, err := textio.ReadFile(source)
	if err != nil {
		return nil, Summary{}, fmt.Errorf("read source document: %w", err)
	}

	log := logging.Get(logging.CategoryBNCC)
	records := Extract(text)
	tree := NewTree()
	dropped := 0
	for _, r := range records {
		if !tree.Add(r) {
			dropped++
			logging.BNCCDebug("dropped %s: no band for code", r.Code)
		}
	}
	log.Info("extracted %d entries from %s (%d dropped)", len(records), source, dropped)

	return tree, Summary{
		Source:    source,
		Extracted: len(records),
		Dropped:   dropped,
		Bands:     len(tree.Entries()),
		Total:     tree.Total(),
	}, nil
}

// Convert parses source and writes the generated module to output.
// A missing source or an unwritable output is returned as an error; nothing is retried.
func Convert(source, output string) (Summary, error) {
	tree, sum, err := Parse(source)
	if err != nil {
		return Summary{}, err
	}

	data, err := Render(tree)
	if err != nil {
		return Summary{}, err
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return Summary{}, fmt.Errorf("write module: %w", err)
	}
	sum.Output = output
	logging.BNCC("wrote %s (%d bytes)", output, len(data))
	return sum, nil
}

// WriteSummary prints the two summary lines of a conversion.
func WriteSummary(w io.Writer, s Summary) {
	fmt.Fprintf(w, "Total de faixas: %d\n", s.Bands)
	fmt.Fprintf(w, "Total de competências: %d\n", s.Total)
}
