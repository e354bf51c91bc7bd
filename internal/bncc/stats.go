package bncc

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// BandStats is the per-band breakdown printed by `bncc stats`.
type BandStats struct {
	Key    BandKey
	Stage  Stage
	Total  int
	Groups int
}

// Stats computes the per-band breakdown in display order.
func Stats(t *Tree) []BandStats {
	out := make([]BandStats, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, BandStats{
			Key:    e.Band.Key,
			Stage:  e.Band.Stage,
			Total:  e.Total(),
			Groups: len(e.Groups),
		})
	}
	return out
}

// WriteStats prints the breakdown and compares the total with expected.
// An expected value of zero skips the comparison. It reports whether the
// total matched.
func WriteStats(w io.Writer, t *Tree, expected int) bool {
	total := t.Total()
	fmt.Fprintln(w, headingStyle.Render("RESULTADO DO PARSE"))
	fmt.Fprintf(w, "Total de competências encontradas: %d\n\n", total)

	fmt.Fprintln(w, "Detalhamento por faixa etária:")
	for _, s := range Stats(t) {
		fmt.Fprintf(w, "\n  %s:\n", s.Key)
		fmt.Fprintf(w, "    Tipo: %s\n", s.Stage.Label())
		fmt.Fprintf(w, "    Total: %d competências\n", s.Total)
		if s.Stage == StageEarlyChildhood {
			fmt.Fprintf(w, "    Campos de Experiência: %d\n", s.Groups)
		} else {
			fmt.Fprintf(w, "    Disciplinas: %d\n", s.Groups)
		}
	}
	fmt.Fprintln(w)

	if expected <= 0 {
		return true
	}
	if total == expected {
		fmt.Fprintln(w, okStyle.Render(fmt.Sprintf("SUCESSO: o parse capturou todas as %d competências esperadas.", expected)))
		return true
	}
	fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("ATENÇÃO: esperado %d, encontrado %d (diferença: %d).", expected, total, expected-total)))
	return false
}
