package imports

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	ruleLine     = strings.Repeat("=", 80)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// ReportOptions tunes the human-readable report.
type ReportOptions struct {
	// ShowSkipped prints a warning per file that could not be read.
	ShowSkipped bool
	// CorrectFilesPreview lists up to this many correct files; zero hides the list.
	CorrectFilesPreview int
}

// WriteReport prints the validation summary and every mismatch, grouped by category.
func WriteReport(w io.Writer, res *Result, opts ReportOptions) {
	fmt.Fprintf(w, "\n%s\n", ruleLine)
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("RESULTADO DA VALIDAÇÃO DE IMPORTS (%s)", res.Rule)))
	fmt.Fprintf(w, "%s\n\n", ruleLine)

	fmt.Fprintf(w, "Arquivos escaneados: %d\n", res.FilesScanned)
	fmt.Fprintf(w, "Imports corretos: %d\n\n", res.Correct)

	if opts.ShowSkipped {
		for _, s := range res.Skipped {
			fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("Aviso: erro ao processar arquivo %s", s.File)))
			fmt.Fprintf(w, "   %v\n\n", s.Err)
		}
	}

	if len(res.Mismatches) == 0 {
		fmt.Fprintln(w, successStyle.Render("Todos os imports relativos estão corretos."))
		fmt.Fprintln(w)
	} else {
		fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("%d ERRO(S) ENCONTRADO(S):", len(res.Mismatches))))
		for _, category := range res.Categories() {
			list := res.ByCategory(category)
			fmt.Fprintf(w, "\n%s\n", ruleLine)
			fmt.Fprintf(w, "Erros em imports de '%s' (%d erro(s))\n", category, len(list))
			fmt.Fprintf(w, "%s\n\n", ruleLine)
			for i, m := range list {
				writeMismatch(w, i+1, m)
			}
		}
	}

	if opts.CorrectFilesPreview > 0 && len(res.CorrectFiles) > 0 {
		fmt.Fprintf(w, "%d arquivo(s) com imports corretos\n", len(res.CorrectFiles))
		n := len(res.CorrectFiles)
		if n > opts.CorrectFilesPreview {
			n = opts.CorrectFilesPreview
		}
		for _, f := range res.CorrectFiles[:n] {
			fmt.Fprintf(w, "  ok %s\n", f)
		}
		if rest := len(res.CorrectFiles) - n; rest > 0 {
			fmt.Fprintf(w, "  ... e mais %d arquivo(s)\n", rest)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, ruleLine)
}

func writeMismatch(w io.Writer, n int, m Mismatch) {
	fmt.Fprintf(w, "%d. %s\n", n, m.File)
	fmt.Fprintf(w, "   Statement: %s\n", m.Statement)
	fmt.Fprintf(w, "   Níveis: atual=%d, esperado=%d\n", m.ActualDepth, m.ExpectedDepth)
	fmt.Fprintf(w, "   Atual:    %s\n", m.ActualPath)
	fmt.Fprintf(w, "   Esperado: %s\n", m.ExpectedPath)
	fmt.Fprintln(w)
}
