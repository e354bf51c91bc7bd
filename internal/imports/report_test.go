package imports

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteReport_Mismatches(t *testing.T) {
	res := &Result{
		Rule:         "resources",
		FilesScanned: 3,
		Correct:      7,
		Mismatches: []Mismatch{
			{File: "src/app/turmas/Page.jsx", Statement: "import { useSchoolDatabase } from '../../hooks/useSchoolDatabase';",
				ActualPath: "../../hooks/useSchoolDatabase", ExpectedPath: "../hooks/useSchoolDatabase",
				ActualDepth: 2, ExpectedDepth: 1, Category: "hooks"},
			{File: "src/app/a.jsx", ActualPath: "../../../utils/x", ExpectedPath: "../utils/x", ActualDepth: 3, ExpectedDepth: 1, Category: "utils"},
			{File: "src/app/b.jsx", ActualPath: "../../hooks/y", ExpectedPath: "../hooks/y", ActualDepth: 2, ExpectedDepth: 1, Category: "hooks"},
		},
		Skipped: []SkippedFile{{File: "src/app/bin.jsx", Err: errors.New("not valid UTF-8 text")}},
	}

	var buf bytes.Buffer
	WriteReport(&buf, res, ReportOptions{})
	out := buf.String()

	assert.Contains(t, out, "Arquivos escaneados: 3")
	assert.Contains(t, out, "Imports corretos: 7")
	assert.Contains(t, out, "3 ERRO(S) ENCONTRADO(S):")
	assert.Contains(t, out, "Erros em imports de 'hooks' (2 erro(s))")
	assert.Contains(t, out, "Erros em imports de 'utils' (1 erro(s))")
	assert.Less(t, strings.Index(out, "'hooks'"), strings.Index(out, "'utils'"))
	assert.Contains(t, out, "1. src/app/turmas/Page.jsx\n")
	assert.Contains(t, out, "   Níveis: atual=2, esperado=1\n")
	assert.Contains(t, out, "   Atual:    ../../hooks/useSchoolDatabase\n")
	assert.Contains(t, out, "   Esperado: ../hooks/useSchoolDatabase\n")
	assert.Contains(t, out, "2. src/app/b.jsx\n")
	assert.NotContains(t, out, "erro ao processar")
}

func TestWriteReport_CleanWithPreviewAndWarnings(t *testing.T) {
	res := &Result{
		Rule:         "useSchoolDatabase",
		FilesScanned: 12,
		Correct:      12,
		Skipped:      []SkippedFile{{File: "src/app/bin.jsx", Err: errors.New("boom")}},
	}
	for i := 0; i < 12; i++ {
		res.CorrectFiles = append(res.CorrectFiles, fmt.Sprintf("src/app/p%02d.jsx", i))
	}

	var buf bytes.Buffer
	WriteReport(&buf, res, ReportOptions{ShowSkipped: true, CorrectFilesPreview: 10})
	out := buf.String()

	assert.Contains(t, out, "Todos os imports relativos estão corretos.")
	assert.Contains(t, out, "erro ao processar arquivo src/app/bin.jsx")
	assert.Contains(t, out, "12 arquivo(s) com imports corretos")
	assert.Contains(t, out, "  ok src/app/p09.jsx\n")
	assert.NotContains(t, out, "p10.jsx")
	assert.Contains(t, out, "  ... e mais 2 arquivo(s)\n")
}
