package bncc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	tree := Build([]Record{
		{Code: "EI01EO01"},
		{Code: "EI01CG01"},
		{Code: "EF35LP01"},
		{Code: "EF03MA01"},
	})
	stats := Stats(tree)
	require.Len(t, stats, 8)

	assert.Equal(t, BandStats{Key: BandBebes, Stage: StageEarlyChildhood, Total: 2, Groups: 2}, stats[0])
	assert.Equal(t, BandStats{Key: BandFundamental3, Stage: StageElementary, Total: 2, Groups: 2}, stats[5])
	assert.Equal(t, BandStats{Key: BandFundamental4, Stage: StageElementary, Total: 1, Groups: 1}, stats[6])
}

func TestWriteStats(t *testing.T) {
	tree := Build([]Record{{Code: "EI01EO01"}, {Code: "EF12LP01"}})

	var buf bytes.Buffer
	assert.True(t, WriteStats(&buf, tree, 3))
	out := buf.String()
	assert.Contains(t, out, "Total de competências encontradas: 3")
	assert.Contains(t, out, "educacao_infantil_bebes:")
	assert.Contains(t, out, "Campos de Experiência: 1")
	assert.Contains(t, out, "Disciplinas: 1")
	assert.Contains(t, out, "SUCESSO")

	buf.Reset()
	assert.False(t, WriteStats(&buf, tree, 642))
	assert.Contains(t, buf.String(), "diferença: 639")

	buf.Reset()
	assert.True(t, WriteStats(&buf, tree, 0))
	assert.NotContains(t, buf.String(), "ATENÇÃO")
}
