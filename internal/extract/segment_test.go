package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoOffers = `
   Imóvel CAIXA
Crédito: R$ 100.000,00

Entrada: R$ 20.000,00
Automóvel PORTO
Crédito R$ 80.000,00
Entrada R$ 15.000,00
`

func TestSegment_SplitsBeforeKeywords(t *testing.T) {
	blocks := Segment(twoOffers, DefaultConfig().SegmentKeywords)

	require.Len(t, blocks, 2)
	assert.Equal(t, "Imóvel CAIXA\nCrédito: R$ 100.000,00\nEntrada: R$ 20.000,00", blocks[0])
	assert.Equal(t, "Automóvel PORTO\nCrédito R$ 80.000,00\nEntrada R$ 15.000,00", blocks[1])
}

func TestSegment_KeywordCaseInsensitive(t *testing.T) {
	text := "SELECIONAR cota BRADESCO R$ 90.000,00\nselecionar cota SANTANDER R$ 70.000,00"

	blocks := Segment(text, DefaultConfig().SegmentKeywords)

	require.Len(t, blocks, 2)
	assert.True(t, strings.HasPrefix(blocks[0], "SELECIONAR"))
	assert.True(t, strings.HasPrefix(blocks[1], "selecionar"))
}

func TestSegment_FallsBackToBlankLines(t *testing.T) {
	text := "Cota BRADESCO crédito R$ 90.000,00\nentrada R$ 10.000,00\n\n  \nCota SANTANDER crédito R$ 70.000,00\nentrada R$ 9.000,00"

	blocks := Segment(text, DefaultConfig().SegmentKeywords)

	require.Len(t, blocks, 2)
	assert.Equal(t, "Cota BRADESCO crédito R$ 90.000,00\nentrada R$ 10.000,00", blocks[0])
	assert.Equal(t, "Cota SANTANDER crédito R$ 70.000,00\nentrada R$ 9.000,00", blocks[1])
}

func TestSegment_DropsShortBlocks(t *testing.T) {
	text := "Moto R$ 10\nImóvel CAIXA crédito R$ 100.000,00"

	blocks := Segment(text, DefaultConfig().SegmentKeywords)

	require.Len(t, blocks, 1)
	assert.Equal(t, "Imóvel CAIXA crédito R$ 100.000,00", blocks[0])
}

func TestSegment_Idempotent(t *testing.T) {
	keywords := DefaultConfig().SegmentKeywords
	for _, block := range Segment(twoOffers, keywords) {
		again := Segment(block, keywords)
		require.Len(t, again, 1)
		assert.Equal(t, block, again[0])
	}

	plain := "Cota BRADESCO crédito R$ 90.000,00"
	assert.Equal(t, []string{plain}, Segment(plain, keywords))
}

func TestSegment_NoKeywords(t *testing.T) {
	text := "Cota BRADESCO crédito R$ 90.000,00\nentrada R$ 10.000,00"

	blocks := Segment(text, nil)

	assert.Equal(t, []string{text}, blocks)
}
