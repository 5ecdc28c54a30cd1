package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCurrency(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "brazilian thousands and cents", input: "1.234,56", want: 1234.56},
		{name: "comma decimal", input: "1234,56", want: 1234.56},
		{name: "dot decimal", input: "1234.56", want: 1234.56},
		{name: "plain digits", input: "1234", want: 1234},
		{name: "dot thousands", input: "1.234", want: 1234},
		{name: "several dot thousands", input: "1.234.567", want: 1234567},
		{name: "single digit after dot is not cents", input: "12.5", want: 125},
		{name: "currency symbol and spaces", input: "R$ 150.000,00", want: 150000},
		{name: "non-breaking spaces", input: "\u00a0R$\u00a01.500", want: 1500},
		{name: "html non-breaking space", input: "R$&nbsp;2.500,50", want: 2500.50},
		{name: "cents after several dots is unreadable", input: "1.234.56", want: 0},
		{name: "empty", input: "", want: 0},
		{name: "letters only", input: "abc", want: 0},
		{name: "lone separator", input: ".", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NormalizeCurrency(tt.input), 1e-9)
		})
	}
}
