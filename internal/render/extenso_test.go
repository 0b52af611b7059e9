package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtenso(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "zero"},
		{-5, "zero"},
		{1, "um"},
		{15, "quinze"},
		{21, "vinte e um"},
		{100, "cem"},
		{101, "cento e um"},
		{199, "cento e noventa e nove"},
		{200, "duzentos"},
		{350, "trezentos e cinquenta"},
		{1000, "mil"},
		{1200, "mil e duzentos"},
		{2500, "dois mil e quinhentos"},
		{18750, "dezoito mil e setecentos e cinquenta"},
		{1000000, "um milhão"},
		{2000000, "dois milhões"},
		{1234567, "um milhão e duzentos e trinta e quatro mil e quinhentos e sessenta e sete"},
		{1000000000, "um bilhão"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Extenso(tt.in), "Extenso(%d)", tt.in)
	}
}

func TestExtensoThousandHasNoLeadingCountWord(t *testing.T) {
	// "mil", never "um mil".
	assert.NotContains(t, Extenso(1000), "um")
	assert.NotContains(t, Extenso(1500), "um mil")
}
