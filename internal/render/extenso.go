// Package render implements the contract document engine: tag substitution
// over a fixed vocabulary, civil-date formatting, Portuguese number prose and
// the page-numbering pass. Everything here is pure; hydration of the data the
// engine consumes happens in the use case layer.
package render

import "strings"

var (
	unidades = [...]string{
		"", "um", "dois", "três", "quatro", "cinco", "seis", "sete", "oito", "nove",
	}
	dezADezenove = [...]string{
		"dez", "onze", "doze", "treze", "quatorze", "quinze",
		"dezesseis", "dezessete", "dezoito", "dezenove",
	}
	dezenas = [...]string{
		"", "", "vinte", "trinta", "quarenta", "cinquenta",
		"sessenta", "setenta", "oitenta", "noventa",
	}
	centenas = [...]string{
		"", "cento", "duzentos", "trezentos", "quatrocentos", "quinhentos",
		"seiscentos", "setecentos", "oitocentos", "novecentos",
	}
)

// scale words per thousands group, singular and plural. The thousands group
// is special-cased: "mil" never takes a leading "um".
var escalas = [...][2]string{
	{"", ""},
	{"mil", "mil"},
	{"milhão", "milhões"},
	{"bilhão", "bilhões"},
	{"trilhão", "trilhões"},
}

// Extenso converts a non-negative integer into Portuguese cardinal prose,
// e.g. 1200 -> "mil e duzentos". Values <= 0 yield "zero". The caller is
// responsible for appending the currency word ("reais").
func Extenso(n int) string {
	if n <= 0 {
		return "zero"
	}

	// Decompose into groups of three digits, least significant first.
	var groups []int
	for n > 0 {
		groups = append(groups, n%1000)
		n /= 1000
	}

	var parts []string
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			continue
		}

		switch {
		case i == 0:
			parts = append(parts, grupoExtenso(g))
		case i == 1 && g == 1:
			parts = append(parts, "mil")
		case g == 1:
			parts = append(parts, "um "+escalas[i][0])
		default:
			parts = append(parts, grupoExtenso(g)+" "+escalas[i][1])
		}
	}

	return strings.Join(parts, " e ")
}

// grupoExtenso spells a group in the range 1..999. Exactly 100 is "cem";
// 101..199 use "cento".
func grupoExtenso(g int) string {
	if g == 100 {
		return "cem"
	}

	var parts []string
	if h := g / 100; h > 0 {
		parts = append(parts, centenas[h])
	}

	r := g % 100
	switch {
	case r == 0:
	case r < 10:
		parts = append(parts, unidades[r])
	case r < 20:
		parts = append(parts, dezADezenove[r-10])
	default:
		d := dezenas[r/10]
		if u := r % 10; u > 0 {
			d += " e " + unidades[u]
		}
		parts = append(parts, d)
	}

	return strings.Join(parts, " e ")
}
