package document

import (
	"strings"
	"testing"

	"imobi/internal/domain/service"

	"github.com/stretchr/testify/assert"
)

func TestContractHTML_WrapsBody(t *testing.T) {
	r := &renderer{}

	page := r.ContractHTML("Contrato de Locação nº 7", `<p>CLÁUSULA 1ª</p>`)

	assert.Contains(t, page, "<title>Contrato de Locação nº 7</title>")
	assert.Contains(t, page, `<p>CLÁUSULA 1ª</p>`) // body stays raw
	assert.Contains(t, page, ".page-marker")
	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
}

func TestContractHTML_EscapesTitleOnly(t *testing.T) {
	r := &renderer{}

	page := r.ContractHTML(`Contrato <x>`, `<b>corpo</b>`)

	assert.Contains(t, page, "Contrato &lt;x&gt;")
	assert.Contains(t, page, "<b>corpo</b>")
}

func TestSlipHTML(t *testing.T) {
	r := &renderer{}

	slip := service.SlipData{
		PaymentID:      42,
		ContractID:     7,
		TenantName:     "Carlos Pereira",
		PropertyName:   "Apto 302 - Ed. Aurora",
		AddressLine:    "Rua das Acácias, 100, Centro, São Paulo - SP, CEP: 01000-000",
		Amount:         1200,
		AmountInWords:  "mil e duzentos reais",
		DueDate:        "10/03/2026",
		ReferenceMonth: "Março de 2026",
		QRPayload:      "00020126PIX-TEST-PAYLOAD",
	}

	page, err := r.SlipHTML(slip)
	assert.NoError(t, err)
	assert.Contains(t, page, "Carlos Pereira")
	assert.Contains(t, page, "R$ 1.200,00")
	assert.Contains(t, page, "mil e duzentos reais")
	assert.Contains(t, page, "data:image/png;base64,")
}

func TestSlipHTML_NoQRPayload(t *testing.T) {
	r := &renderer{}

	page, err := r.SlipHTML(service.SlipData{PaymentID: 1, ReferenceMonth: "Março de 2026"})
	assert.NoError(t, err)
	assert.NotContains(t, page, "data:image/png")
}

func TestHTMLToParagraphs(t *testing.T) {
	body := `<p>Primeiro &amp; parágrafo.</p><p class="ql-align-center">Segundo<br>Terceiro</p><div>  </div>`

	got := htmlToParagraphs(body)

	assert.Equal(t, []string{"Primeiro & parágrafo.", "Segundo", "Terceiro"}, got)
}
