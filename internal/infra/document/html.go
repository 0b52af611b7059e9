package document

import (
	"bytes"
	"encoding/base64"
	"html/template"

	"github.com/pkg/errors"
	qrcode "github.com/skip2/go-qrcode"

	"imobi/internal/domain/service"
	"imobi/internal/render"
)

// contractShell embeds the processed template body in a print-ready page.
// The body is staff-authored rich text that already went through tag
// substitution, so it is injected as-is; only the title is escaped.
var contractShell = template.Must(template.New("contract").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  @page { size: A4; margin: 2.5cm 2cm; }
  body {
    font-family: "Times New Roman", Times, serif;
    font-size: 12pt;
    line-height: 1.6;
    color: #111;
    max-width: 18cm;
    margin: 0 auto;
    text-align: justify;
  }
  h1, h2, h3 { text-align: center; }
  p { margin: 0 0 0.6em; }
  .ql-align-center { text-align: center; }
  .ql-align-right { text-align: right; }
  .ql-align-justify { text-align: justify; }
  .page-marker {
    display: block;
    text-align: right;
    font-size: 9pt;
    color: #555;
    page-break-after: always;
  }
  .page-marker:last-of-type { page-break-after: auto; }
  @media print {
    body { max-width: none; }
  }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

var slipShell = template.Must(template.New("slip").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>Recibo de Aluguel nº {{.PaymentID}}</title>
<style>
  @page { size: A4; margin: 2cm; }
  body {
    font-family: Arial, Helvetica, sans-serif;
    font-size: 11pt;
    color: #111;
    max-width: 16cm;
    margin: 0 auto;
  }
  .slip {
    border: 1px solid #444;
    border-radius: 4px;
    padding: 1.2cm;
  }
  h1 { font-size: 14pt; text-align: center; margin-bottom: 1em; }
  table { width: 100%; border-collapse: collapse; }
  td { padding: 0.3em 0; vertical-align: top; }
  td.label { width: 38%; color: #555; }
  .amount { font-size: 13pt; font-weight: bold; }
  .qr { text-align: center; margin-top: 1.2cm; }
  .qr img { width: 4.5cm; height: 4.5cm; }
  .qr .hint { font-size: 9pt; color: #555; margin-top: 0.4em; }
</style>
</head>
<body>
<div class="slip">
  <h1>Recibo de Aluguel — {{.ReferenceMonth}}</h1>
  <table>
    <tr><td class="label">Recibo nº</td><td>{{.PaymentID}}</td></tr>
    <tr><td class="label">Contrato nº</td><td>{{.ContractID}}</td></tr>
    <tr><td class="label">Locatário</td><td>{{.TenantName}}</td></tr>
    <tr><td class="label">Imóvel</td><td>{{.PropertyName}}</td></tr>
    <tr><td class="label">Endereço</td><td>{{.AddressLine}}</td></tr>
    <tr><td class="label">Vencimento</td><td>{{.DueDate}}</td></tr>
    <tr><td class="label">Valor</td><td class="amount">{{.Amount}}</td></tr>
    <tr><td class="label">Valor por extenso</td><td>{{.AmountInWords}}</td></tr>
  </table>
  {{if .QRImage}}
  <div class="qr">
    <img src="data:image/png;base64,{{.QRImage}}" alt="QR de pagamento">
    <div class="hint">Escaneie o código para pagar</div>
  </div>
  {{end}}
</div>
</body>
</html>
`))

// ContractHTML embeds the processed template body in a print-ready shell.
func (r *renderer) ContractHTML(title, processed string) string {
	var buf bytes.Buffer

	data := struct {
		Title string
		Body  template.HTML
	}{
		Title: title,
		Body:  template.HTML(processed),
	}
	if err := contractShell.Execute(&buf, data); err != nil {
		// The shell template is static; execution only fails on writer errors,
		// which bytes.Buffer never produces.
		return processed
	}

	return buf.String()
}

// SlipHTML renders a payment slip as a standalone page with an embedded QR
// code image. An empty QR payload just omits the QR block.
func (r *renderer) SlipHTML(slip service.SlipData) (string, error) {
	var qrImage string

	if slip.QRPayload != "" {
		png, err := qrcode.Encode(slip.QRPayload, qrcode.Medium, 256)
		if err != nil {
			return "", errors.Wrap(err, "failed to encode slip QR code")
		}
		qrImage = base64.StdEncoding.EncodeToString(png)
	}

	data := struct {
		PaymentID      int64
		ContractID     int64
		TenantName     string
		PropertyName   string
		AddressLine    string
		DueDate        string
		ReferenceMonth string
		Amount         string
		AmountInWords  string
		QRImage        string
	}{
		PaymentID:      slip.PaymentID,
		ContractID:     slip.ContractID,
		TenantName:     slip.TenantName,
		PropertyName:   slip.PropertyName,
		AddressLine:    slip.AddressLine,
		DueDate:        slip.DueDate,
		ReferenceMonth: slip.ReferenceMonth,
		Amount:         render.FormatCurrency(slip.Amount),
		AmountInWords:  slip.AmountInWords,
		QRImage:        qrImage,
	}

	var buf bytes.Buffer
	if err := slipShell.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, "failed to render slip page")
	}

	return buf.String(), nil
}
