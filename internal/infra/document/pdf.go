package document

import (
	"html"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/pkg/errors"

	"imobi/internal/domain/service"
	"imobi/internal/render"
)

var colorMuted = &props.Color{Red: 90, Green: 90, Blue: 90}

// ContractPDF lays the processed template body out on A4 pages. The rich-text
// body is flattened to paragraphs; the PDF engine repaginates, so embedded
// page markers are dropped rather than honored.
func (r *renderer) ContractPDF(title, processed string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(20).WithRightMargin(20).
		WithTopMargin(25).WithBottomMargin(25).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 11}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(12).Add(
		col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 14, Align: align.Center, Top: 2,
		})),
	))
	m.AddRows(line.NewRow(4, props.Line{Color: colorMuted, Thickness: 0.3}))

	for _, paragraph := range htmlToParagraphs(processed) {
		m.AddRows(paragraphRow(paragraph))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate contract PDF")
	}

	return doc.GetBytes(), nil
}

// SlipPDF renders a payment slip as a single A4 page with a drawn QR code.
func (r *renderer) SlipPDF(slip service.SlipData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(20).WithRightMargin(20).
		WithTopMargin(25).WithBottomMargin(25).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Recibo de Aluguel", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(12).Add(
		col.New(12).Add(text.New("Recibo de Aluguel — "+slip.ReferenceMonth, props.Text{
			Style: fontstyle.Bold, Size: 13, Align: align.Center, Top: 2,
		})),
	))
	m.AddRows(line.NewRow(4, props.Line{Color: colorMuted, Thickness: 0.3}))

	m.AddRows(
		slipFieldRow("Recibo nº", intString(slip.PaymentID)),
		slipFieldRow("Contrato nº", intString(slip.ContractID)),
		slipFieldRow("Locatário", slip.TenantName),
		slipFieldRow("Imóvel", slip.PropertyName),
		slipFieldRow("Endereço", slip.AddressLine),
		slipFieldRow("Vencimento", slip.DueDate),
		slipFieldRow("Valor", render.FormatCurrency(slip.Amount)),
		slipFieldRow("Valor por extenso", slip.AmountInWords),
	)

	if slip.QRPayload != "" {
		m.AddRows(row.New(8))
		m.AddRows(row.New(50).Add(
			col.New(4).Add(code.NewQr(slip.QRPayload, props.Rect{
				Percent: 90,
				Center:  true,
			})),
			col.New(8).Add(text.New("Escaneie o código para pagar.", props.Text{
				Size: 9, Top: 22, Left: 3, Color: colorMuted,
			})),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate slip PDF")
	}

	return doc.GetBytes(), nil
}

func slipFieldRow(label, value string) core.Row {
	return row.New(7).Add(
		col.New(4).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 1, Color: colorMuted,
		})),
		col.New(8).Add(text.New(value, props.Text{Size: 10, Top: 1})),
	)
}

// paragraphRow sizes a text row from its content length. Maroto needs fixed
// row heights, so the height is estimated from an A4 body width of roughly
// 95 characters per line.
func paragraphRow(paragraph string) core.Row {
	const charsPerLine = 95

	lines := utf8.RuneCountInString(paragraph)/charsPerLine + 1
	height := float64(lines)*5 + 2

	return row.New(height).Add(
		col.New(12).Add(text.New(paragraph, props.Text{Size: 11, Top: 1})),
	)
}

var (
	breakTagPattern = regexp.MustCompile(`(?i)<br\s*/?>|</p>|</div>|</li>|</h[1-6]>|</tr>`)
	anyTagPattern   = regexp.MustCompile(`<[^>]*>`)
)

// htmlToParagraphs flattens staff-authored rich text into plain paragraphs:
// block closings become line breaks, all other markup is stripped, entities
// are decoded and blank lines dropped.
func htmlToParagraphs(body string) []string {
	flat := breakTagPattern.ReplaceAllString(body, "\n")
	flat = anyTagPattern.ReplaceAllString(flat, "")
	flat = html.UnescapeString(flat)

	var paragraphs []string
	for _, line := range strings.Split(flat, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		paragraphs = append(paragraphs, line)
	}

	return paragraphs
}

func intString(n int64) string {
	return strconv.FormatInt(n, 10)
}
