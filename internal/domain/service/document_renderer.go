package service

// SlipData carries the structured values printed on a payment slip. The
// renderer never goes back to storage; callers hydrate everything up front.
type SlipData struct {
	PaymentID      int64
	ContractID     int64
	TenantName     string
	PropertyName   string
	AddressLine    string
	Amount         float64
	AmountInWords  string
	DueDate        string // Already display-formatted.
	ReferenceMonth string // e.g. "Janeiro de 2026".
	QRPayload      string // Copy-and-paste payment code encoded in the QR.
}

// DocumentRenderer wraps processed template output in a deliverable document.
// Implementations only shape and draw the text they are handed; all tag
// substitution has already happened upstream.
type DocumentRenderer interface {
	// ContractHTML embeds the processed template body in a print-ready shell.
	ContractHTML(title, processed string) string

	// ContractPDF lays the processed template body out on A4 pages.
	ContractPDF(title, processed string) ([]byte, error)

	// SlipHTML renders a payment slip as a standalone HTML page with an
	// embedded QR code image.
	SlipHTML(slip SlipData) (string, error)

	// SlipPDF renders a payment slip as a PDF with a drawn QR code.
	SlipPDF(slip SlipData) ([]byte, error)
}
