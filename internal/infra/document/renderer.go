// Package document wraps processed template text in deliverable documents:
// print-ready HTML pages and A4 PDFs. All tag substitution happens upstream;
// this package only shapes and draws what it is handed.
package document

import (
	"imobi/internal/domain/service"
)

// renderer implements the service.DocumentRenderer interface.
type renderer struct{}

// NewRenderer is the constructor for renderer.
func NewRenderer() service.DocumentRenderer {
	return &renderer{}
}
