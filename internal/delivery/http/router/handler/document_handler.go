package handler

import (
	"fmt"
	"net/http"

	domainerrors "imobi/internal/domain/errors"
	"imobi/internal/domain/service"
	"imobi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DocumentHandler turns processed contract templates into deliverable
// documents. Tag substitution happens in the template usecase; this handler
// only picks the output format.
type DocumentHandler struct {
	templates usecase.TemplateUsecase
	contracts usecase.ContractUsecase
	renderer  service.DocumentRenderer
}

// NewDocumentHandler is the constructor for DocumentHandler, injected by Fx.
func NewDocumentHandler(
	templates usecase.TemplateUsecase,
	contracts usecase.ContractUsecase,
	renderer service.DocumentRenderer,
) *DocumentHandler {
	return &DocumentHandler{templates: templates, contracts: contracts, renderer: renderer}
}

// Generate produces the contract document using the first active template
// that matches the contract's type. ?format=pdf switches to PDF output.
func (h *DocumentHandler) Generate(c echo.Context) error {
	contractID, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	contract, err := h.contracts.Get(c.Request().Context(), contractID)
	if err != nil {
		return errors.WithStack(err)
	}

	doc, err := h.templates.ProcessedByType(c.Request().Context(), contract.Type, contractID)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.respond(c, doc, contractID)
}

// GenerateWithTemplate produces the contract document from an explicit
// template id, deactivated templates included, so historical documents stay
// reproducible.
func (h *DocumentHandler) GenerateWithTemplate(c echo.Context) error {
	contractID, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}
	templateID, err := pathID(c, "templateId")
	if err != nil {
		return errors.WithStack(err)
	}

	doc, err := h.templates.ProcessedByID(c.Request().Context(), templateID, contractID)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.respond(c, doc, contractID)
}

func (h *DocumentHandler) respond(c echo.Context, doc *usecase.ProcessedDocument, contractID int64) error {
	switch format := c.QueryParam("format"); format {
	case "", "html":
		return c.HTML(http.StatusOK, h.renderer.ContractHTML(doc.Template.Name, doc.Body))
	case "pdf":
		pdf, err := h.renderer.ContractPDF(doc.Template.Name, doc.Body)
		if err != nil {
			return errors.WithStack(err)
		}
		c.Response().Header().Set(echo.HeaderContentDisposition,
			fmt.Sprintf(`attachment; filename="contrato-%d.pdf"`, contractID))
		return c.Blob(http.StatusOK, "application/pdf", pdf)
	default:
		return errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage("unsupported format: " + format))
	}
}
