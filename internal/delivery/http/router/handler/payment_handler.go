package handler

import (
	"fmt"
	"net/http"

	"imobi/internal/delivery/http/response"
	domainerrors "imobi/internal/domain/errors"
	"imobi/internal/domain/service"
	"imobi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for rent payment handlers.
type PaymentHandler struct {
	uc       usecase.PaymentUsecase
	renderer service.DocumentRenderer
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, renderer service.DocumentRenderer) *PaymentHandler {
	return &PaymentHandler{uc: uc, renderer: renderer}
}

// Create registers a payment under an existing contract.
func (h *PaymentHandler) Create(c echo.Context) error {
	var input usecase.PaymentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	payment, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, payment, "Payment created successfully")
}

// Get returns one payment by id.
func (h *PaymentHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	payment, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payment, "")
}

// List returns every registered payment.
func (h *PaymentHandler) List(c echo.Context) error {
	payments, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payments, "")
}

// ListByContract returns the payments of one contract, due date ascending.
func (h *PaymentHandler) ListByContract(c echo.Context) error {
	contractID, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	payments, err := h.uc.ListByContract(c.Request().Context(), contractID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payments, "")
}

// Update replaces a payment's data, status transitions included.
func (h *PaymentHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.PaymentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	payment, err := h.uc.Update(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payment, "Payment updated successfully")
}

// Delete removes a payment.
func (h *PaymentHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Payment deleted successfully")
}

// Slip renders the payment slip. ?format=pdf switches to PDF output.
func (h *PaymentHandler) Slip(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	slip, err := h.uc.Slip(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	switch format := c.QueryParam("format"); format {
	case "", "html":
		page, err := h.renderer.SlipHTML(*slip)
		if err != nil {
			return errors.WithStack(err)
		}
		return c.HTML(http.StatusOK, page)
	case "pdf":
		pdf, err := h.renderer.SlipPDF(*slip)
		if err != nil {
			return errors.WithStack(err)
		}
		c.Response().Header().Set(echo.HeaderContentDisposition,
			fmt.Sprintf(`attachment; filename="recibo-%d.pdf"`, slip.PaymentID))
		return c.Blob(http.StatusOK, "application/pdf", pdf)
	default:
		return errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage("unsupported format: " + format))
	}
}
