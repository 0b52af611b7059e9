package handler

import (
	"net/http"

	"imobi/internal/delivery/http/response"
	"imobi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TemplateHandler holds dependencies for contract-template handlers.
type TemplateHandler struct {
	uc usecase.TemplateUsecase
}

// NewTemplateHandler is the constructor for TemplateHandler, injected by Fx.
func NewTemplateHandler(uc usecase.TemplateUsecase) *TemplateHandler {
	return &TemplateHandler{uc: uc}
}

// Create registers a new contract template.
func (h *TemplateHandler) Create(c echo.Context) error {
	var input usecase.TemplateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid template input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	template, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, template, "Template created successfully")
}

// Get returns one template by id, deactivated ones included.
func (h *TemplateHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	template, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, template, "")
}

// List returns the active templates.
func (h *TemplateHandler) List(c echo.Context) error {
	templates, err := h.uc.ListActive(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, templates, "")
}

// Update replaces a template's name, type and content.
func (h *TemplateHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.TemplateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid template input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	template, err := h.uc.Update(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, template, "Template updated successfully")
}

// Deactivate retires a template from new document generation. It stays
// addressable by id so existing documents remain reproducible.
func (h *TemplateHandler) Deactivate(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Deactivate(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Template deactivated successfully")
}
