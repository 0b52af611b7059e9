package handler

import (
	"net/http"

	"imobi/internal/delivery/http/response"
	"imobi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PropertyHandler holds dependencies for property-related handlers.
type PropertyHandler struct {
	uc usecase.PropertyUsecase
}

// NewPropertyHandler is the constructor for PropertyHandler, injected by Fx.
func NewPropertyHandler(uc usecase.PropertyUsecase) *PropertyHandler {
	return &PropertyHandler{uc: uc}
}

// Create registers a property under an existing owner.
func (h *PropertyHandler) Create(c echo.Context) error {
	var input usecase.PropertyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid property input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	property, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, property, "Property created successfully")
}

// Get returns one property by id.
func (h *PropertyHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	property, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, property, "")
}

// List returns every registered property.
func (h *PropertyHandler) List(c echo.Context) error {
	properties, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, properties, "")
}

// ListByOwner returns the properties registered under one owner.
func (h *PropertyHandler) ListByOwner(c echo.Context) error {
	ownerID, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	properties, err := h.uc.ListByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, properties, "")
}

// Update replaces a property's registration data.
func (h *PropertyHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.PropertyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid property input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	property, err := h.uc.Update(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, property, "Property updated successfully")
}

// Delete removes a property.
func (h *PropertyHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Property deleted successfully")
}
