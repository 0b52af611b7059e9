package handler

import (
	"net/http"

	"imobi/internal/delivery/http/response"
	"imobi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OwnerHandler holds dependencies for owner-related handlers.
type OwnerHandler struct {
	uc usecase.OwnerUsecase
}

// NewOwnerHandler is the constructor for OwnerHandler, injected by Fx.
func NewOwnerHandler(uc usecase.OwnerUsecase) *OwnerHandler {
	return &OwnerHandler{uc: uc}
}

// Create handles owner registration.
func (h *OwnerHandler) Create(c echo.Context) error {
	var input usecase.OwnerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid owner input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	owner, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, owner, "Owner created successfully")
}

// Get returns one owner by id.
func (h *OwnerHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	owner, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, owner, "")
}

// List returns every registered owner.
func (h *OwnerHandler) List(c echo.Context) error {
	owners, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, owners, "")
}

// Update replaces an owner's registration data.
func (h *OwnerHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.OwnerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid owner input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	owner, err := h.uc.Update(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, owner, "Owner updated successfully")
}

// Delete removes an owner.
func (h *OwnerHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Owner deleted successfully")
}
