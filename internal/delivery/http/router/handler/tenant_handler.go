package handler

import (
	"net/http"

	"imobi/internal/delivery/http/response"
	"imobi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TenantHandler holds dependencies for tenant-related handlers.
type TenantHandler struct {
	uc usecase.TenantUsecase
}

// NewTenantHandler is the constructor for TenantHandler, injected by Fx.
func NewTenantHandler(uc usecase.TenantUsecase) *TenantHandler {
	return &TenantHandler{uc: uc}
}

// Create handles tenant registration, guarantor included.
func (h *TenantHandler) Create(c echo.Context) error {
	var input usecase.TenantInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tenant input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	tenant, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, tenant, "Tenant created successfully")
}

// Get returns one tenant by id.
func (h *TenantHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	tenant, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tenant, "")
}

// List returns every registered tenant.
func (h *TenantHandler) List(c echo.Context) error {
	tenants, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tenants, "")
}

// Update replaces a tenant's registration data.
func (h *TenantHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.TenantInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tenant input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	tenant, err := h.uc.Update(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tenant, "Tenant updated successfully")
}

// Delete removes a tenant.
func (h *TenantHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Tenant deleted successfully")
}
