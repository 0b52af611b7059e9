package handler

import (
	"net/http"

	"imobi/internal/delivery/http/response"
	"imobi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContractHandler holds dependencies for contract-related handlers.
type ContractHandler struct {
	uc usecase.ContractUsecase
}

// NewContractHandler is the constructor for ContractHandler, injected by Fx.
func NewContractHandler(uc usecase.ContractUsecase) *ContractHandler {
	return &ContractHandler{uc: uc}
}

// Create registers a contract binding owner, tenant and property.
func (h *ContractHandler) Create(c echo.Context) error {
	var input usecase.ContractInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contract input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	contract, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, contract, "Contract created successfully")
}

// Get returns one contract by id.
func (h *ContractHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	contract, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, contract, "")
}

// List returns every contract, optionally filtered by ?status=.
func (h *ContractHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if status := c.QueryParam("status"); status != "" {
		contracts, err := h.uc.ListByStatus(ctx, status)
		if err != nil {
			return errors.WithStack(err)
		}
		return response.Success(c, http.StatusOK, contracts, "")
	}

	contracts, err := h.uc.List(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, contracts, "")
}

// Update replaces a contract's data. Renewal lineage fields are preserved
// server-side and cannot be rewritten here.
func (h *ContractHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.ContractInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contract input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	contract, err := h.uc.Update(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, contract, "Contract updated successfully")
}

// Delete removes a contract.
func (h *ContractHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Contract deleted successfully")
}

// Renew creates a renewal contract linked to the original.
func (h *ContractHandler) Renew(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.RenewalInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid renewal input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	renewal, err := h.uc.Renew(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, renewal, "Contract renewed successfully")
}
