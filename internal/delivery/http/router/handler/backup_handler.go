package handler

import (
	"net/http"

	"imobi/internal/delivery/http/response"
	"imobi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BackupHandler exposes snapshot backup and restore to administrators.
type BackupHandler struct {
	uc usecase.BackupUsecase
}

// NewBackupHandler is the constructor for BackupHandler, injected by Fx.
func NewBackupHandler(uc usecase.BackupUsecase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// Snapshot writes a full snapshot of every entity to the backup store.
func (h *BackupHandler) Snapshot(c echo.Context) error {
	key, err := h.uc.Snapshot(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, echo.Map{"key": key}, "Snapshot created successfully")
}

// List returns the stored snapshot keys, newest first.
func (h *BackupHandler) List(c echo.Context) error {
	keys, err := h.uc.ListSnapshots(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, keys, "")
}

// Restore re-inserts a snapshot's entities in one transaction, keeping the
// original ids.
func (h *BackupHandler) Restore(c echo.Context) error {
	key := c.Param("key")

	if err := h.uc.Restore(c.Request().Context(), key); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Snapshot restored successfully")
}
