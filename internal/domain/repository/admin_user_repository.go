package repository

import (
	"context"

	"imobi/internal/domain/entity"
	"imobi/internal/errors"

	"github.com/google/uuid"
)

// ErrAdminUserNotFound is returned when an account lookup finds no record.
var ErrAdminUserNotFound = errors.New("admin user not found")

// AdminUserRepository is the persistence boundary for back-office accounts.
type AdminUserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error)
	FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error)
	Create(ctx context.Context, user *entity.AdminUser) error
}
