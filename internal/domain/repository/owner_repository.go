// Package repository defines the persistence interfaces the use case layer
// depends on, keeping it independent of any specific database driver.
package repository

import (
	"context"

	"imobi/internal/domain/entity"
	"imobi/internal/errors"
)

// ErrOwnerNotFound is returned when an owner lookup finds no record.
var ErrOwnerNotFound = errors.New("owner not found")

// OwnerRepository is the persistence boundary for owners.
type OwnerRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Owner, error)
	FindAll(ctx context.Context) ([]*entity.Owner, error)
	Create(ctx context.Context, owner *entity.Owner) error
	Update(ctx context.Context, owner *entity.Owner) error
	Delete(ctx context.Context, id int64) error
}
