package repository

import (
	"context"

	"imobi/internal/domain/entity"
	"imobi/internal/errors"
)

// ErrPropertyNotFound is returned when a property lookup finds no record.
var ErrPropertyNotFound = errors.New("property not found")

// PropertyRepository is the persistence boundary for properties.
type PropertyRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Property, error)
	FindAll(ctx context.Context) ([]*entity.Property, error)
	FindByOwner(ctx context.Context, ownerID int64) ([]*entity.Property, error)
	Create(ctx context.Context, property *entity.Property) error
	Update(ctx context.Context, property *entity.Property) error
	Delete(ctx context.Context, id int64) error
}
