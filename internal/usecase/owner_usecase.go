// Package usecase defines the application-service interfaces and their
// input/output DTOs, keeping delivery layers independent of implementations.
package usecase

import (
	"context"

	"imobi/internal/domain/entity"
)

// PersonInput carries the civil-identification fields shared by owner and
// tenant registration.
type PersonInput struct {
	Name          string          `json:"name" validate:"required"`
	Document      string          `json:"document" validate:"required"`
	RG            string          `json:"rg"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email" validate:"omitempty,email"`
	Nationality   string          `json:"nationality"`
	Profession    string          `json:"profession"`
	MaritalStatus string          `json:"maritalStatus"`
	SpouseName    string          `json:"spouseName"`
	Address       *entity.Address `json:"address"`
}

// OwnerInput represents owner registration data.
type OwnerInput struct {
	PersonInput
}

// OwnerUsecase defines the interface for owner management use cases
type OwnerUsecase interface {
	Create(ctx context.Context, input *OwnerInput) (*entity.Owner, error)
	Get(ctx context.Context, id int64) (*entity.Owner, error)
	List(ctx context.Context) ([]*entity.Owner, error)
	Update(ctx context.Context, id int64, input *OwnerInput) (*entity.Owner, error)
	Delete(ctx context.Context, id int64) error
}
