package repository

import (
	"context"

	"imobi/internal/domain/entity"
	"imobi/internal/errors"
)

// ErrContractNotFound is returned when a contract lookup finds no record.
var ErrContractNotFound = errors.New("contract not found")

// ContractRepository is the persistence boundary for contracts.
type ContractRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Contract, error)
	FindAll(ctx context.Context) ([]*entity.Contract, error)
	FindByStatus(ctx context.Context, status string) ([]*entity.Contract, error)
	Create(ctx context.Context, contract *entity.Contract) error
	Update(ctx context.Context, contract *entity.Contract) error
	Delete(ctx context.Context, id int64) error
}
