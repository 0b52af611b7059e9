package repository

import (
	"context"

	"imobi/internal/domain/entity"
	"imobi/internal/errors"
)

// ErrPaymentNotFound is returned when a payment lookup finds no record.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepository is the persistence boundary for rent payments.
type PaymentRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Payment, error)
	FindAll(ctx context.Context) ([]*entity.Payment, error)
	FindByContract(ctx context.Context, contractID int64) ([]*entity.Payment, error)
	Create(ctx context.Context, payment *entity.Payment) error
	Update(ctx context.Context, payment *entity.Payment) error
	Delete(ctx context.Context, id int64) error
}
