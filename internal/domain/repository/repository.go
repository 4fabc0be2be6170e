package repository

import (
	"context"
	"errors"

	"github.com/addispay/chapa-pay-hub/internal/domain/entity"
)

var ErrNotFound = errors.New("not found")

type PaymentRepository interface {
	Create(ctx context.Context, p *entity.Payment) error
	FindByTxRef(ctx context.Context, txRef string) (*entity.Payment, error)
	UpdateStatus(ctx context.Context, txRef string, status entity.PaymentStatus) error
}
