package generateqr

import (
	"context"
	"errors"

	"github.com/addispay/chapa-pay-hub/internal/domain/qrcode"
	"github.com/addispay/chapa-pay-hub/internal/domain/repository"
)

var ErrNoCheckoutURL = errors.New("payment has no checkout url")

type UseCase struct {
	payments  repository.PaymentRepository
	generator qrcode.Generator
}

func NewUseCase(payments repository.PaymentRepository, generator qrcode.Generator) *UseCase {
	return &UseCase{payments: payments, generator: generator}
}

func (uc *UseCase) Execute(ctx context.Context, txRef string) ([]byte, error) {
	p, err := uc.payments.FindByTxRef(ctx, txRef)
	if err != nil {
		return nil, err
	}
	if p.CheckoutURL() == "" {
		return nil, ErrNoCheckoutURL
	}
	return uc.generator.Generate(p.CheckoutURL())
}
