package verify

import (
	"context"

	"github.com/addispay/chapa-pay-hub/internal/domain/entity"
	"github.com/addispay/chapa-pay-hub/internal/domain/payment"
	"github.com/addispay/chapa-pay-hub/internal/domain/repository"
)

type Response struct {
	TxRef   string
	Status  entity.PaymentStatus
	Amount  float64
	Message string
}

type UseCase struct {
	gateway  payment.Gateway
	payments repository.PaymentRepository
}

func NewUseCase(gateway payment.Gateway, payments repository.PaymentRepository) *UseCase {
	return &UseCase{gateway: gateway, payments: payments}
}

// Execute asks the provider for the state of a known payment and records
// the answer. Unknown references fail before any provider call.
func (uc *UseCase) Execute(ctx context.Context, txRef string) (*Response, error) {
	if _, err := uc.payments.FindByTxRef(ctx, txRef); err != nil {
		return nil, err
	}

	res, err := uc.gateway.Verify(ctx, txRef)
	if err != nil {
		return nil, err
	}

	status := mapStatus(res.Status)
	if err := uc.payments.UpdateStatus(ctx, txRef, status); err != nil {
		return nil, err
	}

	return &Response{
		TxRef:   txRef,
		Status:  status,
		Amount:  res.Amount,
		Message: res.Message,
	}, nil
}

func mapStatus(providerStatus string) entity.PaymentStatus {
	switch providerStatus {
	case "success":
		return entity.StatusSuccess
	case "failed":
		return entity.StatusFailed
	default:
		return entity.StatusPending
	}
}
