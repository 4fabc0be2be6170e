package checkout

import (
	"context"

	"github.com/addispay/chapa-pay-hub/internal/domain/entity"
	"github.com/addispay/chapa-pay-hub/internal/domain/payment"
	"github.com/addispay/chapa-pay-hub/internal/domain/repository"
)

type Request struct {
	TxRef         string
	Amount        float64
	Currency      string
	Email         string
	FirstName     string
	LastName      string
	CallbackURL   string
	Customization map[string]any
}

type Response struct {
	TxRef       string
	CheckoutURL string
	Status      entity.PaymentStatus
}

type UseCase struct {
	gateway  payment.Gateway
	payments repository.PaymentRepository
}

func NewUseCase(gateway payment.Gateway, payments repository.PaymentRepository) *UseCase {
	return &UseCase{gateway: gateway, payments: payments}
}

func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	res, err := uc.gateway.Initialize(ctx, payment.Request{
		TxRef:         req.TxRef,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Email:         req.Email,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		CallbackURL:   req.CallbackURL,
		Customization: req.Customization,
	})
	if err != nil {
		return nil, err
	}

	p := entity.NewPayment(res.TxRef, req.Amount, req.Currency, req.Email, res.CheckoutURL)
	if err := uc.payments.Create(ctx, p); err != nil {
		return nil, err
	}

	return &Response{
		TxRef:       p.TxRef(),
		CheckoutURL: p.CheckoutURL(),
		Status:      p.Status(),
	}, nil
}
