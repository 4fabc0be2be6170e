package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	StatusPending PaymentStatus = "pending"
	StatusSuccess PaymentStatus = "success"
	StatusFailed  PaymentStatus = "failed"
)

type Payment struct {
	id          uuid.UUID
	txRef       string
	amount      float64
	currency    string
	email       string
	checkoutURL string
	status      PaymentStatus
	createdAt   time.Time
}

func NewPayment(txRef string, amount float64, currency, email, checkoutURL string) *Payment {
	return &Payment{
		id:          uuid.New(),
		txRef:       txRef,
		amount:      amount,
		currency:    currency,
		email:       email,
		checkoutURL: checkoutURL,
		status:      StatusPending,
		createdAt:   time.Now(),
	}
}

func ReconstructPayment(
	id uuid.UUID,
	txRef string,
	amount float64,
	currency, email, checkoutURL string,
	status PaymentStatus,
	createdAt time.Time,
) *Payment {
	return &Payment{
		id:          id,
		txRef:       txRef,
		amount:      amount,
		currency:    currency,
		email:       email,
		checkoutURL: checkoutURL,
		status:      status,
		createdAt:   createdAt,
	}
}

func (p *Payment) ID() uuid.UUID {
	return p.id
}

func (p *Payment) TxRef() string {
	return p.txRef
}

func (p *Payment) Amount() float64 {
	return p.amount
}

func (p *Payment) Currency() string {
	return p.currency
}

func (p *Payment) Email() string {
	return p.email
}

func (p *Payment) CheckoutURL() string {
	return p.checkoutURL
}

func (p *Payment) Status() PaymentStatus {
	return p.status
}

func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}
