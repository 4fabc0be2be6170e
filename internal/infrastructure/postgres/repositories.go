package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/addispay/chapa-pay-hub/internal/domain/entity"
	"github.com/addispay/chapa-pay-hub/internal/domain/repository"
)

type PaymentRepo struct {
	pool *pgxpool.Pool
}

func NewPaymentRepo(pool *pgxpool.Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

func (r *PaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO payments (id, tx_ref, amount, currency, email, checkout_url, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID(), p.TxRef(), p.Amount(), p.Currency(), p.Email(), p.CheckoutURL(), string(p.Status()), p.CreatedAt(),
	)
	return err
}

func (r *PaymentRepo) FindByTxRef(ctx context.Context, txRef string) (*entity.Payment, error) {
	var (
		id          uuid.UUID
		amount      float64
		currency    string
		email       string
		checkoutURL string
		status      string
		createdAt   time.Time
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, amount, currency, email, checkout_url, status, created_at
		 FROM payments WHERE tx_ref = $1`,
		txRef,
	).Scan(&id, &amount, &currency, &email, &checkoutURL, &status, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return entity.ReconstructPayment(id, txRef, amount, currency, email, checkoutURL,
		entity.PaymentStatus(status), createdAt), nil
}

func (r *PaymentRepo) UpdateStatus(ctx context.Context, txRef string, status entity.PaymentStatus) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE payments SET status = $1 WHERE tx_ref = $2`,
		string(status), txRef,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
