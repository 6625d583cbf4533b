package repository

import (
	"context"

	"github.com/greenbasket/checkout/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresPaymentRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPaymentRepository(db *pgxpool.Pool) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{
		db: db,
	}
}

func (p *PostgresPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (
			stripe_checkout_session_id,
			amount,
			currency,
			status
		)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := p.db.QueryRow(
		ctx,
		query,
		payment.CheckoutSessionID,
		payment.Amount,
		payment.Currency,
		payment.Status,
	).Scan(&payment.ID, &payment.CreatedAt)

	return err
}

func (p *PostgresPaymentRepository) UpdateStatus(
	ctx context.Context,
	checkoutSessionID string,
	status domain.PaymentStatus) error {

	query := `UPDATE payments
		SET status = $1, updated_at = now()
		WHERE stripe_checkout_session_id = $2
	`

	_, err := p.db.Exec(ctx, query, status, checkoutSessionID)
	return err
}
