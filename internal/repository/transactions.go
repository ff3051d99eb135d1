package repository

import (
	"context"
	"errors"
	"time"

	"eventix/backend/internal/models"

	"github.com/jackc/pgx/v5"
)

// RecordTransaction applies a ticket purchase as one database transaction:
// the event row is locked, the capacity check is re-validated under the
// lock, and only then are the sold-count update and the transaction insert
// committed. Two concurrent purchases for the same event serialize on the
// row lock, so the capacity limit cannot be jointly exceeded.
func (r *Repository) RecordTransaction(ctx context.Context, eventID string, nTickets int, at time.Time) (string, error) {
	var transactionID string
	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		var ticketsSold, capacity int
		err := tx.QueryRow(ctx, `
SELECT tickets_sold, capacity
FROM events
WHERE id::text = $1
FOR UPDATE;`, eventID).Scan(&ticketsSold, &capacity)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrEventNotFound
			}
			return err
		}

		if ticketsSold+nTickets > capacity {
			return ErrSoldOut
		}

		if _, err := tx.Exec(ctx, `
UPDATE events
SET tickets_sold = tickets_sold + $2
WHERE id::text = $1;`, eventID, nTickets); err != nil {
			return err
		}

		return tx.QueryRow(ctx, `
INSERT INTO ticket_transactions (event_id, n_tickets, transaction_date)
VALUES ($1::uuid, $2, $3)
RETURNING id::text;`, eventID, nTickets, at).Scan(&transactionID)
	})
	if err != nil {
		return "", err
	}
	return transactionID, nil
}

func (r *Repository) ListTransactionsBetween(ctx context.Context, from, to time.Time) ([]models.TicketTransaction, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id::text, event_id::text, n_tickets, transaction_date
FROM ticket_transactions
WHERE transaction_date >= $1 AND transaction_date <= $2
ORDER BY transaction_date;`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.TicketTransaction
	for rows.Next() {
		var tr models.TicketTransaction
		if err := rows.Scan(&tr.ID, &tr.EventID, &tr.NTickets, &tr.TransactionDate); err != nil {
			return nil, err
		}
		out = append(out, tr)
	}
	return out, rows.Err()
}
