package repository

import (
	"context"
	"errors"
	"time"

	"eventix/backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const eventColumns = `id::text, name, date, capacity, cost_per_ticket, tickets_sold, created_at`

func (r *Repository) CreateEvent(ctx context.Context, event models.Event) (string, error) {
	row := r.pool.QueryRow(ctx, `
INSERT INTO events (name, date, capacity, cost_per_ticket, tickets_sold)
VALUES ($1, $2, $3, $4, 0)
RETURNING id::text;`, event.Name, event.Date, event.Capacity, event.CostPerTicket)

	var id string
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return "", ErrEventDateTaken
		}
		return "", err
	}
	return id, nil
}

func (r *Repository) GetEventByID(ctx context.Context, id string) (models.Event, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id::text = $1;`, id)
	return scanEvent(row)
}

func (r *Repository) GetEventByDate(ctx context.Context, date time.Time) (models.Event, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE date = $1;`, date)
	return scanEvent(row)
}

func (r *Repository) ListEventsBetween(ctx context.Context, from, to time.Time) ([]models.Event, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+eventColumns+`
FROM events
WHERE date >= $1 AND date <= $2
ORDER BY date;`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, event)
	}
	return out, rows.Err()
}

func scanEvent(row pgx.Row) (models.Event, error) {
	var out models.Event
	err := row.Scan(&out.ID, &out.Name, &out.Date, &out.Capacity, &out.CostPerTicket, &out.TicketsSold, &out.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Event{}, ErrEventNotFound
	}
	return out, err
}
