package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"eventix/backend/internal/clock"
	"eventix/backend/internal/config"
	"eventix/backend/internal/models"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

// Store is the persistence surface the handlers depend on. Implemented by
// *repository.Repository.
type Store interface {
	CreateEvent(ctx context.Context, event models.Event) (string, error)
	GetEventByDate(ctx context.Context, date time.Time) (models.Event, error)
	RecordTransaction(ctx context.Context, eventID string, nTickets int, at time.Time) (string, error)
	ListEventsBetween(ctx context.Context, from, to time.Time) ([]models.Event, error)
	ListTransactionsBetween(ctx context.Context, from, to time.Time) ([]models.TicketTransaction, error)
}

type Handler struct {
	store     Store
	cfg       *config.Config
	logger    *slog.Logger
	validator *validator.Validate
	clock     clock.Clock
}

func New(store Store, cfg *config.Config, logger *slog.Logger, clk clock.Clock) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &Handler{
		store:     store,
		cfg:       cfg,
		logger:    logger,
		validator: validator.New(),
		clock:     clk,
	}
}

func (h *Handler) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, 5*time.Second)
}

func (h *Handler) loggerForRequest(r *http.Request) *slog.Logger {
	logger := h.logger
	if logger == nil {
		return slog.Default()
	}
	if reqID := chimw.GetReqID(r.Context()); reqID != "" {
		logger = logger.With("request_id", reqID)
	}
	return logger
}
