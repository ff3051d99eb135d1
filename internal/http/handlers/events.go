package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"eventix/backend/internal/models"
	"eventix/backend/internal/repository"
	"eventix/backend/internal/ticketing"
)

type createEventRequest struct {
	Name          string  `json:"name" validate:"required"`
	Date          string  `json:"date" validate:"required"`
	Capacity      int     `json:"capacity" validate:"required,gt=0"`
	CostPerTicket float64 `json:"costPerTicket"`
}

// CreateEvent handles POST /api/events. Only one event may exist per
// calendar date.
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	logger := h.loggerForRequest(r)

	var req createEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("action", "action", "create_event", "status", "invalid_json")
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		logger.Warn("action", "action", "create_event", "status", "invalid_fields")
		writeError(w, http.StatusBadRequest, "Missing required fields: name, date, capacity")
		return
	}

	date, err := ticketing.ParseEventDate(req.Date)
	if err != nil {
		logger.Warn("action", "action", "create_event", "status", "invalid_date", "date", req.Date)
		writeError(w, http.StatusBadRequest, "Invalid date format. Use DD/MM/YYYY")
		return
	}

	if req.CostPerTicket <= 0 {
		logger.Warn("action", "action", "create_event", "status", "invalid_cost")
		writeError(w, http.StatusBadRequest, "Cost per ticket must be a positive number")
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	_, err = h.store.GetEventByDate(ctx, date)
	switch {
	case err == nil:
		logger.Warn("action", "action", "create_event", "status", "date_taken", "date", ticketing.FormatEventDate(date))
		writeError(w, http.StatusBadRequest, "An event already exists on this date")
		return
	case errors.Is(err, repository.ErrEventNotFound):
		// Date is free.
	default:
		logger.Error("action", "action", "create_event", "status", "db_error", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	id, err := h.store.CreateEvent(ctx, models.Event{
		Name:          req.Name,
		Date:          date,
		Capacity:      req.Capacity,
		CostPerTicket: req.CostPerTicket,
	})
	if err != nil {
		// The unique index can still fire between the probe and the insert.
		if errors.Is(err, repository.ErrEventDateTaken) {
			logger.Warn("action", "action", "create_event", "status", "date_taken", "date", ticketing.FormatEventDate(date))
			writeError(w, http.StatusBadRequest, "An event already exists on this date")
			return
		}
		logger.Error("action", "action", "create_event", "status", "db_error", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	logger.Info("action", "action", "create_event", "status", "created", "event_id", id, "date", ticketing.FormatEventDate(date))
	writeJSON(w, http.StatusCreated, map[string]string{
		"id":      id,
		"message": "Event created successfully",
	})
}
