package handlers

import (
	"net/http"

	"eventix/backend/internal/ticketing"
)

// GetStats handles GET /api/stats: revenue, event count and average tickets
// sold for each of the trailing 12 calendar months, oldest first.
//
// The whole window is fetched in two range queries and partitioned by month
// in memory instead of issuing a pair of queries per month.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := h.loggerForRequest(r)

	now := h.clock.Now()
	from, to := ticketing.MonthWindow(now)

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	events, err := h.store.ListEventsBetween(ctx, from, to)
	if err != nil {
		logger.Error("action", "action", "get_stats", "status", "db_error", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	transactions, err := h.store.ListTransactionsBetween(ctx, from, to)
	if err != nil {
		logger.Error("action", "action", "get_stats", "status", "db_error", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	stats := ticketing.BuildMonthlyStats(now, events, transactions)
	writeJSON(w, http.StatusOK, stats)
}
