package ticketing

import (
	"time"

	"eventix/backend/internal/models"
)

// BuildMonthlyStats reduces the pre-fetched window of events and
// transactions into exactly 12 monthly buckets, oldest first, ending with
// the month containing now.
//
// Transactions are joined to events by the event reference: a transaction
// whose event is not among the month's events contributes nothing, while an
// event with no transactions still counts toward nEvents. The average is
// defined as 0 for months with no events.
func BuildMonthlyStats(now time.Time, events []models.Event, transactions []models.TicketTransaction) []models.MonthlyStat {
	now = now.UTC()
	stats := make([]models.MonthlyStat, 0, 12)

	for offset := 11; offset >= 0; offset-- {
		monthStart := time.Date(now.Year(), now.Month()-time.Month(offset), 1, 0, 0, 0, 0, time.UTC)
		year := monthStart.Year()
		month := int(monthStart.Month())

		monthEvents := make(map[string]models.Event)
		nEvents := 0
		for _, event := range events {
			date := event.Date.UTC()
			if date.Year() == year && int(date.Month()) == month {
				monthEvents[event.ID] = event
				nEvents++
			}
		}

		var revenue float64
		var totalTicketsSold int
		for _, transaction := range transactions {
			at := transaction.TransactionDate.UTC()
			if at.Year() != year || int(at.Month()) != month {
				continue
			}
			event, ok := monthEvents[transaction.EventID]
			if !ok {
				continue
			}
			revenue += event.CostPerTicket * float64(transaction.NTickets)
			totalTicketsSold += transaction.NTickets
		}

		averageTicketsSold := 0.0
		if nEvents > 0 {
			averageTicketsSold = float64(totalTicketsSold) / float64(nEvents)
		}

		stats = append(stats, models.MonthlyStat{
			Year:               year,
			Month:              month,
			Revenue:            revenue,
			NEvents:            nEvents,
			AverageTicketsSold: averageTicketsSold,
		})
	}

	return stats
}
