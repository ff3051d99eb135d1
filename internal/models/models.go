package models

import "time"

// Event is a ticketed occurrence on a single calendar date. At most one
// event exists per date, and ticketsSold never exceeds capacity.
type Event struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Date          time.Time `json:"date"`
	Capacity      int       `json:"capacity"`
	CostPerTicket float64   `json:"costPerTicket"`
	TicketsSold   int       `json:"ticketsSold"`
	CreatedAt     time.Time `json:"createdAt"`
}

// TicketTransaction records tickets purchased against one event. Immutable
// once written.
type TicketTransaction struct {
	ID              string    `json:"id"`
	EventID         string    `json:"event"`
	NTickets        int       `json:"nTickets"`
	TransactionDate time.Time `json:"transactionDate"`
}

// MonthlyStat is one bucket of the trailing-twelve-month report.
type MonthlyStat struct {
	Year               int     `json:"year"`
	Month              int     `json:"month"`
	Revenue            float64 `json:"revenue"`
	NEvents            int     `json:"nEvents"`
	AverageTicketsSold float64 `json:"averageTicketsSold"`
}
