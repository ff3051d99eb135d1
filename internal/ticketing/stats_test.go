package ticketing

import (
	"testing"
	"time"

	"eventix/backend/internal/models"
)

var statsNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestBuildMonthlyStatsEmptyCollections(t *testing.T) {
	stats := BuildMonthlyStats(statsNow, nil, nil)
	if len(stats) != 12 {
		t.Fatalf("expected 12 records, got %d", len(stats))
	}
	if stats[0].Year != 2024 || stats[0].Month != 7 {
		t.Fatalf("expected first record 2024-07, got %d-%02d", stats[0].Year, stats[0].Month)
	}
	if stats[11].Year != 2025 || stats[11].Month != 6 {
		t.Fatalf("expected last record 2025-06, got %d-%02d", stats[11].Year, stats[11].Month)
	}
	for i, s := range stats {
		if s.NEvents != 0 || s.Revenue != 0 || s.AverageTicketsSold != 0 {
			t.Fatalf("expected record %d to be all zero, got %+v", i, s)
		}
	}
}

func TestBuildMonthlyStatsMonthsAreChronological(t *testing.T) {
	stats := BuildMonthlyStats(statsNow, nil, nil)
	for i := 1; i < len(stats); i++ {
		prev := time.Date(stats[i-1].Year, time.Month(stats[i-1].Month), 1, 0, 0, 0, 0, time.UTC)
		cur := time.Date(stats[i].Year, time.Month(stats[i].Month), 1, 0, 0, 0, 0, time.UTC)
		if !cur.After(prev) {
			t.Fatalf("records not ascending at index %d: %v then %v", i, prev, cur)
		}
	}
}

func TestBuildMonthlyStatsJoinsTransactionsToEvents(t *testing.T) {
	events := []models.Event{
		{ID: "e1", Date: day(2025, time.June, 10), CostPerTicket: 10},
		{ID: "e2", Date: day(2025, time.June, 20), CostPerTicket: 50},
	}
	transactions := []models.TicketTransaction{
		{ID: "t1", EventID: "e1", NTickets: 3, TransactionDate: day(2025, time.June, 11)},
		{ID: "t2", EventID: "e1", NTickets: 2, TransactionDate: day(2025, time.June, 12)},
		{ID: "t3", EventID: "e2", NTickets: 1, TransactionDate: day(2025, time.June, 21)},
	}

	stats := BuildMonthlyStats(statsNow, events, transactions)
	june := stats[11]
	if june.NEvents != 2 {
		t.Fatalf("expected nEvents=2, got %d", june.NEvents)
	}
	if june.Revenue != 10*5+50*1 {
		t.Fatalf("expected revenue=100, got %v", june.Revenue)
	}
	if june.AverageTicketsSold != 3 {
		t.Fatalf("expected averageTicketsSold=3, got %v", june.AverageTicketsSold)
	}
}

func TestBuildMonthlyStatsIgnoresOrphanTransactions(t *testing.T) {
	events := []models.Event{
		{ID: "e1", Date: day(2025, time.June, 10), CostPerTicket: 10},
	}
	transactions := []models.TicketTransaction{
		{ID: "t1", EventID: "missing", NTickets: 4, TransactionDate: day(2025, time.June, 11)},
	}

	stats := BuildMonthlyStats(statsNow, events, transactions)
	june := stats[11]
	if june.NEvents != 1 {
		t.Fatalf("expected nEvents=1, got %d", june.NEvents)
	}
	if june.Revenue != 0 || june.AverageTicketsSold != 0 {
		t.Fatalf("expected orphan transaction to contribute nothing, got %+v", june)
	}
}

func TestBuildMonthlyStatsEventWithoutTransactionsStillCounts(t *testing.T) {
	events := []models.Event{
		{ID: "e1", Date: day(2024, time.December, 24), CostPerTicket: 15},
	}

	stats := BuildMonthlyStats(statsNow, events, nil)
	december := stats[5]
	if december.Year != 2024 || december.Month != 12 {
		t.Fatalf("expected bucket 2024-12, got %d-%02d", december.Year, december.Month)
	}
	if december.NEvents != 1 || december.Revenue != 0 || december.AverageTicketsSold != 0 {
		t.Fatalf("expected one event with zero revenue, got %+v", december)
	}
}

func TestBuildMonthlyStatsDoesNotJoinAcrossMonths(t *testing.T) {
	events := []models.Event{
		{ID: "e1", Date: day(2025, time.May, 10), CostPerTicket: 10},
	}
	// The transaction dates fall in June, so they must not count against
	// the May event even though the reference matches.
	transactions := []models.TicketTransaction{
		{ID: "t1", EventID: "e1", NTickets: 2, TransactionDate: day(2025, time.June, 1)},
	}

	stats := BuildMonthlyStats(statsNow, events, transactions)
	may, june := stats[10], stats[11]
	if may.NEvents != 1 || may.Revenue != 0 {
		t.Fatalf("expected May to have the event and no revenue, got %+v", may)
	}
	if june.Revenue != 0 || june.NEvents != 0 {
		t.Fatalf("expected June empty, got %+v", june)
	}
}

func TestBuildMonthlyStatsExcludesOutOfWindowData(t *testing.T) {
	events := []models.Event{
		{ID: "old", Date: day(2024, time.June, 30), CostPerTicket: 10},
		{ID: "future", Date: day(2025, time.July, 1), CostPerTicket: 10},
	}
	transactions := []models.TicketTransaction{
		{ID: "t1", EventID: "old", NTickets: 2, TransactionDate: day(2024, time.June, 30)},
		{ID: "t2", EventID: "future", NTickets: 2, TransactionDate: day(2025, time.July, 1)},
	}

	stats := BuildMonthlyStats(statsNow, events, transactions)
	for i, s := range stats {
		if s.NEvents != 0 || s.Revenue != 0 {
			t.Fatalf("expected record %d to exclude out-of-window data, got %+v", i, s)
		}
	}
}
