package handlers

import (
	"context"
	"errors"
	"time"

	"eventix/backend/internal/models"
)

var errStubNotWired = errors.New("stub not wired")

// fakeStore implements Store with per-method stubs so each test wires only
// what it needs.
type fakeStore struct {
	createEvent       func(ctx context.Context, event models.Event) (string, error)
	getEventByDate    func(ctx context.Context, date time.Time) (models.Event, error)
	recordTransaction func(ctx context.Context, eventID string, nTickets int, at time.Time) (string, error)
	listEvents        func(ctx context.Context, from, to time.Time) ([]models.Event, error)
	listTransactions  func(ctx context.Context, from, to time.Time) ([]models.TicketTransaction, error)
}

func (f *fakeStore) CreateEvent(ctx context.Context, event models.Event) (string, error) {
	if f.createEvent == nil {
		return "", errStubNotWired
	}
	return f.createEvent(ctx, event)
}

func (f *fakeStore) GetEventByDate(ctx context.Context, date time.Time) (models.Event, error) {
	if f.getEventByDate == nil {
		return models.Event{}, errStubNotWired
	}
	return f.getEventByDate(ctx, date)
}

func (f *fakeStore) RecordTransaction(ctx context.Context, eventID string, nTickets int, at time.Time) (string, error) {
	if f.recordTransaction == nil {
		return "", errStubNotWired
	}
	return f.recordTransaction(ctx, eventID, nTickets, at)
}

func (f *fakeStore) ListEventsBetween(ctx context.Context, from, to time.Time) ([]models.Event, error) {
	if f.listEvents == nil {
		return nil, errStubNotWired
	}
	return f.listEvents(ctx, from, to)
}

func (f *fakeStore) ListTransactionsBetween(ctx context.Context, from, to time.Time) ([]models.TicketTransaction, error) {
	if f.listTransactions == nil {
		return nil, errStubNotWired
	}
	return f.listTransactions(ctx, from, to)
}
