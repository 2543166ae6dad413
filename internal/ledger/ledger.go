// Package ledger keeps the append-only record of processed orders and
// writes the daily transaction report.
package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/giftworks/storefront/internal/order"
)

// Outcome describes how an order was reconciled against inventory.
type Outcome string

const (
	// OutcomeFulfilled means the requested quantity was taken from stock.
	OutcomeFulfilled Outcome = "fulfilled"
	// OutcomeRestocked means on-hand stock did not exceed the requested
	// quantity, so a restock batch was added instead of fulfilling.
	OutcomeRestocked Outcome = "restocked_insufficient"
)

// Entry is one processed order together with its reconciliation outcome.
type Entry struct {
	ID        string
	Order     order.Record
	Outcome   Outcome
	Removed   int
	Restocked int
	At        time.Time
}

// Ledger is the append-only ordered sequence of processed orders. Entries
// are never updated or removed once appended.
type Ledger struct {
	entries []Entry
	now     func() time.Time
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{now: time.Now}
}

// Record appends an entry for the given order, stamping it with a fresh id
// and the current time, and returns the stored entry.
func (l *Ledger) Record(rec order.Record, outcome Outcome, removed, restocked int) Entry {
	e := Entry{
		ID:        uuid.New().String(),
		Order:     rec,
		Outcome:   outcome,
		Removed:   removed,
		Restocked: restocked,
		At:        l.now(),
	}
	l.entries = append(l.entries, e)
	return e
}

// Entries returns a copy of the ledger contents in append order.
func (l *Ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of recorded entries.
func (l *Ledger) Len() int {
	return len(l.entries)
}
