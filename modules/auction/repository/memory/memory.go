// Package memory is an in-process implementation of datagateway.AuctionDataGateway.
// Every Repository owns its data; nothing is shared between instances.
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/modules/auction/datagateway"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
)

var (
	ErrTxAlreadyExists = errors.New("Transaction already exists. Call Commit() or Rollback() first.")
	ErrTxClosed        = errors.New("transaction is already committed or rolled back")
)

type enrollmentKey struct {
	eventID       string
	participantID string
}

type store struct {
	events       map[string]entity.Event
	participants map[string]entity.Participant
	enrollments  map[enrollmentKey]entity.Enrollment
	sales        map[string]entity.Sale
	invoices     map[string]entity.SellerInvoice
	statements   map[string]entity.BuyerStatement
	settings     *entity.MarketplaceSettings
}

func newStore() *store {
	return &store{
		events:       make(map[string]entity.Event),
		participants: make(map[string]entity.Participant),
		enrollments:  make(map[enrollmentKey]entity.Enrollment),
		sales:        make(map[string]entity.Sale),
		invoices:     make(map[string]entity.SellerInvoice),
		statements:   make(map[string]entity.BuyerStatement),
	}
}

func (s *store) clone() *store {
	c := &store{
		events:       maps.Clone(s.events),
		participants: maps.Clone(s.participants),
		enrollments:  maps.Clone(s.enrollments),
		sales:        maps.Clone(s.sales),
		invoices:     maps.Clone(s.invoices),
		statements:   maps.Clone(s.statements),
	}
	if s.settings != nil {
		settings := *s.settings
		c.settings = &settings
	}
	return c
}

type operation func(s *store) error

// Repository keeps auction data in memory. A transaction works on a private copy of the data
// and records every write; Commit replays the writes against the latest committed data, so
// writes made outside transactions in between are kept.
//
// Transactions are serialized: BeginAuctionTx blocks until the previous transaction is
// committed or rolled back, so every read inside a transaction sees state no other
// transaction can change before Commit.
type Repository struct {
	mu   sync.RWMutex
	data *store

	txSlot chan struct{}

	parent  *Repository
	journal []operation
	closed  bool
}

var _ datagateway.AuctionDataGateway = (*Repository)(nil)

func NewRepository() *Repository {
	return &Repository{
		data:   newStore(),
		txSlot: make(chan struct{}, 1),
	}
}

func (r *Repository) BeginAuctionTx(ctx context.Context) (datagateway.AuctionDataGatewayWithTx, error) {
	if r.parent != nil {
		return nil, errors.WithStack(ErrTxAlreadyExists)
	}
	select {
	case r.txSlot <- struct{}{}:
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "failed to begin transaction")
	}
	return &Repository{
		data:   r.snapshot(),
		parent: r,
	}, nil
}

// finish marks the transaction closed and takes its journal. It reports false if the
// transaction was already closed; otherwise the caller must release the parent's txSlot.
func (r *Repository) finish() (journal []operation, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, false
	}
	r.closed = true
	journal, r.journal = r.journal, nil
	return journal, true
}

func (r *Repository) Commit(ctx context.Context) error {
	if r.parent == nil {
		return nil
	}
	journal, ok := r.finish()
	if !ok {
		return nil
	}
	defer func() { <-r.parent.txSlot }()
	if len(journal) == 0 {
		return nil
	}

	r.parent.mu.Lock()
	defer r.parent.mu.Unlock()
	next := r.parent.data.clone()
	for _, op := range journal {
		if err := op(next); err != nil {
			return errors.Wrap(err, "failed to commit transaction")
		}
	}
	r.parent.data = next
	return nil
}

func (r *Repository) Rollback(ctx context.Context) error {
	if r.parent == nil {
		return nil
	}
	if _, ok := r.finish(); !ok {
		return nil
	}
	<-r.parent.txSlot
	return nil
}

func (r *Repository) snapshot() *store {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.data.clone()
}

func (r *Repository) read(fn func(s *store)) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn(r.data)
}

// write applies op to the visible data. Inside a transaction op is also journaled for Commit.
// op must not mutate anything when it returns an error.
func (r *Repository) write(op operation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return errors.WithStack(ErrTxClosed)
	}
	if err := op(r.data); err != nil {
		return err
	}
	if r.parent != nil {
		r.journal = append(r.journal, op)
	}
	return nil
}
