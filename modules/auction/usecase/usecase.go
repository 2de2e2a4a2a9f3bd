package usecase

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/gaze-network/auction-network/modules/auction/datagateway"
	"github.com/gaze-network/auction-network/modules/auction/export"
	"github.com/gaze-network/auction-network/modules/auction/settlement"
	"github.com/google/uuid"
)

// Publisher receives domain events after they are committed.
type Publisher interface {
	Publish(ctx context.Context, kind string, data any)
}

// Archiver stores the export of a posted event.
type Archiver interface {
	Archive(ctx context.Context, eventID string, format export.Format, data []byte) (string, error)
}

type Usecase struct {
	auctionDg datagateway.AuctionDataGateway
	policy    settlement.Policy
	publisher Publisher
	archiver  Archiver
	metrics   *Metrics

	now   func() time.Time
	newID func() string
	intn  func(n int) int
}

type Option func(u *Usecase)

func WithPublisher(publisher Publisher) Option {
	return func(u *Usecase) { u.publisher = publisher }
}

func WithArchiver(archiver Archiver) Option {
	return func(u *Usecase) { u.archiver = archiver }
}

func WithMetrics(metrics *Metrics) Option {
	return func(u *Usecase) { u.metrics = metrics }
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(u *Usecase) { u.now = now }
}

// WithIDGenerator replaces the UUID generator, mostly for tests.
func WithIDGenerator(newID func() string) Option {
	return func(u *Usecase) { u.newID = newID }
}

// WithRandom replaces the random source of generated paddle numbers. intn must return a value in [0, n).
func WithRandom(intn func(n int) int) Option {
	return func(u *Usecase) { u.intn = intn }
}

func New(auctionDg datagateway.AuctionDataGateway, policy settlement.Policy, opts ...Option) *Usecase {
	u := &Usecase{
		auctionDg: auctionDg,
		policy:    policy,
		publisher: nopPublisher{},
		now:       time.Now,
		newID:     uuid.NewString,
		intn:      rand.IntN,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *Usecase) Policy() settlement.Policy {
	return u.policy
}

func (u *Usecase) timestamp() time.Time {
	return u.now().UTC().Truncate(time.Microsecond)
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, string, any) {}
