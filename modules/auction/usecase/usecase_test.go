package usecase

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gaze-network/auction-network/modules/auction/export"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
	"github.com/gaze-network/auction-network/modules/auction/repository/memory"
	"github.com/gaze-network/auction-network/modules/auction/settlement"
	"github.com/gaze-network/auction-network/pkg/decimals"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)

type published struct {
	kind string
	data any
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []published
}

func (p *recordingPublisher) Publish(_ context.Context, kind string, data any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, published{kind: kind, data: data})
}

func (p *recordingPublisher) kinds() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	kinds := make([]string, 0, len(p.events))
	for _, e := range p.events {
		kinds = append(kinds, e.kind)
	}
	return kinds
}

type fakeArchiver struct {
	err     error
	eventID string
	format  export.Format
	data    []byte
}

func (a *fakeArchiver) Archive(_ context.Context, eventID string, format export.Format, data []byte) (string, error) {
	if a.err != nil {
		return "", a.err
	}
	a.eventID, a.format, a.data = eventID, format, data
	return "auction/" + eventID + "/sales." + format.Extension(), nil
}

type testEnv struct {
	uc        *Usecase
	repo      *memory.Repository
	publisher *recordingPublisher
}

func newTestEnv(t *testing.T, opts ...Option) *testEnv {
	t.Helper()
	var (
		mu  sync.Mutex
		seq int
	)
	repo := memory.NewRepository()
	publisher := &recordingPublisher{}
	opts = append([]Option{
		WithPublisher(publisher),
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(func() string {
			mu.Lock()
			defer mu.Unlock()
			seq++
			return "id-" + strconv.Itoa(seq)
		}),
		WithRandom(func(int) int { return 0 }),
	}, opts...)
	return &testEnv{
		uc:        New(repo, settlement.Policy{}, opts...),
		repo:      repo,
		publisher: publisher,
	}
}

func testRates(commission, tax, premium string) *settlement.Rates {
	return &settlement.Rates{
		CommissionRate: decimals.MustFromString(commission),
		TaxRate:        decimals.MustFromString(tax),
		BuyersPremium:  decimals.MustFromString(premium),
	}
}

func (e *testEnv) createEvent(t *testing.T, name string) *entity.Event {
	t.Helper()
	event, err := e.uc.CreateEvent(context.Background(), EventParams{
		Name:      name,
		Location:  "Main Hall",
		StartDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		Rates:     testRates("10", "8", "15"),
	})
	require.NoError(t, err)
	return event
}

func (e *testEnv) createParticipant(t *testing.T, name string, role entity.ParticipantRole) *entity.Participant {
	t.Helper()
	participant, err := e.uc.CreateParticipant(context.Background(), ParticipantParams{
		Name:  name,
		Email: name + "@example.com",
		Role:  role,
	})
	require.NoError(t, err)
	return participant
}

func (e *testEnv) transition(t *testing.T, eventID string, transitions ...entity.EventTransition) {
	t.Helper()
	for _, transition := range transitions {
		_, err := e.uc.TransitionEvent(context.Background(), eventID, transition)
		require.NoError(t, err, transition)
	}
}

func (e *testEnv) addSale(t *testing.T, eventID, lot, bidder, sellerID, price string) *entity.Sale {
	t.Helper()
	sale, err := e.uc.AddSale(context.Background(), eventID, SaleParams{
		LotNumber:    lot,
		BidderNumber: bidder,
		SellerID:     sellerID,
		Title:        "Lot " + lot,
		Category:     "General",
		Price:        settlement.MustParseMoney(price),
	})
	require.NoError(t, err)
	return sale
}
