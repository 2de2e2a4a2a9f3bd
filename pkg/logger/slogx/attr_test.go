package slogx

import (
	"log/slog"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

type cents int64

func (c cents) String() string { return "6.15" }

func TestAttrs(t *testing.T) {
	assert.True(t, Error(nil).Equal(slog.Attr{}))
	assert.Equal(t, ErrorKey, Error(errors.New("boom")).Key)

	assert.True(t, slog.String("eventId", "ev-1").Equal(EventID("ev-1")))
	assert.True(t, slog.String("participantId", "p-1").Equal(ParticipantID("p-1")))
	assert.True(t, slog.String("lotNumber", "12A").Equal(LotNumber("12A")))
	assert.True(t, slog.String("package", "notifier").Equal(Package("notifier")))
	assert.Equal(t, "6.15", Stringer("total", cents(615)).Value.String())
	assert.Equal(t, int64(3), Int("rows", 3).Value.Int64())
}
