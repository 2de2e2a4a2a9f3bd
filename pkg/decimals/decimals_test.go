package decimals

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMustFromString(t *testing.T) {
	assert.Equal(t, "8.25", MustFromString("8.25").String())
	assert.Panics(t, func() { MustFromString("") })
	assert.Panics(t, func() { MustFromString("ten") })
}

func TestPowerOfTen(t *testing.T) {
	testcases := []struct {
		n        int32
		expected string
	}{
		{0, "1"},
		{2, "100"},
		{-2, "0.01"},
		{-36, "0.000000000000000000000000000000000001"},
	}
	for _, tc := range testcases {
		assert.Equal(t, tc.expected, PowerOfTen(tc.n).String())
	}
}

func TestPercent(t *testing.T) {
	testcases := []struct {
		value, percent, expected string
	}{
		{"500", "10", "50"},
		{"500", "8.25", "41.25"},
		{"0", "15", "0"},
		{"1", "0.5", "0.005"},
	}
	for _, tc := range testcases {
		t.Run(tc.value+"x"+tc.percent, func(t *testing.T) {
			actual := Percent(MustFromString(tc.value), MustFromString(tc.percent))
			assert.True(t, MustFromString(tc.expected).Equal(actual), "got %s", actual)
		})
	}
}

func TestInRange(t *testing.T) {
	assert.True(t, InRange(decimal.Zero, Zero, Hundred))
	assert.True(t, InRange(Hundred, Zero, Hundred))
	assert.False(t, InRange(MustFromString("100.01"), Zero, Hundred))
	assert.False(t, InRange(MustFromString("-0.01"), Zero, Hundred))
}
