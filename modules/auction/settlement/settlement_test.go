package settlement

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common/errs"
	"github.com/gaze-network/auction-network/pkg/decimals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rates(commission, tax, premium string) Rates {
	return Rates{
		CommissionRate: decimals.MustFromString(commission),
		TaxRate:        decimals.MustFromString(tax),
		BuyersPremium:  decimals.MustFromString(premium),
	}
}

func TestApplyRate(t *testing.T) {
	testcases := []struct {
		name     string
		amount   string
		rate     string
		expected string
	}{
		{"ten percent", "500", "10", "50.00"},
		{"zero rate", "500", "0", "0.00"},
		{"full rate", "500", "100", "500.00"},
		{"fractional rate", "100", "8.25", "8.25"},
		{"round half up", "1.25", "10", "0.13"},
		{"round down", "1.24", "10", "0.12"},
		{"zero amount", "0", "15", "0.00"},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := ApplyRate(MustParseMoney(tc.amount), decimals.MustFromString(tc.rate))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual.String())
		})
	}

	t.Run("rejects out of range", func(t *testing.T) {
		for _, rate := range []string{"-0.01", "100.01", "250"} {
			amount := MustParseMoney("500")
			actual, err := ApplyRate(amount, decimals.MustFromString(rate))
			assert.True(t, errors.Is(err, errs.InvalidArgument), rate)
			assert.Zero(t, actual)
			assert.Equal(t, "500.00", amount.String(), "input must not change")
		}
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := ApplyRate(MustParseMoney("-1"), decimals.MustFromString("10"))
		assert.True(t, errors.Is(err, errs.InvalidArgument))
	})

	t.Run("result within bounds", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 500; i++ {
			amount := Money(rng.Int63n(10_000_000))
			// 0.00 .. 100.00 in steps of 0.01
			ratePercent := Money(rng.Int63n(10_001)).Decimal()
			applied, err := ApplyRate(amount, ratePercent)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, applied.Cents(), int64(0))
			assert.LessOrEqual(t, applied.Cents(), amount.Cents())
		}
	})
}

func TestSettle(t *testing.T) {
	t.Run("scenario A", func(t *testing.T) {
		actual, err := Settle(MustParseMoney("500"), rates("10", "8", "15"), Policy{})
		require.NoError(t, err)
		assert.Equal(t, SettledLineItem{
			Price:        MustParseMoney("500"),
			Commission:   MustParseMoney("50"),
			BuyerPremium: MustParseMoney("75"),
			Tax:          MustParseMoney("40"),
			Total:        MustParseMoney("615"),
			Payout:       MustParseMoney("450"),
		}, actual)
	})

	t.Run("tax on premium", func(t *testing.T) {
		actual, err := Settle(MustParseMoney("500"), rates("10", "8", "15"), Policy{TaxOnPremium: true})
		require.NoError(t, err)
		assert.Equal(t, "46.00", actual.Tax.String())
		assert.Equal(t, "621.00", actual.Total.String())
	})

	t.Run("net tax from payout", func(t *testing.T) {
		actual, err := Settle(MustParseMoney("500"), rates("10", "8", "15"), Policy{NetTaxFromPayout: true})
		require.NoError(t, err)
		assert.Equal(t, "410.00", actual.Payout.String())
		assert.Equal(t, "615.00", actual.Total.String())
	})

	t.Run("idempotent", func(t *testing.T) {
		r := rates("12.5", "8.25", "10")
		first, err := Settle(MustParseMoney("1234.56"), r, Policy{})
		require.NoError(t, err)
		second, err := Settle(MustParseMoney("1234.56"), r, Policy{})
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("total identity", func(t *testing.T) {
		actual, err := Settle(MustParseMoney("999.99"), rates("7.5", "6.25", "17.5"), Policy{})
		require.NoError(t, err)
		assert.Equal(t, actual.Price+actual.BuyerPremium+actual.Tax, actual.Total)
		assert.Equal(t, actual.Price-actual.Commission, actual.Payout)
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := Settle(MustParseMoney("-5"), rates("10", "8", "15"), Policy{})
		assert.True(t, errors.Is(err, errs.InvalidArgument))

		_, err = Settle(MustParseMoney("5"), rates("10", "108", "15"), Policy{})
		assert.True(t, errors.Is(err, errs.InvalidArgument))
	})

	t.Run("total out of range", func(t *testing.T) {
		actual, err := Settle(MustParseMoney("90000000000000000.00"), rates("10", "8", "15"), Policy{})
		assert.True(t, errors.Is(err, errs.InvalidArgument))
		assert.Zero(t, actual)

		_, err = Settle(MustParseMoney("90000000000000000.00"), rates("10", "8", "15"), Policy{TaxOnPremium: true})
		assert.True(t, errors.Is(err, errs.InvalidArgument))
	})

	t.Run("largest price that fits", func(t *testing.T) {
		// premium and tax are zero, so the total is the price itself.
		price := Money(math.MaxInt64)
		actual, err := Settle(price, rates("10", "0", "0"), Policy{})
		require.NoError(t, err)
		assert.Equal(t, price, actual.Total)
		assert.False(t, actual.Payout.IsNegative())
	})
}

func TestAggregate(t *testing.T) {
	t.Run("scenario B", func(t *testing.T) {
		items := []LineItem{
			{ID: "1", Price: MustParseMoney("500")},
			{ID: "2", Price: MustParseMoney("1200")},
			{ID: "3", Price: MustParseMoney("300")},
		}
		actual, err := Aggregate(items, rates("10", "8", "0"), Policy{})
		require.NoError(t, err)
		assert.Equal(t, 3, actual.ItemCount)
		assert.Equal(t, "2000.00", actual.TotalSales.String())
		assert.Equal(t, "200.00", actual.TotalCommission.String())
		assert.Equal(t, "0.00", actual.TotalBuyerPremium.String())
		assert.Equal(t, "160.00", actual.TotalTax.String())
		assert.Equal(t, "2160.00", actual.GrandTotal.String())
		assert.Equal(t, "200.00", actual.MarketplaceEarnings.String())
		assert.Equal(t, "1800.00", actual.TotalPayout.String())
		require.Len(t, actual.PerLine, 3)
		assert.Equal(t, "2", actual.PerLine[1].ID)
	})

	t.Run("empty", func(t *testing.T) {
		actual, err := Aggregate(nil, rates("10", "8", "15"), Policy{})
		require.NoError(t, err)
		assert.Zero(t, actual.GrandTotal)
		assert.Empty(t, actual.PerLine)
	})

	t.Run("grand total equals sum of line totals in any order", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		items := make([]LineItem, 200)
		for i := range items {
			items[i] = LineItem{ID: fmt.Sprintf("lot-%d", i), Price: Money(rng.Int63n(5_000_000))}
		}
		r := rates("12.5", "8.25", "17.5")

		base, err := Aggregate(items, r, Policy{TaxOnPremium: true})
		require.NoError(t, err)

		var lineTotals Money
		for _, line := range base.PerLine {
			lineTotals += line.Total
		}
		assert.Equal(t, lineTotals, base.GrandTotal)
		assert.Equal(t, base.TotalSales+base.TotalBuyerPremium+base.TotalTax, base.GrandTotal)

		for i := 0; i < 5; i++ {
			shuffled := append([]LineItem(nil), items...)
			rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
			actual, err := Aggregate(shuffled, r, Policy{TaxOnPremium: true})
			require.NoError(t, err)
			assert.Equal(t, base.GrandTotal, actual.GrandTotal)
			assert.Equal(t, base.TotalTax, actual.TotalTax)
			assert.Equal(t, base.MarketplaceEarnings, actual.MarketplaceEarnings)
		}
	})

	t.Run("invalid item fails whole aggregation", func(t *testing.T) {
		items := []LineItem{
			{ID: "1", Price: MustParseMoney("500")},
			{ID: "2", Price: -1},
		}
		actual, err := Aggregate(items, rates("10", "8", "15"), Policy{})
		assert.True(t, errors.Is(err, errs.InvalidArgument))
		assert.Zero(t, actual.ItemCount)
		assert.Nil(t, actual.PerLine)

		_, err = Aggregate([]LineItem{{Price: 1}}, rates("10", "8", "15"), Policy{})
		assert.True(t, errors.Is(err, errs.InvalidArgument))
	})

	t.Run("totals out of range", func(t *testing.T) {
		items := []LineItem{
			{ID: "1", Price: MustParseMoney("50000000000000000.00")},
			{ID: "2", Price: MustParseMoney("50000000000000000.00")},
		}
		actual, err := Aggregate(items, rates("10", "8", "15"), Policy{})
		assert.True(t, errors.Is(err, errs.InvalidArgument))
		assert.Zero(t, actual.GrandTotal)

		// each line fits and the sales total fits, but the grand total does not.
		items = []LineItem{
			{ID: "1", Price: MustParseMoney("40000000000000000.00")},
			{ID: "2", Price: MustParseMoney("40000000000000000.00")},
		}
		_, err = Aggregate(items, rates("0", "0", "20"), Policy{})
		assert.True(t, errors.Is(err, errs.InvalidArgument))
	})
}

func TestAdd(t *testing.T) {
	max := Money(math.MaxInt64)

	sum, err := Add(max-1, 1)
	require.NoError(t, err)
	assert.Equal(t, max, sum)

	_, err = Add(max, 1)
	assert.True(t, errors.Is(err, errs.InvalidArgument))

	_, err = Add(Money(math.MinInt64), -1)
	assert.True(t, errors.Is(err, errs.InvalidArgument))

	sum, err = Add(max, -max)
	require.NoError(t, err)
	assert.Zero(t, sum)

	_, err = Sum(max, 1, -1)
	assert.True(t, errors.Is(err, errs.InvalidArgument), "overflow in an intermediate sum is reported")

	sum, err = Sum()
	require.NoError(t, err)
	assert.Zero(t, sum)
}

func TestMoney(t *testing.T) {
	t.Run("parse", func(t *testing.T) {
		assert.Equal(t, Money(61500), MustParseMoney("615"))
		assert.Equal(t, Money(1), MustParseMoney("0.01"))
		assert.Equal(t, Money(100), MustParseMoney("1.000"))

		_, err := ParseMoney("0.005")
		assert.True(t, errors.Is(err, errs.InvalidArgument))
		_, err = ParseMoney("abc")
		assert.True(t, errors.Is(err, errs.InvalidArgument))
	})

	t.Run("json", func(t *testing.T) {
		data, err := json.Marshal(MustParseMoney("615"))
		require.NoError(t, err)
		assert.Equal(t, `"615.00"`, string(data))

		var fromString, fromNumber Money
		require.NoError(t, json.Unmarshal([]byte(`"12.50"`), &fromString))
		require.NoError(t, json.Unmarshal([]byte(`12.5`), &fromNumber))
		assert.Equal(t, Money(1250), fromString)
		assert.Equal(t, fromString, fromNumber)

		var bad Money
		assert.Error(t, json.Unmarshal([]byte(`"1.234"`), &bad))
	})
}
