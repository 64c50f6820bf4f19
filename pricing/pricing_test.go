package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// kobo converts a naira amount for readability.
func kobo(naira int64) int64 { return naira * 100 }

func TestComputeQuoteBreakdown(t *testing.T) {
	// ₦45,000/night, 3 nights.
	quote, err := ComputeQuote(kobo(45000), date("2024-03-01"), date("2024-03-04"))
	require.NoError(t, err)

	assert.Equal(t, 3, quote.Nights)
	assert.Equal(t, kobo(135000), quote.Subtotal)
	assert.Equal(t, kobo(10125), quote.VAT)
	assert.Equal(t, kobo(6750), quote.ServiceCharge)
	assert.Equal(t, kobo(151875), quote.Total)
}

func TestComputeQuoteSingleNight(t *testing.T) {
	quote, err := ComputeQuote(kobo(35000), date("2024-06-10"), date("2024-06-11"))
	require.NoError(t, err)

	assert.Equal(t, 1, quote.Nights)
	assert.Equal(t, kobo(35000), quote.Subtotal)
	assert.Equal(t, quote.Subtotal+quote.VAT+quote.ServiceCharge, quote.Total)
}

func TestComputeQuoteInvalidDateRange(t *testing.T) {
	cases := []struct {
		name    string
		in, out string
	}{
		{"equal", "2024-03-01", "2024-03-01"},
		{"reversed", "2024-03-04", "2024-03-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeQuote(kobo(45000), date(tc.in), date(tc.out))
			assert.ErrorIs(t, err, ErrInvalidDateRange)
		})
	}
}

func TestComputeQuoteInvalidRate(t *testing.T) {
	for _, rate := range []int64{0, -1, -kobo(1000)} {
		_, err := ComputeQuote(rate, date("2024-03-01"), date("2024-03-02"))
		assert.ErrorIs(t, err, ErrInvalidRate)
	}
}

func TestNightsRoundsPartialDaysUp(t *testing.T) {
	checkIn := time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC)

	// 22 hours is still one night; 25 hours bills two.
	assert.Equal(t, 1, Nights(checkIn, checkIn.Add(22*time.Hour)))
	assert.Equal(t, 1, Nights(checkIn, checkIn.Add(24*time.Hour)))
	assert.Equal(t, 2, Nights(checkIn, checkIn.Add(25*time.Hour)))
	assert.Equal(t, 0, Nights(checkIn, checkIn))
}

// The VAT+service load is 12.5%, so total must equal subtotal*1.125
// within one kobo of rounding, for any positive rate and range.
func TestTotalWithinOneMinorUnit(t *testing.T) {
	rates := []int64{1, 99, kobo(1), kobo(35000) + 37, kobo(120000)}
	for _, rate := range rates {
		for nights := 1; nights <= 14; nights++ {
			out := date("2024-03-01").AddDate(0, 0, nights)
			quote, err := ComputeQuote(rate, date("2024-03-01"), out)
			require.NoError(t, err)

			exact := float64(quote.Subtotal) * 1.125
			assert.InDelta(t, exact, float64(quote.Total), 1.0,
				"rate=%d nights=%d", rate, nights)
			assert.Equal(t, nights, quote.Nights)
		}
	}
}
