// Package pricing computes stay quotes. All amounts are in kobo (minor
// currency units) so the arithmetic stays exact; totals are rounded
// half-up to the kobo.
package pricing

import (
	"errors"
	"time"
)

// Rates are expressed in permille to keep everything in integer math.
const (
	VATRatePermille     = 75 // 7.5% VAT
	ServiceRatePermille = 50 // 5% service charge
)

var (
	ErrInvalidDateRange = errors.New("check-out must be after check-in")
	ErrInvalidRate      = errors.New("nightly rate must be positive")
)

// Quote is the price breakdown for a prospective stay.
type Quote struct {
	Nights        int   `json:"nights"`
	Subtotal      int64 `json:"subtotal"`
	VAT           int64 `json:"vat"`
	ServiceCharge int64 `json:"service_charge"`
	Total         int64 `json:"total"`
}

// Nights returns the number of billable nights between check-in and
// check-out. Partial days always bill a full night.
func Nights(checkIn, checkOut time.Time) int {
	d := checkOut.Sub(checkIn)
	if d <= 0 {
		return 0
	}
	nights := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		nights++
	}
	return nights
}

// ComputeQuote computes the full breakdown for a stay. nightlyRate is in
// kobo. It is a pure function and safe to call on every re-quote as the
// guest edits dates.
func ComputeQuote(nightlyRate int64, checkIn, checkOut time.Time) (Quote, error) {
	if nightlyRate <= 0 {
		return Quote{}, ErrInvalidRate
	}
	if !checkOut.After(checkIn) {
		return Quote{}, ErrInvalidDateRange
	}

	nights := Nights(checkIn, checkOut)
	subtotal := nightlyRate * int64(nights)
	vat := permilleOf(subtotal, VATRatePermille)
	service := permilleOf(subtotal, ServiceRatePermille)

	return Quote{
		Nights:        nights,
		Subtotal:      subtotal,
		VAT:           vat,
		ServiceCharge: service,
		Total:         subtotal + vat + service,
	}, nil
}

// permilleOf applies a permille rate to an amount, rounding half-up.
func permilleOf(amount, permille int64) int64 {
	return (amount*permille + 500) / 1000
}
