package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"stays-backend/metrics"
	"stays-backend/utils"

	"github.com/google/uuid"
)

var ErrChargeAmount = errors.New("charge amount must be positive")

// ChargeResult is what the payment collaborator reports back.
type ChargeResult struct {
	Reference string
	Status    string // models.PaymentPaid or models.PaymentFailed
}

// PaymentService simulates the external payment gateway. A real
// integration would swap the body of Charge for a gateway API call; the
// contract stays the same.
type PaymentService struct {
	// Delay approximates gateway processing time.
	Delay time.Duration
	// SimulateFailure makes every charge come back failed, for testing
	// the failure path end to end.
	SimulateFailure bool
	// LastEmail is the billing email of the most recent charge, the
	// address a real gateway would send the receipt to.
	LastEmail string
}

func NewPaymentService() *PaymentService {
	delay := 150 * time.Millisecond
	if raw := utils.EnvOrDefault("PAYMENT_SIM_DELAY", ""); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d >= 0 {
			delay = d
		}
	}
	return &PaymentService{
		Delay:           delay,
		SimulateFailure: strings.EqualFold(utils.EnvOrDefault("PAYMENT_SIMULATE", "success"), "fail"),
	}
}

// Charge processes a payment for the given amount (kobo). It honors ctx
// cancellation during the simulated processing window.
func (p *PaymentService) Charge(ctx context.Context, amountKobo int64, email string) (ChargeResult, error) {
	if amountKobo <= 0 {
		return ChargeResult{}, ErrChargeAmount
	}

	if p.Delay > 0 {
		timer := time.NewTimer(p.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ChargeResult{}, ctx.Err()
		case <-timer.C:
		}
	}

	p.LastEmail = email

	result := ChargeResult{
		Reference: "PSK-" + uuid.NewString(),
		Status:    "paid",
	}
	if p.SimulateFailure {
		result.Status = "failed"
	}

	metrics.RecordPaymentCharge(result.Status)
	return result, nil
}
