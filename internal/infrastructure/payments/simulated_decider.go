package payments

import (
	"context"
	"math/rand"
	"os"
	"strconv"
	"sync"
	"time"

	"payment_service/internal/domain/entities"
	"payment_service/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

const (
	defaultApprovalThreshold   = 1000.0
	defaultApprovalProbability = 0.7
)

// SimulatedDecider stands in for a call to an external payment network.
//
// Policy: amounts below the threshold always approve; amounts at or above it
// approve with a fixed probability. An optional artificial latency models the
// slow external call and honors context cancellation, so a request under a
// decision timeout still terminates.
//
// Supported env vars (via NewSimulatedDeciderFromEnv):
//   - PAYMENT_APPROVAL_THRESHOLD (default: 1000)
//   - PAYMENT_APPROVAL_PROBABILITY (default: 0.7)
//   - PAYMENT_DECISION_DELAY (Go duration, default: 0; the original delay
//     loop waited a fixed 15s)
type SimulatedDecider struct {
	threshold   float64
	probability float64
	delay       time.Duration
	log         *logrus.Entry

	mu  sync.Mutex
	rng *rand.Rand
}

var _ interfaces.IPaymentDecider = (*SimulatedDecider)(nil)

func NewSimulatedDecider(threshold, probability float64, delay time.Duration, rng *rand.Rand) *SimulatedDecider {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SimulatedDecider{
		threshold:   threshold,
		probability: probability,
		delay:       delay,
		rng:         rng,
		log:         logrus.StandardLogger().WithField("type", "simulated_decider"),
	}
}

func NewSimulatedDeciderFromEnv() *SimulatedDecider {
	threshold := getenvFloat("PAYMENT_APPROVAL_THRESHOLD", defaultApprovalThreshold)
	probability := getenvFloat("PAYMENT_APPROVAL_PROBABILITY", defaultApprovalProbability)
	delay := getenvDuration("PAYMENT_DECISION_DELAY", 0)
	return NewSimulatedDecider(threshold, probability, delay, nil)
}

func (d *SimulatedDecider) Decide(ctx context.Context, req entities.PaymentRequest) (interfaces.Decision, error) {
	if d.delay > 0 {
		timer := time.NewTimer(d.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return interfaces.Decision{}, ctx.Err()
		case <-timer.C:
		}
	}

	if req.Amount < d.threshold {
		return interfaces.Decision{Approved: true, Message: "approved"}, nil
	}

	d.mu.Lock()
	roll := d.rng.Float64()
	d.mu.Unlock()

	if roll < d.probability {
		d.log.WithField("request_id", req.ID).Debug("high-value request approved")
		return interfaces.Decision{Approved: true, Message: "approved"}, nil
	}
	return interfaces.Decision{Approved: false, Message: "rejected by risk policy"}, nil
}

func getenvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
