package gateway

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// SimulatorConfig holds the knobs of a Simulator.
type SimulatorConfig struct {
	Delay       time.Duration // Round trip of every submission
	FailureRate float64       // Share of submissions failing with ErrUnavailable
	DeclineRate float64       // Share of submissions failing with ErrDeclined
}

// Simulator accepts payouts after a fixed delay.
type Simulator struct {
	cfg SimulatorConfig

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulator creates a simulator seeded from the clock.
func NewSimulator(cfg SimulatorConfig) *Simulator {
	seed := uint64(time.Now().UnixNano())
	return NewSimulatorWithRand(cfg, rand.New(rand.NewPCG(seed, seed>>1)))
}

// NewSimulatorWithRand creates a simulator drawing failures from rng.
func NewSimulatorWithRand(cfg SimulatorConfig, rng *rand.Rand) *Simulator {
	return &Simulator{cfg: cfg, rng: rng}
}

// Submit waits for the configured delay and then accepts, declines or fails
// the payout. The wait ends early only when ctx is done.
func (s *Simulator) Submit(ctx context.Context, p Payout) (Receipt, error) {
	timer := time.NewTimer(s.cfg.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return Receipt{}, ctx.Err()
	case <-timer.C:
	}

	roll := s.roll()
	switch {
	case roll < s.cfg.DeclineRate:
		logrus.WithFields(logrus.Fields{"reference": p.Reference, "method": p.Method}).Warn("Simulated payout declined")
		return Receipt{}, ErrDeclined
	case roll < s.cfg.DeclineRate+s.cfg.FailureRate:
		logrus.WithFields(logrus.Fields{"reference": p.Reference, "method": p.Method}).Warn("Simulated gateway outage")
		return Receipt{}, ErrUnavailable
	}
	return Receipt{Reference: p.Reference, AcceptedAt: time.Now()}, nil
}

func (s *Simulator) roll() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}
