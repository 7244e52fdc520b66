package services

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrStoreUnavailable = errors.New("record store is unavailable")
)

// BreakerState is the state of the record store breaker
type BreakerState int

const (
	BreakerClosed BreakerState = iota
	BreakerOpen
	BreakerHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case BreakerClosed:
		return "closed"
	case BreakerOpen:
		return "open"
	case BreakerHalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

type StoreBreakerConfig struct {
	MaxFailures  int
	ResetTimeout time.Duration
	// HalfOpenSuccesses closes a half-open breaker and caps its concurrent trial requests
	HalfOpenSuccesses int

	// OnStateChange is called outside the lock after every transition
	OnStateChange func(from, to BreakerState)
}

func DefaultStoreBreakerConfig() StoreBreakerConfig {
	return StoreBreakerConfig{
		MaxFailures:       5,
		ResetTimeout:      30 * time.Second,
		HalfOpenSuccesses: 2,
	}
}

// storeBreaker stops calling the record store after repeated failures so retrieval
// fails fast while the store is down. It is shared by all requests of one process and
// holds no record data.
type storeBreaker struct {
	mu        sync.Mutex
	config    StoreBreakerConfig
	state     BreakerState
	failures  int
	successes int
	trials    int
	openedAt  time.Time
	now       func() time.Time
}

func NewStoreBreaker(config StoreBreakerConfig) StoreBreakerInterface {
	return &storeBreaker{
		config: config,
		state:  BreakerClosed,
		now:    time.Now,
	}
}

// Allow returns ErrStoreUnavailable while the breaker is open, or while half-open
// with every trial slot taken. An allowed caller must report back through
// RecordSuccess, RecordFailure or Abandon.
func (b *storeBreaker) Allow() error {
	b.mu.Lock()
	switch b.state {
	case BreakerClosed:
		b.mu.Unlock()
		return nil
	case BreakerHalfOpen:
		defer b.mu.Unlock()
		if b.trials >= b.trialLimit() {
			return ErrStoreUnavailable
		}
		b.trials++
		return nil
	}

	if b.now().Sub(b.openedAt) < b.config.ResetTimeout {
		b.mu.Unlock()
		return ErrStoreUnavailable
	}
	b.state = BreakerHalfOpen
	b.successes = 0
	b.trials = 1
	b.mu.Unlock()

	b.notify(BreakerOpen, BreakerHalfOpen)
	return nil
}

func (b *storeBreaker) RecordSuccess() {
	b.mu.Lock()
	from := b.state

	switch b.state {
	case BreakerHalfOpen:
		b.releaseTrial()
		b.successes++
		if b.successes >= b.config.HalfOpenSuccesses {
			b.state = BreakerClosed
			b.failures = 0
			b.trials = 0
		}
	case BreakerClosed:
		b.failures = 0
	}

	to := b.state
	b.mu.Unlock()
	b.notify(from, to)
}

func (b *storeBreaker) RecordFailure() {
	b.mu.Lock()
	from := b.state

	switch b.state {
	case BreakerHalfOpen:
		b.open()
	case BreakerClosed:
		b.failures++
		if b.failures >= b.config.MaxFailures {
			b.open()
		}
	}

	to := b.state
	b.mu.Unlock()
	b.notify(from, to)
}

// Abandon gives back a trial slot without counting an outcome, for calls the caller cancelled
func (b *storeBreaker) Abandon() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == BreakerHalfOpen {
		b.releaseTrial()
	}
}

func (b *storeBreaker) trialLimit() int {
	return max(b.config.HalfOpenSuccesses, 1)
}

func (b *storeBreaker) releaseTrial() {
	if b.trials > 0 {
		b.trials--
	}
}

func (b *storeBreaker) notify(from, to BreakerState) {
	if from != to && b.config.OnStateChange != nil {
		b.config.OnStateChange(from, to)
	}
}

func (b *storeBreaker) open() {
	b.state = BreakerOpen
	b.openedAt = b.now()
	b.successes = 0
	b.trials = 0
}

func (b *storeBreaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}
