package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	b := NewCircuitBreaker(3, time.Minute, 1)

	for i := 0; i < 3; i++ {
		if err := b.Allow(); err != nil {
			t.Fatalf("allow %d: %v", i, err)
		}
		b.RecordFailure()
	}

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected open circuit, got %v", err)
	}
	if got := b.State(); got != CircuitStateOpen {
		t.Fatalf("expected open state, got %s", got)
	}
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	b := NewCircuitBreaker(1, time.Minute, 2)
	clock := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return clock }

	b.RecordFailure()
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatal("expected open right after failure")
	}

	clock = clock.Add(2 * time.Minute)
	for i := 0; i < 2; i++ {
		if err := b.Allow(); err != nil {
			t.Fatalf("half-open allow %d: %v", i, err)
		}
		b.RecordSuccess()
	}

	if got := b.State(); got != CircuitStateClosed {
		t.Fatalf("expected closed after successful probes, got %s", got)
	}
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	b := NewCircuitBreaker(1, time.Minute, 1)
	clock := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return clock }

	b.RecordFailure()
	clock = clock.Add(2 * time.Minute)

	if err := b.Allow(); err != nil {
		t.Fatalf("half-open probe: %v", err)
	}
	b.RecordFailure()

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatal("expected reopened circuit")
	}
}
