package resilience

import (
	"testing"
	"time"
)

func TestNormalizeCircuitBreakerConfig(t *testing.T) {
	got := NormalizeCircuitBreakerConfig(CircuitBreakerConfig{Enabled: true})
	want := CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 5,
		OpenTimeout:      15 * time.Second,
		HalfOpenMaxReq:   2,
	}
	if got != want {
		t.Fatalf("unexpected normalized config: %+v", got)
	}

	custom := CircuitBreakerConfig{FailureThreshold: 3, OpenTimeout: time.Second, HalfOpenMaxReq: 1}
	if got := NormalizeCircuitBreakerConfig(custom); got != custom {
		t.Fatalf("expected explicit values to be kept, got %+v", got)
	}
	if DefaultCircuitBreakerConfig().Enabled {
		t.Fatalf("expected breaker to be off by default")
	}
}
