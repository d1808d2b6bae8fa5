package otel_test

import (
	"context"
	"testing"

	"github.com/louisbranch/dicecast/internal/platform/otel"
)

// TestSetupNoopWhenEndpointEmpty ensures no provider is registered without
// an endpoint.
func TestSetupNoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("DICECAST_OTEL_ENDPOINT", "")
	t.Setenv("DICECAST_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

// TestSetupNoopWhenExplicitlyDisabled ensures the kill switch wins over an
// endpoint.
func TestSetupNoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv("DICECAST_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("DICECAST_OTEL_ENABLED", "false")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

// TestSetupCreatesProviderWhenEndpointSet ensures a provider initialises
// and shuts down cleanly against an unreachable endpoint.
func TestSetupCreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so no actual export happens.
	t.Setenv("DICECAST_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("DICECAST_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}
