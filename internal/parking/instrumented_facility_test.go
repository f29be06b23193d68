package parking

import (
	"context"
	"errors"
	"testing"
)

func TestInstrumentedFacilityIntegration(t *testing.T) {
	// Initialize telemetry
	telemetry, err := NewTelemetryProvider()
	if err != nil {
		t.Fatalf("Failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := telemetry.Shutdown(context.Background()); err != nil {
			t.Errorf("Failed to shutdown telemetry: %v", err)
		}
	}()

	// Create instrumented facility
	facility, err := NewInstrumentedFacility(telemetry)
	if err != nil {
		t.Fatalf("Failed to create instrumented facility: %v", err)
	}

	ctx := context.Background()

	// Register an owner and a vehicle
	if err := facility.RegisterOwner(ctx, "1094911111", "Laura Gomez"); err != nil {
		t.Errorf("Unexpected error: %s", err.Error())
	}

	if err := facility.RegisterVehicle(ctx, "ABC123", 2019, "White", "1094911111", CategorySUV); err != nil {
		t.Errorf("Unexpected error: %s", err.Error())
	}

	// Duplicate registration still fails through the instrumented layer
	if err := facility.RegisterOwner(ctx, "1094911111", "Laura Gomez"); !errors.Is(err, ErrOwnerExists) {
		t.Errorf("Expected ErrOwnerExists, got %v", err)
	}

	// Bill a service
	cost, err := facility.RegisterService(ctx, "ABC123", 8, 11)
	if err != nil {
		t.Errorf("Unexpected error: %s", err.Error())
	}
	if cost != 3*2500 {
		t.Errorf("Expected cost 7500, got %v", cost)
	}

	// Lookups
	owner, err := facility.FindOwner(ctx, "1094911111")
	if err != nil {
		t.Errorf("Unexpected error: %s", err.Error())
	}
	if owner.AccumulatedHours != 3 {
		t.Errorf("Expected 3 accumulated hours, got %d", owner.AccumulatedHours)
	}

	if _, err := facility.FindVehicle(ctx, "ZZZ999"); !errors.Is(err, ErrVehicleNotFound) {
		t.Errorf("Expected ErrVehicleNotFound, got %v", err)
	}

	// Stats
	revenue, vipCount, topOwner := facility.Stats(ctx)
	if revenue != cost {
		t.Errorf("Expected revenue %v, got %v", cost, revenue)
	}
	if vipCount != 0 {
		t.Errorf("Expected 0 VIP owners, got %d", vipCount)
	}
	if topOwner == nil || topOwner.ID != "1094911111" {
		t.Errorf("Expected top owner 1094911111, got %v", topOwner)
	}
}
