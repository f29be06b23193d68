package parking

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type InstrumentedFacility struct {
	*Facility
	telemetry *TelemetryProvider

	// Metrics
	ownerRegistrations   metric.Int64Counter
	vehicleRegistrations metric.Int64Counter
	serviceRegistrations metric.Int64Counter
	revenueTotal         metric.Float64Counter
	ownersGauge          metric.Int64UpDownCounter
	vehiclesGauge        metric.Int64UpDownCounter
	operationDuration    metric.Float64Histogram
}

func NewInstrumentedFacility(telemetry *TelemetryProvider) (*InstrumentedFacility, error) {
	baseFacility := NewFacility()

	meter := telemetry.Meter()

	ownerRegistrations, err := meter.Int64Counter("owner_registrations_total",
		metric.WithDescription("Total number of owner registration attempts"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	vehicleRegistrations, err := meter.Int64Counter("vehicle_registrations_total",
		metric.WithDescription("Total number of vehicle registration attempts"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	serviceRegistrations, err := meter.Int64Counter("service_registrations_total",
		metric.WithDescription("Total number of parking service registration attempts"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	revenueTotal, err := meter.Float64Counter("facility_revenue_total",
		metric.WithDescription("Accumulated revenue from billed parking services"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	ownersGauge, err := meter.Int64UpDownCounter("facility_registered_owners",
		metric.WithDescription("Current number of registered owners"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	vehiclesGauge, err := meter.Int64UpDownCounter("facility_registered_vehicles",
		metric.WithDescription("Current number of registered vehicles"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	operationDuration, err := meter.Float64Histogram("operation_duration_seconds",
		metric.WithDescription("Duration of facility operations"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}

	return &InstrumentedFacility{
		Facility:             baseFacility,
		telemetry:            telemetry,
		ownerRegistrations:   ownerRegistrations,
		vehicleRegistrations: vehicleRegistrations,
		serviceRegistrations: serviceRegistrations,
		revenueTotal:         revenueTotal,
		ownersGauge:          ownersGauge,
		vehiclesGauge:        vehiclesGauge,
		operationDuration:    operationDuration,
	}, nil
}

func (ifc *InstrumentedFacility) RegisterOwner(ctx context.Context, id, name string) error {
	tracer := ifc.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "facility.register_owner",
		trace.WithAttributes(
			attribute.String("owner.id", id),
			attribute.String("owner.name", name),
		))
	defer span.End()

	start := time.Now()

	err := ifc.Facility.RegisterOwner(id, name)

	duration := time.Since(start).Seconds()

	labels := []attribute.KeyValue{
		attribute.String("operation", "register_owner"),
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		labels = append(labels, attribute.String("status", "failed"))
	} else {
		labels = append(labels, attribute.String("status", "success"))
		span.AddEvent("owner_registered")
		ifc.ownersGauge.Add(ctx, 1)
	}

	ifc.ownerRegistrations.Add(ctx, 1, metric.WithAttributes(labels...))
	ifc.operationDuration.Record(ctx, duration, metric.WithAttributes(labels...))

	return err
}

func (ifc *InstrumentedFacility) RegisterVehicle(ctx context.Context, plate string, modelYear int, color, ownerID string, category Category) error {
	tracer := ifc.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "facility.register_vehicle",
		trace.WithAttributes(
			attribute.String("vehicle.plate", plate),
			attribute.String("vehicle.color", color),
			attribute.String("vehicle.category", string(category)),
			attribute.String("owner.id", ownerID),
		))
	defer span.End()

	start := time.Now()

	err := ifc.Facility.RegisterVehicle(plate, modelYear, color, ownerID, category)

	duration := time.Since(start).Seconds()

	labels := []attribute.KeyValue{
		attribute.String("operation", "register_vehicle"),
		attribute.String("vehicle_category", string(category)),
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		labels = append(labels, attribute.String("status", "failed"))
	} else {
		labels = append(labels, attribute.String("status", "success"))
		span.AddEvent("vehicle_registered")
		ifc.vehiclesGauge.Add(ctx, 1)
	}

	ifc.vehicleRegistrations.Add(ctx, 1, metric.WithAttributes(labels...))
	ifc.operationDuration.Record(ctx, duration, metric.WithAttributes(labels...))

	return err
}

func (ifc *InstrumentedFacility) AccumulateHours(ctx context.Context, ownerID string, hours int) error {
	tracer := ifc.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "facility.accumulate_hours",
		trace.WithAttributes(
			attribute.String("owner.id", ownerID),
			attribute.Int("hours", hours),
		))
	defer span.End()

	start := time.Now()

	err := ifc.Facility.AccumulateHours(ownerID, hours)

	duration := time.Since(start).Seconds()

	labels := []attribute.KeyValue{
		attribute.String("operation", "accumulate_hours"),
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		labels = append(labels, attribute.String("status", "failed"))
	} else {
		labels = append(labels, attribute.String("status", "success"))
		span.AddEvent("hours_accumulated", trace.WithAttributes(
			attribute.Int("hours", hours),
		))
	}

	ifc.operationDuration.Record(ctx, duration, metric.WithAttributes(labels...))

	return err
}

func (ifc *InstrumentedFacility) RegisterService(ctx context.Context, plate string, entryHour, exitHour int) (float64, error) {
	tracer := ifc.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "facility.register_service",
		trace.WithAttributes(
			attribute.String("vehicle.plate", plate),
			attribute.Int("service.entry_hour", entryHour),
			attribute.Int("service.exit_hour", exitHour),
		))
	defer span.End()

	start := time.Now()

	span.AddEvent("validating_service_hours")

	cost, err := ifc.Facility.RegisterService(plate, entryHour, exitHour)

	duration := time.Since(start).Seconds()

	labels := []attribute.KeyValue{
		attribute.String("operation", "register_service"),
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		labels = append(labels, attribute.String("status", "failed"))
		ifc.serviceRegistrations.Add(ctx, 1, metric.WithAttributes(labels...))
	} else {
		labels = append(labels, attribute.String("status", "success"))
		span.SetAttributes(attribute.Float64("service.cost", cost))
		span.AddEvent("service_billed", trace.WithAttributes(
			attribute.Float64("cost", cost),
		))

		ifc.serviceRegistrations.Add(ctx, 1, metric.WithAttributes(labels...))
		ifc.revenueTotal.Add(ctx, cost)
	}

	ifc.operationDuration.Record(ctx, duration, metric.WithAttributes(labels...))

	return cost, err
}

func (ifc *InstrumentedFacility) FindOwner(ctx context.Context, id string) (*Owner, error) {
	tracer := ifc.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "facility.find_owner",
		trace.WithAttributes(
			attribute.String("owner.id", id),
		))
	defer span.End()

	start := time.Now()

	owner, err := ifc.Facility.FindOwner(id)

	duration := time.Since(start).Seconds()

	labels := []attribute.KeyValue{
		attribute.String("operation", "find_owner"),
	}

	if err != nil {
		span.AddEvent("owner_not_found")
		labels = append(labels, attribute.String("status", "not_found"))
	} else {
		span.AddEvent("owner_found", trace.WithAttributes(
			attribute.String("owner.name", owner.Name),
		))
		labels = append(labels, attribute.String("status", "found"))
	}

	ifc.operationDuration.Record(ctx, duration, metric.WithAttributes(labels...))

	return owner, err
}

func (ifc *InstrumentedFacility) FindVehicle(ctx context.Context, plate string) (*Vehicle, error) {
	tracer := ifc.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "facility.find_vehicle",
		trace.WithAttributes(
			attribute.String("vehicle.plate", plate),
		))
	defer span.End()

	start := time.Now()

	vehicle, err := ifc.Facility.FindVehicle(plate)

	duration := time.Since(start).Seconds()

	labels := []attribute.KeyValue{
		attribute.String("operation", "find_vehicle"),
	}

	if err != nil {
		span.AddEvent("vehicle_not_found")
		labels = append(labels, attribute.String("status", "not_found"))
	} else {
		span.AddEvent("vehicle_found", trace.WithAttributes(
			attribute.String("vehicle.category", string(vehicle.Category)),
		))
		labels = append(labels, attribute.String("status", "found"))
	}

	ifc.operationDuration.Record(ctx, duration, metric.WithAttributes(labels...))

	return vehicle, err
}

func (ifc *InstrumentedFacility) Stats(ctx context.Context) (float64, int, *Owner) {
	tracer := ifc.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "facility.stats")
	defer span.End()

	start := time.Now()

	revenue := ifc.Facility.TotalRevenue()
	vipCount := ifc.Facility.CountVIPOwners()
	topOwner, err := ifc.Facility.TopOwnerByHours()
	if err != nil {
		topOwner = nil
	}

	duration := time.Since(start).Seconds()

	span.SetAttributes(
		attribute.Float64("stats.total_revenue", revenue),
		attribute.Int("stats.vip_owners", vipCount),
	)
	if topOwner != nil {
		span.SetAttributes(attribute.String("stats.top_owner_id", topOwner.ID))
	}

	labels := []attribute.KeyValue{
		attribute.String("operation", "stats"),
		attribute.String("status", "success"),
	}

	ifc.operationDuration.Record(ctx, duration, metric.WithAttributes(labels...))

	return revenue, vipCount, topOwner
}
