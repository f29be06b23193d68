package parking

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type Shell struct {
	facility  *InstrumentedFacility
	scanner   *bufio.Scanner
	telemetry *TelemetryProvider
}

func NewShell(facility *InstrumentedFacility, telemetry *TelemetryProvider) *Shell {
	return &Shell{
		facility:  facility,
		scanner:   bufio.NewScanner(os.Stdin),
		telemetry: telemetry,
	}
}

func (s *Shell) Run(ctx context.Context) {
	tracer := s.telemetry.Tracer()
	ctx, span := tracer.Start(ctx, "shell.run")
	defer span.End()

	span.AddEvent("shell_started")

	for {
		if !s.scanner.Scan() {
			break
		}

		input := strings.TrimSpace(s.scanner.Text())
		if input == "" {
			continue
		}

		// Create a new span for each command
		cmdCtx, cmdSpan := tracer.Start(ctx, "shell.process_command",
			trace.WithAttributes(attribute.String("command.input", input)))

		s.processCommand(cmdCtx, input)
		cmdSpan.End()
	}

	span.AddEvent("shell_ended")
}

func (s *Shell) processCommand(ctx context.Context, input string) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return
	}

	command := parts[0]

	switch command {
	case "register_owner":
		s.handleRegisterOwner(ctx, parts)
	case "register_vehicle":
		s.handleRegisterVehicle(ctx, parts)
	case "register_service":
		s.handleRegisterService(ctx, parts)
	case "accumulate_hours":
		s.handleAccumulateHours(ctx, parts)
	case "find_owner":
		s.handleFindOwner(ctx, parts)
	case "find_vehicle":
		s.handleFindVehicle(ctx, parts)
	case "revenue":
		s.handleRevenue(ctx)
	case "vip_count":
		s.handleVIPCount(ctx)
	case "top_customer":
		s.handleTopCustomer(ctx)
	case "status":
		s.handleStatus(ctx)
	default:
		fmt.Printf("Unknown command: %s\n", command)
	}
}

func (s *Shell) handleRegisterOwner(ctx context.Context, parts []string) {
	if len(parts) < 3 {
		fmt.Println("Usage: register_owner <id> <name>")
		return
	}

	id := parts[1]
	name := strings.Join(parts[2:], " ")

	if err := s.facility.RegisterOwner(ctx, id, name); err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		return
	}

	fmt.Printf("Registered owner %s\n", id)
}

func (s *Shell) handleRegisterVehicle(ctx context.Context, parts []string) {
	if len(parts) != 6 {
		fmt.Println("Usage: register_vehicle <plate> <model_year> <color> <owner_id> <category>")
		return
	}

	modelYear, err := strconv.Atoi(parts[2])
	if err != nil {
		fmt.Println("Invalid model year")
		return
	}

	category, err := ParseCategory(parts[5])
	if err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		return
	}

	if err := s.facility.RegisterVehicle(ctx, parts[1], modelYear, parts[3], parts[4], category); err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		return
	}

	fmt.Printf("Registered vehicle %s\n", parts[1])
}

func (s *Shell) handleRegisterService(ctx context.Context, parts []string) {
	if len(parts) != 4 {
		fmt.Println("Usage: register_service <plate> <entry_hour> <exit_hour>")
		return
	}

	entryHour, err := strconv.Atoi(parts[2])
	if err != nil {
		fmt.Println("Invalid entry hour")
		return
	}

	exitHour, err := strconv.Atoi(parts[3])
	if err != nil {
		fmt.Println("Invalid exit hour")
		return
	}

	cost, err := s.facility.RegisterService(ctx, parts[1], entryHour, exitHour)
	if err != nil {
		// The original coordinator reported every failure as -1.
		fmt.Println(-1)
		return
	}

	fmt.Printf("%.0f\n", cost)
}

func (s *Shell) handleAccumulateHours(ctx context.Context, parts []string) {
	if len(parts) != 3 {
		fmt.Println("Usage: accumulate_hours <owner_id> <hours>")
		return
	}

	hours, err := strconv.Atoi(parts[2])
	if err != nil {
		fmt.Println("Invalid hours")
		return
	}

	if err := s.facility.AccumulateHours(ctx, parts[1], hours); err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		return
	}

	fmt.Printf("Accumulated %d hours for %s\n", hours, parts[1])
}

func (s *Shell) handleFindOwner(ctx context.Context, parts []string) {
	if len(parts) != 2 {
		fmt.Println("Usage: find_owner <id>")
		return
	}

	owner, err := s.facility.FindOwner(ctx, parts[1])
	if err != nil {
		fmt.Println("Not found")
		return
	}

	fmt.Printf("%s\t%s\t%d hours\tVIP: %t\n", owner.ID, owner.Name, owner.AccumulatedHours, owner.IsVIP())
}

func (s *Shell) handleFindVehicle(ctx context.Context, parts []string) {
	if len(parts) != 2 {
		fmt.Println("Usage: find_vehicle <plate>")
		return
	}

	vehicle, err := s.facility.FindVehicle(ctx, parts[1])
	if err != nil {
		fmt.Println("Not found")
		return
	}

	fmt.Printf("%s\t%d\t%s\t%s\towner: %s\n",
		vehicle.Plate, vehicle.ModelYear, vehicle.Color, vehicle.Category, vehicle.Owner.ID)
}

func (s *Shell) handleRevenue(ctx context.Context) {
	_, span := s.telemetry.Tracer().Start(ctx, "shell.revenue")
	defer span.End()

	fmt.Printf("%.0f\n", s.facility.TotalRevenue())
}

func (s *Shell) handleVIPCount(ctx context.Context) {
	_, span := s.telemetry.Tracer().Start(ctx, "shell.vip_count")
	defer span.End()

	fmt.Printf("%d\n", s.facility.CountVIPOwners())
}

func (s *Shell) handleTopCustomer(ctx context.Context) {
	_, span := s.telemetry.Tracer().Start(ctx, "shell.top_customer")
	defer span.End()

	owner, err := s.facility.TopOwnerByHours()
	if err != nil {
		fmt.Println("No owners registered")
		return
	}

	fmt.Printf("%s\t%s\t%d hours\n", owner.ID, owner.Name, owner.AccumulatedHours)
}

func (s *Shell) handleStatus(ctx context.Context) {
	revenue, vipCount, topOwner := s.facility.Stats(ctx)

	fmt.Printf("Owners: %d\tVehicles: %d\tServices: %d\n",
		len(s.facility.Owners()), len(s.facility.Vehicles()), len(s.facility.Services()))
	fmt.Printf("Revenue: %.0f\tVIP customers: %d\n", revenue, vipCount)
	if topOwner != nil {
		fmt.Printf("Top customer: %s (%d hours)\n", topOwner.Name, topOwner.AccumulatedHours)
	}
}
