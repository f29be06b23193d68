package parking

import (
	"errors"
	"sync"
)

var (
	ErrOwnerExists      = errors.New("owner already registered")
	ErrOwnerNotFound    = errors.New("owner not found")
	ErrVehicleExists    = errors.New("vehicle already registered")
	ErrVehicleNotFound  = errors.New("vehicle not found")
	ErrInvalidEntryHour = errors.New("entry hour must be between 1 and 22")
	ErrInvalidExitHour  = errors.New("exit hour must be between 2 and 23")
	ErrHourOrder        = errors.New("exit hour must be after entry hour")
	ErrNoOwners         = errors.New("no owners registered")
)

// Facility coordinates the three registries of the parking facility:
// owners, their vehicles, and the append-only history of billed services.
// A single lock guards every public operation; operations are short
// collection scans, so finer granularity buys nothing.
type Facility struct {
	mu       sync.RWMutex
	owners   []*Owner
	vehicles []*Vehicle
	services []*Service
}

func NewFacility() *Facility {
	return &Facility{}
}

func (f *Facility) FindOwner(id string) (*Owner, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.findOwner(id)
}

func (f *Facility) findOwner(id string) (*Owner, error) {
	for _, owner := range f.owners {
		if owner.ID == id {
			return owner, nil
		}
	}
	return nil, ErrOwnerNotFound
}

func (f *Facility) FindVehicle(plate string) (*Vehicle, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.findVehicle(plate)
}

func (f *Facility) findVehicle(plate string) (*Vehicle, error) {
	for _, vehicle := range f.vehicles {
		if vehicle.Plate == plate {
			return vehicle, nil
		}
	}
	return nil, ErrVehicleNotFound
}

func (f *Facility) RegisterOwner(id, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.findOwner(id); err == nil {
		return ErrOwnerExists
	}

	f.owners = append(f.owners, NewOwner(id, name))
	return nil
}

func (f *Facility) RegisterVehicle(plate string, modelYear int, color, ownerID string, category Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.findVehicle(plate); err == nil {
		return ErrVehicleExists
	}

	owner, err := f.findOwner(ownerID)
	if err != nil {
		return err
	}

	f.vehicles = append(f.vehicles, NewVehicle(plate, modelYear, color, owner, category))
	return nil
}

func (f *Facility) AccumulateHours(ownerID string, hours int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.accumulateHours(ownerID, hours)
}

func (f *Facility) accumulateHours(ownerID string, hours int) error {
	owner, err := f.findOwner(ownerID)
	if err != nil {
		return err
	}

	owner.AccumulateHours(hours)
	return nil
}

// RegisterService validates the requested hours, bills a parking service
// for the vehicle, credits the billed hours to the vehicle's owner, and
// returns the cost. State is untouched on any validation failure.
func (f *Facility) RegisterService(plate string, entryHour, exitHour int) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if entryHour < 1 || entryHour > 22 {
		return 0, ErrInvalidEntryHour
	}

	if exitHour < 2 || exitHour > 23 {
		return 0, ErrInvalidExitHour
	}

	if exitHour <= entryHour {
		return 0, ErrHourOrder
	}

	vehicle, err := f.findVehicle(plate)
	if err != nil {
		return 0, err
	}

	service := NewService(entryHour, exitHour, vehicle)
	f.accumulateHours(vehicle.Owner.ID, service.Hours())
	f.services = append(f.services, service)

	return service.Cost, nil
}

func (f *Facility) TotalRevenue() float64 {
	f.mu.RLock()
	defer f.mu.RUnlock()

	total := 0.0
	for _, service := range f.services {
		total += service.Cost
	}
	return total
}

func (f *Facility) CountVIPOwners() int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	count := 0
	for _, owner := range f.owners {
		if owner.IsVIP() {
			count++
		}
	}
	return count
}

// TopOwnerByHours returns the owner with the most accumulated hours.
// Ties keep the earliest-registered owner.
func (f *Facility) TopOwnerByHours() (*Owner, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if len(f.owners) == 0 {
		return nil, ErrNoOwners
	}

	top := f.owners[0]
	for _, owner := range f.owners {
		if owner.AccumulatedHours > top.AccumulatedHours {
			top = owner
		}
	}
	return top, nil
}

// Owners returns a snapshot of the owner registry.
func (f *Facility) Owners() []*Owner {
	f.mu.RLock()
	defer f.mu.RUnlock()

	owners := make([]*Owner, len(f.owners))
	copy(owners, f.owners)
	return owners
}

// Vehicles returns a snapshot of the vehicle registry.
func (f *Facility) Vehicles() []*Vehicle {
	f.mu.RLock()
	defer f.mu.RUnlock()

	vehicles := make([]*Vehicle, len(f.vehicles))
	copy(vehicles, f.vehicles)
	return vehicles
}

// Services returns a snapshot of the billed service history.
func (f *Facility) Services() []*Service {
	f.mu.RLock()
	defer f.mu.RUnlock()

	services := make([]*Service, len(f.services))
	copy(services, f.services)
	return services
}
