package parking

import "testing"

func TestNewService(t *testing.T) {
	owner := NewOwner("1094911111", "Laura Gomez")
	vehicle := NewVehicle("ABC123", 2019, "White", owner, CategorySUV)

	service := NewService(8, 12, vehicle)

	if service.Hours() != 4 {
		t.Errorf("Expected 4 hours, got %d", service.Hours())
	}

	if service.Cost != 4*2500 {
		t.Errorf("Expected cost 10000, got %v", service.Cost)
	}

	if service.Vehicle != vehicle {
		t.Error("Expected service to reference its vehicle")
	}
}

func TestServiceCostByCategory(t *testing.T) {
	owner := NewOwner("1094911111", "Laura Gomez")

	sedan := NewService(10, 12, NewVehicle("SED123", 2020, "Gray", owner, CategorySedan))
	if sedan.Cost != 2*1500 {
		t.Errorf("Expected sedan cost 3000, got %v", sedan.Cost)
	}

	truck := NewService(10, 12, NewVehicle("TRK123", 2018, "Blue", owner, CategoryTruck))
	if truck.Cost != 2*4000 {
		t.Errorf("Expected truck cost 8000, got %v", truck.Cost)
	}
}
