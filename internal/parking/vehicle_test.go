package parking

import "testing"

func TestNewVehicle(t *testing.T) {
	owner := NewOwner("1094911111", "Laura Gomez")
	vehicle := NewVehicle("ABC123", 2019, "White", owner, CategorySedan)

	if vehicle.Plate != "ABC123" {
		t.Errorf("Expected plate ABC123, got %s", vehicle.Plate)
	}

	if vehicle.ModelYear != 2019 {
		t.Errorf("Expected model year 2019, got %d", vehicle.ModelYear)
	}

	if vehicle.Color != "White" {
		t.Errorf("Expected color White, got %s", vehicle.Color)
	}

	if vehicle.Category != CategorySedan {
		t.Errorf("Expected category SEDAN, got %s", vehicle.Category)
	}

	if vehicle.Owner != owner {
		t.Error("Expected vehicle to reference its owner")
	}
}

func TestParseCategory(t *testing.T) {
	for _, raw := range []string{"SEDAN", "SUV", "TRUCK"} {
		category, err := ParseCategory(raw)
		if err != nil {
			t.Errorf("Unexpected error for %s: %s", raw, err.Error())
		}
		if string(category) != raw {
			t.Errorf("Expected category %s, got %s", raw, category)
		}
	}

	if _, err := ParseCategory("MOTORCYCLE"); err == nil {
		t.Error("Expected error for unknown category")
	}

	if _, err := ParseCategory("sedan"); err == nil {
		t.Error("Expected error for lowercase category")
	}
}

func TestCategoryHourlyRate(t *testing.T) {
	if rate := CategorySedan.HourlyRate(); rate != 1500 {
		t.Errorf("Expected sedan rate 1500, got %v", rate)
	}

	if rate := CategorySUV.HourlyRate(); rate != 2500 {
		t.Errorf("Expected SUV rate 2500, got %v", rate)
	}

	if rate := CategoryTruck.HourlyRate(); rate != 4000 {
		t.Errorf("Expected truck rate 4000, got %v", rate)
	}
}
