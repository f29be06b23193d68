package parking

import "fmt"

type Category string

const (
	CategorySedan Category = "SEDAN"
	CategorySUV   Category = "SUV"
	CategoryTruck Category = "TRUCK"
)

// ParseCategory maps a raw category string to one of the known vehicle
// categories. Transport layers call this before registration.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategorySedan, CategorySUV, CategoryTruck:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown vehicle category %q", s)
}

// HourlyRate returns the parking rate charged per hour for the category.
func (c Category) HourlyRate() float64 {
	switch c {
	case CategorySUV:
		return 2500
	case CategoryTruck:
		return 4000
	default:
		return 1500
	}
}

type Vehicle struct {
	Plate     string
	ModelYear int
	Color     string
	Category  Category
	Owner     *Owner
}

func NewVehicle(plate string, modelYear int, color string, owner *Owner, category Category) *Vehicle {
	return &Vehicle{
		Plate:     plate,
		ModelYear: modelYear,
		Color:     color,
		Category:  category,
		Owner:     owner,
	}
}
