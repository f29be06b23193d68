package parking

// vipHoursThreshold is the accumulated-hours mark at which an owner
// becomes a VIP customer.
const vipHoursThreshold = 20

type Owner struct {
	ID               string
	Name             string
	AccumulatedHours int
}

func NewOwner(id, name string) *Owner {
	return &Owner{
		ID:               id,
		Name:             name,
		AccumulatedHours: 0,
	}
}

func (o *Owner) AccumulateHours(hours int) {
	o.AccumulatedHours += hours
}

func (o *Owner) IsVIP() bool {
	return o.AccumulatedHours >= vipHoursThreshold
}
