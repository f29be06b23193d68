package parking

// Service is one completed parking transaction. It is created once by the
// facility and never modified afterwards.
type Service struct {
	EntryHour int
	ExitHour  int
	Vehicle   *Vehicle
	Cost      float64
}

func NewService(entryHour, exitHour int, vehicle *Vehicle) *Service {
	s := &Service{
		EntryHour: entryHour,
		ExitHour:  exitHour,
		Vehicle:   vehicle,
	}
	s.Cost = float64(s.Hours()) * vehicle.Category.HourlyRate()
	return s
}

// Hours returns the billed duration of the service.
func (s *Service) Hours() int {
	return s.ExitHour - s.EntryHour
}
