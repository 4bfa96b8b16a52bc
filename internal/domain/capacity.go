package domain

// Capacity holds the per-ship seat limits.
type Capacity struct {
	Ship     int
	Economy  int
	Business int
	First    int
}

func DefaultCapacity() Capacity {
	return Capacity{Ship: 10, Economy: 6, Business: 2, First: 2}
}

func (c Capacity) ForClass(class CabinClass) int {
	switch class {
	case Economy:
		return c.Economy
	case Business:
		return c.Business
	case First:
		return c.First
	default:
		return 0
	}
}
