package aggregate

// A MinAggregator tracks the smallest value it has seen.
type MinAggregator struct {
	count int
	min   float64
}

func (a *MinAggregator) Add(value float64) {
	if a.count == 0 || value < a.min {
		a.min = value
	}
	a.count++
}

func (a *MinAggregator) Value() float64 {
	return a.min
}

func (a *MinAggregator) Count() int {
	return a.count
}

func (a *MinAggregator) Reset() {
	a.min = 0
	a.count = 0
}
