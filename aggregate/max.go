package aggregate

import "math"

// A MaxAggregator tracks the largest value it has seen.
type MaxAggregator struct {
	count int
	max   float64
}

func (a *MaxAggregator) Add(value float64) {
	if a.count == 0 {
		a.max = value
	} else {
		a.max = math.Max(a.max, value)
	}
	a.count++
}

func (a *MaxAggregator) Value() float64 {
	return a.max
}

func (a *MaxAggregator) Count() int {
	return a.count
}

func (a *MaxAggregator) Reset() {
	a.max = 0
	a.count = 0
}
