package aggregate

// A CountAggregator counts the values it has seen, ignoring their magnitude.
type CountAggregator struct {
	count int
}

func (a *CountAggregator) Add(value float64) {
	a.count++
}

func (a *CountAggregator) Value() float64 {
	return float64(a.count)
}

func (a *CountAggregator) Count() int {
	return a.count
}

func (a *CountAggregator) Reset() {
	a.count = 0
}
