package aggregate

// A SumAggregator adds up the values it has seen.
type SumAggregator struct {
	count int
	sum   float64
}

func (a *SumAggregator) Add(value float64) {
	a.sum += value
	a.count++
}

func (a *SumAggregator) Value() float64 {
	return a.sum
}

func (a *SumAggregator) Count() int {
	return a.count
}

func (a *SumAggregator) Reset() {
	a.sum = 0
	a.count = 0
}
