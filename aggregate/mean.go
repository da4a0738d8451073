package aggregate

// A MeanAggregator computes the arithmetic mean of the values it has seen.
// Value is undefined until at least one value has been added.
type MeanAggregator struct {
	count int
	sum   float64
}

func (a *MeanAggregator) Add(value float64) {
	a.sum += value
	a.count++
}

func (a *MeanAggregator) Value() float64 {
	return a.sum / float64(a.count)
}

func (a *MeanAggregator) Count() int {
	return a.count
}

func (a *MeanAggregator) Reset() {
	a.sum = 0
	a.count = 0
}
