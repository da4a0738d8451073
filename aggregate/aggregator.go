package aggregate

import (
	"fmt"
)

// An Aggregator accumulates a stream of values into a single summary value.
// Count reports how many values were accumulated, so a caller can tell an
// empty aggregation apart from one that legitimately produced zero.
type Aggregator interface {
	Add(value float64)
	Value() float64
	Count() int
	Reset()
}

// NewAggregator returns the named aggregator
func NewAggregator(aggregation string) (Aggregator, error) {
	switch aggregation {
	case "mean":
		return new(MeanAggregator), nil
	case "min":
		return new(MinAggregator), nil
	case "max":
		return new(MaxAggregator), nil
	case "sum":
		return new(SumAggregator), nil
	case "count":
		return new(CountAggregator), nil
	default:
		return nil, fmt.Errorf("can't find aggregator %s", aggregation)
	}
}
