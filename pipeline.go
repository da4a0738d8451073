package rootmean

import (
	"math"

	"rootmean/aggregate"
)

// A Step is one stage of a filtering pipeline. It returns the possibly
// transformed value, and whether the value should continue to the next stage.
type Step func(v float64) (float64, bool)

// SkipNegative drops values below zero. Zero itself passes.
func SkipNegative(v float64) (float64, bool) {
	return v, v >= 0
}

// Root replaces a value with its principal square root.
func Root(v float64) (float64, bool) {
	return math.Sqrt(v), true
}

// SkipNotReal drops values that are not well-defined real numbers.
// Unreachable when SkipNegative runs first, but kept so the steps stay
// independently reusable in any order.
func SkipNotReal(v float64) (float64, bool) {
	return v, !math.IsNaN(v)
}

// A Pipeline applies an ordered series of steps to every present sample in a
// sequence, feeding the survivors to an aggregator.
type Pipeline struct {
	Steps []Step
}

// RootPipeline returns the standard pipeline: drop negatives, take the
// principal square root, drop anything that is not a real number.
func RootPipeline() Pipeline {
	return Pipeline{Steps: []Step{SkipNegative, Root, SkipNotReal}}
}

// Feed runs a single sample through the pipeline. Missing samples are
// skipped before any step sees them.
func (p Pipeline) Feed(s Sample, agg aggregate.Aggregator) {
	if !s.Valid {
		return
	}
	v, ok := s.Value, true
	for _, step := range p.Steps {
		v, ok = step(v)
		if !ok {
			return
		}
	}
	agg.Add(v)
}

// Run feeds a sequence of samples through the pipeline into agg, visiting
// every element exactly once, in order. The input is never modified.
func (p Pipeline) Run(samples []Sample, agg aggregate.Aggregator) {
	for _, s := range samples {
		p.Feed(s, agg)
	}
}

// MeanRoot computes the average square root of the present, non-negative
// values in samples. Anomalies never raise errors: missing samples, negative
// values and undefined roots are skipped. When nothing survives the result
// carries no data.
func MeanRoot(samples []Sample) Result {
	agg := new(aggregate.MeanAggregator)
	RootPipeline().Run(samples, agg)
	if agg.Count() == 0 {
		return Result{}
	}
	return Result{Value: agg.Value(), Valid: true}
}
