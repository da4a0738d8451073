// Package rootmean computes the average of the principal square roots of the
// present, non-negative values in a sequence of optional readings. Anything
// that cannot contribute (a missing slot, a negative value, an undefined
// root) is filtered out rather than reported as an error; when nothing
// survives, the outcome is "no data" instead of a number.
package rootmean

import "fmt"

// A Sample is an optional measurement: either a real value or nothing.
// The zero value is the missing sample.
type Sample struct {
	Value float64
	Valid bool
}

// Present wraps a value in a valid Sample
func Present(v float64) Sample {
	return Sample{Value: v, Valid: true}
}

// A Result is the outcome of an aggregation: either a value computed from at
// least one surviving sample, or no data at all.
type Result struct {
	Value float64
	Valid bool
}

// String renders the result as a decimal number, or "None" when the
// aggregation had no data.
func (r Result) String() string {
	if !r.Valid {
		return "None"
	}
	return fmt.Sprintf("%f", r.Value)
}
