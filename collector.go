package rootmean

import (
	"github.com/google/uuid"

	"rootmean/aggregate"
)

// A Handler consumes the result flushed for a series.
type Handler func(series uuid.UUID, r Result)

// A Collector routes samples from any number of independent series through a
// shared pipeline, keeping one accumulator per series. It is not safe for
// concurrent use.
type Collector struct {
	pipeline    Pipeline
	aggregation string
	handler     Handler
	states      map[uuid.UUID]aggregate.Aggregator
}

// NewCollector creates a collector that runs the standard root pipeline into
// the named aggregator for every series it observes.
func NewCollector(aggregation string, handler Handler) (*Collector, error) {
	// Probe the name once so Observe never has to fail
	if _, err := aggregate.NewAggregator(aggregation); err != nil {
		return nil, err
	}
	return &Collector{
		pipeline:    RootPipeline(),
		aggregation: aggregation,
		handler:     handler,
		states:      map[uuid.UUID]aggregate.Aggregator{},
	}, nil
}

// SetHandler replaces the handler called by Flush
func (c *Collector) SetHandler(handler Handler) {
	c.handler = handler
}

// Convenience method for getting a series state, creating it if needed
func (c *Collector) state(series uuid.UUID) aggregate.Aggregator {
	agg := c.states[series]
	if agg == nil {
		agg, _ = aggregate.NewAggregator(c.aggregation)
		c.states[series] = agg
	}
	return agg
}

// Observe feeds one sample for a series through the pipeline.
func (c *Collector) Observe(series uuid.UUID, s Sample) {
	c.pipeline.Feed(s, c.state(series))
}

// Result returns the current outcome for a series. A series that was never
// observed, or whose every sample was filtered out, has no data.
func (c *Collector) Result(series uuid.UUID) Result {
	agg := c.states[series]
	if agg == nil || agg.Count() == 0 {
		return Result{}
	}
	return Result{Value: agg.Value(), Valid: true}
}

// Flush emits the current result for a series to the handler and resets the
// series state.
func (c *Collector) Flush(series uuid.UUID) {
	if c.handler != nil {
		c.handler(series, c.Result(series))
	}
	if agg := c.states[series]; agg != nil {
		agg.Reset()
	}
}
