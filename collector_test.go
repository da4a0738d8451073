package rootmean_test

import (
	"math"
	"testing"

	"github.com/google/uuid"

	"rootmean"
)

func TestCollectorUnknownAggregator(t *testing.T) {
	if _, err := rootmean.NewCollector("median", nil); err == nil {
		t.Error("Expected error for unknown aggregator")
	}
}

func TestCollectorMatchesMeanRoot(t *testing.T) {
	c, err := rootmean.NewCollector("mean", nil)
	if err != nil {
		t.Fatal(err)
	}
	series := uuid.New()
	for _, s := range testReadings {
		c.Observe(series, s)
	}
	want := rootmean.MeanRoot(testReadings)
	got := c.Result(series)
	if !got.Valid {
		t.Fatal("Expected an average but got no data")
	}
	if math.Abs(got.Value-want.Value) > tolerance {
		t.Errorf("Expected average %v but got %v", want.Value, got.Value)
	}
}

func TestCollectorSeriesIsolation(t *testing.T) {
	c, err := rootmean.NewCollector("mean", nil)
	if err != nil {
		t.Fatal(err)
	}
	a, b := uuid.New(), uuid.New()
	c.Observe(a, rootmean.Present(4.0))
	c.Observe(b, rootmean.Present(9.0))
	c.Observe(b, rootmean.Present(-1.0))
	if r := c.Result(a); !r.Valid || math.Abs(r.Value-2.0) > tolerance {
		t.Errorf("Expected average 2.0 for series a but got %v", r)
	}
	if r := c.Result(b); !r.Valid || math.Abs(r.Value-3.0) > tolerance {
		t.Errorf("Expected average 3.0 for series b but got %v", r)
	}
}

func TestCollectorNoData(t *testing.T) {
	c, err := rootmean.NewCollector("mean", nil)
	if err != nil {
		t.Fatal(err)
	}
	if r := c.Result(uuid.New()); r.Valid {
		t.Errorf("Expected no data for unseen series but got %v", r.Value)
	}
	series := uuid.New()
	c.Observe(series, rootmean.Sample{})
	c.Observe(series, rootmean.Present(-2.0))
	if r := c.Result(series); r.Valid {
		t.Errorf("Expected no data for fully filtered series but got %v", r.Value)
	}
}

func TestCollectorFlush(t *testing.T) {
	series := uuid.New()
	flushed := 0
	c, err := rootmean.NewCollector("mean", func(s uuid.UUID, r rootmean.Result) {
		flushed++
		if s != series {
			t.Errorf("Flushed wrong series %v", s)
		}
		if !r.Valid || math.Abs(r.Value-2.0) > tolerance {
			t.Errorf("Expected flushed average 2.0 but got %v", r)
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	c.Observe(series, rootmean.Present(4.0))
	c.Flush(series)
	if flushed != 1 {
		t.Fatalf("Expected 1 flush but got %d", flushed)
	}
	// Flush resets the series state
	if r := c.Result(series); r.Valid {
		t.Errorf("Expected no data after flush but got %v", r.Value)
	}
}
