package reconcile

import (
	"context"
	"time"

	"github.com/katalvlaran/hts/hierarchy"
	"github.com/katalvlaran/hts/hmatrix"
)

// Forecaster is the narrow contract against the external per-series
// forecasting backend. One call fits the whole pipeline once: the backend
// receives the wide series table, the horizon, the summing matrix and
// topology, the reconciliation method to apply internally, and the opaque
// model parameters, and returns one forecast table per node.
//
// The returned slice must align positionally with the series' value
// columns: index 0 is the total, the last Topology.LeafCount() entries are
// the leaves in summing-matrix order. Run verifies the count and rejects
// misaligned responses (ErrForecastShape).
//
// A call blocks until the backend finishes; the core defines no timeout of
// its own, so callers needing bounded latency should enforce one through
// ctx.
type Forecaster interface {
	Forecast(ctx context.Context, req *Request) ([]*Table, error)
}

// Request carries everything one backend fit needs. All reference fields
// are shared read-only; implementations must not mutate them.
type Request struct {
	Series   *hierarchy.Series
	Horizon  int
	Summing  *hmatrix.Dense
	Topology *hierarchy.Topology
	Method   Method

	// Frequency is the calendar frequency code of the series, passed
	// through uninterpreted (e.g. "D", "W").
	Frequency string

	// IncludeHistory asks the backend to return fitted history rows ahead
	// of the future rows in each table.
	IncludeHistory bool

	Params ModelParams
}

// Table is one node's forecast: one row per time instant (history first
// when requested, then exactly Horizon future rows), with the point
// forecast, uncertainty bounds and decomposition components.
type Table struct {
	Times     []time.Time
	Yhat      []float64
	YhatLower []float64
	YhatUpper []float64
	Trend     []float64

	// Seasonal holds one component series per seasonality name
	// (e.g. "yearly", "weekly").
	Seasonal map[string][]float64
}

// Future returns the trailing h point-forecast values of the table, i.e.
// the forecast window regardless of whether history was included.
// Returns ErrForecastShape when the table is shorter than h.
func (t *Table) Future(h int) ([]float64, error) {
	if h < 1 || len(t.Yhat) < h {
		return nil, ErrForecastShape
	}

	return append([]float64(nil), t.Yhat[len(t.Yhat)-h:]...), nil
}

// Seasonality is a three-state toggle passed through to the backend.
type Seasonality string

const (
	// SeasonalityAuto lets the backend decide from the data span.
	SeasonalityAuto Seasonality = "auto"
	// SeasonalityOn forces the component.
	SeasonalityOn Seasonality = "on"
	// SeasonalityOff suppresses the component.
	SeasonalityOff Seasonality = "off"
)

// Holiday is one holiday effect row, passed through to the backend.
type Holiday struct {
	Name        string
	Date        time.Time
	LowerWindow int
	UpperWindow int
}

// Capacity is a saturating-growth ceiling: either a single constant for
// every node, or a table with one column per forecasted node (the total
// column included) and one row per time instant the backend will see.
type Capacity struct {
	Constant float64
	Table    *hmatrix.Dense // nil → constant applies
}

// ModelParams are the per-series model hyperparameters. The core validates
// only their shape (capacity/changepoint tables must be one-per-node) and
// otherwise passes them through uninterpreted.
type ModelParams struct {
	Cap       *Capacity
	CapFuture *Capacity

	// Changepoints lists explicit changepoint instants; when empty the
	// backend places NChangepoints automatically.
	Changepoints  []time.Time
	NChangepoints int

	// NChangepointsPerNode optionally overrides NChangepoints node by
	// node; when non-nil its length must equal the node column count.
	NChangepointsPerNode []int

	YearlySeasonality Seasonality
	WeeklySeasonality Seasonality
	Holidays          []Holiday

	SeasonalityPriorScale float64
	HolidaysPriorScale    float64
	ChangepointPriorScale float64

	MCMCSamples        int
	IntervalWidth      float64
	UncertaintySamples int
}
