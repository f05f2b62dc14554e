package naive

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/hts/hierarchy"
	"github.com/katalvlaran/hts/hmatrix"
	"github.com/katalvlaran/hts/reconcile"
)

// DefaultSeasonLength is the persistence period: 1 repeats the last
// observed value, 7 repeats the value from one week earlier on daily
// data, and so on.
const DefaultSeasonLength = 1

// Option configures a Backend.
type Option func(*options)

type options struct {
	seasonLength int
}

// WithSeasonLength sets the persistence period. Values below 1 are
// clamped to 1.
func WithSeasonLength(p int) Option {
	return func(o *options) {
		if p < 1 {
			p = 1
		}
		o.seasonLength = p
	}
}

func gatherOptions(opts []Option) options {
	o := options{seasonLength: DefaultSeasonLength}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Backend is the seasonal-persistence forecaster. Stateless between
// calls; safe for concurrent use.
type Backend struct {
	opt options
}

var _ reconcile.Forecaster = (*Backend)(nil)

// New builds a Backend.
func New(opts ...Option) *Backend {
	return &Backend{opt: gatherOptions(opts)}
}

// Forecast produces one table per node column: seasonal-persistence base
// forecasts adjusted by the requested reconciliation method. The returned
// slice aligns with the series' value columns (total first, leaves last).
func (b *Backend) Forecast(ctx context.Context, req *reconcile.Request) ([]*reconcile.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req == nil || req.Series == nil || req.Topology == nil || req.Summing == nil {
		return nil, ErrNilRequest
	}
	if req.Horizon < 1 {
		return nil, fmt.Errorf("horizon %d: %w", req.Horizon, reconcile.ErrInvalidHorizon)
	}

	series := req.Series
	nodes := series.NumCols()
	n := series.Len()
	p := b.opt.seasonLength
	if p > n {
		p = n
	}

	history := make([][]float64, nodes)
	for col := 0; col < nodes; col++ {
		c, err := series.Column(col)
		if err != nil {
			return nil, err
		}
		history[col] = c
	}

	// base[h][col] is the unreconciled persistence forecast for future
	// step h: the value one whole season back, wrapping within the season.
	base := make([][]float64, req.Horizon)
	for h := 0; h < req.Horizon; h++ {
		base[h] = make([]float64, nodes)
		for col := 0; col < nodes; col++ {
			base[h][col] = history[col][n-p+h%p]
		}
	}

	adjusted, err := adjust(req.Method, base, history, req.Topology, req.Summing)
	if err != nil {
		return nil, err
	}

	return b.assemble(req, history, adjusted, p)
}

// assemble packs the reconciled forecasts into per-node tables, extending
// the time axis by the observed step and prepending in-sample fits when
// history was requested.
func (b *Backend) assemble(req *reconcile.Request, history, adjusted [][]float64, p int) ([]*reconcile.Table, error) {
	series := req.Series
	nodes := series.NumCols()
	n := series.Len()
	times := series.Times()

	step := 24 * time.Hour
	if n >= 2 {
		step = times[n-1].Sub(times[n-2])
	}
	future := make([]time.Time, req.Horizon)
	for h := 0; h < req.Horizon; h++ {
		future[h] = times[n-1].Add(time.Duration(h+1) * step)
	}

	tables := make([]*reconcile.Table, nodes)
	for col := 0; col < nodes; col++ {
		var axis []time.Time
		var yhat []float64
		if req.IncludeHistory {
			axis = append(append([]time.Time(nil), times...), future...)
			yhat = make([]float64, 0, n+req.Horizon)
			for t := 0; t < n; t++ {
				// In-sample fit: the same persistence rule applied one
				// season behind.
				if t < p {
					yhat = append(yhat, history[col][t])
				} else {
					yhat = append(yhat, history[col][t-p])
				}
			}
		} else {
			axis = future
		}
		for h := 0; h < req.Horizon; h++ {
			yhat = append(yhat, adjusted[h][col])
		}

		tables[col] = &reconcile.Table{
			Times:     axis,
			Yhat:      yhat,
			YhatLower: append([]float64(nil), yhat...),
			YhatUpper: append([]float64(nil), yhat...),
			Trend:     append([]float64(nil), yhat...),
		}
	}

	return tables, nil
}

// adjust dispatches the reconciliation strategies over the base forecast
// matrix. base and history are read-only; the result is freshly allocated.
func adjust(method reconcile.Method, base, history [][]float64, topo *hierarchy.Topology, S *hmatrix.Dense) ([][]float64, error) {
	switch method {
	case reconcile.MethodBottomUp:
		return bottomUp(base, S)
	case reconcile.MethodTopDownForecastProp:
		return forecastProportions(base, topo)
	case reconcile.MethodTopDownHistAvgProp:
		return topDownByShares(base, histAvgShares(history, S.Cols()), S)
	case reconcile.MethodTopDownAvgHistProp:
		return topDownByShares(base, avgHistShares(history, S.Cols()), S)
	case reconcile.MethodOptimalCombination:
		return optimalCombination(base, S)
	default:
		return nil, fmt.Errorf("%s: %w", method, ErrUnsupportedMethod)
	}
}
