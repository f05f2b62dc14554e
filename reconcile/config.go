package reconcile

// DEFAULTS - single source of truth, mirroring the conventional per-series
// model defaults the backend side expects.
const (
	// DefaultHorizon is the number of step-ahead forecasts.
	DefaultHorizon = 1

	// DefaultFrequency is the calendar frequency code (daily).
	DefaultFrequency = "D"

	// DefaultIncludeHistory returns fitted history alongside the future.
	DefaultIncludeHistory = true

	// DefaultNChangepoints is the automatic changepoint count.
	DefaultNChangepoints = 25

	// DefaultSeasonalityPriorScale / DefaultHolidaysPriorScale /
	// DefaultChangepointPriorScale are the usual prior strengths.
	DefaultSeasonalityPriorScale = 10.0
	DefaultHolidaysPriorScale    = 10.0
	DefaultChangepointPriorScale = 0.05

	// DefaultMCMCSamples of 0 keeps MAP estimation (no full Bayes).
	DefaultMCMCSamples = 0

	// DefaultIntervalWidth is the uncertainty interval mass.
	DefaultIntervalWidth = 0.80

	// DefaultUncertaintySamples of 0 skips posterior-predictive sampling.
	DefaultUncertaintySamples = 0
)

// DefaultMethod is optimal combination, the strategy that uses information
// from every level.
const DefaultMethod = MethodOptimalCombination

// Config is the full orchestration surface of one reconciliation run.
type Config struct {
	// Horizon is the number of step-ahead forecasts (>= 1).
	Horizon int

	// Method selects the reconciliation strategy, or MethodCVSelect to let
	// the cross-validated bake-off decide.
	Method Method

	// Frequency is the calendar frequency code, passed through.
	Frequency string

	// IncludeHistory asks the backend for fitted history rows.
	IncludeHistory bool

	// Params are the opaque per-series model hyperparameters.
	Params ModelParams
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Horizon:        DefaultHorizon,
		Method:         DefaultMethod,
		Frequency:      DefaultFrequency,
		IncludeHistory: DefaultIncludeHistory,
		Params: ModelParams{
			NChangepoints:         DefaultNChangepoints,
			YearlySeasonality:     SeasonalityAuto,
			WeeklySeasonality:     SeasonalityAuto,
			SeasonalityPriorScale: DefaultSeasonalityPriorScale,
			HolidaysPriorScale:    DefaultHolidaysPriorScale,
			ChangepointPriorScale: DefaultChangepointPriorScale,
			MCMCSamples:           DefaultMCMCSamples,
			IntervalWidth:         DefaultIntervalWidth,
			UncertaintySamples:    DefaultUncertaintySamples,
		},
	}
}
