package reconcile

import "fmt"

// Method is the closed enumeration of reconciliation strategies. Keeping it
// a tagged constant (rather than free-form strings) lets dispatch be
// exhaustive and lets the compiler catch a missing case.
type Method int

const (
	// MethodBottomUp forecasts the leaves and sums them upward.
	MethodBottomUp Method = iota

	// MethodTopDownForecastProp distributes the total forecast downward by
	// forecast proportions (Hyndman's FP).
	MethodTopDownForecastProp

	// MethodTopDownHistAvgProp distributes by proportions of historical
	// averages (PHA).
	MethodTopDownHistAvgProp

	// MethodTopDownAvgHistProp distributes by average historical
	// proportions (AHP).
	MethodTopDownAvgHistProp

	// MethodOptimalCombination reconciles all levels jointly via the
	// least-squares combination of every node's forecast (OC).
	MethodOptimalCombination

	// MethodCVSelect picks among the five methods above by 3-fold
	// forward-chaining cross-validation scored with MASE.
	MethodCVSelect
)

// candidateMethods is the fixed bake-off order for MethodCVSelect. The
// order doubles as the tie-break priority: on equal average MASE the
// earlier method wins.
var candidateMethods = [...]Method{
	MethodBottomUp,
	MethodTopDownForecastProp,
	MethodTopDownHistAvgProp,
	MethodTopDownAvgHistProp,
	MethodOptimalCombination,
}

// methodNames maps each method to its canonical name.
var methodNames = map[Method]string{
	MethodBottomUp:            "bottom-up",
	MethodTopDownForecastProp: "top-down-forecast-proportions",
	MethodTopDownHistAvgProp:  "top-down-historical-average-proportions",
	MethodTopDownAvgHistProp:  "top-down-average-historical-proportions",
	MethodOptimalCombination:  "optimal-combination",
	MethodCVSelect:            "cross-validated-select",
}

// String returns the canonical method name.
func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}

	return fmt.Sprintf("method(%d)", int(m))
}

// valid reports whether m is inside the closed enumeration.
func (m Method) valid() bool {
	_, ok := methodNames[m]

	return ok
}

// ParseMethod resolves a method from its canonical name or its classic
// mnemonic (BU, FP, PHA, AHP, OC, CVselect). Matching is exact and
// case-sensitive for canonical names; mnemonics additionally accept the
// historical "cvSelect" spelling. Returns ErrUnknownMethod otherwise.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "bottom-up", "BU":
		return MethodBottomUp, nil
	case "top-down-forecast-proportions", "FP":
		return MethodTopDownForecastProp, nil
	case "top-down-historical-average-proportions", "PHA":
		return MethodTopDownHistAvgProp, nil
	case "top-down-average-historical-proportions", "AHP":
		return MethodTopDownAvgHistProp, nil
	case "optimal-combination", "OC":
		return MethodOptimalCombination, nil
	case "cross-validated-select", "CVselect", "cvSelect":
		return MethodCVSelect, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
}
