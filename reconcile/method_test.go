package reconcile_test

import (
	"testing"

	"github.com/katalvlaran/hts/reconcile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseMethod_CanonicalAndMnemonic verifies both naming surfaces
// resolve to the same constants.
func TestParseMethod_CanonicalAndMnemonic(t *testing.T) {
	cases := []struct {
		in   string
		want reconcile.Method
	}{
		{"bottom-up", reconcile.MethodBottomUp},
		{"BU", reconcile.MethodBottomUp},
		{"top-down-forecast-proportions", reconcile.MethodTopDownForecastProp},
		{"FP", reconcile.MethodTopDownForecastProp},
		{"PHA", reconcile.MethodTopDownHistAvgProp},
		{"AHP", reconcile.MethodTopDownAvgHistProp},
		{"optimal-combination", reconcile.MethodOptimalCombination},
		{"OC", reconcile.MethodOptimalCombination},
		{"cross-validated-select", reconcile.MethodCVSelect},
		{"CVselect", reconcile.MethodCVSelect},
		{"cvSelect", reconcile.MethodCVSelect},
	}
	for _, c := range cases {
		got, err := reconcile.ParseMethod(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

// TestParseMethod_Unknown verifies rejection of anything outside the closed set.
func TestParseMethod_Unknown(t *testing.T) {
	_, err := reconcile.ParseMethod("middle-out")
	assert.ErrorIs(t, err, reconcile.ErrUnknownMethod)

	_, err = reconcile.ParseMethod("")
	assert.ErrorIs(t, err, reconcile.ErrUnknownMethod)
}

// TestMethod_String verifies round-tripping through the canonical names.
func TestMethod_String(t *testing.T) {
	for _, m := range []reconcile.Method{
		reconcile.MethodBottomUp,
		reconcile.MethodTopDownForecastProp,
		reconcile.MethodTopDownHistAvgProp,
		reconcile.MethodTopDownAvgHistProp,
		reconcile.MethodOptimalCombination,
		reconcile.MethodCVSelect,
	} {
		back, err := reconcile.ParseMethod(m.String())
		require.NoError(t, err, m.String())
		assert.Equal(t, m, back)
	}

	assert.Equal(t, "method(99)", reconcile.Method(99).String())
}
