package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hts/reconcile"
)

// TestLoadRunConfig_Defaults verifies an empty path yields the documented
// defaults.
func TestLoadRunConfig_Defaults(t *testing.T) {
	cfg, err := loadRunConfig("")
	require.NoError(t, err)
	assert.Equal(t, reconcile.DefaultHorizon, cfg.Horizon)
	assert.Equal(t, reconcile.DefaultMethod.String(), cfg.Method)
	assert.Equal(t, 1, cfg.SeasonLength)
	assert.False(t, cfg.DropSparse)
}

// TestLoadRunConfig_File verifies YAML fields land and missing ones keep
// their defaults.
func TestLoadRunConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"horizon: 4\nmethod: BU\nweekly: true\nseason_length: 7\n"), 0o644))

	cfg, err := loadRunConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Horizon)
	assert.True(t, cfg.Weekly)
	assert.Equal(t, 7, cfg.SeasonLength)
	assert.Equal(t, reconcile.DefaultFrequency, cfg.Frequency)

	rcfg, err := cfg.reconcileConfig()
	require.NoError(t, err)
	assert.Equal(t, reconcile.MethodBottomUp, rcfg.Method)
	assert.Equal(t, 4, rcfg.Horizon)
}

// TestLoadRunConfig_BadMethod verifies an unknown method surfaces when the
// config is mapped, not silently defaulted.
func TestLoadRunConfig_BadMethod(t *testing.T) {
	cfg := defaultRunConfig()
	cfg.Method = "middle-out"
	_, err := cfg.reconcileConfig()
	assert.ErrorIs(t, err, reconcile.ErrUnknownMethod)
}

// TestReadRows_LongFormat verifies header handling, tag extraction, and
// time parsing across the supported layouts.
func TestReadRows_LongFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(
		"date,channel,platform,sessions\n"+
			"2017-06-01,web,ios,10\n"+
			"2017-06-02 00:00:00,app,android,5.5\n"), 0o644))

	rows, tags, err := readRows(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"channel", "platform"}, tags)
	require.Len(t, rows, 2)
	assert.Equal(t, time.Date(2017, time.June, 1, 0, 0, 0, 0, time.UTC), rows[0].Time)
	assert.Equal(t, []string{"web", "ios"}, rows[0].Tags)
	assert.Equal(t, 5.5, rows[1].Value)

	assert.Equal(t, []int{1, 2}, defaultLevels(len(tags)))
}

// TestReadRows_Malformed verifies field-count and value errors carry the
// line number.
func TestReadRows_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte(
		"date,channel,sessions\n2017-06-01,web,not-a-number\n"), 0o644))

	_, _, err := readRows(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}
