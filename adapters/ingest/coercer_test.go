package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleantab/domain/table"
)

func TestCoerceColumnElectsNumeric(t *testing.T) {
	c := NewColumnCoercer(DefaultCoercionConfig())

	col := c.CoerceColumn("amount", []string{"1", "2.5", "1,000", "42"})

	require.Equal(t, table.KindNumeric, col.Kind)
	assert.Equal(t, 1.0, col.Values[0].AsFloat64())
	assert.Equal(t, 2.5, col.Values[1].AsFloat64())
	assert.Equal(t, 1000.0, col.Values[2].AsFloat64(), "thousands separator should be stripped")
	assert.Equal(t, 42.0, col.Values[3].AsFloat64())
}

func TestCoerceColumnMissingTokens(t *testing.T) {
	c := NewColumnCoercer(DefaultCoercionConfig())

	col := c.CoerceColumn("amount", []string{"NA", "", " null ", "N/A", "7"})

	require.Equal(t, table.KindNumeric, col.Kind, "election should ignore missing tokens")
	for i := 0; i < 4; i++ {
		assert.True(t, col.Values[i].IsMissing, "cell %d should be missing", i)
	}
	assert.Equal(t, 7.0, col.Values[4].AsFloat64())
}

func TestCoerceColumnFallsBackToText(t *testing.T) {
	c := NewColumnCoercer(DefaultCoercionConfig())

	col := c.CoerceColumn("note", []string{"alpha", "beta", "3"})

	require.Equal(t, table.KindText, col.Kind)
	assert.Equal(t, "alpha", col.Values[0].AsText())
	assert.Equal(t, "3", col.Values[2].AsText(), "minority numeric cell stays text")
}

func TestCoerceColumnElectsDuration(t *testing.T) {
	c := NewColumnCoercer(DefaultCoercionConfig())

	col := c.CoerceColumn("elapsed", []string{"1h", "30m", "2h45m"})

	require.Equal(t, table.KindDuration, col.Kind)
	assert.Equal(t, time.Hour, *col.Values[0].SpanVal)
	assert.Equal(t, 30*time.Minute, *col.Values[1].SpanVal)
}

func TestCoerceColumnElectsTimestamp(t *testing.T) {
	c := NewColumnCoercer(DefaultCoercionConfig())

	col := c.CoerceColumn("day", []string{"2024-01-02", "2024-03-04", "2024-12-31"})

	require.Equal(t, table.KindTemporal, col.Kind)
	want := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.True(t, col.Values[0].TimeVal.Equal(want))
}

func TestCoerceColumnFailedParseBecomesMissing(t *testing.T) {
	c := NewColumnCoercer(DefaultCoercionConfig())

	// Four of five non-missing cells parse, exactly at the 0.8 threshold.
	col := c.CoerceColumn("amount", []string{"1", "2", "3", "4", "x"})

	require.Equal(t, table.KindNumeric, col.Kind)
	assert.True(t, col.Values[4].IsMissing, "unparseable cell in a numeric column should be missing")
}
