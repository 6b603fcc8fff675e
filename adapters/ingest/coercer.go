package ingest

import (
	"strconv"
	"strings"
	"time"

	"cleantab/domain/table"
)

// CoercionConfig defines the thresholds for electing a column kind
type CoercionConfig struct {
	// NumericThreshold is the share of non-missing cells that must parse
	// as numbers for the column to become numeric.
	NumericThreshold float64

	// DurationThreshold is the share that must parse as elapsed time.
	DurationThreshold float64

	// TimestampThreshold is the share that must parse as timestamps.
	TimestampThreshold float64
}

// DefaultCoercionConfig returns sensible defaults
func DefaultCoercionConfig() CoercionConfig {
	return CoercionConfig{
		NumericThreshold:   0.8,
		DurationThreshold:  0.8,
		TimestampThreshold: 0.8,
	}
}

// ColumnCoercer elects a logical kind per raw column and converts its cells
// deterministically. The profiling layer never sees raw strings; kinds are
// fixed here at ingestion.
type ColumnCoercer struct {
	config CoercionConfig
}

// NewColumnCoercer creates a coercer with the given config
func NewColumnCoercer(config CoercionConfig) *ColumnCoercer {
	return &ColumnCoercer{config: config}
}

// CoerceColumn converts one raw column into a typed column. Kind election
// checks the most restrictive parse first: numeric, then duration, then
// timestamp, falling back to text. Cells that fail the elected parse
// become missing.
func (c *ColumnCoercer) CoerceColumn(name string, raw []string) table.Column {
	numeric, duration, timestamp, valid := 0, 0, 0, 0
	for _, s := range raw {
		if isMissingToken(s) {
			continue
		}
		valid++
		if _, ok := parseNumeric(s); ok {
			numeric++
		}
		if _, ok := parseDuration(s); ok {
			duration++
		}
		if _, ok := parseTimestamp(s); ok {
			timestamp++
		}
	}

	kind := table.KindText
	if valid > 0 {
		switch {
		case ratio(numeric, valid) >= c.config.NumericThreshold:
			kind = table.KindNumeric
		case ratio(duration, valid) >= c.config.DurationThreshold:
			kind = table.KindDuration
		case ratio(timestamp, valid) >= c.config.TimestampThreshold:
			kind = table.KindTemporal
		}
	}

	values := make([]table.Value, len(raw))
	for i, s := range raw {
		values[i] = c.coerceCell(kind, s)
	}
	return table.Column{Name: name, Kind: kind, Values: values}
}

func (c *ColumnCoercer) coerceCell(kind table.Kind, s string) table.Value {
	if isMissingToken(s) {
		return table.Missing()
	}
	switch kind {
	case table.KindNumeric:
		if f, ok := parseNumeric(s); ok {
			return table.Number(f)
		}
	case table.KindDuration:
		if d, ok := parseDuration(s); ok {
			return table.Span(d)
		}
	case table.KindTemporal:
		if t, ok := parseTimestamp(s); ok {
			return table.Time(t)
		}
	default:
		return table.Text(strings.TrimSpace(s))
	}
	return table.Missing()
}

// missingTokens are the raw spellings treated as the missing marker
var missingTokens = map[string]struct{}{
	"":     {},
	"na":   {},
	"n/a":  {},
	"nan":  {},
	"null": {},
	"none": {},
}

func isMissingToken(s string) bool {
	_, ok := missingTokens[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

func parseNumeric(s string) (float64, bool) {
	clean := strings.TrimSpace(s)
	// Thousands separators are common in exported spreadsheets.
	clean = strings.ReplaceAll(clean, ",", "")
	f, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func parseDuration(s string) (time.Duration, bool) {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return d, true
}

// timestampFormats are tried in order
var timestampFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"2006/01/02",
	"02-Jan-2006",
}

func parseTimestamp(s string) (time.Time, bool) {
	clean := strings.TrimSpace(s)
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, clean); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func ratio(n, total int) float64 {
	return float64(n) / float64(total)
}
