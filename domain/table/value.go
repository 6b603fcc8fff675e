package table

import (
	"strconv"
	"time"
)

// Kind is the closed set of logical column kinds. A column's kind is
// assigned at ingestion; the profiling layer never infers kind from a
// storage-level tag.
type Kind string

const (
	KindNumeric     Kind = "numeric"
	KindText        Kind = "text"
	KindTemporal    Kind = "temporal"
	KindDuration    Kind = "duration"
	KindCategorical Kind = "categorical"
)

// Value represents a single typed cell with an explicit missing marker
type Value struct {
	Kind      Kind           `json:"kind"`
	NumberVal *float64       `json:"number_val,omitempty"`
	TextVal   *string        `json:"text_val,omitempty"`
	TimeVal   *time.Time     `json:"time_val,omitempty"`
	SpanVal   *time.Duration `json:"span_val,omitempty"`
	IsMissing bool           `json:"is_missing"`
}

// Number creates a numeric cell value
func Number(f float64) Value {
	return Value{Kind: KindNumeric, NumberVal: &f}
}

// Text creates a text cell value
func Text(s string) Value {
	return Value{Kind: KindText, TextVal: &s}
}

// Time creates a temporal cell value
func Time(t time.Time) Value {
	return Value{Kind: KindTemporal, TimeVal: &t}
}

// Span creates an elapsed-time cell value
func Span(d time.Duration) Value {
	return Value{Kind: KindDuration, SpanVal: &d}
}

// Missing creates a missing cell value
func Missing() Value {
	return Value{IsMissing: true}
}

// AsFloat64 returns the numeric value, or 0 if not numeric
func (v Value) AsFloat64() float64 {
	if v.NumberVal != nil {
		return *v.NumberVal
	}
	return 0
}

// AsText returns the text value, or empty string if not text
func (v Value) AsText() string {
	if v.TextVal != nil {
		return *v.TextVal
	}
	return ""
}

// Key returns a canonical string for the cell, stable across equal values.
// Distinct counting and row hashing both run on these keys, so each kind
// carries a prefix to keep "1" the text and 1 the number apart.
func (v Value) Key() string {
	if v.IsMissing {
		return "<missing>"
	}
	switch v.Kind {
	case KindNumeric:
		if v.NumberVal != nil {
			return "n:" + strconv.FormatFloat(*v.NumberVal, 'g', -1, 64)
		}
	case KindText, KindCategorical:
		if v.TextVal != nil {
			return "s:" + *v.TextVal
		}
	case KindTemporal:
		if v.TimeVal != nil {
			return "t:" + v.TimeVal.Format(time.RFC3339Nano)
		}
	case KindDuration:
		if v.SpanVal != nil {
			return "d:" + v.SpanVal.String()
		}
	}
	return "<invalid>"
}

// String returns a display representation of the value
func (v Value) String() string {
	if v.IsMissing {
		return ""
	}
	switch v.Kind {
	case KindNumeric:
		if v.NumberVal != nil {
			return strconv.FormatFloat(*v.NumberVal, 'g', -1, 64)
		}
	case KindText, KindCategorical:
		if v.TextVal != nil {
			return *v.TextVal
		}
	case KindTemporal:
		if v.TimeVal != nil {
			return v.TimeVal.Format(time.RFC3339)
		}
	case KindDuration:
		if v.SpanVal != nil {
			return v.SpanVal.String()
		}
	}
	return ""
}
