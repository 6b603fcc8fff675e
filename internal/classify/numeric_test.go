package classify

import (
	"math"
	"testing"

	"cleantab/domain/core"
	"cleantab/domain/table"
)

func TestSuggestType(t *testing.T) {
	cases := []struct {
		name    string
		values  []float64
		current table.NumericType
		want    table.NumericType
	}{
		{"small non-negative ints", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 100}, table.TypeFloat64, table.TypeUint8},
		{"non-negative beyond uint8", []float64{0, 256}, table.TypeFloat64, table.TypeUint16},
		{"small signed ints", []float64{-1, 100}, table.TypeFloat64, table.TypeInt8},
		{"low end forces the wider width", []float64{-300, 5}, table.TypeFloat64, table.TypeInt16},
		{"high end forces the wider width", []float64{-5, 300}, table.TypeFloat64, table.TypeInt16},
		{"small fractions", []float64{1.5, 2.25}, table.TypeFloat64, table.TypeFloat16},
		{"fractions beyond half precision", []float64{1.5, 70000.5}, table.TypeFloat64, table.TypeFloat32},
		{"fractions beyond single precision", []float64{1.5, 1e39}, table.TypeFloat16, table.TypeFloat64},
		{"whole numbers beyond uint64 fall back to floats", []float64{0, 1e20}, table.TypeFloat64, table.TypeFloat32},
		{"already at the narrowest width", []float64{1, 2, 3}, table.TypeUint8, table.TypeNone},
		{"missing cells are ignored", []float64{math.NaN(), 7, math.NaN()}, table.TypeFloat64, table.TypeUint8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SuggestType(tc.values, tc.current)
			if err != nil {
				t.Fatalf("SuggestType: %v", err)
			}
			if got != tc.want {
				t.Errorf("SuggestType = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestSuggestTypeTieBreakIsAsymmetric(t *testing.T) {
	// The two endpoints pick their first satisfying width independently and
	// the wider of the two wins. Here max 200 needs int16 while min -5 is
	// happy at int8; a single combined search would give the same answer,
	// but -200 and 5 must also land on int16, not int8.
	got, err := SuggestType([]float64{-200, 5}, table.TypeFloat64)
	if err != nil {
		t.Fatalf("SuggestType: %v", err)
	}
	if got != table.TypeInt16 {
		t.Errorf("SuggestType = %s, want int16", got)
	}
}

func TestSuggestTypeRejectsUnusableSequences(t *testing.T) {
	cases := []struct {
		name   string
		values []float64
	}{
		{"empty", nil},
		{"all missing", []float64{math.NaN(), math.NaN()}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := SuggestType(tc.values, table.TypeFloat64); !core.IsInvalidInput(err) {
				t.Fatalf("expected InvalidInput, got %v", err)
			}
		})
	}
}
