package profiling

import (
	"math"
	"sort"

	"cleantab/domain/core"
	"cleantab/domain/profile"
	"cleantab/domain/table"
	"cleantab/internal/classify"
)

// DefaultMaxCategories is the default categorical-arity threshold
const DefaultMaxCategories = 10

// TableProfile owns one table and the derived statistics over it. Every
// structural change goes through Refresh, which rebuilds the snapshot
// wholesale; derived state is never patched in place. The profile is meant
// for single-caller batch use and does no locking.
type TableProfile struct {
	tbl           *table.Table
	maxCategories int
	snap          profile.Snapshot
}

// New builds a profile over the given table and runs the first refresh
func New(tbl *table.Table, maxCategories int) (*TableProfile, error) {
	p := &TableProfile{}
	if err := p.setState(tbl, maxCategories); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *TableProfile) setState(tbl *table.Table, maxCategories int) error {
	if tbl == nil {
		return core.NewInvalidArgument("table must not be nil")
	}
	if maxCategories < 0 {
		return core.NewInvalidArgument(
			"max categories must be a non-negative integer, got %d", maxCategories)
	}
	p.tbl = tbl
	p.maxCategories = maxCategories
	return p.Refresh()
}

// Table returns the profiled table
func (p *TableProfile) Table() *table.Table {
	return p.tbl
}

// MaxCategories returns the categorical-arity threshold
func (p *TableProfile) MaxCategories() int {
	return p.maxCategories
}

// SetTable replaces the table and refreshes the derived state
func (p *TableProfile) SetTable(tbl *table.Table) error {
	return p.setState(tbl, p.maxCategories)
}

// SetMaxCategories replaces the threshold and refreshes the derived state
func (p *TableProfile) SetMaxCategories(n int) error {
	return p.setState(p.tbl, n)
}

// Refresh rebuilds the snapshot from the current table: classification,
// then per-numeric-column storage suggestions and outlier stats, then
// duplicate rows, then missing-value stats. It reads the table without
// touching it, and running it twice in a row yields identical results.
func (p *TableProfile) Refresh() error {
	cls, err := classify.Classifier{MaxCategories: p.maxCategories}.Classify(p.tbl)
	if err != nil {
		return err
	}

	snap := profile.Snapshot{
		ComputedAt:     core.Now(),
		Rows:           p.tbl.NumRows(),
		Classification: cls,
		Suggestions:    make(map[string]table.NumericType),
		Outliers:       make(map[string]profile.OutlierStats),
		Missing:        make(map[string]profile.MissingStats),
	}

	for _, name := range cls.Numeric {
		col, err := p.tbl.Column(name)
		if err != nil {
			return err
		}
		values := col.Float64s()

		target, err := classify.SuggestType(values, col.Storage)
		if err != nil {
			return err
		}
		if target != table.TypeNone {
			snap.Suggestions[name] = target
		}

		st, ok, err := classify.DetectOutliers(values)
		if err != nil {
			return err
		}
		if ok {
			snap.Outliers[name] = st
		}
	}

	snap.Duplicates = classify.FindDuplicates(p.tbl)

	rows := p.tbl.NumRows()
	for _, name := range cls.Used {
		col, err := p.tbl.Column(name)
		if err != nil {
			return err
		}
		if n := col.MissingCount(); n > 0 {
			snap.Missing[name] = profile.MissingStats{
				Count:      n,
				Percentage: round2(float64(n) * 100 / float64(rows)),
			}
		}
	}

	p.snap = snap
	return nil
}

// Snapshot returns the latest derived state. Callers must treat the maps
// and slices inside as read-only.
func (p *TableProfile) Snapshot() profile.Snapshot {
	return p.snap
}

// Derived accessors over the latest snapshot.

func (p *TableProfile) ConstantCols() []string { return p.snap.Classification.Constant }

func (p *TableProfile) NumericCols() []string { return p.snap.Classification.Numeric }

func (p *TableProfile) CatCols() map[string][]string { return p.snap.Classification.Candidates }

func (p *TableProfile) ColsToOptimize() map[string]table.NumericType { return p.snap.Suggestions }

func (p *TableProfile) Outliers() map[string]profile.OutlierStats { return p.snap.Outliers }

func (p *TableProfile) MissingCols() map[string]profile.MissingStats { return p.snap.Missing }

func (p *TableProfile) DuplicateIDs() []int64 { return p.snap.Duplicates }

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
