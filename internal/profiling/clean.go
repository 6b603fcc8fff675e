package profiling

import (
	"cleantab/domain/core"
	"cleantab/domain/profile"
	"cleantab/domain/table"
	"cleantab/internal/classify"
)

// DropOptions tunes a destructive drop pass inside Clean.
type DropOptions struct {
	// Preserve requests a non-destructive drop. Clean always mutates the
	// profiled table, so setting it fails with InvalidArgument.
	Preserve bool
}

// CleanOptions configures Clean. Zero value is not useful; start from
// DefaultCleanOptions.
type CleanOptions struct {
	// MinMissingRatio is the smallest missing-value ratio at which a column
	// is dropped. Must be in [0, 1].
	MinMissingRatio float64

	// DropMissingRows drops every row still containing a missing value
	// after the column and duplicate passes.
	DropMissingRows bool

	Drop           DropOptions
	DropDuplicates DropOptions
}

// DefaultCleanOptions returns the standard cleaning configuration
func DefaultCleanOptions() CleanOptions {
	return CleanOptions{
		MinMissingRatio: 0.05,
		DropMissingRows: true,
	}
}

// Clean drops columns whose missing percentage reaches the threshold, then
// drops duplicate rows (keeping the first occurrence of each group), then
// optionally drops every row that still contains a missing value. The pass
// runs on a working copy and swaps it in whole, so a failing call leaves
// the table exactly as it was.
func (p *TableProfile) Clean(opts CleanOptions) error {
	if opts.MinMissingRatio < 0 || opts.MinMissingRatio > 1 {
		return core.NewInvalidArgument(
			"min missing ratio must be between 0 and 1, got %v", opts.MinMissingRatio)
	}
	if opts.Drop.Preserve || opts.DropDuplicates.Preserve {
		return core.NewInvalidArgument(
			"clean is unconditionally destructive; the preserve flag is forbidden")
	}

	work := p.tbl.Clone()

	var dropCols []string
	for _, name := range p.snap.MissingByCount() {
		if p.snap.Missing[name].Percentage >= 100*opts.MinMissingRatio {
			dropCols = append(dropCols, name)
		}
	}
	if len(dropCols) > 0 {
		if err := work.DropColumns(dropCols...); err != nil {
			return err
		}
	}

	// Duplicate identity is judged over the columns that survive the drop.
	work.DropRows(classify.DuplicateSurplus(work)...)

	if opts.DropMissingRows {
		work.DropRows(rowsWithMissing(work)...)
	}

	p.tbl = work
	return p.Refresh()
}

// Optimize casts every column with a pending storage suggestion, skipping
// columns still holding missing values, and tags every categorical
// candidate. The skipped casts are reported through the result's warning
// and stay pending for a later pass. Like Clean, it works on a copy and
// swaps atomically.
func (p *TableProfile) Optimize() (profile.OptimizeResult, error) {
	res := profile.OptimizeResult{
		Casts: make(map[string]table.NumericType),
	}

	work := p.tbl.Clone()

	for _, name := range sortedKeys(p.snap.Suggestions) {
		if p.snap.Missing[name].Count > 0 {
			res.Blocked = append(res.Blocked, name)
			continue
		}
		target := p.snap.Suggestions[name]
		if err := work.CastNumeric(name, target); err != nil {
			return profile.OptimizeResult{}, err
		}
		res.Casts[name] = target
	}

	for _, name := range sortedKeys(p.snap.Classification.Candidates) {
		if err := work.TagCategorical(name); err != nil {
			return profile.OptimizeResult{}, err
		}
		res.Tagged = append(res.Tagged, name)
	}

	p.tbl = work
	if err := p.Refresh(); err != nil {
		return profile.OptimizeResult{}, err
	}
	return res, nil
}

func rowsWithMissing(t *table.Table) []int64 {
	var ids []int64
	ridList := t.RowIDs()
	for pos, id := range ridList {
		for _, v := range t.Row(pos) {
			if v.IsMissing {
				ids = append(ids, id)
				break
			}
		}
	}
	return ids
}
