package classify

import (
	"cleantab/domain/core"
	"cleantab/domain/profile"
	"cleantab/domain/table"
)

// Classifier partitions a table's columns into constant, numeric,
// categorical-candidate and plain roles.
type Classifier struct {
	// MaxCategories is the largest distinct-value count a text column may
	// have and still be suggested for categorical storage.
	MaxCategories int
}

// Classify runs the role rules in order, each narrowing the working column
// set for the next:
//
//  1. constant columns (at most one distinct non-missing value) leave the
//     working set entirely,
//  2. columns already tagged categorical stay as-is,
//  3. low-cardinality text columns become categorical candidates,
//  4. numeric-kind columns become numeric (duration is numeric-like but
//     excluded),
//  5. the rest is plain.
//
// Iteration follows the table's column order.
func (c Classifier) Classify(t *table.Table) (profile.Classification, error) {
	if c.MaxCategories < 0 {
		return profile.Classification{}, core.NewInvalidArgument(
			"max categories must be a non-negative integer, got %d", c.MaxCategories)
	}

	out := profile.Classification{
		Candidates: make(map[string][]string),
	}
	cols := t.Columns()
	for i := range cols {
		col := &cols[i]
		if col.DistinctNonMissing() <= 1 {
			out.Constant = append(out.Constant, col.Name)
			continue
		}
		out.Used = append(out.Used, col.Name)

		switch col.Kind {
		case table.KindCategorical:
			// Already tagged; not re-detected.
		case table.KindText:
			if col.DistinctNonMissing() <= c.MaxCategories {
				out.Candidates[col.Name] = col.UniqueTexts()
			}
		case table.KindNumeric:
			out.Numeric = append(out.Numeric, col.Name)
		}
	}
	return out, nil
}
