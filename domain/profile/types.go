package profile

import (
	"fmt"
	"sort"
	"strings"

	"cleantab/domain/core"
	"cleantab/domain/table"
)

// ColumnRole is the derived role of a column after classification
type ColumnRole string

const (
	RoleConstant             ColumnRole = "constant"
	RoleNumeric              ColumnRole = "numeric"
	RoleCategoricalCandidate ColumnRole = "categorical_candidate"
	RolePlain                ColumnRole = "plain"
)

// Classification partitions the table's columns by role. Constant columns
// are removed from the working set before any other rule runs; everything
// in Used keeps contributing to missing-value and duplicate analysis.
type Classification struct {
	Constant   []string            `json:"constant"`
	Numeric    []string            `json:"numeric"`
	Candidates map[string][]string `json:"candidates"` // column -> sorted unique values
	Used       []string            `json:"used"`       // non-constant columns in table order
}

// Role returns the derived role of the named column
func (c Classification) Role(name string) ColumnRole {
	for _, n := range c.Constant {
		if n == name {
			return RoleConstant
		}
	}
	if _, ok := c.Candidates[name]; ok {
		return RoleCategoricalCandidate
	}
	for _, n := range c.Numeric {
		if n == name {
			return RoleNumeric
		}
	}
	return RolePlain
}

// OutlierStats holds IQR-fence outlier counts for one numeric column.
// Percentage is taken over the full column length, missing cells included.
type OutlierStats struct {
	Lower      int     `json:"lower"`
	Upper      int     `json:"upper"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// MissingStats holds missing-cell counts for one column
type MissingStats struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Snapshot is the full derived state of one refresh. A refresh replaces the
// previous snapshot wholesale; nothing here is patched incrementally.
type Snapshot struct {
	ComputedAt core.Timestamp `json:"computed_at"`
	Rows       int            `json:"rows"`

	Classification Classification               `json:"classification"`
	Suggestions    map[string]table.NumericType `json:"suggestions"`
	Outliers       map[string]OutlierStats      `json:"outliers"`
	Missing        map[string]MissingStats      `json:"missing"`
	Duplicates     []int64                      `json:"duplicates"`
}

// OutliersByCount returns outlier column names ordered by total outlier
// count descending, ties broken by name.
func (s Snapshot) OutliersByCount() []string {
	names := make([]string, 0, len(s.Outliers))
	for name := range s.Outliers {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := s.Outliers[names[i]], s.Outliers[names[j]]
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		return names[i] < names[j]
	})
	return names
}

// MissingByCount returns missing column names ordered by missing count
// descending, ties broken by name.
func (s Snapshot) MissingByCount() []string {
	names := make([]string, 0, len(s.Missing))
	for name := range s.Missing {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := s.Missing[names[i]], s.Missing[names[j]]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return names[i] < names[j]
	})
	return names
}

// OptimizeResult reports what an optimize pass changed
type OptimizeResult struct {
	Casts   map[string]table.NumericType `json:"casts"`   // applied storage casts
	Tagged  []string                     `json:"tagged"`  // columns tagged categorical
	Blocked []string                     `json:"blocked"` // casts skipped due to missing values
}

// Warning returns the non-fatal signal for casts blocked by missing values,
// or nil when nothing was skipped.
func (r OptimizeResult) Warning() *MissingValuesWarning {
	if len(r.Blocked) == 0 {
		return nil
	}
	return &MissingValuesWarning{Columns: r.Blocked}
}

// MissingValuesWarning reports numeric columns whose suggested cast was
// skipped because they still contain missing values. Optimize proceeds for
// the unaffected columns; the skipped suggestions stay pending.
type MissingValuesWarning struct {
	Columns []string
}

func (w *MissingValuesWarning) Error() string {
	return fmt.Sprintf("columns [%s] contain missing values and will not be optimized",
		strings.Join(w.Columns, ", "))
}
