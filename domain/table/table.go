package table

import (
	"math"
	"sort"

	"cleantab/domain/core"
)

// Column is one named, homogeneously typed sequence of cells
type Column struct {
	Name    string      `json:"name"`
	Kind    Kind        `json:"kind"`
	Storage NumericType `json:"storage,omitempty"` // numeric columns only
	Values  []Value     `json:"values"`
}

// MissingCount returns the number of missing cells
func (c *Column) MissingCount() int {
	n := 0
	for _, v := range c.Values {
		if v.IsMissing {
			n++
		}
	}
	return n
}

// DistinctNonMissing returns the number of distinct non-missing values
func (c *Column) DistinctNonMissing() int {
	seen := make(map[string]struct{})
	for _, v := range c.Values {
		if !v.IsMissing {
			seen[v.Key()] = struct{}{}
		}
	}
	return len(seen)
}

// UniqueTexts returns the sorted distinct non-missing text values
func (c *Column) UniqueTexts() []string {
	seen := make(map[string]struct{})
	for _, v := range c.Values {
		if !v.IsMissing && v.TextVal != nil {
			seen[*v.TextVal] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Float64s returns the cells of a numeric column as a float64 sequence,
// with NaN marking missing cells.
func (c *Column) Float64s() []float64 {
	out := make([]float64, len(c.Values))
	for i, v := range c.Values {
		if v.IsMissing || v.NumberVal == nil {
			out[i] = math.NaN()
		} else {
			out[i] = *v.NumberVal
		}
	}
	return out
}

// integral reports whether every non-missing cell is a whole number
func (c *Column) integral() bool {
	for _, v := range c.Values {
		if v.IsMissing || v.NumberVal == nil {
			continue
		}
		if math.Mod(*v.NumberVal, 1) != 0 {
			return false
		}
	}
	return true
}

// Table is an ordered collection of equally sized named columns. Rows carry
// a stable identifier that survives row drops, so duplicate reports stay
// meaningful across mutation.
type Table struct {
	cols   []Column
	rowIDs []int64
}

// New validates the column set and builds a table. Row identifiers are
// assigned by position.
func New(cols ...Column) (*Table, error) {
	rows := 0
	if len(cols) > 0 {
		rows = len(cols[0].Values)
	}
	seen := make(map[string]struct{}, len(cols))
	for i := range cols {
		col := &cols[i]
		if col.Name == "" {
			return nil, core.NewInvalidArgument("column %d has no name", i)
		}
		if _, dup := seen[col.Name]; dup {
			return nil, core.NewInvalidArgument("duplicate column name %q", col.Name)
		}
		seen[col.Name] = struct{}{}
		if len(col.Values) != rows {
			return nil, core.NewInvalidArgument(
				"column %q has %d values, want %d", col.Name, len(col.Values), rows)
		}
		if err := validateColumn(col); err != nil {
			return nil, err
		}
	}
	ids := make([]int64, rows)
	for i := range ids {
		ids[i] = int64(i)
	}
	return &Table{cols: cols, rowIDs: ids}, nil
}

func validateColumn(col *Column) error {
	switch col.Kind {
	case KindNumeric, KindText, KindTemporal, KindDuration, KindCategorical:
	default:
		return core.NewInvalidArgument("column %q has unknown kind %q", col.Name, col.Kind)
	}
	for i, v := range col.Values {
		if v.IsMissing {
			continue
		}
		ok := v.Kind == col.Kind ||
			(col.Kind == KindCategorical && v.Kind == KindText)
		if !ok {
			return core.NewInvalidArgument(
				"column %q cell %d has kind %q, want %q", col.Name, i, v.Kind, col.Kind)
		}
	}
	if col.Kind != KindNumeric {
		if col.Storage != TypeNone {
			return core.NewInvalidArgument(
				"column %q is %s and cannot carry storage type %s", col.Name, col.Kind, col.Storage)
		}
		return nil
	}
	if col.Storage == TypeNone {
		// Default storage follows the data: whole numbers with no gaps
		// store as int64, anything else as float64.
		if col.integral() && col.MissingCount() == 0 {
			col.Storage = TypeInt64
		} else {
			col.Storage = TypeFloat64
		}
		return nil
	}
	if !col.Storage.Valid() {
		return core.NewInvalidArgument("column %q has unknown storage type %q", col.Name, col.Storage)
	}
	return checkStorageFits(col, col.Storage)
}

func checkStorageFits(col *Column, target NumericType) error {
	if target.Integer() {
		if col.MissingCount() > 0 {
			return core.NewInvalidArgument(
				"column %q has missing values and cannot store %s", col.Name, target)
		}
		if !col.integral() {
			return core.NewInvalidArgument(
				"column %q has fractional values and cannot store %s", col.Name, target)
		}
	}
	min, max := target.Bounds()
	for _, v := range col.Values {
		if v.IsMissing || v.NumberVal == nil {
			continue
		}
		if *v.NumberVal < min || *v.NumberVal > max {
			return core.NewInvalidArgument(
				"column %q value %v is outside the %s range", col.Name, *v.NumberVal, target)
		}
	}
	return nil
}

// NumRows returns the row count
func (t *Table) NumRows() int {
	return len(t.rowIDs)
}

// NumCols returns the column count
func (t *Table) NumCols() int {
	return len(t.cols)
}

// ColumnNames returns column names in table order
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// Columns exposes the columns in table order. Callers must treat the
// returned slice as read-only.
func (t *Table) Columns() []Column {
	return t.cols
}

// Column returns the named column
func (t *Table) Column(name string) (*Column, error) {
	for i := range t.cols {
		if t.cols[i].Name == name {
			return &t.cols[i], nil
		}
	}
	return nil, core.NewColumnNotFound(name)
}

// RowIDs returns the stable row identifiers in row order
func (t *Table) RowIDs() []int64 {
	return t.rowIDs
}

// Row returns the cells at the given position in column order
func (t *Table) Row(pos int) []Value {
	row := make([]Value, len(t.cols))
	for i := range t.cols {
		row[i] = t.cols[i].Values[pos]
	}
	return row
}

// RowByID returns the row with the given stable identifier
func (t *Table) RowByID(id int64) ([]Value, bool) {
	for pos, rid := range t.rowIDs {
		if rid == id {
			return t.Row(pos), true
		}
	}
	return nil, false
}

// RowKeys returns the canonical cell keys at the given position, used for
// row identity hashing.
func (t *Table) RowKeys(pos int) []string {
	keys := make([]string, len(t.cols))
	for i := range t.cols {
		keys[i] = t.cols[i].Values[pos].Key()
	}
	return keys
}

// Clone returns a deep copy sharing no mutable state with the original
func (t *Table) Clone() *Table {
	cols := make([]Column, len(t.cols))
	for i, c := range t.cols {
		values := make([]Value, len(c.Values))
		copy(values, c.Values)
		cols[i] = Column{Name: c.Name, Kind: c.Kind, Storage: c.Storage, Values: values}
	}
	ids := make([]int64, len(t.rowIDs))
	copy(ids, t.rowIDs)
	return &Table{cols: cols, rowIDs: ids}
}

// DropColumns removes the named columns, preserving the order of the rest
func (t *Table) DropColumns(names ...string) error {
	drop := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, err := t.Column(n); err != nil {
			return err
		}
		drop[n] = struct{}{}
	}
	kept := t.cols[:0]
	for _, c := range t.cols {
		if _, gone := drop[c.Name]; !gone {
			kept = append(kept, c)
		}
	}
	t.cols = kept
	return nil
}

// DropRows removes the rows with the given stable identifiers
func (t *Table) DropRows(ids ...int64) {
	if len(ids) == 0 {
		return
	}
	drop := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	keptIDs := t.rowIDs[:0]
	keep := make([]int, 0, len(t.rowIDs))
	for pos, id := range t.rowIDs {
		if _, gone := drop[id]; !gone {
			keptIDs = append(keptIDs, id)
			keep = append(keep, pos)
		}
	}
	t.rowIDs = keptIDs
	for i := range t.cols {
		values := make([]Value, 0, len(keep))
		for _, pos := range keep {
			values = append(values, t.cols[i].Values[pos])
		}
		t.cols[i].Values = values
	}
}

// CastNumeric narrows the storage type of a numeric column. The observed
// range must fit the target, and integer targets refuse missing or
// fractional values.
func (t *Table) CastNumeric(name string, target NumericType) error {
	col, err := t.Column(name)
	if err != nil {
		return err
	}
	if col.Kind != KindNumeric {
		return core.NewInvalidArgument("column %q is %s, not numeric", name, col.Kind)
	}
	if !target.Valid() {
		return core.NewInvalidArgument("unknown storage type %q", target)
	}
	if err := checkStorageFits(col, target); err != nil {
		return err
	}
	col.Storage = target
	return nil
}

// TagCategorical converts a text column to the categorical kind
func (t *Table) TagCategorical(name string) error {
	col, err := t.Column(name)
	if err != nil {
		return err
	}
	if col.Kind != KindText {
		return core.NewInvalidArgument("column %q is %s and cannot be tagged categorical", name, col.Kind)
	}
	col.Kind = KindCategorical
	return nil
}
