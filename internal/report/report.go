// Package report renders profiling snapshots for humans. It is a read-only
// consumer of the derived statistics and never mutates them.
package report

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/montanaflynn/stats"

	"cleantab/domain/profile"
	"cleantab/domain/table"
)

// Render produces the summary report as markdown: duplicated rows, numeric
// storage optimization, categorical candidates, outliers, missing values,
// numerical summary.
func Render(t *table.Table, snap profile.Snapshot) string {
	var b strings.Builder

	writeDuplicates(&b, t, snap)
	writeOptimizations(&b, snap)
	writeCandidates(&b, snap)
	writeOutliers(&b, snap)
	writeMissing(&b, snap)
	writeSummary(&b, t, snap)

	return b.String()
}

// RenderHTML produces the summary report as an HTML document
func RenderHTML(t *table.Table, snap profile.Snapshot) []byte {
	md := Render(t, snap)
	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := p.Parse([]byte(md))
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{
		Flags: mdhtml.CommonFlags | mdhtml.CompletePage,
	})
	return markdown.Render(doc, renderer)
}

func header(b *strings.Builder, title string) {
	fmt.Fprintf(b, "## %s\n\n", title)
}

func writeDuplicates(b *strings.Builder, t *table.Table, snap profile.Snapshot) {
	header(b, "Duplicated Rows")
	if len(snap.Duplicates) == 0 {
		b.WriteString("No duplicated rows.\n\n")
		return
	}
	pct := float64(len(snap.Duplicates)) * 100 / float64(snap.Rows)
	fmt.Fprintf(b, "The dataset has %d duplicated rows, which is %.2f%% of the dataset:\n\n",
		len(snap.Duplicates), pct)

	names := t.ColumnNames()
	fmt.Fprintf(b, "| row | %s |\n", strings.Join(names, " | "))
	b.WriteString("|---")
	for range names {
		b.WriteString("|---")
	}
	b.WriteString("|\n")
	for _, id := range snap.Duplicates {
		row, ok := t.RowByID(id)
		if !ok {
			continue
		}
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = v.String()
		}
		fmt.Fprintf(b, "| %d | %s |\n", id, strings.Join(cells, " | "))
	}
	b.WriteString("\n")
}

func writeOptimizations(b *strings.Builder, snap profile.Snapshot) {
	header(b, "Numerical Columns Optimization")
	if len(snap.Suggestions) == 0 {
		b.WriteString("No numerical columns to optimize.\n\n")
		return
	}
	// Group columns by their suggested target type.
	byType := make(map[table.NumericType][]string)
	for col, target := range snap.Suggestions {
		byType[target] = append(byType[target], col)
	}
	b.WriteString("These numerical columns can be downgraded:\n\n")
	b.WriteString("| type | columns_to_convert |\n|---|---|\n")
	for _, target := range []table.NumericType{
		table.TypeUint8, table.TypeUint16, table.TypeUint32, table.TypeUint64,
		table.TypeInt8, table.TypeInt16, table.TypeInt32, table.TypeInt64,
		table.TypeFloat16, table.TypeFloat32, table.TypeFloat64,
	} {
		cols, ok := byType[target]
		if !ok {
			continue
		}
		fmt.Fprintf(b, "| %s | %s |\n", target, strings.Join(sorted(cols), ", "))
	}
	b.WriteString("\n")
}

func writeCandidates(b *strings.Builder, snap profile.Snapshot) {
	header(b, "Categorical Columns Optimization")
	if len(snap.Classification.Candidates) == 0 {
		b.WriteString("No columns to convert to categorical.\n\n")
		return
	}
	b.WriteString("These columns can be converted to categorical:\n\n")
	b.WriteString("| column | unique_values |\n|---|---|\n")
	for _, col := range sortedCandidateNames(snap) {
		fmt.Fprintf(b, "| %s | %s |\n", col, strings.Join(snap.Classification.Candidates[col], ", "))
	}
	b.WriteString("\n")
}

func writeOutliers(b *strings.Builder, snap profile.Snapshot) {
	header(b, "Outliers")
	if len(snap.Outliers) == 0 {
		b.WriteString("No outliers.\n\n")
		return
	}
	b.WriteString("Outliers are:\n\n")
	b.WriteString("| column | lower | upper | total | percentage |\n|---|---|---|---|---|\n")
	for _, col := range snap.OutliersByCount() {
		st := snap.Outliers[col]
		fmt.Fprintf(b, "| %s | %d | %d | %d | %.2f |\n", col, st.Lower, st.Upper, st.Total, st.Percentage)
	}
	b.WriteString("\n")
}

func writeMissing(b *strings.Builder, snap profile.Snapshot) {
	header(b, "Missing Values")
	if len(snap.Missing) == 0 {
		b.WriteString("No missing values.\n\n")
		return
	}
	b.WriteString("Missing details are:\n\n")
	b.WriteString("| column | missing_count | missing_percentage |\n|---|---|---|\n")
	for _, col := range snap.MissingByCount() {
		st := snap.Missing[col]
		fmt.Fprintf(b, "| %s | %d | %.2f |\n", col, st.Count, st.Percentage)
	}
	b.WriteString("\n")
}

func writeSummary(b *strings.Builder, t *table.Table, snap profile.Snapshot) {
	header(b, "Numerical Summary")
	if len(snap.Classification.Numeric) == 0 {
		b.WriteString("No numerical columns.\n\n")
		return
	}
	b.WriteString("| column | min | max | mean | median | stddev |\n|---|---|---|---|---|---|\n")
	for _, name := range snap.Classification.Numeric {
		col, err := t.Column(name)
		if err != nil {
			continue
		}
		clean := nonMissing(col.Float64s())
		min, _ := stats.Min(clean)
		max, _ := stats.Max(clean)
		mean, _ := stats.Mean(clean)
		median, _ := stats.Median(clean)
		stddev, _ := stats.StandardDeviation(clean)
		fmt.Fprintf(b, "| %s | %g | %g | %.4g | %g | %.4g |\n", name, min, max, mean, median, stddev)
	}
	b.WriteString("\n")
}

func nonMissing(values []float64) []float64 {
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			clean = append(clean, v)
		}
	}
	return clean
}

func sortedCandidateNames(snap profile.Snapshot) []string {
	names := make([]string, 0, len(snap.Classification.Candidates))
	for name := range snap.Classification.Candidates {
		names = append(names, name)
	}
	return sorted(names)
}

func sorted(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	sort.Strings(out)
	return out
}
