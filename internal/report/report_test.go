package report

import (
	"strings"
	"testing"

	"cleantab/domain/table"
	"cleantab/internal/profiling"
)

func fixtureProfile(t *testing.T) *profiling.TableProfile {
	t.Helper()
	metric := table.Column{Name: "metric", Kind: table.KindNumeric, Values: []table.Value{
		table.Number(1), table.Number(2), table.Number(3), table.Number(4), table.Number(5),
		table.Number(6), table.Number(7), table.Number(8), table.Number(100), table.Number(100),
	}}
	label := table.Column{Name: "label", Kind: table.KindText, Values: []table.Value{
		table.Text("a"), table.Text("b"), table.Text("a"), table.Text("b"), table.Text("a"),
		table.Text("b"), table.Text("a"), table.Text("b"), table.Text("c"), table.Text("c"),
	}}
	sparse := table.Column{Name: "sparse", Kind: table.KindNumeric, Values: []table.Value{
		table.Missing(), table.Missing(), table.Number(3), table.Number(4), table.Number(5),
		table.Number(6), table.Number(7), table.Number(8), table.Number(9), table.Number(9),
	}}
	tbl, err := table.New(metric, label, sparse)
	if err != nil {
		t.Fatalf("table.New: %v", err)
	}
	p, err := profiling.New(tbl, 10)
	if err != nil {
		t.Fatalf("profiling.New: %v", err)
	}
	return p
}

func TestRenderSectionsInOrder(t *testing.T) {
	p := fixtureProfile(t)
	md := Render(p.Table(), p.Snapshot())

	sections := []string{
		"## Duplicated Rows",
		"## Numerical Columns Optimization",
		"## Categorical Columns Optimization",
		"## Outliers",
		"## Missing Values",
		"## Numerical Summary",
	}
	last := -1
	for _, s := range sections {
		idx := strings.Index(md, s)
		if idx < 0 {
			t.Fatalf("section %q missing from report:\n%s", s, md)
		}
		if idx < last {
			t.Errorf("section %q out of order", s)
		}
		last = idx
	}
}

func TestRenderContent(t *testing.T) {
	p := fixtureProfile(t)
	md := Render(p.Table(), p.Snapshot())

	// Rows 8 and 9 are element-wise identical.
	if !strings.Contains(md, "2 duplicated rows") {
		t.Errorf("duplicate summary missing:\n%s", md)
	}
	if !strings.Contains(md, "| uint8 | metric, sparse |") {
		t.Errorf("storage suggestion row missing:\n%s", md)
	}
	if !strings.Contains(md, "| label | a, b, c |") {
		t.Errorf("categorical candidate row missing:\n%s", md)
	}
	if !strings.Contains(md, "| sparse | 2 | 20.00 |") {
		t.Errorf("missing-value row missing:\n%s", md)
	}
	if !strings.Contains(md, "| metric | 1 | 100 |") {
		t.Errorf("summary row missing:\n%s", md)
	}
}

func TestRenderEmptySections(t *testing.T) {
	tbl, err := table.New(table.Column{Name: "n", Kind: table.KindNumeric, Values: []table.Value{
		table.Number(10), table.Number(11), table.Number(12), table.Number(13),
	}})
	if err != nil {
		t.Fatalf("table.New: %v", err)
	}
	p, err := profiling.New(tbl, 10)
	if err != nil {
		t.Fatalf("profiling.New: %v", err)
	}

	md := Render(p.Table(), p.Snapshot())
	for _, want := range []string{
		"No duplicated rows.",
		"No columns to convert to categorical.",
		"No outliers.",
		"No missing values.",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("expected %q in report:\n%s", want, md)
		}
	}
}

func TestRenderHTMLIsCompletePage(t *testing.T) {
	p := fixtureProfile(t)
	html := string(RenderHTML(p.Table(), p.Snapshot()))

	if !strings.Contains(html, "<html") {
		t.Error("expected a complete HTML page")
	}
	if !strings.Contains(html, "Duplicated Rows") {
		t.Error("expected rendered section heading")
	}
}
