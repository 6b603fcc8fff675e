package classify

import (
	"testing"
	"time"

	"cleantab/domain/core"
	"cleantab/domain/profile"
	"cleantab/domain/table"
)

func mustTable(t *testing.T, cols ...table.Column) *table.Table {
	t.Helper()
	tbl, err := table.New(cols...)
	if err != nil {
		t.Fatalf("table.New: %v", err)
	}
	return tbl
}

func textColumn(name string, vals ...string) table.Column {
	values := make([]table.Value, len(vals))
	for i, v := range vals {
		values[i] = table.Text(v)
	}
	return table.Column{Name: name, Kind: table.KindText, Values: values}
}

func TestClassifyCategoricalCandidateThreshold(t *testing.T) {
	tbl := mustTable(t, textColumn("label", "a", "b", "a", "c"))

	cls, err := Classifier{MaxCategories: 3}.Classify(tbl)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	uniques, ok := cls.Candidates["label"]
	if !ok {
		t.Fatal("label not suggested as categorical at threshold 3")
	}
	want := []string{"a", "b", "c"}
	if len(uniques) != len(want) {
		t.Fatalf("uniques = %v, want %v", uniques, want)
	}
	for i := range want {
		if uniques[i] != want[i] {
			t.Fatalf("uniques = %v, want %v", uniques, want)
		}
	}

	cls, err = Classifier{MaxCategories: 2}.Classify(tbl)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if _, ok := cls.Candidates["label"]; ok {
		t.Fatal("label suggested as categorical at threshold 2")
	}
	if cls.Role("label") != profile.RolePlain {
		t.Errorf("role = %s, want plain", cls.Role("label"))
	}
}

func TestClassifyConstantBeforeOtherRules(t *testing.T) {
	sameNum := table.Column{Name: "same_num", Kind: table.KindNumeric,
		Values: []table.Value{table.Number(7), table.Number(7), table.Number(7)}}
	allMissing := table.Column{Name: "all_missing", Kind: table.KindNumeric,
		Values: []table.Value{table.Missing(), table.Missing(), table.Missing()}}
	tbl := mustTable(t,
		sameNum,
		allMissing,
		textColumn("same_text", "x", "x", "x"),
		textColumn("varied", "a", "b", "c"),
	)

	cls, err := Classifier{MaxCategories: 10}.Classify(tbl)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}

	for _, name := range []string{"same_num", "all_missing", "same_text"} {
		if cls.Role(name) != profile.RoleConstant {
			t.Errorf("role(%s) = %s, want constant", name, cls.Role(name))
		}
	}
	if len(cls.Numeric) != 0 {
		t.Errorf("constant numeric column leaked into Numeric: %v", cls.Numeric)
	}
	if _, ok := cls.Candidates["same_text"]; ok {
		t.Error("constant text column suggested as categorical")
	}
	if len(cls.Used) != 1 || cls.Used[0] != "varied" {
		t.Errorf("Used = %v, want [varied]", cls.Used)
	}
}

func TestClassifyExcludesTemporalAndDuration(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	temporal := table.Column{Name: "when", Kind: table.KindTemporal,
		Values: []table.Value{table.Time(t0), table.Time(t0.Add(time.Hour))}}
	duration := table.Column{Name: "took", Kind: table.KindDuration,
		Values: []table.Value{table.Span(time.Second), table.Span(time.Minute)}}
	tbl := mustTable(t, temporal, duration)

	cls, err := Classifier{MaxCategories: 10}.Classify(tbl)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if len(cls.Numeric) != 0 {
		t.Errorf("Numeric = %v, want empty", cls.Numeric)
	}
	if cls.Role("when") != profile.RolePlain || cls.Role("took") != profile.RolePlain {
		t.Error("temporal and duration columns should classify as plain")
	}
}

func TestClassifySkipsTaggedCategorical(t *testing.T) {
	tagged := table.Column{Name: "tagged", Kind: table.KindCategorical,
		Values: []table.Value{table.Text("a"), table.Text("b")}}
	tbl := mustTable(t, tagged)

	cls, err := Classifier{MaxCategories: 10}.Classify(tbl)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if _, ok := cls.Candidates["tagged"]; ok {
		t.Error("already-categorical column re-suggested")
	}
}

func TestClassifyRejectsNegativeThreshold(t *testing.T) {
	tbl := mustTable(t, textColumn("a", "x", "y"))
	if _, err := (Classifier{MaxCategories: -1}).Classify(tbl); !core.IsInvalidArgument(err) {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}
