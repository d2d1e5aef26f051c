package facet

import (
	"reflect"
	"testing"
)

var table = Table{
	Industries: {
		{ID: "banking", Name: "Banking", Count: 3},
		{ID: "insurance", Name: "Insurance", Count: 2},
	},
	ProductClasses: {
		{ID: "esg", Name: "ESG", Count: 1},
	},
}

func TestDimension_IsValid(t *testing.T) {
	for _, d := range Dimensions {
		if !d.IsValid() {
			t.Errorf("%s should be valid", d)
		}
	}
	if Dimension("colors").IsValid() {
		t.Error("colors should be invalid")
	}
}

func TestTable_Name(t *testing.T) {
	if name, ok := table.Name(Industries, "banking"); !ok || name != "Banking" {
		t.Errorf("Name = %q, %v", name, ok)
	}
	if _, ok := table.Name(Industries, "nope"); ok {
		t.Error("expected miss")
	}
}

func TestToggle_Involution(t *testing.T) {
	s := NewSelection()
	s.Toggle(Industries, "banking")
	before := Reconstruct(s.Snapshot())

	if !s.Toggle(ProductClasses, "esg") {
		t.Fatal("first toggle should select")
	}
	if s.Toggle(ProductClasses, "esg") {
		t.Fatal("second toggle should deselect")
	}
	if !s.Equal(&before) {
		t.Errorf("double toggle changed selection: %v", s.Snapshot())
	}
}

func TestActiveCount(t *testing.T) {
	s := NewSelection()
	s.Toggle(Industries, "banking")
	s.Toggle(Industries, "insurance")
	s.Toggle(ProblemAreas, "risk")
	if got := s.ActiveCount(); got != 3 {
		t.Errorf("ActiveCount() = %d, want 3", got)
	}

	s.Clear()
	if got := s.ActiveCount(); got != 0 {
		t.Errorf("after Clear ActiveCount() = %d", got)
	}
	if len(s.Snapshot()) != 0 {
		t.Errorf("after Clear Snapshot() = %v", s.Snapshot())
	}
}

func TestActiveLabels(t *testing.T) {
	s := NewSelection()
	s.Toggle(ProductClasses, "esg")
	s.Toggle(Industries, "insurance")
	s.Toggle(Industries, "banking")
	s.Toggle(Industries, "unknown-id")

	want := []string{"Banking", "Insurance", "ESG"}
	if got := s.ActiveLabels(table); !reflect.DeepEqual(got, want) {
		t.Errorf("ActiveLabels() = %v, want %v", got, want)
	}
	if got := s.ActiveCount(); got != 4 {
		t.Errorf("unresolvable ids still count: got %d, want 4", got)
	}
}

func TestReconstruct_DropsUnknownDimensions(t *testing.T) {
	s := Reconstruct(map[Dimension][]string{
		Industries: {"banking", "banking"},
		"colors":   {"red"},
	})
	if got := s.ActiveCount(); got != 1 {
		t.Errorf("ActiveCount() = %d, want 1", got)
	}
	if !s.Has(Industries, "banking") {
		t.Error("banking should be selected")
	}
}

func TestIDs_Sorted(t *testing.T) {
	s := NewSelection()
	s.Toggle(ResourceTypes, "webinars")
	s.Toggle(ResourceTypes, "guides")
	if got := s.IDs(ResourceTypes); !reflect.DeepEqual(got, []string{"guides", "webinars"}) {
		t.Errorf("IDs() = %v", got)
	}
}
