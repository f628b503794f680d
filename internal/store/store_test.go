package store

import (
	"testing"

	"github.com/san-kum/funcscope/internal/analysis"
)

func testReport(expr string) *analysis.Report {
	return &analysis.Report{
		Expression: expr,
		Canonical:  expr,
		IsFunction: true,
		Domain:     "all real numbers",
		Range:      "y ≥ 0",
		Properties: []string{"function"},
	}
}

func TestSaveAndList(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	samples := []analysis.SamplePoint{{X: 0, Y: 0}, {X: 1, Y: 1}}
	id, err := s.Save(testReport("x^2"), samples)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty id")
	}

	entries, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].ID != id {
		t.Errorf("entry ID = %q, want %q", entries[0].ID, id)
	}
	if entries[0].Report.Expression != "x^2" {
		t.Errorf("expression = %q", entries[0].Report.Expression)
	}
}

func TestGet(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	id, err := s.Save(testReport("sin(x)"), nil)
	if err != nil {
		t.Fatal(err)
	}

	e, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if e.Report.Expression != "sin(x)" {
		t.Errorf("expression = %q", e.Report.Expression)
	}

	if _, err := s.Get("missing"); err == nil {
		t.Error("expected error for unknown id")
	}
}
