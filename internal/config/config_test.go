package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.View.XMin >= cfg.View.XMax {
		t.Error("default view window is degenerate")
	}
	if cfg.Heuristics.AsymptoteSteps <= 0 {
		t.Error("asymptote steps should be positive")
	}
	if cfg.Heuristics.SymmetryAgreement <= 0 || cfg.Heuristics.SymmetryAgreement > 1 {
		t.Errorf("symmetry agreement %f out of (0, 1]", cfg.Heuristics.SymmetryAgreement)
	}
	if cfg.DataDir == "" {
		t.Error("data dir should have a default")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "funcscope.yaml")

	cfg := DefaultConfig()
	cfg.View.XMax = 42
	cfg.Heuristics.RangeStep = 0.25
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.View.XMax != 42 {
		t.Errorf("XMax = %f, want 42", loaded.View.XMax)
	}
	if loaded.Heuristics.RangeStep != 0.25 {
		t.Errorf("RangeStep = %f, want 0.25", loaded.Heuristics.RangeStep)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParams(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Heuristics.InjectiveMinSamples = 9
	p := cfg.Params()
	if p.InjectiveMinSamples != 9 {
		t.Errorf("InjectiveMinSamples = %d, want 9", p.InjectiveMinSamples)
	}
	if p.SymmetryTol != cfg.Heuristics.SymmetryTol {
		t.Error("Params should mirror the heuristic config")
	}
}
