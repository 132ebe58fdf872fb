package codescan

import (
	"reflect"
	"testing"

	"reprocheck/internal/testutil"
)

func TestAnalyzeFileStructure(t *testing.T) {
	a := NewAnalyzer(nil, nil)
	unit := a.AnalyzeFile("train.py", testutil.SampleTrainingScript())

	if unit.Degraded {
		t.Fatalf("unexpected degraded parse: %s", unit.DegradedReason)
	}
	wantFuncs := []string{"set_seed", "train", "step"}
	if !reflect.DeepEqual(unit.Functions, wantFuncs) {
		t.Errorf("Functions = %v, want %v", unit.Functions, wantFuncs)
	}
	wantImports := []string{"torch", "numpy", "torch"}
	if !reflect.DeepEqual(unit.Imports, wantImports) {
		t.Errorf("Imports = %v, want %v", unit.Imports, wantImports)
	}
}

func TestAnalyzeFileSeeds(t *testing.T) {
	a := NewAnalyzer(nil, nil)
	unit := a.AnalyzeFile("train.py", testutil.SampleTrainingScript())

	if len(unit.Seeds) != 2 {
		t.Fatalf("Seeds = %v, want 2 entries", unit.Seeds)
	}
	if unit.Seeds[0].Name != "torch.manual_seed" || unit.Seeds[0].Arg != "42" {
		t.Errorf("Seeds[0] = %+v, want torch.manual_seed(42)", unit.Seeds[0])
	}
	if unit.Seeds[1].Name != "np.random.seed" || unit.Seeds[1].Arg != "42" {
		t.Errorf("Seeds[1] = %+v, want np.random.seed(42)", unit.Seeds[1])
	}
}

func TestAnalyzeFileHyperparams(t *testing.T) {
	a := NewAnalyzer(nil, nil)
	unit := a.AnalyzeFile("train.py", testutil.SampleTrainingScript())

	if got := unit.Hyperparams["learning_rate"]; got != "0.001" {
		t.Errorf("learning_rate = %q, want %q", got, "0.001")
	}
	if got := unit.Hyperparams["batch_size"]; got != "32" {
		t.Errorf("batch_size = %q, want %q", got, "32")
	}
}

func TestAnalyzeFileFirstMatchWins(t *testing.T) {
	src := []byte("lr = 0.01\nlearning_rate = 0.02\n")
	a := NewAnalyzer(nil, nil)
	unit := a.AnalyzeFile("dup.py", src)

	if got := unit.Hyperparams["learning_rate"]; got != "0.01" {
		t.Errorf("learning_rate = %q, want first assignment %q", got, "0.01")
	}
}

func TestAnalyzeFileEmpty(t *testing.T) {
	a := NewAnalyzer(nil, nil)
	unit := a.AnalyzeFile("empty.py", nil)

	if unit.Degraded {
		t.Errorf("empty file should not be degraded")
	}
	if len(unit.Functions) != 0 || len(unit.Imports) != 0 || len(unit.Seeds) != 0 || len(unit.Hyperparams) != 0 {
		t.Errorf("empty file should yield empty collections, got %+v", unit)
	}
}

func TestAnalyzeFileDegradedFallback(t *testing.T) {
	a := NewAnalyzer(nil, nil)
	unit := a.AnalyzeFile("broken.py", testutil.SampleBrokenScript())

	if !unit.Degraded {
		t.Fatal("expected degraded parse for invalid syntax")
	}
	if len(unit.Functions) == 0 || unit.Functions[0] != "train" {
		t.Errorf("fallback Functions = %v, want train recovered", unit.Functions)
	}
	if len(unit.Imports) == 0 || unit.Imports[0] != "torch" {
		t.Errorf("fallback Imports = %v, want torch recovered", unit.Imports)
	}
	// Seed and hyperparameter scanning are regex-based and unaffected by
	// the broken structure.
	if len(unit.Seeds) != 1 || unit.Seeds[0].Name != "torch.manual_seed" || unit.Seeds[0].Arg != "7" {
		t.Errorf("Seeds = %v, want torch.manual_seed(7)", unit.Seeds)
	}
	if got := unit.Hyperparams["learning_rate"]; got != "0.01" {
		t.Errorf("learning_rate = %q, want %q", got, "0.01")
	}
}

func TestAnalyzeFileDeterminismMarkers(t *testing.T) {
	src := []byte(`import os
os.environ["PYTHONHASHSEED"] = "0"
torch.backends.cudnn.deterministic = True
`)
	a := NewAnalyzer(nil, nil)
	unit := a.AnalyzeFile("determinism.py", src)

	names := make(map[string]bool)
	for _, s := range unit.Seeds {
		names[s.Name] = true
	}
	if !names["PYTHONHASHSEED"] {
		t.Errorf("Seeds = %v, want PYTHONHASHSEED marker", unit.Seeds)
	}
	if !names["torch.backends.cudnn.deterministic"] {
		t.Errorf("Seeds = %v, want cudnn.deterministic marker", unit.Seeds)
	}
}

func TestSplitImportList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "single module", in: "torch", want: []string{"torch"}},
		{name: "multiple modules", in: "os, sys", want: []string{"os", "sys"}},
		{name: "alias stripped", in: "numpy as np", want: []string{"numpy"}},
		{name: "mixed", in: "os, numpy as np, torch", want: []string{"os", "numpy", "torch"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitImportList(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitImportList(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
