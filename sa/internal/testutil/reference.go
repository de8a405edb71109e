// Package testutil provides shared test infrastructure for the estimator
// packages: published reference indices and tolerance assertions.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// ReferenceSet represents the structure of testdata/reference_indices.json.
type ReferenceSet struct {
	Cases []ReferenceCase `json:"cases"`
}

// ReferenceCase holds published indices of one test model.
type ReferenceCase struct {
	Model   string    `json:"model"`
	Source  string    `json:"source"`
	Factors []string  `json:"factors"`
	Runs    int       `json:"runs"`
	S       []float64 `json:"s"`
	ST      []float64 `json:"st"`
	AbsTol  float64   `json:"abs_tol"`
}

// LoadReferenceCase loads the named case from the testdata directory.
// The path is resolved relative to this source file: sa/internal/testutil/ → testdata/.
func LoadReferenceCase(t *testing.T, model string) ReferenceCase {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "reference_indices.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read reference indices: %v", err)
	}

	var set ReferenceSet
	if err := json.Unmarshal(data, &set); err != nil {
		t.Fatalf("Failed to parse reference indices: %v", err)
	}
	for _, c := range set.Cases {
		if c.Model == model {
			return c
		}
	}
	t.Fatalf("No reference case for model %q", model)
	return ReferenceCase{}
}

// AssertWithin compares two float64 slices element-wise with absolute tolerance.
func AssertWithin(t *testing.T, name string, want, got []float64, absTol float64) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("%s: got %d values, want %d", name, len(got), len(want))
	}
	for i := range want {
		if diff := math.Abs(want[i] - got[i]); diff > absTol || math.IsNaN(diff) {
			t.Errorf("%s[%d]: got %.4f, want %.4f (diff=%.4f, tol=%.4f)", name, i, got[i], want[i], diff, absTol)
		}
	}
}
