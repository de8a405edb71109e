package experiment

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/inference-sim/sensitivity-sim/sa"
)

func writeSpec(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const decisionYAML = `
version: "1"
seed: 7
runs: 200
workers: 2
model: weighted_sum
criteria:
  - name: cost
    min_weight: 0.1
    max_weight: 0.5
  - name: quality
    min_weight: 0.2
    max_weight: 0.6
  - min_weight: 0.3
    max_weight: 0.3
alternatives:
  - id: "site-a"
    values: [0.9, 0.1, 0.5]
  - values: [0.2, 0.8, 0.6]
winner: 1
`

func TestLoad_WeightedSum_LoadsCorrectly(t *testing.T) {
	spec, err := Load(writeSpec(t, decisionYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Seed != 7 || spec.Runs != 200 || spec.Workers != 2 {
		t.Errorf("seed/runs/workers = %d/%d/%d, want 7/200/2", spec.Seed, spec.Runs, spec.Workers)
	}
	if spec.Model != ModelWeightedSum {
		t.Errorf("model = %q, want %q", spec.Model, ModelWeightedSum)
	}
	if len(spec.Criteria) != 3 || len(spec.Alternatives) != 2 {
		t.Fatalf("criteria/alternatives = %d/%d, want 3/2", len(spec.Criteria), len(spec.Alternatives))
	}
	if spec.Winner == nil || *spec.Winner != 1 {
		t.Errorf("winner = %v, want 1", spec.Winner)
	}
	if err := spec.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestLoad_DefaultsVersion(t *testing.T) {
	spec, err := Load(writeSpec(t, "seed: 1\nruns: 10\nmodel: portfolio\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Version != "1" {
		t.Errorf("version = %q, want %q", spec.Version, "1")
	}
	if spec.Winner != nil {
		t.Errorf("winner = %d, want unset", *spec.Winner)
	}
}

func TestLoad_UnknownKey_ReturnsError(t *testing.T) {
	_, err := Load(writeSpec(t, "seed: 1\nrunz: 10\nmodel: portfolio\n"))
	if err == nil {
		t.Fatal("expected error for misspelled key")
	}
	if !strings.Contains(err.Error(), "runz") {
		t.Errorf("error should name the unknown key: %v", err)
	}
}

func TestLoad_MissingFile_ReturnsError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate_Errors(t *testing.T) {
	winner := func(i int) *int { return &i }
	valid := func() Spec {
		return Spec{
			Runs:  10,
			Model: ModelWeightedSum,
			Criteria: []CriterionSpec{
				{Name: "a", MinWeight: 0, MaxWeight: 1},
				{Name: "b", MinWeight: 0, MaxWeight: 1},
			},
			Alternatives: []AlternativeSpec{
				{Values: []float64{0.1, 0.2}},
				{Values: []float64{0.3, 0.4}},
			},
		}
	}
	tests := []struct {
		name   string
		mutate func(*Spec)
		want   error
	}{
		{"unknown model", func(s *Spec) { s.Model = "sobol_g" }, sa.ErrConfiguration},
		{"zero runs", func(s *Spec) { s.Runs = 0 }, sa.ErrConfiguration},
		{"negative workers", func(s *Spec) { s.Workers = -1 }, sa.ErrConfiguration},
		{"unknown distribution", func(s *Spec) {
			s.Factors = []sa.FactorSpec{{Name: "x", Distribution: sa.DistSpec{Type: "lognormal"}}}
		}, sa.ErrConfiguration},
		{"no criteria", func(s *Spec) { s.Criteria = nil }, sa.ErrConfiguration},
		{"no alternatives", func(s *Spec) { s.Alternatives = nil }, sa.ErrConfiguration},
		{"inverted weight range", func(s *Spec) { s.Criteria[0].MinWeight = 2 }, sa.ErrConfiguration},
		{"short row", func(s *Spec) { s.Alternatives[1].Values = []float64{0.3} }, sa.ErrDimension},
		{"unknown direction", func(s *Spec) { s.Criteria[0].Direction = "up" }, sa.ErrConfiguration},
		{"unknown standardize method", func(s *Spec) { s.Criteria[1].Standardize = "zscore" }, sa.ErrConfiguration},
		{"winner out of range", func(s *Spec) { s.Winner = winner(2) }, sa.ErrConfiguration},
		{"negative winner", func(s *Spec) { s.Winner = winner(-1) }, sa.ErrConfiguration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(&s)
			err := s.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidate_PortfolioIgnoresDecisionFields(t *testing.T) {
	s := Spec{Runs: 5, Model: ModelPortfolio}
	if err := s.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNamesFillBlanks(t *testing.T) {
	spec, err := Load(writeSpec(t, decisionYAML))
	if err != nil {
		t.Fatal(err)
	}
	names := spec.CriterionNames()
	if got := strings.Join(names, ","); got != "cost,quality,w2" {
		t.Errorf("criterion names = %q", got)
	}
	if got := strings.Join(spec.AlternativeIDs(), ","); got != "site-a,2" {
		t.Errorf("alternative ids = %q", got)
	}
}

func TestFactorSpace_WeightedSum(t *testing.T) {
	spec, err := Load(writeSpec(t, decisionYAML))
	if err != nil {
		t.Fatal(err)
	}
	space, err := spec.FactorSpace()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if space.K() != 3 {
		t.Fatalf("K = %d, want 3", space.K())
	}
	m, err := spec.DecisionMatrix()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Alternatives() != 2 || m.Criteria() != 3 {
		t.Errorf("matrix = %dx%d, want 2x3", m.Alternatives(), m.Criteria())
	}
}

func TestFactorSpace_PortfolioDefaultsAndOverrides(t *testing.T) {
	s := Spec{Runs: 5, Model: ModelPortfolio}
	space, err := s.FactorSpace()
	if err != nil {
		t.Fatal(err)
	}
	if space.K() != 6 {
		t.Errorf("default portfolio K = %d, want 6", space.K())
	}

	spec, err := Load(writeSpec(t, `
runs: 5
model: portfolio
factors:
  - name: cs
    distribution:
      type: gaussian
      params: {mean: 250, std_dev: 200}
  - name: ps
    distribution:
      type: uniform
      params: {min: -1, max: 1}
`))
	if err != nil {
		t.Fatal(err)
	}
	space, err = spec.FactorSpace()
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(space.Names(), ","); got != "cs,ps" {
		t.Errorf("override names = %q, want cs,ps", got)
	}
}

func TestFactorSpace_BadParams(t *testing.T) {
	s := Spec{Runs: 5, Model: ModelPortfolio, Factors: []sa.FactorSpec{
		{Name: "x", Distribution: sa.DistSpec{Type: "gaussian", Params: map[string]float64{"mean": 1}}},
	}}
	if _, err := s.FactorSpace(); !errors.Is(err, sa.ErrConfiguration) {
		t.Errorf("FactorSpace() = %v, want ErrConfiguration", err)
	}
}

func TestDecisionMatrix_StandardizesRequestedCriteria(t *testing.T) {
	// GIVEN raw costs on criterion 0 and already standardized values on criterion 1
	spec, err := Load(writeSpec(t, `
runs: 10
model: weighted_sum
criteria:
  - name: cost
    min_weight: 0
    max_weight: 1
    direction: cost
    standardize: score_range
  - name: quality
    min_weight: 0
    max_weight: 1
alternatives:
  - values: [100, 0.2]
  - values: [300, 0.9]
  - values: [200, 0.5]
`))
	if err != nil {
		t.Fatal(err)
	}
	if err := spec.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	// WHEN the matrix is built
	m, err := spec.DecisionMatrix()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// THEN only the cost criterion is rescaled, cheapest to 1
	wantCost := []float64{1, 0, 0.5}
	for i, v := range m.Criterion(0) {
		if math.Abs(v-wantCost[i]) > 1e-12 {
			t.Errorf("cost[%d] = %v, want %v", i, v, wantCost[i])
		}
	}
	wantQuality := []float64{0.2, 0.9, 0.5}
	for i, v := range m.Criterion(1) {
		if v != wantQuality[i] {
			t.Errorf("quality[%d] = %v, want %v", i, v, wantQuality[i])
		}
	}
	if spec.Alternatives[0].Values[0] != 100 {
		t.Error("DecisionMatrix must not modify the loaded alternatives")
	}
}

func TestDecisionMatrix_ShortRow(t *testing.T) {
	s := Spec{
		Criteria:     []CriterionSpec{{Name: "a"}, {Name: "b"}},
		Alternatives: []AlternativeSpec{{Values: []float64{1}}},
	}
	if _, err := s.DecisionMatrix(); !errors.Is(err, sa.ErrDimension) {
		t.Errorf("DecisionMatrix() = %v, want ErrDimension", err)
	}
}
