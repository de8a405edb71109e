// Package experiment loads sensitivity analysis experiments from YAML.
package experiment

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/sensitivity-sim/sa"
	"github.com/inference-sim/sensitivity-sim/sa/mcda"
)

// Model names.
const (
	ModelPortfolio   = "portfolio"
	ModelWeightedSum = "weighted_sum"
)

var validModels = map[string]bool{
	ModelPortfolio: true, ModelWeightedSum: true,
}

// Spec is the top-level experiment configuration.
// Loaded from YAML via Load(path).
type Spec struct {
	Version string `yaml:"version"`
	Seed    int64  `yaml:"seed"`
	Runs    int    `yaml:"runs"`
	Workers int    `yaml:"workers,omitempty"`
	Model   string `yaml:"model"`

	// Factors overrides the portfolio factor distributions. Ignored for weighted_sum.
	Factors []sa.FactorSpec `yaml:"factors,omitempty"`

	Criteria     []CriterionSpec   `yaml:"criteria,omitempty"`
	Alternatives []AlternativeSpec `yaml:"alternatives,omitempty"`
	// Winner is the zero-based alternative whose rank is analysed in
	// addition to the ASR. Unset skips the winner analysis.
	Winner *int `yaml:"winner,omitempty"`
}

// CriterionSpec is one decision criterion and the range its weight is drawn from.
// When Standardize names a method, the raw alternative values of this
// criterion are rescaled with it before scoring; Direction defaults to benefit.
type CriterionSpec struct {
	Name        string  `yaml:"name"`
	MinWeight   float64 `yaml:"min_weight"`
	MaxWeight   float64 `yaml:"max_weight"`
	Direction   string  `yaml:"direction,omitempty"`
	Standardize string  `yaml:"standardize,omitempty"`
}

var validDirections = map[string]bool{
	"": true, string(mcda.Benefit): true, string(mcda.Cost): true,
}

var validMethods = map[string]bool{
	"": true, string(mcda.Ratio): true, string(mcda.ScoreRange): true,
}

// AlternativeSpec is one row of the decision matrix. Values are criterion
// scores in criteria order, already standardized unless the criterion says otherwise.
type AlternativeSpec struct {
	ID     string    `yaml:"id,omitempty"`
	Values []float64 `yaml:"values"`
}

// Load reads and parses a YAML experiment file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading experiment spec: %w", err)
	}
	var spec Spec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing experiment spec: %w", err)
	}
	if spec.Version == "" {
		spec.Version = "1"
	}
	return &spec, nil
}

// Validate checks every field of the experiment.
func (s *Spec) Validate() error {
	if !validModels[s.Model] {
		return fmt.Errorf("%w: unknown model %q; valid: portfolio, weighted_sum", sa.ErrConfiguration, s.Model)
	}
	if s.Runs <= 0 {
		return fmt.Errorf("%w: runs must be positive, got %d", sa.ErrConfiguration, s.Runs)
	}
	if s.Workers < 0 {
		return fmt.Errorf("%w: workers must be non-negative, got %d", sa.ErrConfiguration, s.Workers)
	}
	for i, f := range s.Factors {
		if !sa.ValidDistTypes[f.Distribution.Type] {
			return fmt.Errorf("%w: factors[%d]: unknown distribution type %q; valid: gaussian, uniform",
				sa.ErrConfiguration, i, f.Distribution.Type)
		}
	}
	if s.Model == ModelWeightedSum {
		return s.validateDecision()
	}
	return nil
}

func (s *Spec) validateDecision() error {
	if len(s.Criteria) == 0 {
		return fmt.Errorf("%w: weighted_sum needs at least one criterion", sa.ErrConfiguration)
	}
	if len(s.Alternatives) == 0 {
		return fmt.Errorf("%w: weighted_sum needs at least one alternative", sa.ErrConfiguration)
	}
	for i, c := range s.Criteria {
		prefix := fmt.Sprintf("criteria[%d]", i)
		if err := validateFinite(prefix+".min_weight", c.MinWeight); err != nil {
			return err
		}
		if err := validateFinite(prefix+".max_weight", c.MaxWeight); err != nil {
			return err
		}
		if c.MaxWeight < c.MinWeight {
			return fmt.Errorf("%w: %s: max_weight %g is smaller than min_weight %g",
				sa.ErrConfiguration, prefix, c.MaxWeight, c.MinWeight)
		}
		if !validDirections[c.Direction] {
			return fmt.Errorf("%w: %s: unknown direction %q; valid: benefit, cost", sa.ErrConfiguration, prefix, c.Direction)
		}
		if !validMethods[c.Standardize] {
			return fmt.Errorf("%w: %s: unknown standardize method %q; valid: ratio, score_range", sa.ErrConfiguration, prefix, c.Standardize)
		}
	}
	for i, a := range s.Alternatives {
		if len(a.Values) != len(s.Criteria) {
			return fmt.Errorf("%w: alternatives[%d] has %d values for %d criteria",
				sa.ErrDimension, i, len(a.Values), len(s.Criteria))
		}
		for j, v := range a.Values {
			if err := validateFinite(fmt.Sprintf("alternatives[%d].values[%d]", i, j), v); err != nil {
				return err
			}
		}
	}
	if s.Winner != nil && (*s.Winner < 0 || *s.Winner >= len(s.Alternatives)) {
		return fmt.Errorf("%w: winner %d outside [0, %d)", sa.ErrConfiguration, *s.Winner, len(s.Alternatives))
	}
	return nil
}

func validateFinite(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%w: %s must be a finite number, got %f", sa.ErrConfiguration, name, val)
	}
	return nil
}

// CriterionNames returns criterion names, filling blanks with w<j>.
func (s *Spec) CriterionNames() []string {
	names := make([]string, len(s.Criteria))
	for j, c := range s.Criteria {
		names[j] = c.Name
		if names[j] == "" {
			names[j] = fmt.Sprintf("w%d", j)
		}
	}
	return names
}

// AlternativeIDs returns alternative ids, filling blanks with their 1-based position.
func (s *Spec) AlternativeIDs() []string {
	ids := make([]string, len(s.Alternatives))
	for i, a := range s.Alternatives {
		ids[i] = a.ID
		if ids[i] == "" {
			ids[i] = fmt.Sprintf("%d", i+1)
		}
	}
	return ids
}

// FactorSpace builds the factor space of the experiment: the portfolio
// distributions, or one uniform weight factor per criterion.
func (s *Spec) FactorSpace() (sa.FactorSpace, error) {
	switch s.Model {
	case ModelPortfolio:
		if len(s.Factors) > 0 {
			return sa.NewFactorSpace(s.Factors)
		}
		return sa.NewFactorSpace(sa.PortfolioFactors())
	case ModelWeightedSum:
		mins := make([]float64, len(s.Criteria))
		maxes := make([]float64, len(s.Criteria))
		for j, c := range s.Criteria {
			mins[j], maxes[j] = c.MinWeight, c.MaxWeight
		}
		return sa.NewUniformFactorSpace(s.CriterionNames(), mins, maxes)
	default:
		return sa.FactorSpace{}, fmt.Errorf("%w: unknown model %q", sa.ErrConfiguration, s.Model)
	}
}

// DecisionMatrix builds the alternatives × criteria matrix, standardizing
// the criteria that ask for it.
func (s *Spec) DecisionMatrix() (*mcda.DecisionMatrix, error) {
	rows := make([][]float64, len(s.Alternatives))
	for i, a := range s.Alternatives {
		if len(a.Values) != len(s.Criteria) {
			return nil, fmt.Errorf("%w: alternatives[%d] has %d values for %d criteria",
				sa.ErrDimension, i, len(a.Values), len(s.Criteria))
		}
		rows[i] = append([]float64(nil), a.Values...)
	}
	for j, c := range s.Criteria {
		if c.Standardize == "" {
			continue
		}
		dir := mcda.Direction(c.Direction)
		if dir == "" {
			dir = mcda.Benefit
		}
		raw := make([]float64, len(rows))
		for i := range rows {
			raw[i] = rows[i][j]
		}
		std, err := mcda.Standardize(raw, dir, mcda.Method(c.Standardize))
		if err != nil {
			return nil, fmt.Errorf("criterion %q: %w", s.CriterionNames()[j], err)
		}
		for i := range rows {
			rows[i][j] = std[i]
		}
	}
	return mcda.NewDecisionMatrix(rows)
}
