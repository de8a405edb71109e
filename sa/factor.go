package sa

import (
	"fmt"
	"math"
	"math/rand"
)

// FactorSampler draws values of one uncertain factor.
type FactorSampler interface {
	// Sample returns one draw of the factor.
	Sample(rng *rand.Rand) float64
}

// GaussianSampler draws from N(mean, stdDev).
type GaussianSampler struct {
	mean, stdDev float64
}

// NewGaussianSampler returns a sampler for N(mean, stdDev).
func NewGaussianSampler(mean, stdDev float64) *GaussianSampler {
	return &GaussianSampler{mean: mean, stdDev: stdDev}
}

func (s *GaussianSampler) Sample(rng *rand.Rand) float64 {
	return rng.NormFloat64()*s.stdDev + s.mean
}

// UniformSampler draws from U[min, max).
type UniformSampler struct {
	min, max float64
}

// NewUniformSampler returns a sampler for U[min, max).
// Returns ErrConfiguration when max < min. min == max is a fixed factor.
func NewUniformSampler(min, max float64) (*UniformSampler, error) {
	if max < min {
		return nil, fmt.Errorf("%w: max %g is smaller than min %g", ErrConfiguration, max, min)
	}
	return &UniformSampler{min: min, max: max}, nil
}

func (s *UniformSampler) Sample(rng *rand.Rand) float64 {
	return s.min + rng.Float64()*(s.max-s.min)
}

// Bounds returns the sampling range.
func (s *UniformSampler) Bounds() (min, max float64) {
	return s.min, s.max
}

// DistSpec names a distribution and its parameters.
type DistSpec struct {
	Type   string             `yaml:"type"`
	Params map[string]float64 `yaml:"params,omitempty"`
}

// FactorSpec describes one uncertain factor.
type FactorSpec struct {
	Name         string   `yaml:"name"`
	Distribution DistSpec `yaml:"distribution"`
}

// ValidDistTypes lists the distribution types NewFactorSampler accepts.
var ValidDistTypes = map[string]bool{
	"gaussian": true, "uniform": true,
}

// requireParam checks that all required keys exist in a params map.
func requireParam(params map[string]float64, keys ...string) error {
	for _, k := range keys {
		v, ok := params[k]
		if !ok {
			return fmt.Errorf("%w: distribution requires parameter %q", ErrConfiguration, k)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: parameter %q must be a finite number, got %f", ErrConfiguration, k, v)
		}
	}
	return nil
}

// NewFactorSampler creates a FactorSampler from a DistSpec.
func NewFactorSampler(spec DistSpec) (FactorSampler, error) {
	switch spec.Type {
	case "gaussian":
		if err := requireParam(spec.Params, "mean", "std_dev"); err != nil {
			return nil, err
		}
		if spec.Params["std_dev"] < 0 {
			return nil, fmt.Errorf("%w: std_dev must be non-negative, got %f", ErrConfiguration, spec.Params["std_dev"])
		}
		return NewGaussianSampler(spec.Params["mean"], spec.Params["std_dev"]), nil

	case "uniform":
		if err := requireParam(spec.Params, "min", "max"); err != nil {
			return nil, err
		}
		return NewUniformSampler(spec.Params["min"], spec.Params["max"])

	default:
		return nil, fmt.Errorf("%w: unknown distribution type %q", ErrConfiguration, spec.Type)
	}
}

// FactorSpace is the ordered set of uncertain factors of a model.
// Factor j of every sampled vector is drawn from the j-th sampler.
type FactorSpace struct {
	names    []string
	samplers []FactorSampler
}

// NewFactorSpace builds a FactorSpace from factor specs, in order.
func NewFactorSpace(specs []FactorSpec) (FactorSpace, error) {
	space := FactorSpace{
		names:    make([]string, 0, len(specs)),
		samplers: make([]FactorSampler, 0, len(specs)),
	}
	for i, spec := range specs {
		s, err := NewFactorSampler(spec.Distribution)
		if err != nil {
			return FactorSpace{}, fmt.Errorf("factor[%d] %q: %w", i, spec.Name, err)
		}
		name := spec.Name
		if name == "" {
			name = fmt.Sprintf("x%d", i)
		}
		space.names = append(space.names, name)
		space.samplers = append(space.samplers, s)
	}
	return space, nil
}

// NewUniformFactorSpace builds a space of uniform factors from per-factor
// [mins[j], maxes[j]] ranges. Both slices must match names in length.
func NewUniformFactorSpace(names []string, mins, maxes []float64) (FactorSpace, error) {
	if len(mins) != len(names) {
		return FactorSpace{}, fmt.Errorf("%w: %d min bounds for %d factors", ErrConfiguration, len(mins), len(names))
	}
	if len(maxes) != len(names) {
		return FactorSpace{}, fmt.Errorf("%w: %d max bounds for %d factors", ErrConfiguration, len(maxes), len(names))
	}
	space := FactorSpace{names: append([]string(nil), names...)}
	for j := range names {
		s, err := NewUniformSampler(mins[j], maxes[j])
		if err != nil {
			return FactorSpace{}, fmt.Errorf("factor %q: %w", names[j], err)
		}
		space.samplers = append(space.samplers, s)
	}
	return space, nil
}

// K returns the number of factors.
func (f FactorSpace) K() int {
	return len(f.samplers)
}

// Names returns the factor names in order.
func (f FactorSpace) Names() []string {
	return append([]string(nil), f.names...)
}

// DrawVector draws one FactorVector, factor by factor.
func (f FactorSpace) DrawVector(rng *rand.Rand) []float64 {
	x := make([]float64, len(f.samplers))
	for j, s := range f.samplers {
		x[j] = s.Sample(rng)
	}
	return x
}
