package sa

import "fmt"

// Evaluator maps one factor vector to the scalar model output.
// Implementations must be deterministic in x and safe for concurrent use:
// the estimator may evaluate vectors of different runs in parallel.
type Evaluator interface {
	Evaluate(x []float64) (float64, error)
}

// FactorCounter is implemented by evaluators that know how many factors
// they consume. The estimator checks it against the factor space.
type FactorCounter interface {
	NumFactors() int
}

// EvaluatorFunc adapts a plain function to Evaluator.
type EvaluatorFunc func(x []float64) (float64, error)

func (f EvaluatorFunc) Evaluate(x []float64) (float64, error) {
	return f(x)
}

// === Portfolio test function ===

// PortfolioModel is the portfolio test function Y = Cs·Ps + Ct·Pt + Cj·Pj
// from Saltelli et al. (2004), "Sensitivity Analysis in Practice", eq. 1.1.
// Factors are ordered (cs, ps, ct, pt, cj, pj).
type PortfolioModel struct{}

// NumFactors implements FactorCounter.
func (PortfolioModel) NumFactors() int { return 6 }

// Evaluate implements Evaluator.
func (m PortfolioModel) Evaluate(x []float64) (float64, error) {
	if len(x) != m.NumFactors() {
		return 0, fmt.Errorf("%w: portfolio model takes %d factors, got %d", ErrDimension, m.NumFactors(), len(x))
	}
	return x[0]*x[1] + x[2]*x[3] + x[4]*x[5], nil
}

// PortfolioFactors returns the published factor distributions of the
// portfolio model, in evaluation order.
func PortfolioFactors() []FactorSpec {
	gaussian := func(name string, mean, sd float64) FactorSpec {
		return FactorSpec{
			Name:         name,
			Distribution: DistSpec{Type: "gaussian", Params: map[string]float64{"mean": mean, "std_dev": sd}},
		}
	}
	return []FactorSpec{
		gaussian("cs", 250, 200),
		gaussian("ps", 0, 4),
		gaussian("ct", 400, 300),
		gaussian("pt", 0, 2),
		gaussian("cj", 500, 400),
		gaussian("pj", 0, 1),
	}
}

// PortfolioReference returns the published first-order and total indices
// of the portfolio model (Saltelli et al. 2004, table 1.6). These values are
// authoritative; the "portfolio" case of testdata/reference_indices.json
// must match them.
func PortfolioReference() (s, st []float64) {
	return []float64{0.0, 0.36, 0.0, 0.22, 0.0, 0.08},
		[]float64{0.19, 0.57, 0.12, 0.35, 0.06, 0.14}
}
