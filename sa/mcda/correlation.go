package mcda

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/inference-sim/sensitivity-sim/sa"
)

// Significance labels for Correlation.Significance.
const (
	Significant99  = "99%"
	Significant95  = "95%"
	NotSignificant = "not significant"
)

// Correlation is a Pearson correlation with its one-sided t-test.
type Correlation struct {
	N            int
	R            float64
	T            float64 // r·sqrt((n−2)/(1−r²))
	P            float64 // one-sided p-value of |T| under Student's t with n−2 dof
	Significance string
}

// Pearson correlates two criteria over the same alternatives. At least three
// observations are needed for the t statistic.
func Pearson(x, y []float64) (*Correlation, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d and %d observations", sa.ErrDimension, len(x), len(y))
	}
	n := len(x)
	if n < 3 {
		return nil, fmt.Errorf("%w: correlation test needs at least 3 observations, got %d", sa.ErrDimension, n)
	}
	c := &Correlation{N: n, R: stat.Correlation(x, y, nil)}
	dof := float64(n - 2)

	if math.Abs(c.R) >= 1 {
		c.T = math.Copysign(math.Inf(1), c.R)
		c.P = 0
	} else {
		c.T = c.R * math.Sqrt(dof/(1-c.R*c.R))
		t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: dof}
		c.P = 1 - t.CDF(math.Abs(c.T))
	}

	switch {
	case c.P <= 0.01:
		c.Significance = Significant99
	case c.P <= 0.05:
		c.Significance = Significant95
	default:
		c.Significance = NotSignificant
	}
	return c, nil
}
