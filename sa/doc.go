// Package sa estimates variance-based global sensitivity indices of a scalar
// model output with the radial ("block") design of Saltelli et al. (2010).
//
// # Reading Guide
//
//   - factor.go: uncertain factors, their samplers and the FactorSpace
//   - design.go: the radial DesignBlock (A, B, Ab_1..Ab_k) drawn for one run
//   - evaluator.go: the Evaluator capability and the portfolio test function
//   - estimator.go: the Monte Carlo driver that turns N(k+2) evaluations
//     into first-order (S) and total (ST) indices
//
// # Reproducibility
//
// Every run draws from its own RNG, seeded from the analysis key and the run
// index (rng.go). Results are therefore bit-identical for a given seed
// whatever the number of workers.
//
// # Sub-packages
//
//   - sa/mcda: weighted-sum decision analysis (ranks, ASR, winner rank)
//     whose metrics plug into the estimator as evaluators
//   - sa/report: summaries and text rendering of results
//   - sa/experiment: YAML experiment files
package sa
