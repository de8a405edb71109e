// Package mcda implements the weighted-sum multi-criteria decision rule and
// the rank metrics that plug into the sensitivity estimator: the Average
// Shift in Ranks against the equal-weight ranking, and the rank of a chosen
// alternative. It also carries the plain Monte Carlo uncertainty analysis,
// one-at-a-time weight comparison, criterion standardization, and the
// Pearson correlation test used around those analyses.
package mcda
