// Package report summarises and renders sensitivity analysis results.
package report
