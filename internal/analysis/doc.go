// Package analysis infers global properties of a compiled expression from
// bounded numeric sweeps.
//
// The analyzers are independent consumers of an expr.Evaluator:
//
//   - [Symmetry]: even/odd classification from mirrored sample pairs
//   - [OneToOne]: injectivity from duplicate outputs over a fixed grid
//   - [Domain]: restriction detection, textual patterns first, sweep second
//   - [Range]: bound detection from running extremes and fixed probes
//   - [ScanAsymptotes]: discontinuity candidates over a caller-chosen window
//   - [Analyze]: assembles the above into one Report
//
// Everything here is heuristic. The sweeps are finite, the thresholds in
// Params are empirical, and highly oscillatory or adversarial functions
// will be misclassified. Treat the output as a best-effort description,
// not ground truth.
package analysis
