package analysis

// Params collects the tunable heuristic constants shared by the analyzers.
// The defaults are empirically chosen, not derived from any correctness
// argument; callers may load alternatives from configuration.
type Params struct {
	// SymmetryTol is the tolerance for f(-x) vs f(x) comparisons.
	SymmetryTol float64
	// SymmetryAgreement is the fraction of finite sample pairs that must
	// agree before even or odd is claimed.
	SymmetryAgreement float64

	// InjectiveTol is the spacing below which two outputs count as equal.
	InjectiveTol float64
	// InjectiveMinSamples is the minimum number of finite samples needed
	// before one-to-one is claimed.
	InjectiveMinSamples int

	// DomainMin, DomainMax and DomainStep bound the fallback domain sweep.
	DomainMin, DomainMax, DomainStep float64
	// DomainDedup merges sweep exclusions closer than this.
	DomainDedup float64
	// DomainMaxExclusions caps how many exclusions are listed explicitly.
	DomainMaxExclusions int

	// RangeMin, RangeMax and RangeStep bound the range sweep.
	RangeMin, RangeMax, RangeStep float64
	// RangeMinSamples is the minimum finite sample count for a verdict.
	RangeMinSamples int

	// AsymptoteSteps is the fixed subdivision count of an asymptote scan.
	AsymptoteSteps int
	// AsymptoteDedupSteps merges candidates closer than this many steps.
	AsymptoteDedupSteps float64
}

// DefaultParams returns the stock heuristic constants.
func DefaultParams() Params {
	return Params{
		SymmetryTol:         1e-10,
		SymmetryAgreement:   0.8,
		InjectiveTol:        1e-8,
		InjectiveMinSamples: 6,
		DomainMin:           -20,
		DomainMax:           20,
		DomainStep:          0.1,
		DomainDedup:         0.05,
		DomainMaxExclusions: 5,
		RangeMin:            -50,
		RangeMax:            50,
		RangeStep:           0.1,
		RangeMinSamples:     10,
		AsymptoteSteps:      2000,
		AsymptoteDedupSteps: 10,
	}
}
