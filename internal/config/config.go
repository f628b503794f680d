package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/funcscope/internal/analysis"
)

const (
	DefaultXMin      = -10.0
	DefaultXMax      = 10.0
	DefaultYMin      = -10.0
	DefaultYMax      = 10.0
	DefaultThreshold = 50.0
	DefaultDataDir   = ".funcscope"
)

type Config struct {
	DataDir    string          `yaml:"data_dir"`
	View       ViewConfig      `yaml:"view"`
	Heuristics HeuristicConfig `yaml:"heuristics"`
}

type ViewConfig struct {
	XMin       float64 `yaml:"x_min"`
	XMax       float64 `yaml:"x_max"`
	YMin       float64 `yaml:"y_min"`
	YMax       float64 `yaml:"y_max"`
	YThreshold float64 `yaml:"y_threshold"`
}

// HeuristicConfig exposes the analyzer thresholds for tuning. These are
// empirical values; see the analysis package for what each controls.
type HeuristicConfig struct {
	SymmetryTol         float64 `yaml:"symmetry_tol"`
	SymmetryAgreement   float64 `yaml:"symmetry_agreement"`
	InjectiveTol        float64 `yaml:"injective_tol"`
	InjectiveMinSamples int     `yaml:"injective_min_samples"`
	DomainMin           float64 `yaml:"domain_min"`
	DomainMax           float64 `yaml:"domain_max"`
	DomainStep          float64 `yaml:"domain_step"`
	DomainDedup         float64 `yaml:"domain_dedup"`
	DomainMaxExclusions int     `yaml:"domain_max_exclusions"`
	RangeMin            float64 `yaml:"range_min"`
	RangeMax            float64 `yaml:"range_max"`
	RangeStep           float64 `yaml:"range_step"`
	RangeMinSamples     int     `yaml:"range_min_samples"`
	AsymptoteSteps      int     `yaml:"asymptote_steps"`
	AsymptoteDedupSteps float64 `yaml:"asymptote_dedup_steps"`
}

func DefaultConfig() *Config {
	p := analysis.DefaultParams()
	return &Config{
		DataDir: DefaultDataDir,
		View: ViewConfig{
			XMin:       DefaultXMin,
			XMax:       DefaultXMax,
			YMin:       DefaultYMin,
			YMax:       DefaultYMax,
			YThreshold: DefaultThreshold,
		},
		Heuristics: HeuristicConfig{
			SymmetryTol:         p.SymmetryTol,
			SymmetryAgreement:   p.SymmetryAgreement,
			InjectiveTol:        p.InjectiveTol,
			InjectiveMinSamples: p.InjectiveMinSamples,
			DomainMin:           p.DomainMin,
			DomainMax:           p.DomainMax,
			DomainStep:          p.DomainStep,
			DomainDedup:         p.DomainDedup,
			DomainMaxExclusions: p.DomainMaxExclusions,
			RangeMin:            p.RangeMin,
			RangeMax:            p.RangeMax,
			RangeStep:           p.RangeStep,
			RangeMinSamples:     p.RangeMinSamples,
			AsymptoteSteps:      p.AsymptoteSteps,
			AsymptoteDedupSteps: p.AsymptoteDedupSteps,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params converts the yaml view of the heuristics into analyzer parameters.
func (c *Config) Params() analysis.Params {
	h := c.Heuristics
	return analysis.Params{
		SymmetryTol:         h.SymmetryTol,
		SymmetryAgreement:   h.SymmetryAgreement,
		InjectiveTol:        h.InjectiveTol,
		InjectiveMinSamples: h.InjectiveMinSamples,
		DomainMin:           h.DomainMin,
		DomainMax:           h.DomainMax,
		DomainStep:          h.DomainStep,
		DomainDedup:         h.DomainDedup,
		DomainMaxExclusions: h.DomainMaxExclusions,
		RangeMin:            h.RangeMin,
		RangeMax:            h.RangeMax,
		RangeStep:           h.RangeStep,
		RangeMinSamples:     h.RangeMinSamples,
		AsymptoteSteps:      h.AsymptoteSteps,
		AsymptoteDedupSteps: h.AsymptoteDedupSteps,
	}
}
