package domain

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed market_baselines.yaml
var defaultBaselinesYAML []byte

// Curve is the shape of the generated demand trend.
type Curve string

const (
	CurveFlat        Curve = "flat"
	CurveLinear      Curve = "linear"
	CurveExponential Curve = "exponential"
)

type IndustryBaseline struct {
	Demand      float64        `yaml:"demand"`
	Competition float64        `yaml:"competition"`
	Opportunity float64        `yaml:"opportunity"`
	Channels    map[string]int `yaml:"channels"`
}

type RegionFactor struct {
	Demand      float64 `yaml:"demand"`
	Competition float64 `yaml:"competition"`
}

type HorizonFactor struct {
	Demand      float64 `yaml:"demand"`
	Opportunity float64 `yaml:"opportunity"`
	Curve       Curve   `yaml:"curve"`
}

// Baselines holds the reference tables used by market analysis.
type Baselines struct {
	DefaultIndustry string                      `yaml:"default_industry"`
	DefaultRegion   string                      `yaml:"default_region"`
	DefaultHorizon  string                      `yaml:"default_horizon"`
	Industries      map[string]IndustryBaseline `yaml:"industries"`
	Regions         map[string]RegionFactor     `yaml:"regions"`
	Horizons        map[string]HorizonFactor    `yaml:"horizons"`
}

// DefaultBaselines parses the embedded tables.
func DefaultBaselines() (*Baselines, error) {
	return ParseBaselines(defaultBaselinesYAML)
}

// ParseBaselines decodes and checks a baselines document. Every default
// key must resolve, since unknown inputs fall back to it.
func ParseBaselines(data []byte) (*Baselines, error) {
	var b Baselines
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decode market baselines: %w", err)
	}
	if _, ok := b.Industries[b.DefaultIndustry]; !ok {
		return nil, fmt.Errorf("market baselines: default industry %q not defined", b.DefaultIndustry)
	}
	if _, ok := b.Regions[b.DefaultRegion]; !ok {
		return nil, fmt.Errorf("market baselines: default region %q not defined", b.DefaultRegion)
	}
	if _, ok := b.Horizons[b.DefaultHorizon]; !ok {
		return nil, fmt.Errorf("market baselines: default horizon %q not defined", b.DefaultHorizon)
	}
	return &b, nil
}

func (b *Baselines) industry(name string) IndustryBaseline {
	if v, ok := b.Industries[name]; ok {
		return v
	}
	return b.Industries[b.DefaultIndustry]
}

func (b *Baselines) region(name string) RegionFactor {
	if v, ok := b.Regions[name]; ok {
		return v
	}
	return b.Regions[b.DefaultRegion]
}

func (b *Baselines) horizon(name string) HorizonFactor {
	if v, ok := b.Horizons[name]; ok {
		return v
	}
	return b.Horizons[b.DefaultHorizon]
}
