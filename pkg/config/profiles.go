package config

import (
	"fmt"
	"os"
	"sort"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/sigmapilot/lens/pkg/models"
)

// IndicatorSpec names one indicator computed during enrichment, with its
// parameters. Unset parameters take the standard defaults.
type IndicatorSpec struct {
	Name   string  `yaml:"name"`
	Period int     `yaml:"period,omitempty"`
	Fast   int     `yaml:"fast,omitempty"`
	Slow   int     `yaml:"slow,omitempty"`
	Signal int     `yaml:"signal,omitempty"`
	StdDev float64 `yaml:"std_dev,omitempty"`
	Smooth int     `yaml:"smooth,omitempty"`
}

// FeatureProfile is a named bundle selecting what enrichment computes:
// timeframes, indicator list, derivatives flag and trading constraints.
type FeatureProfile struct {
	Name          string             `yaml:"-"`
	Extends       string             `yaml:"extends,omitempty"`
	Timeframes    []string           `yaml:"timeframes"`
	Indicators    []IndicatorSpec    `yaml:"indicators"`
	RequireDerivs bool               `yaml:"requires_derivs"`
	Constraints   models.Constraints `yaml:"constraints"`
}

// CandleLimit returns how many candles to fetch per timeframe: enough to
// warm the longest indicator plus headroom.
func (p *FeatureProfile) CandleLimit() int {
	maxPeriod := 0
	for _, ind := range p.Indicators {
		period := ind.Period
		if ind.Name == "macd" {
			slow, signal := ind.Slow, ind.Signal
			if slow == 0 {
				slow = 26
			}
			if signal == 0 {
				signal = 9
			}
			period = slow + signal
		}
		if period > maxPeriod {
			maxPeriod = period
		}
	}
	if maxPeriod == 0 {
		maxPeriod = 50
	}
	return maxPeriod + 50
}

// ProfileRegistry holds the feature profiles loaded at startup. Profiles
// are immutable after load.
type ProfileRegistry struct {
	profiles map[string]*FeatureProfile
}

// defaultConstraints apply when a profile does not override them.
var defaultConstraints = models.Constraints{
	MaxPositionSizePct: 20,
	MinHoldMinutes:     30,
	MaxTradesPerHour:   4,
	MaxLeverage:        10,
}

// LoadProfiles reads the feature-profile YAML, expands {{.VAR}} env
// references, resolves `extends` inheritance and applies constraint
// defaults.
func LoadProfiles(path string) (*ProfileRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read feature profiles: %w", err)
	}
	return ParseProfiles(ExpandEnv(data))
}

// ParseProfiles builds a registry from YAML content.
func ParseProfiles(data []byte) (*ProfileRegistry, error) {
	var raw map[string]*FeatureProfile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse feature profiles: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("feature profile file defines no profiles")
	}

	reg := &ProfileRegistry{profiles: make(map[string]*FeatureProfile, len(raw))}

	// Resolve in name order so error output is deterministic.
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		resolved, err := resolveProfile(raw, name, nil)
		if err != nil {
			return nil, err
		}
		resolved.Name = name
		if resolved.Constraints == (models.Constraints{}) {
			resolved.Constraints = defaultConstraints
		}
		if len(resolved.Timeframes) == 0 {
			return nil, fmt.Errorf("profile %q has no timeframes", name)
		}
		if len(resolved.Indicators) == 0 {
			return nil, fmt.Errorf("profile %q has no indicators", name)
		}
		reg.profiles[name] = resolved
	}

	return reg, nil
}

// resolveProfile merges a profile over its `extends` chain. Scalar fields
// override parent values; indicator lists concatenate parent-first.
func resolveProfile(raw map[string]*FeatureProfile, name string, seen []string) (*FeatureProfile, error) {
	prof, ok := raw[name]
	if !ok {
		return nil, fmt.Errorf("profile %q extends unknown profile", seen[len(seen)-1])
	}
	for _, s := range seen {
		if s == name {
			return nil, fmt.Errorf("profile inheritance cycle through %q", name)
		}
	}

	out := &FeatureProfile{}
	*out = *prof
	if prof.Extends == "" {
		return out, nil
	}

	parent, err := resolveProfile(raw, prof.Extends, append(seen, name))
	if err != nil {
		return nil, err
	}

	merged := &FeatureProfile{}
	*merged = *parent
	childIndicators := out.Indicators
	out.Indicators = nil
	if err := mergo.Merge(merged, out, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge profile %q: %w", name, err)
	}
	merged.Indicators = append(append([]IndicatorSpec{}, parent.Indicators...), childIndicators...)
	merged.RequireDerivs = parent.RequireDerivs || prof.RequireDerivs
	merged.Extends = prof.Extends
	return merged, nil
}

// Get returns the named profile or nil.
func (r *ProfileRegistry) Get(name string) *FeatureProfile {
	return r.profiles[name]
}

// Names returns the sorted profile names.
func (r *ProfileRegistry) Names() []string {
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
