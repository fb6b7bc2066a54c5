package forest

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrInvalidParams is returned when a threshold or planting chance lies
// outside the range the rules can use.
var ErrInvalidParams = errors.New("forest: parameter out of range")

// Params holds the transition thresholds plus the initial planting odds used
// by Reset.
type Params struct {
	Rules `yaml:",inline"`

	SeedMatureChance float64 `yaml:"seed_mature_chance"`
	SeedSproutChance float64 `yaml:"seed_sprout_chance"`
	SeedDeadChance   float64 `yaml:"seed_dead_chance"`
}

// Config controls the forest world.
type Config struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Seed    int64   `yaml:"seed"`
	Variant Variant `yaml:"variant"`
	// Workers > 1 steps rows in parallel; 0 or 1 keeps the sequential pass.
	Workers int `yaml:"workers"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the canonical variant on a 96×48 board.
func DefaultConfig() Config {
	return ConfigFor(VariantA)
}

// ConfigFor returns the default configuration carrying a variant's rules.
func ConfigFor(v Variant) Config {
	if v == "" {
		v = VariantA
	}
	return Config{
		Width:   96,
		Height:  48,
		Seed:    1337,
		Variant: v,
		Params: Params{
			Rules:            RulesFor(v),
			SeedMatureChance: 0.08,
			SeedSproutChance: 0.10,
			SeedDeadChance:   0.01,
		},
	}
}

// Validate reports configuration values the world cannot run with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if _, err := ParseVariant(string(c.Variant)); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("forest: workers must not be negative, got %d", c.Workers)
	}
	return c.Params.Validate()
}

// plantingSlack absorbs rounding when the planting chances are summed.
const plantingSlack = 1e-9

// Validate checks the thresholds and planting odds against the bounds that
// WithOverrides and the HUD setters enforce.
func (p Params) Validate() error {
	chances := []struct {
		name string
		v    float64
	}{
		{"sprout_chance", p.SproutChance},
		{"seed_mature_chance", p.SeedMatureChance},
		{"seed_sprout_chance", p.SeedSproutChance},
		{"seed_dead_chance", p.SeedDeadChance},
	}
	for _, c := range chances {
		if c.v < 0 || c.v > 1 {
			return fmt.Errorf("%w: %s=%g not in [0,1]", ErrInvalidParams, c.name, c.v)
		}
	}
	if sum := p.SeedMatureChance + p.SeedSproutChance + p.SeedDeadChance; sum > 1+plantingSlack {
		return fmt.Errorf("%w: planting chances sum to %g", ErrInvalidParams, sum)
	}
	if p.RegrowShade < -1 || p.RegrowShade > RingSize {
		return fmt.Errorf("%w: regrow_shade=%d not in [-1,%d]", ErrInvalidParams, p.RegrowShade, RingSize)
	}
	if p.StallShade < 0 || p.StallShade > RingSize+1 {
		return fmt.Errorf("%w: stall_shade=%d not in [0,%d]", ErrInvalidParams, p.StallShade, RingSize+1)
	}
	if p.DeathShade < 0 || p.DeathShade > RingSize+1 {
		return fmt.Errorf("%w: death_shade=%d not in [0,%d]", ErrInvalidParams, p.DeathShade, RingSize+1)
	}
	if p.DeathAge < 0 {
		return fmt.Errorf("%w: death_age=%d is negative", ErrInvalidParams, p.DeathAge)
	}
	return nil
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().WithOverrides(cfg)
}

// WithOverrides returns a copy of c with the entries of cfg applied.
// Unparseable or out-of-range values are ignored, as are planting chances
// that would sum past 1. A "variant" entry swaps in
// that variant's rule preset before the individual thresholds are applied.
func (c Config) WithOverrides(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["variant"]; ok {
		if parsed, err := ParseVariant(v); err == nil {
			c.Variant = parsed
			c.Params.Rules = RulesFor(parsed)
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Workers = parsed
		}
	}
	p := &c.Params
	planted := [3]float64{p.SeedMatureChance, p.SeedSproutChance, p.SeedDeadChance}
	if v, ok := cfg["sprout_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			p.SproutChance = parsed
		}
	}
	if v, ok := cfg["lethal_dead"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			p.LethalDead = parsed
		}
	}
	if v, ok := cfg["regrow_shade"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= -1 && parsed <= RingSize {
			p.RegrowShade = parsed
		}
	}
	if v, ok := cfg["stall_shade"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= RingSize+1 {
			p.StallShade = parsed
		}
	}
	if v, ok := cfg["death_shade"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= RingSize+1 {
			p.DeathShade = parsed
		}
	}
	if v, ok := cfg["death_age"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			p.DeathAge = parsed
		}
	}
	if v, ok := cfg["seed_mature_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			p.SeedMatureChance = parsed
		}
	}
	if v, ok := cfg["seed_sprout_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			p.SeedSproutChance = parsed
		}
	}
	if v, ok := cfg["seed_dead_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			p.SeedDeadChance = parsed
		}
	}
	if p.SeedMatureChance+p.SeedSproutChance+p.SeedDeadChance > 1+plantingSlack {
		p.SeedMatureChance, p.SeedSproutChance, p.SeedDeadChance = planted[0], planted[1], planted[2]
	}
	return c
}

// LoadFile reads a YAML configuration. Keys missing from the file keep the
// defaults of the variant the file names.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read forest config: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML configuration document.
func Parse(data []byte) (Config, error) {
	var head struct {
		Variant string `yaml:"variant"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return Config{}, fmt.Errorf("parse forest config: %w", err)
	}
	variant, err := ParseVariant(head.Variant)
	if err != nil {
		return Config{}, err
	}

	c := ConfigFor(variant)
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse forest config: %w", err)
	}
	c.Variant = variant
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
