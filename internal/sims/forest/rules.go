package forest

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownVariant is returned when a rule variant name is not recognised.
var ErrUnknownVariant = errors.New("forest: unknown rule variant")

// Variant names one of the two rule sets the forest automaton ships with.
type Variant string

const (
	// VariantA is the canonical rule set: age-limited growth, dead cells poison
	// living neighbours and regrow as saplings in light shade.
	VariantA Variant = "a"
	// VariantB is the simpler rule set: eager sprouting, no poisoning, dead
	// cells stay dead.
	VariantB Variant = "b"
)

// ParseVariant accepts "a"/"b" in either case.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "a":
		return VariantA, nil
	case "b":
		return VariantB, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}

// Rules holds the thresholds of the transition table. The table itself is
// fixed; only these numbers move.
type Rules struct {
	// SproutChance is the probability that shaded empty soil grows a sprout.
	SproutChance float64 `yaml:"sprout_chance"`
	// LethalDead turns a living cell next to a dead one back into soil.
	LethalDead bool `yaml:"lethal_dead"`
	// RegrowShade is the highest shade at which a dead cell regrows as a
	// sapling. Negative disables regrowth.
	RegrowShade int `yaml:"regrow_shade"`
	// StallShade stops growth at or above this shade.
	StallShade int `yaml:"stall_shade"`
	// DeathShade kills growing cells at or above this shade.
	DeathShade int `yaml:"death_shade"`
	// DeathAge kills growing cells that stalled this many steps. Zero disables.
	DeathAge int `yaml:"death_age"`
}

// RulesFor returns the preset thresholds of a variant. Unknown variants get
// the canonical set.
func RulesFor(v Variant) Rules {
	if v == VariantB {
		return Rules{
			SproutChance: 0.90,
			LethalDead:   false,
			RegrowShade:  -1,
			StallShade:   3,
			DeathShade:   7,
			DeathAge:     0,
		}
	}
	return Rules{
		SproutChance: 0.05,
		LethalDead:   true,
		RegrowShade:  2,
		StallShade:   3,
		DeathShade:   7,
		DeathAge:     4,
	}
}

// DefaultRules returns the canonical rule set.
func DefaultRules() Rules { return RulesFor(VariantA) }
