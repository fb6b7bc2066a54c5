package forest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFromMapVariantAndOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"variant":       "B",
		"w":             "40",
		"h":             "-3",
		"seed":          "12",
		"death_age":     "6",
		"sprout_chance": "2",
		"lethal_dead":   "true",
		"workers":       "4",
	})
	if c.Variant != VariantB {
		t.Fatalf("variant = %q, want b", c.Variant)
	}
	if c.Width != 40 || c.Height != DefaultConfig().Height {
		t.Fatalf("size = %dx%d", c.Width, c.Height)
	}
	if c.Seed != 12 || c.Workers != 4 {
		t.Fatalf("seed=%d workers=%d", c.Seed, c.Workers)
	}
	if c.Params.DeathAge != 6 || !c.Params.LethalDead {
		t.Fatalf("overrides not applied: %+v", c.Params.Rules)
	}
	if c.Params.SproutChance != RulesFor(VariantB).SproutChance {
		t.Fatalf("out-of-range sprout chance should keep the preset, got %f", c.Params.SproutChance)
	}
	if c.Params.RegrowShade != -1 {
		t.Fatalf("variant b preset should disable regrowth, got %d", c.Params.RegrowShade)
	}
}

func TestFromMapNil(t *testing.T) {
	if got := FromMap(nil); got != DefaultConfig() {
		t.Fatalf("FromMap(nil) = %+v", got)
	}
}

func TestParseYAML(t *testing.T) {
	doc := []byte(`
variant: b
width: 30
height: 20
seed: 5
params:
  stall_shade: 4
  seed_mature_chance: 0.2
`)
	c, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Variant != VariantB || c.Width != 30 || c.Height != 20 || c.Seed != 5 {
		t.Fatalf("unexpected config %+v", c)
	}
	if c.Params.StallShade != 4 || c.Params.SeedMatureChance != 0.2 {
		t.Fatalf("params not decoded: %+v", c.Params)
	}
	if c.Params.DeathShade != 7 || c.Params.SproutChance != 0.9 {
		t.Fatalf("missing keys should keep variant b defaults: %+v", c.Params)
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	if _, err := Parse([]byte("variant: c\n")); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
	if _, err := Parse([]byte("width: 0\n")); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
	if _, err := Parse([]byte("width: [1\n")); err == nil {
		t.Fatal("expected a YAML syntax error")
	}
}

func TestParseRejectsOutOfRangeParams(t *testing.T) {
	docs := []string{
		"params:\n  sprout_chance: 7\n",
		"params:\n  sprout_chance: -0.1\n",
		"params:\n  regrow_shade: -9\n",
		"params:\n  regrow_shade: 9\n",
		"params:\n  stall_shade: -1\n",
		"params:\n  death_shade: 100\n",
		"params:\n  death_age: -2\n",
		"params:\n  seed_mature_chance: 3\n",
		"params:\n  seed_mature_chance: 0.6\n  seed_sprout_chance: 0.5\n",
	}
	for _, doc := range docs {
		if _, err := Parse([]byte(doc)); !errors.Is(err, ErrInvalidParams) {
			t.Fatalf("%q: expected ErrInvalidParams, got %v", doc, err)
		}
	}

	cfg, err := Parse([]byte("variant: b\nparams:\n  regrow_shade: -1\n  stall_shade: 9\n  death_age: 0\n"))
	if err != nil {
		t.Fatalf("edge values should be accepted: %v", err)
	}
	if cfg.Params.StallShade != 9 || cfg.Params.RegrowShade != -1 {
		t.Fatalf("unexpected params %+v", cfg.Params)
	}
}

func TestNewWithConfigRejectsOutOfRangeParams(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.SproutChance = 1.5
	if _, err := NewWithConfig(cfg); !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("expected ErrInvalidParams, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forest.yaml")
	if err := os.WriteFile(path, []byte("width: 12\nheight: 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.Width != 12 || c.Height != 8 || c.Variant != VariantA {
		t.Fatalf("unexpected config %+v", c)
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestParseVariant(t *testing.T) {
	for in, want := range map[string]Variant{"": VariantA, "a": VariantA, " A ": VariantA, "b": VariantB} {
		got, err := ParseVariant(in)
		if err != nil || got != want {
			t.Fatalf("ParseVariant(%q) = %q, %v", in, got, err)
		}
	}
}

func TestWithOverridesKeepsLoadedValues(t *testing.T) {
	base, err := Parse([]byte("width: 50\nheight: 25\nseed: 9\nparams:\n  seed_dead_chance: 0.3\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	c := base.WithOverrides(map[string]string{"variant": "b", "h": "30"})
	if c.Width != 50 || c.Height != 30 || c.Seed != 9 {
		t.Fatalf("unexpected size/seed %+v", c)
	}
	if c.Params.Rules != RulesFor(VariantB) {
		t.Fatalf("variant override should swap in the b preset, got %+v", c.Params.Rules)
	}
	if c.Params.SeedDeadChance != 0.3 {
		t.Fatalf("planting odds should survive a variant switch, got %f", c.Params.SeedDeadChance)
	}
	if base.Height != 25 {
		t.Fatal("WithOverrides must not modify the receiver")
	}
}

func TestWithOverridesKeepsPlantingOddsBelowOne(t *testing.T) {
	cfg := FromMap(map[string]string{"seed_mature_chance": "0.95", "seed_sprout_chance": "0.2"})
	def := DefaultConfig().Params
	if cfg.Params.SeedMatureChance != def.SeedMatureChance || cfg.Params.SeedSproutChance != def.SeedSproutChance {
		t.Fatalf("overflowing planting odds should be ignored, got %+v", cfg.Params)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
