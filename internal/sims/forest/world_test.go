package forest

import (
	"slices"
	"testing"

	"forest-ca/internal/core"
)

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 24
	cfg.Seed = 99

	world, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	world.Reset(0)
	initial := world.Grid().Clone()
	initialCells := append([]uint8(nil), world.Cells()...)

	world.Step()
	world.Step()
	world.Reset(0)

	if !world.Grid().Equal(initial) {
		t.Fatal("Reset with config seed not deterministic")
	}
	if !slices.Equal(initialCells, world.Cells()) {
		t.Fatal("Reset with config seed not deterministic for display buffer")
	}
	if world.Steps() != 0 {
		t.Fatalf("Reset should clear the step counter, got %d", world.Steps())
	}

	world.Reset(777)
	seeded := world.Grid().Clone()
	world.Reset(777)
	if !world.Grid().Equal(seeded) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
	if seeded.Equal(initial) {
		t.Fatal("different seeds should plant different forests")
	}
}

func TestStepSequenceDeterministic(t *testing.T) {
	run := func(workers int) uint64 {
		cfg := DefaultConfig()
		cfg.Width, cfg.Height = 48, 32
		cfg.Workers = workers
		world, err := NewWithConfig(cfg)
		if err != nil {
			t.Fatalf("NewWithConfig: %v", err)
		}
		world.Reset(4)
		for i := 0; i < 30; i++ {
			world.Step()
		}
		return world.Grid().Hash()
	}
	if run(0) != run(0) {
		t.Fatal("sequential runs with the same seed diverged")
	}
	if run(2) != run(6) {
		t.Fatal("parallel runs with the same seed diverged across worker counts")
	}
}

func TestPlantingFollowsChances(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 10, 10
	cfg.Params.SeedMatureChance = 1
	cfg.Params.SeedSproutChance = 0
	cfg.Params.SeedDeadChance = 0
	world, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	world.Reset(3)
	if got := world.Census().Mature; got != 100 {
		t.Fatalf("expected every cell mature, got %d", got)
	}

	cfg.Params.SeedMatureChance = 0
	cfg.Params.SeedSproutChance = 0
	cfg.Params.SeedDeadChance = 0
	world, _ = NewWithConfig(cfg)
	world.Reset(3)
	if got := world.Census().Empty; got != 100 {
		t.Fatalf("expected bare soil, got %d empty", got)
	}
}

func TestDisplayTracksKinds(t *testing.T) {
	world, err := NewWorld(6, 1)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	for i, k := range Kinds {
		world.Grid().SetKind(i, 0, k)
	}
	world.rebuildDisplay()
	want := []uint8{0, 1, 2, 3, 4, 5}
	if !slices.Equal(world.Cells(), want) {
		t.Fatalf("display = %v, want %v", world.Cells(), want)
	}
	if len(world.Palette()) != len(Kinds) {
		t.Fatalf("palette has %d entries, want %d", len(world.Palette()), len(Kinds))
	}
	if DisplayValue(Kind(42)) != DisplayValue(KindEmpty) {
		t.Fatal("unknown kinds should render as soil")
	}
}

func TestShadeMap(t *testing.T) {
	world, _ := NewWorld(3, 3)
	world.Grid().SetKind(1, 1, KindMature)
	world.Grid().SetKind(0, 0, KindMature)
	shade := world.ShadeMap()
	if shade[4] != 1 {
		t.Fatalf("centre shade = %d, want 1", shade[4])
	}
	if shade[0] != 1 {
		t.Fatalf("corner shade = %d, want 1", shade[0])
	}
	if shade[8] != 1 || shade[1] != 2 {
		t.Fatalf("unexpected shade map %v", shade)
	}
}

func TestNewWorldRejectsBadSize(t *testing.T) {
	if _, err := NewWorld(0, 5); err == nil {
		t.Fatal("expected an error for zero width")
	}
}

func TestRegisteredFactories(t *testing.T) {
	for _, name := range []string{"forest", "forest-b"} {
		factory, err := core.Lookup(name)
		if err != nil {
			t.Fatalf("lookup %s: %v", name, err)
		}
		sim := factory(map[string]string{"w": "20", "h": "10", "variant": "a"})
		if sim.Name() != name {
			t.Fatalf("factory %s built sim %s", name, sim.Name())
		}
		if sim.Size() != (core.Size{W: 20, H: 10}) {
			t.Fatalf("factory %s built size %+v", name, sim.Size())
		}
		if len(sim.Cells()) != 200 {
			t.Fatalf("factory %s display has %d cells", name, len(sim.Cells()))
		}
		sim.Step()
	}
}

func TestParameterSetters(t *testing.T) {
	world, _ := NewWorld(8, 8)

	if !world.SetFloatParameter("sprout_chance", 50) {
		t.Fatal("expected sprout chance to be adjustable")
	}
	if got := world.Rules().SproutChance; got != 0.5 {
		t.Fatalf("expected sprout chance 0.5, got %f", got)
	}
	if !world.SetFloatParameter("sprout_chance", 150) {
		t.Fatal("expected setter to clamp values above max")
	}
	if got := world.Rules().SproutChance; got != 1 {
		t.Fatalf("expected sprout chance to clamp to 1, got %f", got)
	}

	if !world.SetIntParameter("death_shade", 40) {
		t.Fatal("expected death shade to be adjustable")
	}
	if got := world.Rules().DeathShade; got != RingSize+1 {
		t.Fatalf("expected death shade clamped to %d, got %d", RingSize+1, got)
	}
	if !world.SetFloatParameter("seed_mature_chance", 1) {
		t.Fatal("expected planting chance to be adjustable")
	}
	if err := world.Config().Validate(); err != nil {
		t.Fatalf("planting odds must stay valid after HUD edits: %v", err)
	}

	if world.SetIntParameter("sprout_chance", 1) {
		t.Fatal("float parameter must not accept integer updates")
	}
	if world.SetFloatParameter("nope", 0.1) {
		t.Fatal("unknown keys must be rejected")
	}

	snap := world.Parameters()
	p, ok := snap.Lookup("death_shade")
	if !ok || p.Value != "9" {
		t.Fatalf("snapshot death_shade = %+v, %v", p, ok)
	}
	if p, ok := snap.Lookup("variant"); !ok || p.Value != "a" {
		t.Fatalf("snapshot variant = %+v, %v", p, ok)
	}
}

func TestStatusLine(t *testing.T) {
	world, _ := NewWorld(4, 4)
	world.Grid().SetKind(0, 0, KindMature)
	world.Grid().SetKind(1, 0, KindSprout)
	world.Grid().SetKind(3, 3, KindDead)
	if got, want := world.Status(), "step 0  living 2  mature 1  dead 1"; got != want {
		t.Fatalf("Status() = %q, want %q", got, want)
	}
}
