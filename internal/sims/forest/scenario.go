package forest

// ScenarioResult summarises one seeded run of the forest.
type ScenarioResult struct {
	Seed  int64
	Steps int

	Initial Census
	Final   Census

	PeakLiving   int
	PeakLivingAt int
	PeakMature   int

	// ExtinctAt is the first step with no growing cells, or -1.
	ExtinctAt int
	// SettledAt is the first step whose kinds match the previous generation,
	// or -1 when every step changed something.
	SettledAt int
}

// RunScenario plants a world from cfg with seed and steps it up to steps
// times, stopping early once the forest has died out. A zero seed runs
// cfg.Seed, and the result reports the seed that actually ran.
func RunScenario(cfg Config, seed int64, steps int) (ScenarioResult, error) {
	world, err := NewWithConfig(cfg)
	if err != nil {
		return ScenarioResult{}, err
	}
	world.Reset(seed)

	res := ScenarioResult{
		Seed:      world.Seed(),
		Initial:   world.Census(),
		ExtinctAt: -1,
		SettledAt: -1,
	}
	res.PeakLiving = res.Initial.Living()
	res.PeakMature = res.Initial.Mature

	prev := world.Grid().Hash()
	for step := 1; step <= steps; step++ {
		world.Step()
		res.Steps = step

		census := world.Census()
		if living := census.Living(); living > res.PeakLiving {
			res.PeakLiving = living
			res.PeakLivingAt = step
		}
		if census.Mature > res.PeakMature {
			res.PeakMature = census.Mature
		}

		hash := world.Grid().Hash()
		if res.SettledAt < 0 && hash == prev {
			res.SettledAt = step
		}
		prev = hash

		if census.Living() == 0 {
			res.ExtinctAt = step
			break
		}
	}
	res.Final = world.Census()
	return res, nil
}
