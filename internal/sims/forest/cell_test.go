package forest

import "testing"

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

// noDraw fails the test if the transition consults randomness.
type noDraw struct{ t *testing.T }

func (n noDraw) Float64() float64 {
	n.t.Helper()
	n.t.Fatal("unexpected random draw")
	return 0
}

func ringOf(kinds ...Kind) [RingSize]Cell {
	var ring [RingSize]Cell
	for i, k := range kinds {
		ring[i] = NewCell(k)
	}
	return ring
}

func fullShade() [RingSize]Cell {
	return ringOf(KindMature, KindMature, KindMature, KindMature, KindMature, KindMature, KindMature, KindMature)
}

func TestNextCycle(t *testing.T) {
	cases := map[Kind]Kind{
		KindEmpty:   KindEmpty,
		KindSprout:  KindSapling,
		KindSapling: KindPole,
		KindPole:    KindMature,
		KindMature:  KindMature,
		KindDead:    KindDead,
		Kind(9):     KindEmpty,
	}
	for from, want := range cases {
		got := NewCellAged(from, 3).Next()
		if got.Kind() != want {
			t.Fatalf("Next(%s) = %s, want %s", from, got.Kind(), want)
		}
		if got.Age() != 0 {
			t.Fatalf("Next(%s) should start a fresh cell, age=%d", from, got.Age())
		}
	}
	for _, k := range []Kind{KindEmpty, KindMature, KindDead} {
		c := NewCell(k)
		if c.Next().Next().Kind() != k {
			t.Fatalf("%s should be a fixed point of Next", k)
		}
	}
}

func TestFullShadeKillsGrowingCells(t *testing.T) {
	for _, v := range []Variant{VariantA, VariantB} {
		rules := RulesFor(v)
		for k := KindSprout; k <= KindMature; k++ {
			for _, age := range []int{0, 1, 17} {
				got := NewCellAged(k, age).React(fullShade(), rules, noDraw{t})
				if got.Kind() != KindDead {
					t.Fatalf("variant %s: %s aged %d under full shade became %s, want dead", v, k, age, got.Kind())
				}
			}
		}
	}
}

func TestEmptyWithoutShadeStaysEmpty(t *testing.T) {
	for _, v := range []Variant{VariantA, VariantB} {
		c := NewCell(KindEmpty)
		for i := 0; i < 10; i++ {
			c = c.React(ringOf(KindSprout, KindPole, KindDead), RulesFor(v), noDraw{t})
			if c.Kind() != KindEmpty {
				t.Fatalf("variant %s: unshaded soil changed to %s", v, c.Kind())
			}
		}
		if c.Age() != 10 {
			t.Fatalf("variant %s: unshaded soil age = %d, want 10", v, c.Age())
		}
	}
}

func TestShadedEmptySprouts(t *testing.T) {
	rules := DefaultRules()
	ring := ringOf(KindMature)

	got := NewCell(KindEmpty).React(ring, rules, fixedRand(0.01))
	if got.Kind() != KindSprout || got.Age() != 0 {
		t.Fatalf("low draw should sprout, got %s age %d", got.Kind(), got.Age())
	}

	got = NewCellAged(KindEmpty, 2).React(ring, rules, fixedRand(0.5))
	if got.Kind() != KindEmpty || got.Age() != 3 {
		t.Fatalf("high draw should leave soil, got %s age %d", got.Kind(), got.Age())
	}

	got = NewCell(KindEmpty).React(ring, RulesFor(VariantB), fixedRand(0.5))
	if got.Kind() != KindSprout {
		t.Fatalf("variant b sprouts eagerly, got %s", got.Kind())
	}
}

func TestDeadNeighbourPoisonsInVariantA(t *testing.T) {
	ring := ringOf(KindDead, KindMature, KindMature, KindMature)
	for k := KindSprout; k <= KindMature; k++ {
		got := NewCell(k).React(ring, RulesFor(VariantA), noDraw{t})
		if got.Kind() != KindEmpty {
			t.Fatalf("variant a: %s next to dead became %s, want empty", k, got.Kind())
		}
		got = NewCell(k).React(ring, RulesFor(VariantB), noDraw{t})
		if got.Kind() != k {
			t.Fatalf("variant b: %s next to dead under shade 3 became %s, want stall", k, got.Kind())
		}
	}
}

func TestDeadCellRegrowth(t *testing.T) {
	light := ringOf(KindMature, KindMature)
	heavy := ringOf(KindMature, KindMature, KindMature)

	if got := NewCell(KindDead).React(light, RulesFor(VariantA), noDraw{t}); got.Kind() != KindSapling {
		t.Fatalf("variant a: dead in light shade became %s, want sapling", got.Kind())
	}
	if got := NewCellAged(KindDead, 5).React(heavy, RulesFor(VariantA), noDraw{t}); got.Kind() != KindDead || got.Age() != 0 {
		t.Fatalf("variant a: dead in heavy shade became %s age %d", got.Kind(), got.Age())
	}
	for _, ring := range [][RingSize]Cell{{}, light, heavy} {
		if got := NewCell(KindDead).React(ring, RulesFor(VariantB), noDraw{t}); got.Kind() != KindDead {
			t.Fatalf("variant b: dead cell regrew to %s", got.Kind())
		}
	}
}

func TestGrowthStallsAndAges(t *testing.T) {
	moderate := ringOf(KindMature, KindMature, KindMature)

	a := NewCell(KindSapling)
	for i := 1; i < 4; i++ {
		a = a.React(moderate, RulesFor(VariantA), noDraw{t})
		if a.Kind() != KindSapling || a.Age() != i {
			t.Fatalf("step %d: stalled sapling = %s age %d", i, a.Kind(), a.Age())
		}
	}
	a = a.React(moderate, RulesFor(VariantA), noDraw{t})
	if a.Kind() != KindDead {
		t.Fatalf("variant a: sapling stalled for four steps became %s, want dead", a.Kind())
	}

	b := NewCell(KindSapling)
	for i := 0; i < 20; i++ {
		b = b.React(moderate, RulesFor(VariantB), noDraw{t})
	}
	if b.Kind() != KindSapling || b.Age() != 20 {
		t.Fatalf("variant b: stalled sapling = %s age %d", b.Kind(), b.Age())
	}
}

func TestLightShadeAdvancesCycle(t *testing.T) {
	ring := ringOf(KindMature, KindMature, KindSprout)
	c := NewCell(KindSprout)
	for _, want := range []Kind{KindSapling, KindPole, KindMature, KindMature} {
		c = c.React(ring, DefaultRules(), noDraw{t})
		if c.Kind() != want {
			t.Fatalf("got %s, want %s", c.Kind(), want)
		}
	}
}

func TestIdentityIgnoresAge(t *testing.T) {
	young := NewCellAged(KindPole, 0)
	old := NewCellAged(KindPole, 12)
	if !young.Equal(old) || young.Hash() != old.Hash() {
		t.Fatal("cells of the same kind must compare and hash equal regardless of age")
	}
	if young.Equal(NewCell(KindMature)) {
		t.Fatal("cells of different kinds must differ")
	}

	old.SetKind(KindPole)
	if old.Age() != 0 {
		t.Fatalf("SetKind must restart age, got %d", old.Age())
	}
	if NewCellAged(KindSprout, -3).Age() != 0 {
		t.Fatal("negative ages clamp to zero")
	}
}
