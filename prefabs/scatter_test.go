package prefabs

import (
	"math"
	"testing"
)

func TestScatterHonoursBoundsAndClearance(t *testing.T) {
	p := ScatterParams{Count: 24, HalfExtent: 25, Clearance: 4, Radius: 0.6, Seed: 7}
	trees, err := Scatter("scatter.tengo", p)
	if err != nil {
		t.Fatalf("scatter: %v", err)
	}
	if len(trees) != p.Count {
		t.Fatalf("expected %d trees, got %d", p.Count, len(trees))
	}

	limit := p.HalfExtent - p.Radius
	for i, tr := range trees {
		if math.Abs(tr[0]) > limit || math.Abs(tr[1]) > limit {
			t.Fatalf("tree %d at %v outside the ground", i, tr)
		}
		if math.Hypot(tr[0], tr[1]) < p.Clearance {
			t.Fatalf("tree %d at %v inside the spawn clearance", i, tr)
		}
		for j := 0; j < i; j++ {
			if math.Hypot(tr[0]-trees[j][0], tr[1]-trees[j][1]) < 2*p.Radius {
				t.Fatalf("trees %d and %d overlap", i, j)
			}
		}
	}
}

func TestScatterIsDeterministic(t *testing.T) {
	p := ScatterParams{Count: 10, HalfExtent: 25, Clearance: 3, Radius: 0.5, Seed: 42}
	a, err := Scatter("scatter.tengo", p)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Scatter("scatter.tengo", p)
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != len(b) {
		t.Fatalf("length mismatch %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tree %d differs: %v vs %v", i, a[i], b[i])
		}
	}

	p.Seed = 43
	c, err := Scatter("scatter.tengo", p)
	if err != nil {
		t.Fatal(err)
	}
	if len(c) > 0 && len(a) > 0 && c[0] == a[0] {
		t.Fatalf("different seeds should give different layouts")
	}
}

func TestScatterZeroCountAndMissingScript(t *testing.T) {
	trees, err := Scatter("scatter.tengo", ScatterParams{})
	if err != nil || trees != nil {
		t.Fatalf("zero count: got %v, %v", trees, err)
	}
	if _, err := Scatter("nope.tengo", ScatterParams{Count: 1, HalfExtent: 5}); err == nil {
		t.Fatalf("expected error for missing script")
	}
}
