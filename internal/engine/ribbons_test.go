package engine

import (
	"reflect"
	"testing"
)

func TestRecomputeRibbonsIdempotent(t *testing.T) {
	ribbons := BuiltinRibbons()
	RecomputeRibbons(ribbons, 12.5)
	once := make([]Ribbon, len(ribbons))
	copy(once, ribbons)

	RecomputeRibbons(ribbons, 12.5)
	if !reflect.DeepEqual(once, ribbons) {
		t.Fatalf("recompute is not idempotent:\n%+v\n%+v", once, ribbons)
	}
}

func TestRecomputeRibbonsThresholds(t *testing.T) {
	ribbons := BuiltinRibbons()

	RecomputeRibbons(ribbons, 0)
	for _, r := range ribbons {
		if r.Earned {
			t.Fatalf("ribbon %s earned at 0 hours", r.ID)
		}
	}

	RecomputeRibbons(ribbons, 10)
	want := map[string]bool{
		"first_hour": true, "dedicated": true, "scholar": true,
		"marathoner": false, "half_century": false, "centurion": false,
	}
	for _, r := range ribbons {
		if r.Earned != want[r.ID] {
			t.Fatalf("at 10h, ribbon %s earned=%v, want %v", r.ID, r.Earned, want[r.ID])
		}
	}

	// Monotone: more hours never un-earns a ribbon.
	RecomputeRibbons(ribbons, 200)
	for _, r := range ribbons {
		if !r.Earned {
			t.Fatalf("ribbon %s not earned at 200 hours", r.ID)
		}
	}
}

func TestBuiltinRibbonsStable(t *testing.T) {
	a := BuiltinRibbons()
	b := BuiltinRibbons()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("builtin ribbon defs are not stable")
	}
	seen := map[string]bool{}
	for _, r := range a {
		if seen[r.ID] {
			t.Fatalf("duplicate ribbon id %s", r.ID)
		}
		seen[r.ID] = true
		if r.HoursRequired < 0 {
			t.Fatalf("ribbon %s has negative hours", r.ID)
		}
	}
}
