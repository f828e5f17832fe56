package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Logical snapshot keys. Each key holds one JSON (or plain numeric) value.
const (
	KeyCollections     = "collections"
	KeyTotalCurrency   = "totalCurrency"
	KeyTotalStudyHours = "totalStudyHours"
	KeyRibbons         = "ribbons"
)

// SnapshotStore is the persistence collaborator: durable key-value
// load/save of serialized state. SaveAll writes one logical transaction.
type SnapshotStore interface {
	Load(ctx context.Context, key string) (value string, ok bool, err error)
	Save(ctx context.Context, key, value string) error
	SaveAll(ctx context.Context, entries map[string]string) error
}

// State is the whole progression state: owned by the Service, mutated
// only through its operations.
type State struct {
	Cities          []*City
	TotalCurrency   int
	TotalStudyHours float64
	Ribbons         []Ribbon
}

func newEmptyState() *State {
	s := &State{Ribbons: BuiltinRibbons()}
	RecomputeRibbons(s.Ribbons, 0)
	return s
}

// loadState reads every snapshot key, filling defaults for absent keys
// and for fields missing from older snapshots. It never fails on shape
// drift, only on storage errors or unparseable values.
func loadState(ctx context.Context, store SnapshotStore) (*State, error) {
	st := newEmptyState()

	raw, ok, err := store.Load(ctx, KeyCollections)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", KeyCollections, err)
	}
	if ok {
		cities, err := unmarshalCities(raw)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", KeyCollections, err)
		}
		st.Cities = cities
	}

	raw, ok, err = store.Load(ctx, KeyTotalCurrency)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", KeyTotalCurrency, err)
	}
	if ok {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", KeyTotalCurrency, err)
		}
		if n < 0 {
			n = 0
		}
		st.TotalCurrency = n
	}

	raw, ok, err = store.Load(ctx, KeyTotalStudyHours)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", KeyTotalStudyHours, err)
	}
	if ok {
		h, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", KeyTotalStudyHours, err)
		}
		if h < 0 {
			h = 0
		}
		st.TotalStudyHours = h
	}

	raw, ok, err = store.Load(ctx, KeyRibbons)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", KeyRibbons, err)
	}
	if ok {
		saved, err := unmarshalRibbons(raw)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", KeyRibbons, err)
		}
		mergeRibbonFlags(st.Ribbons, saved)
	}
	// Earned is derived state: whatever was saved, the hours decide.
	RecomputeRibbons(st.Ribbons, st.TotalStudyHours)

	return st, nil
}

func unmarshalCities(raw string) ([]*City, error) {
	var cities []*City
	if err := json.Unmarshal([]byte(raw), &cities); err != nil {
		return nil, err
	}
	out := cities[:0]
	for _, c := range cities {
		if c == nil {
			continue
		}
		normalizeCity(c)
		out = append(out, c)
	}
	return out, nil
}

// normalizeCity fills defaults for fields absent from older snapshots:
// nil buildings/decorations become empty, a missing buildingType becomes
// residential, and a zero height (never legal; the floor is MinHeight)
// marks a pre-height snapshot whose derived fields are recomputed.
func normalizeCity(c *City) {
	if c.Buildings == nil {
		c.Buildings = []*Building{}
	}
	if c.LocalCurrency < 0 {
		c.LocalCurrency = 0
	}
	kept := c.Buildings[:0]
	for _, b := range c.Buildings {
		if b == nil {
			continue
		}
		normalizeBuilding(b)
		kept = append(kept, b)
	}
	c.Buildings = kept
}

func normalizeBuilding(b *Building) {
	if b.Decorations == nil {
		b.Decorations = []string{}
	}
	if !b.Type.IsValid() {
		b.Type = DefaultBuildingType
	}
	if b.SessionDuration < 0 {
		b.SessionDuration = 0
	}
	if b.Height == 0 && b.GoalDuration >= 1 {
		r := ComputeReward(b.SessionDuration, b.GoalDuration)
		b.Completed = r.Completed
		b.Height = r.Height
		b.RoomsUnlocked = r.RoomsUnlocked
	}
}

func unmarshalRibbons(raw string) ([]Ribbon, error) {
	var ribbons []Ribbon
	if err := json.Unmarshal([]byte(raw), &ribbons); err != nil {
		return nil, err
	}
	return ribbons, nil
}

// mergeRibbonFlags copies saved earned flags onto the fixed defs by id.
// Unknown saved ids are dropped; defs absent from the snapshot stay as
// they were. The follow-up recompute keeps the invariant regardless.
func mergeRibbonFlags(defs []Ribbon, saved []Ribbon) {
	earned := make(map[string]bool, len(saved))
	for _, r := range saved {
		earned[r.ID] = r.Earned
	}
	for i := range defs {
		if e, ok := earned[defs[i].ID]; ok {
			defs[i].Earned = e
		}
	}
}

func marshalCities(cities []*City) (string, error) {
	b, err := json.Marshal(cities)
	if err != nil {
		return "", fmt.Errorf("marshal cities: %w", err)
	}
	return string(b), nil
}

func marshalRibbons(ribbons []Ribbon) (string, error) {
	b, err := json.Marshal(ribbons)
	if err != nil {
		return "", fmt.Errorf("marshal ribbons: %w", err)
	}
	return string(b), nil
}

func formatCurrency(n int) string { return strconv.Itoa(n) }

func formatHours(h float64) string { return strconv.FormatFloat(h, 'f', -1, 64) }
