package engine

import (
	"context"
	"fmt"
)

// Service is the progression store. It exclusively owns the State and is
// the only component allowed to mutate it; every operation validates
// before mutating, then writes the touched snapshot keys.
//
// Single-actor model: one call in flight at a time, no locking.
type Service struct {
	snapshots SnapshotStore
	ids       IDSource
	state     *State
}

func NewService(ctx context.Context, snapshots SnapshotStore) (*Service, error) {
	return NewServiceWithIDs(ctx, snapshots, RandomIDs())
}

func NewServiceWithIDs(ctx context.Context, snapshots SnapshotStore, ids IDSource) (*Service, error) {
	st, err := loadState(ctx, snapshots)
	if err != nil {
		return nil, err
	}
	return &Service{snapshots: snapshots, ids: ids, state: st}, nil
}

// Cities returns the collections in creation order. Callers read only;
// all mutation goes through Service operations.
func (s *Service) Cities() []*City { return s.state.Cities }

func (s *Service) City(id string) (*City, bool) {
	for _, c := range s.state.Cities {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// FindBuilding locates a building and its owning city.
func (s *Service) FindBuilding(buildingID string) (*Building, *City, bool) {
	for _, c := range s.state.Cities {
		for _, b := range c.Buildings {
			if b.ID == buildingID {
				return b, c, true
			}
		}
	}
	return nil, nil, false
}

func (s *Service) TotalCurrency() int { return s.state.TotalCurrency }

func (s *Service) TotalStudyHours() float64 { return s.state.TotalStudyHours }

func (s *Service) Ribbons() []Ribbon {
	out := make([]Ribbon, len(s.state.Ribbons))
	copy(out, s.state.Ribbons)
	return out
}

// saveKeys persists the given snapshot keys as one write. The in-memory
// state is authoritative either way: a failed write is reported but not
// rolled back, losing at most this transaction on a crash.
func (s *Service) saveKeys(ctx context.Context, keys ...string) error {
	entries := make(map[string]string, len(keys))
	for _, key := range keys {
		switch key {
		case KeyCollections:
			v, err := marshalCities(s.state.Cities)
			if err != nil {
				return err
			}
			entries[key] = v
		case KeyTotalCurrency:
			entries[key] = formatCurrency(s.state.TotalCurrency)
		case KeyTotalStudyHours:
			entries[key] = formatHours(s.state.TotalStudyHours)
		case KeyRibbons:
			v, err := marshalRibbons(s.state.Ribbons)
			if err != nil {
				return err
			}
			entries[key] = v
		default:
			return fmt.Errorf("unknown snapshot key: %s", key)
		}
	}
	if err := s.snapshots.SaveAll(ctx, entries); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
