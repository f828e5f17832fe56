package engine

import (
	"context"
	"strings"
)

// CreateCity adds a new empty collection. The theme token is stored as
// given; only the name is validated.
func (s *Service) CreateCity(ctx context.Context, name, theme string) (*City, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ValidationError{Field: "name", Reason: "must not be empty"}
	}

	city := &City{
		ID:        s.ids.NewID(),
		Name:      trimmed,
		Theme:     theme,
		Buildings: []*Building{},
	}
	s.state.Cities = append(s.state.Cities, city)

	if err := s.saveKeys(ctx, KeyCollections); err != nil {
		return nil, err
	}
	return city, nil
}

// DeleteCity removes a city and its buildings. Unknown ids are a no-op
// so deletes stay idempotent. Global totals are never reduced: hours
// studied and coins earned outlive the city they came from.
func (s *Service) DeleteCity(ctx context.Context, id string) error {
	for i, c := range s.state.Cities {
		if c.ID != id {
			continue
		}
		s.state.Cities = append(s.state.Cities[:i], s.state.Cities[i+1:]...)
		return s.saveKeys(ctx, KeyCollections)
	}
	return nil
}
