package engine

import (
	"context"
	"time"
)

type CompleteResult struct {
	Building        *Building
	CoinsEarned     int
	TotalCurrency   int
	TotalStudyHours float64
	NewRibbons      []Ribbon
}

// StartSession validates the target and hands back a session handle.
// Nothing is stored until completion; cancelling is dropping the handle.
func (s *Service) StartSession(ctx context.Context, cityID string, goalMinutes int) (*Session, error) {
	if goalMinutes < 1 {
		return nil, ValidationError{Field: "goalMinutes", Reason: "must be at least 1"}
	}
	if _, ok := s.City(cityID); !ok {
		return nil, NotFoundError{Kind: "city", ID: cityID}
	}
	return &Session{
		CityID:      cityID,
		GoalMinutes: goalMinutes,
		StartedAt:   time.Now().UTC(),
	}, nil
}

// CompleteSession turns an elapsed session into reward state, as one
// logical transaction: reward math, classification against the
// pre-session hour total, building append, both wallets, hours, ribbon
// recompute, snapshot write.
func (s *Service) CompleteSession(ctx context.Context, cityID string, actualMinutes, goalMinutes int) (*CompleteResult, error) {
	if actualMinutes < 0 {
		return nil, ValidationError{Field: "actualMinutes", Reason: "must not be negative"}
	}
	if goalMinutes < 1 {
		return nil, ValidationError{Field: "goalMinutes", Reason: "must be at least 1"}
	}
	city, ok := s.City(cityID)
	if !ok {
		return nil, NotFoundError{Kind: "city", ID: cityID}
	}

	reward := ComputeReward(actualMinutes, goalMinutes)
	buildingType := Classify(s.state.TotalStudyHours, actualMinutes)

	building := &Building{
		ID:              s.ids.NewID(),
		SessionDuration: actualMinutes,
		GoalDuration:    goalMinutes,
		Completed:       reward.Completed,
		Height:          reward.Height,
		RoomsUnlocked:   reward.RoomsUnlocked,
		Decorations:     []string{},
		Type:            buildingType,
	}

	earnedBefore := make(map[string]bool, len(s.state.Ribbons))
	for _, r := range s.state.Ribbons {
		earnedBefore[r.ID] = r.Earned
	}

	city.Buildings = append(city.Buildings, building)
	city.LocalCurrency += reward.CoinsEarned
	s.state.TotalCurrency += reward.CoinsEarned
	s.state.TotalStudyHours += float64(actualMinutes) / 60
	RecomputeRibbons(s.state.Ribbons, s.state.TotalStudyHours)

	var newRibbons []Ribbon
	for _, r := range s.state.Ribbons {
		if r.Earned && !earnedBefore[r.ID] {
			newRibbons = append(newRibbons, r)
		}
	}

	err := s.saveKeys(ctx, KeyCollections, KeyTotalCurrency, KeyTotalStudyHours, KeyRibbons)
	if err != nil {
		return nil, err
	}

	return &CompleteResult{
		Building:        building,
		CoinsEarned:     reward.CoinsEarned,
		TotalCurrency:   s.state.TotalCurrency,
		TotalStudyHours: s.state.TotalStudyHours,
		NewRibbons:      newRibbons,
	}, nil
}
