package engine

import "time"

type BuildingType string

const (
	BuildingResidential   BuildingType = "residential"
	BuildingOffice        BuildingType = "office"
	BuildingEntertainment BuildingType = "entertainment"
	BuildingPark          BuildingType = "park"
)

func (b BuildingType) IsValid() bool {
	switch b {
	case BuildingResidential, BuildingOffice, BuildingEntertainment, BuildingPark:
		return true
	default:
		return false
	}
}

// DefaultBuildingType is used for snapshots written before building types existed.
const DefaultBuildingType = BuildingResidential

// Building is the persisted record of one finished study session.
// Decorations is the only field that changes after creation.
type Building struct {
	ID              string       `json:"id"`
	SessionDuration int          `json:"sessionDurationMinutes"`
	GoalDuration    int          `json:"goalDurationMinutes"`
	Completed       bool         `json:"completed"`
	Height          float64      `json:"height"`
	RoomsUnlocked   int          `json:"roomsUnlocked"`
	Decorations     []string     `json:"decorations"`
	Type            BuildingType `json:"buildingType"`
}

func (b *Building) HasDecoration(id string) bool {
	for _, d := range b.Decorations {
		if d == id {
			return true
		}
	}
	return false
}

// City groups the buildings earned for one subject. Theme is an opaque
// display token; the engine stores it untouched.
type City struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Theme         string      `json:"theme"`
	Buildings     []*Building `json:"buildings"`
	LocalCurrency int         `json:"localCurrency"`
}

// Ribbon is a cumulative-hours milestone. The set of ribbons is fixed;
// only Earned varies, and it is always recomputed from total hours.
type Ribbon struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	HoursRequired float64  `json:"hoursRequired"`
	Emoji         string   `json:"emoji"`
	Unlocks       []string `json:"unlocks"`
	Earned        bool     `json:"earned"`
}

// Session is the handle returned by StartSession. It carries no store
// state; cancelling a session is just dropping the handle.
type Session struct {
	CityID      string
	GoalMinutes int
	StartedAt   time.Time
}
