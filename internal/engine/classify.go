package engine

// Classification thresholds. Tunable constants, not structural: the rule
// ties long-term engagement (cumulative hours) to single-session effort.
const (
	EntertainmentMinHours   = 50.0
	EntertainmentMinMinutes = 60

	ParkMinHours   = 10.0
	ParkMinMinutes = 30

	OfficeMinMinutes = 45
)

// Classify picks the building type for a session, evaluated once at
// completion. hoursBefore is the cumulative study total as it stood
// before this session's hours were added. First match wins.
func Classify(hoursBefore float64, actualMinutes int) BuildingType {
	switch {
	case hoursBefore >= EntertainmentMinHours && actualMinutes >= EntertainmentMinMinutes:
		return BuildingEntertainment
	case hoursBefore >= ParkMinHours && actualMinutes >= ParkMinMinutes:
		return BuildingPark
	case actualMinutes >= OfficeMinMinutes:
		return BuildingOffice
	default:
		return BuildingResidential
	}
}
