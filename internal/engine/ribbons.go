package engine

// BuiltinRibbons returns the fixed milestone set, unearned. The scholar
// and half_century thresholds line up with the park and entertainment
// classification gates, and their unlock tags advertise that to the
// presentation layer.
func BuiltinRibbons() []Ribbon {
	return []Ribbon{
		{ID: "first_hour", Name: "First Hour", HoursRequired: 1, Emoji: "🌱"},
		{ID: "dedicated", Name: "Dedicated", HoursRequired: 5, Emoji: "📚"},
		{ID: "scholar", Name: "Scholar", HoursRequired: 10, Emoji: "🎓", Unlocks: []string{"park_buildings"}},
		{ID: "marathoner", Name: "Marathoner", HoursRequired: 25, Emoji: "🏃"},
		{ID: "half_century", Name: "Half Century", HoursRequired: 50, Emoji: "🌟", Unlocks: []string{"entertainment_buildings"}},
		{ID: "centurion", Name: "Centurion", HoursRequired: 100, Emoji: "🏆"},
	}
}

// RecomputeRibbons derives every Earned flag from totalHours. Idempotent,
// and monotone as long as totalHours never decreases. This is the only
// way Earned is ever set.
func RecomputeRibbons(ribbons []Ribbon, totalHours float64) {
	for i := range ribbons {
		ribbons[i].Earned = totalHours >= ribbons[i].HoursRequired
	}
}
