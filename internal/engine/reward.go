package engine

const (
	// CoinIntervalMinutes grants one coin per full interval studied.
	CoinIntervalMinutes = 5

	// GoalBonusCoins is the flat bonus for meeting the session goal.
	GoalBonusCoins = 10

	// RoomIntervalMinutes unlocks one room per full interval, goal met only.
	RoomIntervalMinutes = 30

	// MinHeight and FullHeight bound the visual scale of a building.
	MinHeight  = 30.0
	FullHeight = 100.0
)

type RewardResult struct {
	Completed     bool
	CoinsEarned   int
	Height        float64
	RoomsUnlocked int
}

// ComputeReward maps a finished session onto its rewards. Pure; callers
// validate actualMinutes >= 0 and goalMinutes >= 1 before calling.
func ComputeReward(actualMinutes, goalMinutes int) RewardResult {
	completed := actualMinutes >= goalMinutes

	coins := actualMinutes / CoinIntervalMinutes
	if completed {
		coins += GoalBonusCoins
	}

	height := FullHeight
	if !completed {
		height = FullHeight * float64(actualMinutes) / float64(goalMinutes)
		if height < MinHeight {
			height = MinHeight
		}
	}

	rooms := 0
	if completed {
		rooms = actualMinutes / RoomIntervalMinutes
	}

	return RewardResult{
		Completed:     completed,
		CoinsEarned:   coins,
		Height:        height,
		RoomsUnlocked: rooms,
	}
}
