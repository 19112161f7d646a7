package insights

// Advance applies one day's result to a streak: a day at or under the
// safe daily spend extends the run, any other day resets it. Best never
// decreases.
func Advance(current, best int, underBudget bool) (newCurrent, newBest int) {
	if underBudget {
		newCurrent = current + 1
	} else {
		newCurrent = 0
	}
	newBest = best
	if newCurrent > newBest {
		newBest = newCurrent
	}
	return newCurrent, newBest
}

// Milestone is a named streak badge threshold.
type Milestone struct {
	Days int    `json:"days"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Milestones is the fixed ascending badge table.
var Milestones = []Milestone{
	{Days: 7, Name: "Week Warrior", Icon: "🏅"},
	{Days: 14, Name: "Fortnight Legend", Icon: "🔥"},
	{Days: 30, Name: "Monthly Master", Icon: "👑"},
	{Days: 60, Name: "Budget Beast", Icon: "💪"},
	{Days: 90, Name: "Budget King", Icon: "🏆"},
}

// NextMilestone returns the first milestone whose threshold exceeds the
// current streak, or nil when the streak is past the last one.
func NextMilestone(current int) *Milestone {
	for i := range Milestones {
		if Milestones[i].Days > current {
			return &Milestones[i]
		}
	}
	return nil
}

// MilestoneProgress is progress toward the next milestone as a
// percentage, capped at 100 past the final threshold.
func MilestoneProgress(current int) float64 {
	next := NextMilestone(current)
	if next == nil {
		return 100
	}
	return float64(current) / float64(next.Days) * 100
}
