// Package scoring turns a player's final score into the flavor rank shown
// on the quit summary.
package scoring

// Rank is a single scoring tier: any completion percentage at or above
// Threshold (and below the next rank up) earns Name/Description.
type Rank struct {
	Threshold   float64
	Name        string
	Description string
}

// Config is an ordered set of ranks, highest threshold first.
type Config struct {
	Ranks []Rank
}

// Rank returns the name and description of the highest rank whose
// threshold percent does not exceed. Ranks must already be sorted
// descending by threshold (the content loader does this); if
// Ranks is empty, Rank returns a generic fallback rather than panicking.
func (c Config) Rank(percent float64) (name, description string) {
	for _, r := range c.Ranks {
		if percent >= r.Threshold {
			return r.Name, r.Description
		}
	}
	if len(c.Ranks) > 0 {
		last := c.Ranks[len(c.Ranks)-1]
		return last.Name, last.Description
	}
	return "Unranked", "No scoring data available."
}

// Default returns the built-in rank table, used when no scoring content
// file is supplied or it fails to load.
func Default() Config {
	return Config{Ranks: defaultRanks}
}

var defaultRanks = []Rank{
	{99, "Quantum Overachiever", "You saw the multiverse, understood it, then filed a bug report."},
	{90, "Senior Field Operative", "A nearly flawless run. Someone give this candidate a promotion."},
	{75, "Licensed Reality Bender", "Impressive grasp of nonlinear environments and cake-based paradoxes."},
	{60, "Rogue Intern, Level II", "You got the job done, and only melted one small pocket universe."},
	{45, "Unpaid Research Assistant", "Solid effort. Some concepts may have slipped through dimensional cracks."},
	{30, "Junior Sandwich Technician", "Good instincts, questionable execution. Especially with condiments."},
	{15, "Volunteer Tour Guide", "You wandered. You looked at stuff. It was something."},
	{5, "Mailbox Stuffing Trainee", "You opened a box, tripped on a rug, and called it a day."},
	{1, "Accidental Hire", "We're not sure how you got in. Please return your lanyard."},
	{0, "Amnesiac Test Subject", "Did you... play? Were you even awake?"},
}

// Percent returns score as a percentage of maxScore, 0 if maxScore is 0
// (an unscored or not-yet-loaded game).
func Percent(score, maxScore int) float64 {
	if maxScore <= 0 {
		return 0
	}
	return float64(score) / float64(maxScore) * 100
}
