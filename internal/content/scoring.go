package content

import (
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/pygmy-twylyte/amble-go/internal/scoring"
	"go.uber.org/zap"
)

// RawScoringRank is the first-stage representation of one scoring tier.
type RawScoringRank struct {
	Threshold   float64 `toml:"threshold"`
	Name        string  `toml:"name"`
	Description string  `toml:"description"`
}

// RawScoringFile is the wrapper TOML requires to deserialize a bare rank
// array.
type RawScoringFile struct {
	Ranks []RawScoringRank `toml:"ranks"`
}

// loadScoring reads rank data from path, falling back to scoring.Default
// on any error — a malformed or missing scoring file degrades the rank
// shown on the quit summary, it doesn't abort the load.
func loadScoring(path string, log *zap.Logger) scoring.Config {
	var wrapper RawScoringFile
	if _, err := toml.DecodeFile(path, &wrapper); err != nil {
		log.Warn("falling back to default scoring ranks", zap.String("path", path), zap.Error(err))
		return scoring.Default()
	}
	if len(wrapper.Ranks) == 0 {
		log.Warn("scoring file has no ranks, falling back to defaults", zap.String("path", path))
		return scoring.Default()
	}

	ranks := make([]scoring.Rank, 0, len(wrapper.Ranks))
	for _, r := range wrapper.Ranks {
		ranks = append(ranks, scoring.Rank{Threshold: r.Threshold, Name: r.Name, Description: r.Description})
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i].Threshold > ranks[j].Threshold })
	return scoring.Config{Ranks: ranks}
}
