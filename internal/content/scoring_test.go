package content

import (
	"testing"

	"github.com/pygmy-twylyte/amble-go/internal/scoring"
	"go.uber.org/zap"
)

func TestLoadScoringFallsBackToDefaultsOnMissingFile(t *testing.T) {
	got := loadScoring("/nonexistent/scoring.toml", zap.NewNop())
	want := scoring.Default()
	if len(got.Ranks) != len(want.Ranks) {
		t.Fatalf("expected %d default ranks, got %d", len(want.Ranks), len(got.Ranks))
	}
	if got.Ranks[0] != want.Ranks[0] {
		t.Fatalf("expected the first default rank to match, got %+v want %+v", got.Ranks[0], want.Ranks[0])
	}
}
