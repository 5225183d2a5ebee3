package content

import (
	"testing"

	"github.com/pygmy-twylyte/amble-go/internal/condition"
	"github.com/pygmy-twylyte/amble-go/internal/goal"
	"github.com/pygmy-twylyte/amble-go/internal/ids"
)

func TestBuildGoalsPreservesDeclarationOrder(t *testing.T) {
	raw := []RawGoal{
		{ID: "first", Group: "required", FinishedWhen: RawGoalCondition{Type: "has_flag", Flag: "done"}},
		{ID: "second", Group: "optional", FinishedWhen: RawGoalCondition{Type: "has_flag", Flag: "done"}},
	}
	symbols := ids.NewSymbolTable()

	goals, order, err := buildGoals(raw, symbols)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order) != 2 {
		t.Fatalf("expected 2 ids in order, got %d", len(order))
	}
	if order[0] != ids.For(ids.NamespaceGoal, "first") || order[1] != ids.For(ids.NamespaceGoal, "second") {
		t.Fatalf("expected declaration order preserved, got %v", order)
	}
	if goals[order[0]].Group != goal.GroupRequired {
		t.Fatalf("expected first goal's group to be required")
	}
}

func TestToGoalConditionGoalCompleteUsesGoalNamespace(t *testing.T) {
	symbols := ids.NewSymbolTable()
	c, err := toGoalCondition(RawGoalCondition{Type: "goal_complete", GoalID: "other-goal"}, symbols)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Kind != condition.KindGoalComplete {
		t.Fatalf("expected KindGoalComplete, got %v", c.Kind)
	}
	want := ids.For(ids.NamespaceGoal, "other-goal")
	if c.GoalID != want {
		t.Fatalf("expected goal id derived from NamespaceGoal, got %v want %v", c.GoalID, want)
	}
}

func TestToGoalConditionUnknownTypeErrors(t *testing.T) {
	symbols := ids.NewSymbolTable()
	if _, err := toGoalCondition(RawGoalCondition{Type: "not-a-real-type"}, symbols); err == nil {
		t.Fatal("expected an error for an unrecognized goal condition type")
	}
}

func TestBuildGoalsAggregatesErrorsAcrossMultipleGoals(t *testing.T) {
	raw := []RawGoal{
		{ID: "bad-group", Group: "not-a-group", FinishedWhen: RawGoalCondition{Type: "has_flag", Flag: "x"}},
		{ID: "bad-condition", Group: "required", FinishedWhen: RawGoalCondition{Type: "nonsense"}},
	}
	symbols := ids.NewSymbolTable()

	_, _, err := buildGoals(raw, symbols)
	if err == nil {
		t.Fatal("expected an aggregated error covering both bad goals")
	}
	msg := err.Error()
	if !contains(msg, "bad-group") || !contains(msg, "bad-condition") {
		t.Fatalf("expected the aggregated error to mention both failing goals, got: %s", msg)
	}
}

func contains(haystack, needle string) bool {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return false
}
