package command

import "testing"

func TestParseLookVariants(t *testing.T) {
	if got := Parse("look"); got.Kind != KindLook {
		t.Fatalf("expected KindLook, got %+v", got)
	}
	got := Parse("look at rusty lantern")
	if got.Kind != KindLookAt || got.Thing != "rusty lantern" {
		t.Fatalf("expected LookAt(rusty lantern), got %+v", got)
	}
}

func TestParseMoveToBareDirection(t *testing.T) {
	got := Parse("north")
	if got.Kind != KindMoveTo || got.Direction != "north" {
		t.Fatalf("expected MoveTo(north), got %+v", got)
	}
	got = Parse("go n")
	if got.Kind != KindMoveTo || got.Direction != "n" {
		t.Fatalf("expected MoveTo(n), got %+v", got)
	}
}

func TestParseTakeFromContainer(t *testing.T) {
	got := Parse("take lantern from chest")
	if got.Kind != KindTakeFrom || got.Item != "lantern" || got.Container != "chest" {
		t.Fatalf("expected TakeFrom{lantern, chest}, got %+v", got)
	}
}

func TestParseTakeWithoutFromIsPlainTake(t *testing.T) {
	got := Parse("take lantern")
	if got.Kind != KindTake || got.Thing != "lantern" {
		t.Fatalf("expected Take(lantern), got %+v", got)
	}
}

func TestParsePutInContainer(t *testing.T) {
	got := Parse("put coin in pouch")
	if got.Kind != KindPutIn || got.Item != "coin" || got.Container != "pouch" {
		t.Fatalf("expected PutIn{coin, pouch}, got %+v", got)
	}
}

func TestParseGiveToNpc(t *testing.T) {
	got := Parse("give lantern to hermit")
	if got.Kind != KindGiveToNpc || got.Item != "lantern" || got.Npc != "hermit" {
		t.Fatalf("expected GiveToNpc{lantern, hermit}, got %+v", got)
	}
}

func TestParseTurnOnTrailingWord(t *testing.T) {
	got := Parse("turn lantern on")
	if got.Kind != KindTurnOn || got.Thing != "lantern" {
		t.Fatalf("expected TurnOn(lantern), got %+v", got)
	}
}

func TestParseUseItemOnWithTool(t *testing.T) {
	got := Parse("cut rope with knife")
	if got.Kind != KindUseItemOn || got.Verb != "cut" || got.Item != "knife" || got.Target != "rope" {
		t.Fatalf("expected UseItemOn{cut, knife, rope}, got %+v", got)
	}
}

func TestParseSaveAndLoad(t *testing.T) {
	if got := Parse("save mygame"); got.Kind != KindSave || got.GameFile != "mygame" {
		t.Fatalf("expected Save(mygame), got %+v", got)
	}
	if got := Parse("load mygame"); got.Kind != KindLoad || got.GameFile != "mygame" {
		t.Fatalf("expected Load(mygame), got %+v", got)
	}
}

func TestParseUnknownGibberish(t *testing.T) {
	if got := Parse("xyzzy plugh"); got.Kind != KindUnknown {
		t.Fatalf("expected KindUnknown, got %+v", got)
	}
	if got := Parse(""); got.Kind != KindUnknown {
		t.Fatalf("expected KindUnknown for empty input, got %+v", got)
	}
}

func TestParseQuit(t *testing.T) {
	if got := Parse("quit"); got.Kind != KindQuit {
		t.Fatalf("expected KindQuit, got %+v", got)
	}
}
