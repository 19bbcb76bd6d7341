package widgets

import (
	"testing"

	"github.com/go-drift/headless/pkg/core"
	"github.com/go-drift/headless/pkg/host"
	htest "github.com/go-drift/headless/pkg/testing"
)

func TestPreviousWrapsFirstToLast(t *testing.T) {
	var changes []any
	tester := htest.NewWidgetTesterWithT(t)
	tester.PumpWidget(selectionFixture{bind: true, values: []any{"a", "b", "c"}, changes: &changes})

	group := groupStateOf(t, tester)
	tester.FocusOn(group.Options()[0].Node)
	tester.SendKey(host.KeyLeft)

	if tester.Document().Focused() != group.Options()[2].Node {
		t.Error("Left from the first option should wrap to the last")
	}
	if len(changes) != 1 || changes[0] != "c" {
		t.Errorf("changes = %v, want [c]", changes)
	}
}

func TestNextWrapsLastToFirst(t *testing.T) {
	var changes []any
	tester := htest.NewWidgetTesterWithT(t)
	tester.PumpWidget(selectionFixture{bind: true, values: []any{"a", "b", "c"}, changes: &changes})

	group := groupStateOf(t, tester)
	tester.FocusOn(group.Options()[2].Node)
	tester.SendKey(host.KeyRight)

	if tester.Document().Focused() != group.Options()[0].Node {
		t.Error("Right from the last option should wrap to the first")
	}
	if len(changes) != 1 || changes[0] != "a" {
		t.Errorf("changes = %v, want [a]", changes)
	}
}

func TestUpDownMirrorLeftRight(t *testing.T) {
	var changes []any
	tester := htest.NewWidgetTesterWithT(t)
	tester.PumpWidget(selectionFixture{bind: true, values: []any{"a", "b", "c"}, changes: &changes})

	group := groupStateOf(t, tester)
	tester.FocusOn(group.Options()[1].Node)

	tester.SendKey(host.KeyUp)
	if tester.Document().Focused() != group.Options()[0].Node {
		t.Error("Up should move to the previous option")
	}
	tester.SendKey(host.KeyDown)
	if tester.Document().Focused() != group.Options()[1].Node {
		t.Error("Down should move to the next option")
	}
}

func TestSpaceSelectsWithoutMovingFocus(t *testing.T) {
	var changes []any
	tester := htest.NewWidgetTesterWithT(t)
	tester.PumpWidget(selectionFixture{bind: true, values: []any{"a", "b"}, changes: &changes})

	group := groupStateOf(t, tester)
	tester.FocusOn(group.Options()[1].Node)

	if !tester.SendKey(host.KeySpace) {
		t.Fatal("Space inside the group should be consumed")
	}
	if tester.Document().Focused() != group.Options()[1].Node {
		t.Error("Space must not move focus")
	}
	if len(changes) != 1 || changes[0] != "b" {
		t.Errorf("changes = %v, want [b]", changes)
	}
}

func TestSpaceOnCheckedOptionEmitsNothing(t *testing.T) {
	var changes []any
	tester := htest.NewWidgetTesterWithT(t)
	tester.PumpWidget(selectionFixture{initial: "b", bind: true, values: []any{"a", "b"}, changes: &changes})

	group := groupStateOf(t, tester)
	tester.FocusOn(group.Options()[1].Node)
	tester.SendKey(host.KeySpace)

	if len(changes) != 0 {
		t.Errorf("Space on the checked option emitted %v", changes)
	}
}

func TestUnhandledKeysPassThrough(t *testing.T) {
	tester := htest.NewWidgetTesterWithT(t)
	tester.PumpWidget(selectionFixture{values: []any{"a", "b"}})

	group := groupStateOf(t, tester)
	tester.FocusOn(group.Options()[0].Node)

	for _, key := range []host.Key{host.KeyTab, host.KeyEnter, host.KeyEscape} {
		if tester.SendKey(key) {
			t.Errorf("%s should not be consumed by the navigator", key)
		}
	}
}

func TestFocusOutsideGroupIgnoresArrows(t *testing.T) {
	var changes []any
	tester := htest.NewWidgetTesterWithT(t)
	tester.PumpWidget(Box{Children: []core.Widget{
		Box{ID: "outside"},
		selectionFixture{values: []any{"a", "b"}, changes: &changes},
	}})

	outside := tester.FindNode("outside")
	outside.SetFocusable(true)
	tester.FocusOn(outside)

	if tester.SendKey(host.KeyDown) {
		t.Error("arrow with focus outside the group should not be consumed")
	}
	if len(changes) != 0 {
		t.Errorf("arrow outside the group emitted %v", changes)
	}
}

func TestArrowsConsumedEvenWithoutCandidate(t *testing.T) {
	tester := htest.NewWidgetTesterWithT(t)
	tester.PumpWidget(selectionFixture{values: []any{"a"}})

	group := groupStateOf(t, tester)
	tester.FocusOn(group.Options()[0].Node)

	if !tester.SendKey(host.KeyDown) {
		t.Error("arrows are handled keys and suppress default behavior")
	}
	if tester.Document().Focused() != group.Options()[0].Node {
		t.Error("single-option scan wraps back to the focused option")
	}
}
