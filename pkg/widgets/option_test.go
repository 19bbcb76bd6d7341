package widgets

import (
	"testing"

	"github.com/go-drift/headless/pkg/core"
	"github.com/go-drift/headless/pkg/errors"
	htest "github.com/go-drift/headless/pkg/testing"
)

func optionStateAt(t *testing.T, tester *htest.WidgetTester, index int) *RadioOptionState {
	t.Helper()
	result := tester.Find(htest.ByType[RadioOption]())
	element, ok := result.At(index).(*core.StatefulElement)
	if !ok {
		t.Fatalf("RadioOption element %d not found", index)
	}
	return element.State().(*RadioOptionState)
}

func TestClickSelectsAndFocuses(t *testing.T) {
	var changes []any
	tester := htest.NewWidgetTesterWithT(t)
	tester.PumpWidget(selectionFixture{bind: true, values: []any{"a", "b"}, changes: &changes})

	group := groupStateOf(t, tester)
	second := group.Options()[1].Node
	tester.Click(second)

	if len(changes) != 1 || changes[0] != "b" {
		t.Fatalf("changes = %v, want [b]", changes)
	}
	if tester.Document().Focused() != second {
		t.Error("click should move focus to the option")
	}
	if !optionStateAt(t, tester, 1).Active() {
		t.Error("clicked option should be active")
	}
}

func TestClickOnCheckedOptionIsNoOp(t *testing.T) {
	var changes []any
	tester := htest.NewWidgetTesterWithT(t)
	tester.PumpWidget(selectionFixture{initial: "a", bind: true, values: []any{"a", "b"}, changes: &changes})

	group := groupStateOf(t, tester)
	tester.Click(group.Options()[0].Node)

	if len(changes) != 0 {
		t.Errorf("clicking the checked option emitted %v", changes)
	}
	if tester.Document().Focused() != nil {
		t.Error("clicking the checked option should not move focus")
	}
}

func TestFocusBlurTogglesActivePhase(t *testing.T) {
	tester := htest.NewWidgetTesterWithT(t)
	tester.PumpWidget(selectionFixture{values: []any{"a", "b"}})

	group := groupStateOf(t, tester)
	first := optionStateAt(t, tester, 0)

	if first.Active() {
		t.Fatal("option should start idle")
	}
	tester.FocusOn(group.Options()[0].Node)
	if !first.Active() {
		t.Error("focused option should be active")
	}
	tester.FocusOn(group.Options()[1].Node)
	if first.Active() {
		t.Error("blurred option should return to idle")
	}
}

func TestActiveIsLocalNotShared(t *testing.T) {
	tester := htest.NewWidgetTesterWithT(t)
	tester.PumpWidget(selectionFixture{values: []any{"a", "b"}})

	group := groupStateOf(t, tester)
	tester.FocusOn(group.Options()[1].Node)

	if optionStateAt(t, tester, 0).Active() {
		t.Error("active phase must not leak to sibling options")
	}
	if !optionStateAt(t, tester, 1).Active() {
		t.Error("focused option should be active")
	}
}

func TestOptionNodeAttributes(t *testing.T) {
	tester := htest.NewWidgetTesterWithT(t)
	tester.PumpWidget(selectionFixture{initial: "a", values: []any{"a", "b"}})

	group := groupStateOf(t, tester)
	checkedNode := group.Options()[0].Node
	uncheckedNode := group.Options()[1].Node

	if checkedNode.Role() != "radio" {
		t.Errorf("option role = %q, want radio", checkedNode.Role())
	}
	if v, _ := checkedNode.Attribute("aria-checked"); v != "true" {
		t.Error("checked option should carry aria-checked=true")
	}
	if v, _ := uncheckedNode.Attribute("aria-checked"); v != "false" {
		t.Error("unchecked option should carry aria-checked=false")
	}
	if v, _ := checkedNode.Attribute("tabindex"); v != "0" {
		t.Error("checked option should carry tabindex=0")
	}
	if v, _ := uncheckedNode.Attribute("tabindex"); v != "-1" {
		t.Error("unchecked option should carry tabindex=-1")
	}
}

func TestDisabledOptionIsNotFocusable(t *testing.T) {
	tester := htest.NewWidgetTesterWithT(t)
	tester.PumpWidget(RadioGroup{
		Child: Box{Children: []core.Widget{
			RadioOption{Value: "a", Disabled: true, Child: Text{Content: "A"}},
		}},
	})

	element := tester.Find(htest.ByType[RadioGroup]()).First().(*core.StatefulElement)
	group := element.State().(*RadioGroupState)
	node := group.Options()[0].Node

	if node.Focusable() {
		t.Error("disabled option should not be focusable")
	}
	tester.FocusOn(node)
	if tester.Document().Focused() == node {
		t.Error("focusing a disabled option should be refused")
	}
}

func TestClassResolver(t *testing.T) {
	var seen []OptionContext
	tester := htest.NewWidgetTesterWithT(t)
	tester.PumpWidget(selectionFixtureWithOption(RadioOption{
		Value: "a",
		ClassFunc: func(ctx OptionContext) string {
			seen = append(seen, ctx)
			if ctx.Checked {
				return "option checked"
			}
			return "option"
		},
		Child: Text{Content: "A"},
	}, "a"))

	element := tester.Find(htest.ByType[RadioGroup]()).First().(*core.StatefulElement)
	node := element.State().(*RadioGroupState).Options()[0].Node

	if v, _ := node.Attribute("class"); v != "option checked" {
		t.Errorf("class = %q, want %q", v, "option checked")
	}
	if len(seen) == 0 || !seen[len(seen)-1].Checked {
		t.Error("resolver should observe the checked context")
	}
}

func TestStaticClassPassThrough(t *testing.T) {
	tester := htest.NewWidgetTesterWithT(t)
	tester.PumpWidget(selectionFixtureWithOption(RadioOption{
		Value: "a",
		Class: "pill",
		Child: Text{Content: "A"},
	}, nil))

	element := tester.Find(htest.ByType[RadioGroup]()).First().(*core.StatefulElement)
	node := element.State().(*RadioGroupState).Options()[0].Node
	if v, _ := node.Attribute("class"); v != "pill" {
		t.Errorf("class = %q, want pill", v)
	}
}

// selectionFixtureWithOption mounts a single custom option inside a group
// bound to a fixed value.
func selectionFixtureWithOption(option RadioOption, value any) core.Widget {
	return RadioGroup{
		Value: value,
		Child: Box{Children: []core.Widget{option}},
	}
}

func TestOptionOutsideGroupFailsFast(t *testing.T) {
	handler := &captureErrorHandler{}
	errors.SetHandler(handler)
	defer errors.SetHandler(nil)

	tester := htest.NewWidgetTesterWithT(t)
	tester.PumpWidget(Box{Children: []core.Widget{
		RadioOption{Value: "a", Child: Text{Content: "A"}},
	}})

	missing := handler.missingContext()
	if missing == nil {
		t.Fatal("expected a missing-context build error")
	}
	if missing.Component != "RadioOption" || missing.Scope != "RadioGroup" {
		t.Errorf("error names %s/%s, want RadioOption/RadioGroup", missing.Component, missing.Scope)
	}
}

type captureErrorHandler struct {
	builds []*errors.BuildError
}

func (h *captureErrorHandler) HandleError(err *errors.ToolkitError) {}
func (h *captureErrorHandler) HandlePanic(err *errors.PanicError)  {}
func (h *captureErrorHandler) HandleBuildError(err *errors.BuildError) {
	h.builds = append(h.builds, err)
}

func (h *captureErrorHandler) missingContext() *errors.MissingContextError {
	for _, b := range h.builds {
		if m, ok := b.Recovered.(*errors.MissingContextError); ok {
			return m
		}
	}
	return nil
}
