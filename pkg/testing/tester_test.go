package testing

import (
	"testing"

	"github.com/go-drift/headless/pkg/core"
	"github.com/go-drift/headless/pkg/host"
	"github.com/go-drift/headless/pkg/widgets"
)

func TestPumpWidgetAttachesTree(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Box{ID: "wrapper", Children: []core.Widget{
		widgets.Text{ID: "greeting", Content: "hello"},
	}})

	node := tester.FindNode("greeting")
	if node == nil {
		t.Fatal("expected greeting node in document")
	}
	if node.Text() != "hello" {
		t.Errorf("text = %q, want hello", node.Text())
	}
}

func TestPumpWidgetRemountsCleanly(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Box{ID: "first"})
	tester.PumpWidget(widgets.Box{ID: "second"})

	if tester.FindNode("first") != nil {
		t.Error("previous tree should be unmounted")
	}
	if tester.FindNode("second") == nil {
		t.Error("new tree should be mounted")
	}
}

func TestFocusOnMovesDocumentFocus(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Box{ID: "target"})

	node := tester.FindNode("target")
	node.SetFocusable(true)

	tester.FocusOn(node)
	if tester.Document().Focused() != node {
		t.Error("FocusOn should move document focus")
	}
}

func TestSendKeyWithoutFocusIsNotConsumed(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Box{ID: "target"})

	if tester.SendKey(host.KeyDown) {
		t.Error("key without focused node should not be consumed")
	}
}
