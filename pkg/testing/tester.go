// Package testing provides an isolated harness for driving headless widget
// trees in tests: mounting, build flushing, finders, and input simulation.
package testing

import (
	"testing"

	"github.com/go-drift/headless/pkg/core"
	"github.com/go-drift/headless/pkg/host"
)

// WidgetTester mounts widget trees against an in-memory document and
// drives the build loop and input events. There is no layout or paint
// phase; a pump is a build flush.
type WidgetTester struct {
	buildOwner *core.BuildOwner
	document   *host.Document
	root       core.Element
}

// NewWidgetTester creates a tester with a fresh document.
// Call Cleanup() when done, or use NewWidgetTesterWithT() instead.
func NewWidgetTester() *WidgetTester {
	return &WidgetTester{
		buildOwner: core.NewBuildOwner(),
		document:   host.NewDocument(),
	}
}

// NewWidgetTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the current tree.
func (t *WidgetTester) Cleanup() {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
}

// Document returns the host document the tree is mounted into.
func (t *WidgetTester) Document() *host.Document {
	return t.document
}

// PumpWidget mounts (or remounts) a widget and flushes builds.
func (t *WidgetTester) PumpWidget(widget core.Widget) {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
	t.root = core.MountRoot(widget, t.buildOwner, t.document)
	t.Pump()
}

// Pump flushes pending builds until the tree settles.
func (t *WidgetTester) Pump() {
	t.buildOwner.FlushBuild()
}

// RootElement returns the root element of the mounted tree.
func (t *WidgetTester) RootElement() core.Element {
	return t.root
}

// Find evaluates a finder against the current element tree.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	if t.root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		elements: finder.Evaluate(t.root),
		finder:   finder,
	}
}

// FindNode locates a host node by id under the document root.
func (t *WidgetTester) FindNode(id string) *host.Node {
	return host.FindByID(t.document.Root(), id)
}

// Click dispatches a click to the given node and pumps.
func (t *WidgetTester) Click(node *host.Node) {
	t.document.Click(node)
	t.Pump()
}

// FocusOn moves input focus to the given node and pumps.
func (t *WidgetTester) FocusOn(node *host.Node) {
	t.document.Focus(node)
	t.Pump()
}

// SendKey dispatches a key event to the focused node's scope, pumps, and
// reports whether the event was consumed.
func (t *WidgetTester) SendKey(key host.Key) bool {
	consumed := t.document.DispatchKey(host.KeyEvent{Key: key})
	t.Pump()
	return consumed
}
