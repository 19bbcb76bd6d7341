package widgets

import (
	"github.com/go-drift/headless/pkg/focus"
	"github.com/go-drift/headless/pkg/host"
)

// handleKey is the group's keyboard navigator. It receives key events while
// input focus is inside the group subtree.
//
// Left/Up move to the previous focusable option, Right/Down to the next,
// both wrapping around the ends; a successful move also requests selection
// of the new option. Space requests selection of the focused option without
// moving focus. Handled keys are consumed so the host stops propagation and
// default behavior; every other key passes through untouched. When no
// eligible candidate exists the move fails silently.
func (s *RadioGroupState) handleKey(ev host.KeyEvent) bool {
	switch ev.Key {
	case host.KeyLeft, host.KeyUp:
		s.moveFocus(-1)
		return true
	case host.KeyRight, host.KeyDown:
		s.moveFocus(1)
		return true
	case host.KeySpace:
		s.activateFocused()
		return true
	}
	return false
}

// moveFocus scans the ordered focusable options from the focused one in the
// given direction, moves focus to the first eligible candidate, and
// requests selection of its value.
func (s *RadioGroupState) moveFocus(delta int) {
	if s.node == nil || s.node.Document() == nil {
		return
	}
	doc := s.node.Document()
	next := focus.Scan(s.optionNodes(), doc.Focused(), delta)
	if next == nil {
		return
	}
	doc.Focus(next)
	if ref := s.refForNode(next); ref != nil && ref.Value != nil {
		s.Change(ref.Value())
	}
}

// activateFocused requests selection of whichever option holds input focus.
func (s *RadioGroupState) activateFocused() {
	if s.node == nil || s.node.Document() == nil {
		return
	}
	if ref := s.refForNode(s.node.Document().Focused()); ref != nil && ref.Value != nil {
		s.Change(ref.Value())
	}
}
