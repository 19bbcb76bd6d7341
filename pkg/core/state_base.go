package core

// StateBase provides the common plumbing for State implementations. Embed it
// and override Build; the remaining lifecycle hooks default to no-ops.
type StateBase struct {
	element   *StatefulElement
	disposers []func()
}

// SetElement stores the element so SetState can schedule rebuilds.
func (s *StateBase) SetElement(element *StatefulElement) {
	s.element = element
}

// Element returns the element this state is attached to, or nil before mount.
func (s *StateBase) Element() *StatefulElement {
	return s.element
}

// Context returns the BuildContext for this state's position in the tree.
func (s *StateBase) Context() BuildContext {
	return s.element
}

// SetState runs fn and schedules a rebuild of the owning element.
func (s *StateBase) SetState(fn func()) {
	if fn != nil {
		fn()
	}
	if s.element != nil {
		s.element.MarkNeedsBuild()
	}
}

// OnDispose registers a cleanup to run when the state is disposed.
// Cleanups run in reverse registration order.
func (s *StateBase) OnDispose(fn func()) {
	if fn != nil {
		s.disposers = append(s.disposers, fn)
	}
}

// InitState is a no-op by default.
func (s *StateBase) InitState() {}

// Dispose runs registered cleanups, most recent first.
func (s *StateBase) Dispose() {
	for i := len(s.disposers) - 1; i >= 0; i-- {
		s.disposers[i]()
	}
	s.disposers = nil
	s.element = nil
}

// DidChangeDependencies is a no-op by default.
func (s *StateBase) DidChangeDependencies() {}

// DidUpdateWidget is a no-op by default.
func (s *StateBase) DidUpdateWidget(oldWidget StatefulWidget) {}
