package core

import "sort"

// BuildOwner tracks elements that need rebuilding and flushes them in
// depth order so parents rebuild before their children.
type BuildOwner struct {
	dirty    []Element
	dirtySet map[Element]struct{}
	building bool
}

// NewBuildOwner creates an empty build owner.
func NewBuildOwner() *BuildOwner {
	return &BuildOwner{
		dirtySet: make(map[Element]struct{}),
	}
}

// ScheduleBuild queues an element for the next flush. Scheduling the same
// element twice is a no-op.
func (o *BuildOwner) ScheduleBuild(element Element) {
	if element == nil {
		return
	}
	if _, queued := o.dirtySet[element]; queued {
		return
	}
	o.dirtySet[element] = struct{}{}
	o.dirty = append(o.dirty, element)
}

// NeedsWork reports whether any elements are waiting to rebuild.
func (o *BuildOwner) NeedsWork() bool {
	return len(o.dirty) > 0
}

// FlushBuild rebuilds all queued elements, shallowest first. Elements
// scheduled during the flush are picked up in the same call.
func (o *BuildOwner) FlushBuild() {
	if o.building {
		return
	}
	o.building = true
	defer func() { o.building = false }()

	for len(o.dirty) > 0 {
		batch := o.dirty
		o.dirty = nil
		o.dirtySet = make(map[Element]struct{})

		sort.SliceStable(batch, func(i, j int) bool {
			return batch[i].Depth() < batch[j].Depth()
		})
		for _, element := range batch {
			element.RebuildIfNeeded()
		}
	}
}
