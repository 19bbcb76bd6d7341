// Package focus provides linear focus traversal over host nodes.
package focus

import "github.com/go-drift/headless/pkg/host"

// Scan walks candidates from current in the direction of delta (+1 or -1),
// wrapping at either end, and returns the first focusable candidate found.
// When current is not among the candidates the scan starts from the
// nearest end. Returns nil when no candidate is focusable.
func Scan(candidates []*host.Node, current *host.Node, delta int) *host.Node {
	count := len(candidates)
	if count == 0 || delta == 0 {
		return nil
	}

	currentIndex := -1
	for i, n := range candidates {
		if n == current {
			currentIndex = i
			break
		}
	}
	if currentIndex == -1 && delta < 0 {
		// Unknown current scanning backward: the first step wraps from
		// the front to the last candidate.
		currentIndex = 0
	}

	for step := 1; step <= count; step++ {
		next := candidates[wrapIndex(currentIndex+delta*step, count)]
		if next.Focusable() {
			return next
		}
	}
	return nil
}

// Next returns the first focusable candidate after current, wrapping from
// the last entry to the first.
func Next(candidates []*host.Node, current *host.Node) *host.Node {
	return Scan(candidates, current, 1)
}

// Previous returns the first focusable candidate before current, wrapping
// from the first entry to the last.
func Previous(candidates []*host.Node, current *host.Node) *host.Node {
	return Scan(candidates, current, -1)
}

// wrapIndex wraps an index to stay within [0, count).
func wrapIndex(index, count int) int {
	index = index % count
	if index < 0 {
		index += count
	}
	return index
}
