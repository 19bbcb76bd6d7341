package focus

import (
	"testing"

	"github.com/go-drift/headless/pkg/host"
	"pgregory.net/rapid"
)

func nodes(n int) []*host.Node {
	out := make([]*host.Node, n)
	for i := range out {
		out[i] = host.NewNode("n")
		out[i].SetFocusable(true)
	}
	return out
}

func TestNextWrapsFromLast(t *testing.T) {
	ns := nodes(3)
	if got := Next(ns, ns[2]); got != ns[0] {
		t.Error("Next from last should wrap to first")
	}
}

func TestPreviousWrapsFromFirst(t *testing.T) {
	ns := nodes(3)
	if got := Previous(ns, ns[0]); got != ns[2] {
		t.Error("Previous from first should wrap to last")
	}
}

func TestScanSkipsUnfocusable(t *testing.T) {
	ns := nodes(3)
	ns[1].SetFocusable(false)
	if got := Next(ns, ns[0]); got != ns[2] {
		t.Error("Next should skip unfocusable candidates")
	}
	if got := Previous(ns, ns[2]); got != ns[0] {
		t.Error("Previous should skip unfocusable candidates")
	}
}

func TestScanNoCandidates(t *testing.T) {
	if got := Next(nil, nil); got != nil {
		t.Error("empty candidate list should yield nil")
	}
	ns := nodes(2)
	ns[0].SetFocusable(false)
	ns[1].SetFocusable(false)
	if got := Next(ns, ns[0]); got != nil {
		t.Error("all-unfocusable candidate list should yield nil")
	}
}

func TestScanUnknownCurrentStartsFromEnd(t *testing.T) {
	ns := nodes(3)
	stranger := host.NewNode("other")
	if got := Next(ns, stranger); got != ns[0] {
		t.Error("Next with unknown current should start at the first candidate")
	}
	if got := Previous(ns, stranger); got != ns[2] {
		t.Error("Previous with unknown current should start at the last candidate")
	}
}

func TestScanWraparoundProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 12).Draw(t, "n")
		ns := nodes(n)
		start := rapid.IntRange(0, n-1).Draw(t, "start")
		delta := rapid.SampledFrom([]int{-1, 1}).Draw(t, "delta")

		got := Scan(ns, ns[start], delta)
		want := ns[((start+delta)%n+n)%n]
		if got != want {
			t.Fatalf("Scan from %d of %d with delta %d: wrong candidate", start, n, delta)
		}
	})
}
