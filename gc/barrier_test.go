package gc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Scenario 3 (spec.md §8): start a Propagate with root R -> X, pause the
// stepper after X is black, allocate a new white Y, write X.field = Y via
// Barrier, let propagation finish. Y must survive the ensuing sweep.
func TestBarrierPreservesTriColorInvariant(t *testing.T) {
	c, _ := newTestCollector()

	r := newTestObj("R")
	x := newTestObj("X")
	r.refs = []Collectable{x}
	c.Alloc(r)
	c.Alloc(x)

	var root Collectable = r
	c.RegisterRoot(func(c *Collector) { c.Mark(&root) })

	// Drive MarkRoot, then propagate R and X by hand so we can observe
	// the exact moment X turns black.
	require.Equal(t, Pause, c.State())
	c.SingleStep() // MarkRoot: Gray = [R]
	require.Equal(t, Propagate, c.State())
	c.PropagateMark() // R -> black, X shaded gray
	require.True(t, r.Header().IsBlack())
	c.PropagateMark() // X -> black
	require.True(t, x.Header().IsBlack())

	y := newTestObj("Y")
	c.Alloc(y)
	require.True(t, y.Header().IsWhite())

	// x.field = y, emitted via the write barrier (P2/I3: no black object
	// may end up pointing at a white one once Propagate finishes).
	c.Barrier(x, y)
	x.refs = append(x.refs, y)
	require.False(t, y.Header().IsWhite(), "barrier must shade y before the store is visible")

	// Finish the cycle.
	for c.gray != nil {
		c.PropagateMark()
	}
	for c.State() != Pause {
		c.SingleStep()
	}

	require.Equal(t, 3, c.Count())
	require.False(t, *r.destroyed)
	require.False(t, *x.destroyed)
	require.False(t, *y.destroyed)
}

// Backward barrier: outside Propagate (here in Sweep) the barrier re-whitens
// the black source instead of shading the destination.
func TestBackwardBarrierOutsidePropagateRewhitensSource(t *testing.T) {
	c, _ := newTestCollector()
	c.state = Sweep
	c.currentWhite = flagWhite0

	src := newTestObj("src")
	src.Header().flags = flagBlack
	dst := newTestObj("dst")
	dst.Header().flags = flagWhite0

	c.Barrier(src, dst)

	require.True(t, src.Header().IsWhite(), "backward barrier must re-whiten the source")
	require.True(t, dst.Header().IsWhite(), "backward barrier does not touch the destination")
}
