package gc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Scenario 5 (spec.md §8): a soft-rooted object with no hard reference
// survives FullGC; after DelSoftRoot it is collected on the next FullGC.
func TestSoftRootSurvivesThenIsCollected(t *testing.T) {
	c, _ := newTestCollector()

	s := newTestObj("S")
	c.Alloc(s)
	c.AddSoftRoot(s)

	require.True(t, s.Header().HasFlags(Rooted))
	c.FullGC()
	require.False(t, *s.destroyed, "soft root must survive a cycle with no hard references")
	require.Equal(t, 2, c.Count(), "object plus the soft-root sentinel")

	c.DelSoftRoot(s)
	require.False(t, s.Header().HasFlags(Rooted))
	c.FullGC()
	require.True(t, *s.destroyed)
	require.Equal(t, 1, c.Count(), "only the sentinel remains")
}

func TestAddSoftRootTwiceReusesSentinel(t *testing.T) {
	c, _ := newTestCollector()

	s1 := newTestObj("S1")
	s2 := newTestObj("S2")
	c.Alloc(s1)
	c.Alloc(s2)

	c.AddSoftRoot(s1)
	sentinel := c.softRoots
	c.AddSoftRoot(s2)

	require.Same(t, sentinel, c.softRoots, "a second AddSoftRoot must not create another sentinel")
	require.Equal(t, 3, c.Count())
}

func TestDelSoftRootHeadFreesSentinel(t *testing.T) {
	c, _ := newTestCollector()
	s := newTestObj("S")
	c.Alloc(s)
	c.AddSoftRoot(s)

	c.DelSoftRootHead()
	require.Nil(t, c.softRoots)
	// s itself is still linked in Root; only the sentinel was removed.
	require.Equal(t, 1, c.Count())
}
