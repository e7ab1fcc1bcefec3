package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zdoom-gc/tricolor/gc"
)

type fakeHost struct{ tick uint64 }

func (h *fakeHost) CurrentTick() uint64 { return h.tick }

func newCollector() (*gc.Collector, *fakeHost) {
	host := &fakeHost{}
	c := gc.New(host)
	return c, host
}

// A level with 300 sectors, each pointing at a floor-mover actor, survives a
// FullGC intact: every sector's managed reference is reachable only through
// the bulk marker, not through any per-object field scan.
func TestLevelSectorsSurviveFullGC(t *testing.T) {
	c, _ := newCollector()

	level := &LevelState{}
	const numSectors = 300
	level.Sectors = make([]Sector, numSectors)
	for i := range level.Sectors {
		mover := NewActor("floormover")
		c.Alloc(mover)
		level.Sectors[i].FloorData = mover
	}

	c.RegisterBulkMarker(level.BulkMarkerProvider)
	c.FullGC()

	// numSectors actors plus the sentinel itself.
	require.Equal(t, numSectors+1, c.Count())
}

// Once a level's sectors are cleared out, its SectorMarker sentinel is
// dropped and collected on the next FullGC, matching the original's
// "SectorMarker = nullptr when level.sectors.Size() == 0" behavior.
func TestLevelSectorMarkerDroppedWhenEmpty(t *testing.T) {
	c, _ := newCollector()

	level := &LevelState{Sectors: make([]Sector, 10)}
	c.RegisterBulkMarker(level.BulkMarkerProvider)
	c.FullGC()
	require.Equal(t, 1, c.Count(), "one sentinel, no per-sector references to mark")

	level.Sectors = nil
	c.FullGC()
	require.Nil(t, level.marker)
	require.Equal(t, 0, c.Count())
}

// ThinkerList.NextToThink keeps a thinker alive across a cycle even once
// every other reference to it has been dropped, the way the original
// protects the next thinker to tick.
func TestThinkerListProtectsNextToThink(t *testing.T) {
	c, _ := newCollector()

	th := NewThinker()
	c.Alloc(th)

	tl := &ThinkerList{NextToThink: th}
	c.RegisterRoot(tl.MarkRoots)

	c.FullGC()

	require.Equal(t, 1, c.Count())
}

// A thinker reachable from nothing once NextToThink and Head both move past
// it is collected.
func TestThinkerListDoesNotProtectAbandonedThinker(t *testing.T) {
	c, _ := newCollector()

	th := NewThinker()
	c.Alloc(th)

	tl := &ThinkerList{}
	c.RegisterRoot(tl.MarkRoots)

	c.FullGC()

	require.Equal(t, 0, c.Count())
}

// A chain of actors rooted through a ScriptValue survives an incremental
// cycle run through repeated Step calls, one per simulated frame.
func TestActorChainSurvivesIncrementalCycle(t *testing.T) {
	c, host := newCollector()
	c.SetStepMul(100)

	const n = 200
	actors := make([]*Actor, n)
	for i := range actors {
		actors[i] = NewActor("a")
	}
	for i := 0; i < n-1; i++ {
		actors[i].Next = actors[i+1]
	}
	for _, a := range actors {
		c.Alloc(a)
	}

	root := NewScriptValue()
	root.Ref = actors[0]
	c.Alloc(root)

	c.RegisterRoot(func(c *gc.Collector) {
		var slot gc.Collectable = root
		c.Mark(&slot)
	})

	allocBefore := c.AllocBytes
	host.tick = 1000
	c.ForceNow()
	for i := 0; i < 100000; i++ {
		if c.State() == gc.Pause && i > 0 {
			break
		}
		host.tick++
		c.RefreshClock()
		c.Step()
	}

	require.Equal(t, allocBefore, c.AllocBytes)
	require.Equal(t, n+1, c.Count())
}
