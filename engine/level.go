package engine

import "github.com/zdoom-gc/tricolor/gc"

// Sector is one of the flat-array elements a SectorMarker drains in bulk
// rather than field by field: a handful of managed references a real
// sector would carry (sound target, floor/ceiling movers, light effect,
// per-plane interpolators).
type Sector struct {
	SoundTarget  gc.Collectable
	FloorData    gc.Collectable
	CeilingData  gc.Collectable
	LightingData gc.Collectable
	Interpolations [4]gc.Collectable
}

// Polyobject is a movable polygon subsector; only its interpolator is a
// managed reference.
type Polyobject struct {
	Interpolation gc.Collectable
}

// Sidedef holds one interpolator per texture plane (top, mid, bottom).
type Sidedef struct {
	TextureInterpolations [3]gc.Collectable
}

// SectorMarker is the engine's concrete bulk-marker sentinel: it embeds
// gc.BulkMarker and wires its three chunks to LevelState's flat arrays, the
// way the level the spec describes drains sectors, polyobjects, and
// sidedefs as one sentinel rather than three.
type SectorMarker struct {
	gc.BulkMarker
}

func newSectorMarker(level *LevelState) *SectorMarker {
	sm := &SectorMarker{}
	sm.Chunks = []gc.Chunk{
		{
			Len:         func() int { return len(level.Sectors) },
			StepSize:    sectorStepSize,
			ElementSize: sectorElementSize,
			MarkChunk:   level.markSectors,
		},
		{
			Len:         func() int { return len(level.Polyobjects) },
			StepSize:    polyStepSize,
			ElementSize: polyElementSize,
			MarkChunk:   level.markPolyobjects,
		},
		{
			Len:         func() int { return len(level.Sidedefs) },
			StepSize:    sidedefStepSize,
			ElementSize: sidedefElementSize,
			MarkChunk:   level.markSidedefs,
		},
	}
	sm.Bind(sm)
	return sm
}

// Step sizes match dobjgc.cpp's SECTORSTEPSIZE/POLYSTEPSIZE/SIDEDEFSTEPSIZE
// constants (32/120/240) rather than one shared value.
const (
	sectorStepSize     = 32
	polyStepSize       = 120
	sidedefStepSize    = 240
	sectorElementSize  = 128
	polyElementSize    = 16
	sidedefElementSize = 24
)

// LevelState owns the three flat arrays spec.md §4.8 names explicitly and
// the single SectorMarker sentinel that drains all three. It registers
// itself with a Collector via RegisterBulkMarker; the sentinel is created
// lazily on first use and dropped once the level is empty, mirroring the
// original's SectorMarker lifecycle (Create<DSectorMarker>() the first time
// sectors appear, nil it out when the level is torn down).
type LevelState struct {
	Sectors     []Sector
	Polyobjects []Polyobject
	Sidedefs    []Sidedef

	marker *SectorMarker
}

// BulkMarkerProvider satisfies gc.BulkMarkerProvider. Register it with
// Collector.RegisterBulkMarker once at startup.
func (lv *LevelState) BulkMarkerProvider(c *gc.Collector) gc.Collectable {
	switch {
	case lv.marker == nil && len(lv.Sectors) > 0:
		lv.marker = newSectorMarker(lv)
		c.Alloc(lv.marker)
	case len(lv.Sectors) == 0:
		lv.marker = nil
	default:
		lv.marker.Reset()
	}
	if lv.marker == nil {
		return nil
	}
	return lv.marker
}

func (lv *LevelState) markSectors(c *gc.Collector, start, n int) {
	for i := start; i < start+n; i++ {
		sec := &lv.Sectors[i]
		c.Mark(&sec.SoundTarget)
		c.Mark(&sec.FloorData)
		c.Mark(&sec.CeilingData)
		c.Mark(&sec.LightingData)
		c.MarkArray(sec.Interpolations[:])
	}
}

func (lv *LevelState) markPolyobjects(c *gc.Collector, start, n int) {
	for i := start; i < start+n; i++ {
		c.Mark(&lv.Polyobjects[i].Interpolation)
	}
}

func (lv *LevelState) markSidedefs(c *gc.Collector, start, n int) {
	for i := start; i < start+n; i++ {
		c.MarkArray(lv.Sidedefs[i].TextureInterpolations[:])
	}
}
