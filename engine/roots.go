package engine

import "github.com/zdoom-gc/tricolor/gc"

// ThinkerList is the per-level "thinkers" root spec.md §4.3 names, plus the
// "next thinker to think" protection: the thinker the tick loop will run
// after the current one must not be collected while the current one runs,
// even if its only other reference is dropped during that tick.
type ThinkerList struct {
	Head        gc.Collectable
	NextToThink gc.Collectable
}

// MarkRoots satisfies gc.RootFunc.
func (tl *ThinkerList) MarkRoots(c *gc.Collector) {
	c.Mark(&tl.Head)
	c.Mark(&tl.NextToThink)
}

// Tick records the thinker after cur as NextToThink before cur runs, so the
// next thinker to tick stays reachable for the duration of cur's tick.
func (tl *ThinkerList) Tick(cur *Thinker) {
	tl.NextToThink = cur.Next
}

// SoundSequenceList is the "sound sequence list head" root: a singly
// linked list of active sound sequences.
type SoundSequenceList struct {
	Head gc.Collectable
}

func (s *SoundSequenceList) MarkRoots(c *gc.Collector) {
	c.Mark(&s.Head)
}

// Bots is the "bot globals" root: the three fixed slots the original bot
// controller keeps outside any list (first spawn candidate, and the two
// bodies a bot can currently occupy).
type Bots struct {
	FirstThing gc.Collectable
	Body1      gc.Collectable
	Body2      gc.Collectable
}

func (b *Bots) MarkRoots(c *gc.Collector) {
	c.Mark(&b.FirstThing)
	c.Mark(&b.Body1)
	c.Mark(&b.Body2)
}

// RegisterAll wires every root owner in this package, plus the level's
// bulk marker, into a Collector. This is the engine-side analogue of
// spec.md §4.3's fixed MarkRoot call sequence; the order doesn't matter
// (spec.md only requires all roots be shaded before Propagate advances),
// but grouping it here gives cmd/gcdemo one call instead of five.
func RegisterAll(c *gc.Collector, level *LevelState, thinkers *ThinkerList, sounds *SoundSequenceList, bots *Bots, interpolatorHead *gc.Collectable) {
	c.RegisterRoot(thinkers.MarkRoots)
	c.RegisterRoot(sounds.MarkRoots)
	c.RegisterRoot(bots.MarkRoots)
	c.RegisterRoot(func(c *gc.Collector) { c.Mark(interpolatorHead) })
	c.RegisterBulkMarker(level.BulkMarkerProvider)
}
