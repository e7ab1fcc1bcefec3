package gc

// sweepList examines up to maxCount allocation-list entries starting at
// *pos (spec.md §4.6). Live entries (including anything Fixed) are
// re-whitened for the next cycle and the cursor advances past them. Dead
// entries are unlinked, destroyed (unless EuthanizeMe, in which case the
// destructor is skipped but Cleanup is still set and the object is still
// removed), and counted toward finalized. Returns the position just after
// the last entry examined.
func (c *Collector) sweepList(pos *Collectable, maxCount int) (next *Collectable, finalized int) {
	deadMask := otherWhite(c.currentWhite)

	for *pos != nil && maxCount > 0 {
		maxCount--
		curr := *pos
		h := curr.Header()

		if !isDead(h.flags, deadMask) || h.HasFlags(Fixed) {
			assertf(!isDead(h.flags, deadMask) || h.HasFlags(Fixed), "live test disagrees with isDead")
			h.makeWhite(c.currentWhite)
			pos = &h.objNext
		} else {
			assertf(isDead(h.flags, deadMask), "sweeping a non-dead object")
			*pos = h.objNext
			if !h.HasFlags(EuthanizeMe) {
				// The object must be destroyed before it can be finalized.
				// Thinkers in particular must already be unlinked from
				// their thinker lists by the time they get here; if one
				// shows up still linked, that's either deletion during
				// error cleanup or a missing write barrier upstream.
				curr.Destroy()
			}
			h.SetFlags(Cleanup)
			c.AllocBytes -= curr.Size()
			finalized++
		}
	}
	return pos, finalized
}
