package gc

// Barrier implements the write barrier spec.md §4.2 requires on every store
// of a managed reference into a managed object's field: src.field = dst.
// Never call it when dst is nil or Released.
//
// In Propagate, it shades dst gray (a "forward barrier"): this removes the
// about-to-exist black-to-white edge by turning it into a black-to-gray
// edge, preserving I3. Outside Propagate it re-whitens src (a "backward
// barrier"): this is a pure optimization, not a correctness requirement — it
// keeps the barrier from re-firing on subsequent writes through the same
// source for the rest of the current cycle.
func (c *Collector) Barrier(src, dst Collectable) {
	if dst == nil {
		return
	}
	dh := dst.Header()
	if dh.HasFlags(Released) {
		// A released object has no business reaching the barrier; tolerate
		// it defensively rather than corrupting state.
		return
	}
	assertf(src == nil || (src.Header().IsBlack() && !c.isDeadObj(src)), "barrier source is not black")
	assertf(dh.IsWhite() && !c.isDeadObj(dst), "barrier destination is not white")
	// Mirrors dobjgc.cpp's own assertion exactly: it rejects Pause and
	// Finalize outright, stricter than spec.md §4.2's prose (which lists
	// Pause/Finalize among the valid backward-barrier states). Harmless in
	// practice: no black source exists in either state, so the "source is
	// not black" assertion above already fires first.
	assertf(c.state != Finalize && c.state != Pause, "barrier fired outside an active cycle")

	if c.state == Propagate {
		dh.white2Gray()
		dh.gcNext = c.gray
		c.gray = dst
	} else if src != nil {
		src.Header().makeWhite(c.currentWhite)
	}
}

// WriteBarrier re-shades obj conservatively, for call sites (AddSoftRoot)
// that know an object's outgoing references may need protecting but don't
// have a specific (src, dst) pair — it is Barrier(nil, obj) with the
// precondition relaxed to tolerate obj already being gray or black.
func (c *Collector) WriteBarrier(obj Collectable) {
	if obj == nil {
		return
	}
	h := obj.Header()
	if h.HasFlags(Released) || h.IsBlack() {
		return
	}
	if c.state == Propagate && h.IsWhite() {
		h.white2Gray()
		h.gcNext = c.gray
		c.gray = obj
	}
}

// isDeadObj reports whether obj is dead under the collector's current
// white, for barrier assertions.
func (c *Collector) isDeadObj(obj Collectable) bool {
	if obj.Header().HasFlags(Fixed) {
		return false
	}
	return isDead(obj.Header().flags, otherWhite(c.currentWhite))
}
