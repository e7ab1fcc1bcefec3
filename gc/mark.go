package gc

// Mark shades *slot gray if it is currently white, pushing it onto the gray
// queue. It is idempotent (spec.md §8 P6): calling it repeatedly on the same
// white object converges to the same gray-and-queued state after the first
// call, and is a no-op on gray/black targets.
//
// Two escape hatches, both spec.md §4.2:
//   - nil or Released targets are left alone entirely.
//   - a target already marked EuthanizeMe is cleared from the slot instead
//     of being marked: the slot no longer participates in the graph once
//     its target is scheduled for destruction.
func (c *Collector) Mark(slot *Collectable) {
	obj := *slot
	if obj == nil {
		return
	}
	h := obj.Header()
	if h.HasFlags(Released) {
		return
	}
	if h.HasFlags(EuthanizeMe) {
		*slot = nil
		return
	}
	if h.IsWhite() {
		h.white2Gray()
		h.gcNext = c.gray
		c.gray = obj
	}
}

// MarkArray is the batched form of Mark, for fields that are slices of
// managed references (spec.md §4.2).
func (c *Collector) MarkArray(slots []Collectable) {
	for i := range slots {
		c.Mark(&slots[i])
	}
}

// PropagateMark pops the head of the gray queue, blackens it, and invokes
// its type-directed mark hook (spec.md §4.4). If the object has been
// explicitly euthanized, the mark hook is skipped — there is no point
// scanning an object that will be destroyed on sweep regardless of
// reachability — but its size is still returned as cost, since the object
// still occupied a slot on the gray queue and needs accounting for.
func (c *Collector) PropagateMark() uintptr {
	obj := c.gray
	assertf(obj != nil, "PropagateMark called with an empty gray queue")
	h := obj.Header()
	assertf(h.IsGray(), "PropagateMark popped a non-gray object")
	h.gray2Black()
	c.gray = h.gcNext
	if h.HasFlags(EuthanizeMe) {
		return obj.Size()
	}
	return obj.PropagateMark(c)
}

// propagateAll drains the gray queue completely and returns the summed cost
// of every PropagateMark call.
func (c *Collector) propagateAll() uintptr {
	var total uintptr
	for c.gray != nil {
		total += c.PropagateMark()
	}
	return total
}
