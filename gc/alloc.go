package gc

// Alloc links a freshly constructed object at the head of the allocation
// list, colors it current-white, and accounts its size in AllocBytes
// (spec.md §3 "Lifecycle", §6 Alloc). The host calls this immediately after
// constructing obj and before returning it to its own caller; obj must not
// yet be reachable from anywhere the collector could observe concurrently
// (there are none — spec.md §5 — but the ordering still matters for I1).
func (c *Collector) Alloc(obj Collectable) {
	h := obj.Header()
	assertf(h.objNext == nil, "Alloc called on an object already linked")
	h.flags = (h.flags &^ (flagBlack | whiteBits)) | c.currentWhite
	h.objNext = c.root
	c.root = obj
	c.AllocBytes += obj.Size()
}

// Release marks obj as host-managed memory the collector must tolerate in
// the reference graph but never free or count (spec.md §3 Released, §9
// "escape hatch for host-managed memory"). Release does not link obj into
// the allocation list.
func Release(obj Collectable) {
	obj.Header().SetFlags(Released)
}

// Euthanize marks obj for unconditional collection on the next sweep that
// reaches it, regardless of reachability, and suppresses its mark hook from
// then on (spec.md §3 EuthanizeMe). Any slot still pointing at obj will be
// cleared to nil the next time Mark visits it.
func Euthanize(obj Collectable) {
	obj.Header().SetFlags(EuthanizeMe)
}
