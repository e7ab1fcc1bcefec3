package gc

// RootFunc is a host-provided root-marking hook (spec.md §4.3, §6
// MarkRootsHook). Each registered hook is called once per cycle at the
// Pause→Propagate transition; it must call Mark/MarkArray on every managed
// reference root it owns. The order hooks run in is unspecified — spec.md
// only requires that every root be shaded before Propagate advances.
type RootFunc func(c *Collector)

// RegisterRoot adds a host root hook. Typically called once at startup for
// each long-lived root owner (UI, thinker lists, per-level state, per-player
// state, ...), mirroring the fixed list spec.md §4.3 enumerates.
func (c *Collector) RegisterRoot(fn RootFunc) {
	c.roots = append(c.roots, fn)
}

// BulkMarkerProvider is consulted once per cycle by MarkRoot. It returns the
// bulk marker sentinel to place on the gray queue this cycle, or nil if
// there is currently no bulk-flat data to mark (spec.md §4.3 step 3, §4.8).
// A typical implementation caches one sentinel instance and resets its
// cursors on every call, creating it lazily and dropping it once the
// underlying flat data disappears — mirroring the original's SectorMarker
// lifecycle exactly: once the provider stops returning a given sentinel, it
// is ordinary garbage like anything else and is swept on the next cycle
// that doesn't mark it. The provider receives the Collector so it can Alloc
// the sentinel the first time it is created, before it is ever returned:
// Mark only queues white objects, and an ObjHeader that has never been
// through Alloc reads as the zero value, which Mark ignores rather than
// queues.
type BulkMarkerProvider func(c *Collector) Collectable

// RegisterBulkMarker installs the single bulk-marker provider for this
// collector. Calling it again replaces the previous provider.
func (c *Collector) RegisterBulkMarker(fn BulkMarkerProvider) {
	c.bulkMarker = fn
}

// MarkRoot runs once at the Pause→Propagate transition (spec.md §4.3):
//  1. empty the gray queue,
//  2. invoke every registered root hook,
//  3. mark the bulk-marker sentinel, if any,
//  4. walk SoftRoots and mark every rooted, non-euthanized object,
//  5. advance to Propagate.
func (c *Collector) MarkRoot() {
	c.gray = nil

	for _, fn := range c.roots {
		fn(c)
	}

	if c.bulkMarker != nil {
		if sentinel := c.bulkMarker(c); sentinel != nil {
			obj := sentinel
			c.Mark(&obj)
		}
	}

	c.markSoftRoots()

	c.state = Propagate
	c.stepCount = 0
}

func (c *Collector) markSoftRoots() {
	if c.softRoots == nil {
		return
	}
	probe := &c.softRoots.Header().objNext
	for *probe != nil {
		soft := *probe
		probe = &soft.Header().objNext
		h := soft.Header()
		if h.HasFlags(Rooted) && !h.HasFlags(EuthanizeMe) {
			obj := soft
			c.Mark(&obj)
		}
	}
}
