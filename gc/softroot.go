package gc

// AddSoftRoot marks obj as a soft root (spec.md §4.9): reachable
// unconditionally until DelSoftRoot is called, regardless of whether
// anything else in the reference graph points to it. Soft roots are
// distinguished only by position: the first call lazily creates a Fixed
// sentinel and splices it onto the tail of the allocation list, and every
// soft root lives immediately after it. A write barrier is emitted for obj
// so that, if this happens mid-Propagate, its outgoing references aren't
// missed by a sweep that assumed it was already scanned.
func (c *Collector) AddSoftRoot(obj Collectable) {
	if c.softRoots == nil {
		sentinel := newSoftRootSentinel()
		c.Alloc(sentinel)
		sentinel.Header().SetFlags(Fixed)

		// Alloc links sentinel at the head; relocate it to the tail so
		// that "everything after the sentinel is a soft root" holds.
		c.root = sentinel.Header().objNext
		sentinel.Header().objNext = nil
		if c.root == nil {
			c.root = sentinel
		} else {
			probe := &c.root
			for *probe != nil {
				probe = &(*probe).Header().objNext
			}
			*probe = sentinel
		}
		c.softRoots = sentinel
	}

	c.unlink(obj)
	obj.Header().objNext = c.softRoots.Header().objNext
	c.softRoots.Header().objNext = obj
	obj.Header().SetFlags(Rooted)
	c.WriteBarrier(obj)
}

// DelSoftRoot un-roots obj: it must now be reachable through the ordinary
// reference graph or it will be collected. No-op if obj isn't currently a
// soft root.
func (c *Collector) DelSoftRoot(obj Collectable) {
	if !obj.Header().HasFlags(Rooted) {
		return
	}
	obj.Header().ClearFlags(Rooted)
	if c.unlinkFrom(&c.softRoots, obj) {
		obj.Header().objNext = c.root
		c.root = obj
	}
}

// DelSoftRootHead is invoked at shutdown to free the soft-root sentinel
// itself, suppressing the diagnostic that would otherwise fire for
// intentionally deleting a Fixed object (spec.md §4.9).
func (c *Collector) DelSoftRootHead() {
	if c.softRoots == nil {
		return
	}
	c.softRoots.Header().SetFlags(YesReallyDelete)
	c.unlink(c.softRoots)
	c.softRoots.Destroy()
	c.AllocBytes -= c.softRoots.Size()
	c.softRoots = nil
}

// unlink removes obj from wherever it currently sits in the allocation
// list.
func (c *Collector) unlink(obj Collectable) {
	c.unlinkFrom(&c.root, obj)
}

// unlinkFrom walks the list starting at *head looking for obj and splices
// it out. Reports whether obj was found.
func (c *Collector) unlinkFrom(head *Collectable, obj Collectable) bool {
	probe := head
	for *probe != nil && *probe != obj {
		probe = &(*probe).Header().objNext
	}
	if *probe == nil {
		return false
	}
	*probe = obj.Header().objNext
	return true
}

// softRootSentinel is the Fixed, zero-size sentinel that marks the boundary
// between ordinary objects and soft roots in the allocation list.
type softRootSentinel struct {
	ObjHeader
}

func newSoftRootSentinel() *softRootSentinel { return &softRootSentinel{} }

func (s *softRootSentinel) Header() *ObjHeader          { return &s.ObjHeader }
func (s *softRootSentinel) PropagateMark(*Collector) uintptr { return 0 }
func (s *softRootSentinel) Destroy()                    {}
func (s *softRootSentinel) Size() uintptr               { return 0 }
