// Package gc implements an incremental, tri-color, mark-and-sweep garbage
// collector for a population of heap-allocated, host-managed objects.
//
// The algorithm is Lua's: objects are white (unvisited), gray (visited but
// not yet scanned), or black (fully scanned). Collection is split into a
// Pause/Propagate/Sweep/Finalize state machine so that a small quantum of
// marking or sweeping work can be interleaved with each host tick instead of
// stopping the world for a full trace. There is exactly one mutator: the
// host. The collector never suspends mid-operation and never races itself.
//
// See "The Garbage Collection Handbook" by Jones, Hosking and Moss for the
// tri-color abstraction this is built on.
package gc

// Flags holds the per-object color and lifecycle bits described by the
// object header. Exactly one of flagWhite0/flagWhite1/flagBlack is set for a
// live, non-gray object; an object with none of the three set is gray by
// convention (it is also linked into the collector's gray queue).
type Flags uint16

const (
	flagWhite0 Flags = 1 << iota
	flagWhite1
	flagBlack

	// Fixed marks an immortal sentinel (the soft-root list head):
	// sweepList always treats it as live regardless of color and
	// re-whitens it, so it is never freed even though nothing ever marks
	// it. The bulk-marker sentinel is deliberately not Fixed: it is an
	// ordinary object that lives only as long as something marks it each
	// cycle, so it can be collected once the host drops it.
	Fixed

	// Rooted marks a soft root: reachable for GC purposes regardless of
	// the ordinary reference graph, by virtue of its position in the
	// allocation list rather than any field in it.
	Rooted

	// EuthanizeMe marks an object explicitly destroyed by the host. It
	// will be collected on the next sweep regardless of reachability,
	// and its mark hook is skipped.
	EuthanizeMe

	// Released marks memory this collector does not own (e.g. a
	// stack-allocated surrogate). Ignored by marking and the barrier,
	// never counted in AllocBytes, never freed by the sweeper.
	Released

	// Cleanup is set immediately before the destructor runs, to
	// suppress destructor-side effects that would otherwise corrupt
	// collector state (e.g. a destructor re-adding itself as a root).
	Cleanup

	// YesReallyDelete suppresses a diagnostic when a Fixed sentinel is
	// intentionally deleted (see DelSoftRootHead).
	YesReallyDelete

	whiteBits = flagWhite0 | flagWhite1
)

// ObjHeader is embedded in every type the collector manages. It carries the
// intrusive links for the allocation list and the gray queue, plus the flag
// word. Types embed ObjHeader by value and implement Collectable (typically
// by defining Header() to return &self.ObjHeader); the collector never
// allocates an ObjHeader on its own.
type ObjHeader struct {
	flags Flags

	// objNext is the next pointer in the global allocation list ("Root
	// list"), newest objects at the head.
	objNext Collectable

	// gcNext is the next pointer in the gray queue. Only meaningful
	// while the object is gray.
	gcNext Collectable
}

// Collectable is implemented by every managed type. PropagateMark is the
// per-type mark hook: it must call Mark (or MarkArray) on every managed
// reference the object holds, and return a cost estimate for the step
// controller (conventionally the object's size in bytes). Destroy is the
// explicit teardown hook invoked by the sweeper on dead objects; it must not
// panic.
type Collectable interface {
	Header() *ObjHeader
	PropagateMark(c *Collector) uintptr
	Destroy()
	// Size returns the byte cost attributed to this object for
	// AllocBytes accounting and step-cost estimation.
	Size() uintptr
}

func (h *ObjHeader) IsWhite() bool { return h.flags&whiteBits != 0 }
func (h *ObjHeader) IsGray() bool  { return h.flags&(whiteBits|flagBlack) == 0 }
func (h *ObjHeader) IsBlack() bool { return h.flags&flagBlack != 0 }

func (h *ObjHeader) Flags() Flags    { return h.flags }
func (h *ObjHeader) SetFlags(f Flags) { h.flags |= f }
func (h *ObjHeader) ClearFlags(f Flags) { h.flags &^= f }
func (h *ObjHeader) HasFlags(f Flags) bool { return h.flags&f == f }

// white2Gray clears the current-white bit, leaving the object gray (by
// convention: none of white0/white1/black set). Callers are responsible for
// pushing the object onto the gray queue.
func (h *ObjHeader) white2Gray() { h.flags &^= whiteBits }

// gray2Black sets the black bit. The caller must already have popped the
// object off the gray queue head.
func (h *ObjHeader) gray2Black() { h.flags |= flagBlack }

// black2Gray clears black, leaving the object gray. Used by the bulk marker
// to re-queue itself after a partial scan.
func (h *ObjHeader) black2Gray() { h.flags &^= flagBlack }

// makeWhite clears black and sets the given current-white bit, leaving
// Fixed (and any other non-color bit) untouched.
func (h *ObjHeader) makeWhite(currentWhite Flags) {
	h.flags = (h.flags &^ (flagBlack | whiteBits)) | currentWhite
}

// otherWhite returns the white bit(s) not currently live: the complement of
// currentWhite within whiteBits, with Fixed left alone.
func otherWhite(currentWhite Flags) Flags {
	return (currentWhite ^ whiteBits) & whiteBits
}

// isDead reports whether an object carrying flags is dead-on-sight during a
// sweep pass that is looking for deadMask = otherWhite(CurrentWhite): it
// carries only the previous cycle's white color.
func isDead(flags, deadMask Flags) bool {
	return (flags^whiteBits)&deadMask == 0
}
