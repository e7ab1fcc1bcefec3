package gc

// Chunk describes one category of flat-array data a BulkMarker drains,
// spec.md §4.8's "sectors, polyobjects, sidedefs" generalized to any flat
// container too large to mark in a single step. MarkChunk is called
// repeatedly with successive, non-overlapping [cursor, cursor+stepSize)
// windows until it reports done, then the next chunk (if any) takes over.
type Chunk struct {
	// Len is the number of elements in this category.
	Len func() int
	// StepSize is how many elements MarkChunk processes per invocation.
	StepSize int
	// ElementSize is the byte cost attributed per element, for the work
	// cost this chunk's invocations report.
	ElementSize uintptr
	// MarkChunk marks the managed references held by elements
	// [start, start+n) of this category.
	MarkChunk func(c *Collector, start, n int)

	cursor int
}

func (ch *Chunk) done() bool { return ch.cursor >= ch.Len() }

func (ch *Chunk) step(c *Collector) (cost uintptr, moreToDo bool) {
	n := ch.Len()
	i := 0
	for i < ch.StepSize && ch.cursor+i < n {
		i++
	}
	ch.MarkChunk(c, ch.cursor, i)
	cost = uintptr(i) * ch.ElementSize
	ch.cursor += i
	return cost, ch.cursor < n
}

func (ch *Chunk) reset() { ch.cursor = 0 }

// BulkMarker is the chunked-propagation sentinel of spec.md §4.8: a
// Collectable whose mark hook processes a bounded chunk of one flat
// container per invocation and, if any chunk still has work left, flips
// itself back to gray and re-queues itself at the head of the gray queue
// instead of completing in one pass.
//
// A concrete sentinel type embeds BulkMarker and calls Bind(self) once,
// right after construction, so PropagateMark can re-queue the correct
// Collectable value (Go's embedding has no way to recover the outer type
// from the inner one on its own):
//
//	s := &SectorMarker{}
//	s.Chunks = []Chunk{...}
//	s.Bind(s)
type BulkMarker struct {
	hdr    ObjHeader
	self   Collectable
	Chunks []Chunk
}

// Bind records the embedding sentinel value. Must be called once before a
// BulkMarkerProvider first returns the sentinel.
func (b *BulkMarker) Bind(self Collectable) { b.self = self }

// Header satisfies Collectable.
func (b *BulkMarker) Header() *ObjHeader { return &b.hdr }

// Reset rewinds every chunk's cursor to the start. Call this each cycle
// before the sentinel is marked (spec.md §4.3 step 3: "Reset its cursors").
func (b *BulkMarker) Reset() {
	for i := range b.Chunks {
		b.Chunks[i].reset()
	}
}

// PropagateMark drains chunks in order, stopping after the first chunk that
// still has work once its step budget for this invocation is spent. If any
// chunk has more to do, the sentinel re-queues itself gray instead of
// black, per spec.md §4.8.
func (b *BulkMarker) PropagateMark(c *Collector) uintptr {
	var total uintptr
	for i := range b.Chunks {
		ch := &b.Chunks[i]
		if ch.done() {
			continue
		}
		cost, more := ch.step(c)
		total += cost
		if more {
			assertf(b.self != nil, "BulkMarker.Bind was never called")
			b.hdr.black2Gray()
			b.hdr.gcNext = c.gray
			c.gray = b.self
			return total
		}
	}
	return total
}

// Destroy is a no-op: the sentinel holds no resources of its own, only
// cursors into host-owned flat arrays.
func (b *BulkMarker) Destroy() {}

// Size reports zero structural cost; the real cost is reported per chunk
// step via the ElementSize-weighted total PropagateMark returns.
func (b *BulkMarker) Size() uintptr { return 0 }
