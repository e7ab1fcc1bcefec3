package gc

// calcStepSize implements spec.md §4.7's formula:
//
//	alloc    = min(LastCollectAlloc, Estimate)
//	gained   = max(0, AllocBytes - alloc)
//	elapsed  = CheckTime - LastCollectTime
//	target   = gained / elapsed * StepMul / 100
//	stepSize = max(GCSTEPSIZE, target)
//
// If StepMul is 0 or elapsed is 0, there is no meaningful rate to compute
// from, so stepSize is effectively infinite: one Step call will run to a
// full cycle.
func (c *Collector) calcStepSize() uintptr {
	alloc := c.lastCollectAlloc
	if c.Estimate < alloc {
		alloc = c.Estimate
	}
	var gained uintptr
	if c.AllocBytes > alloc {
		gained = c.AllocBytes - alloc
	}
	elapsed := int64(c.checkTime) - int64(c.lastCollectTime)
	if c.stepMul > 0 && elapsed > 0 {
		target := gained / uintptr(elapsed) * uintptr(c.stepMul) / 100
		if target < c.gcStepSize() {
			return c.gcStepSize()
		}
		return target
	}
	return ^uintptr(0) / 2 // no limit
}

// atomic performs the non-interruptible Propagate→Sweep transition
// (spec.md §4.5): flip CurrentWhite, arm the sweeper at the head of the
// allocation list, and capture Estimate/MinStepSize for this sweep.
func (c *Collector) atomic() {
	c.currentWhite = otherWhite(c.currentWhite)
	c.sweepPos = &c.root
	c.state = Sweep
	c.Estimate = c.AllocBytes
	c.minStepSize = c.calcStepSize()
}

// SingleStep performs one indivisible unit of collector work and returns
// its cost (spec.md §4.6's SingleStep dispatch table). It never blocks and
// always makes forward progress in the state machine or the sweep list.
func (c *Collector) SingleStep() uintptr {
	switch c.state {
	case Pause:
		c.MarkRoot() // start a new collection
		return 0

	case Propagate:
		if c.gray != nil {
			return c.PropagateMark()
		}
		c.atomic() // finish the mark phase
		return 0

	case Sweep:
		old := c.AllocBytes
		next, finalized := c.sweepList(c.sweepPos, c.gcSweepMax())
		c.sweepPos = next
		if *c.sweepPos == nil {
			c.state = Finalize
		}
		if old > c.AllocBytes {
			c.Estimate -= old - c.AllocBytes
		}
		swept := c.gcSweepMax() - finalized
		return uintptr(swept)*c.gcSweepCost() + uintptr(finalized)*c.gcFinalizeCost()

	case Finalize:
		c.state = Pause // end the collection
		c.lastCollectAlloc = c.AllocBytes
		c.lastCollectTime = c.checkTime
		return 0

	default:
		assertf(false, "unreachable collector state %d", c.state)
		return 0
	}
}

// Step performs enough SingleStep calls to cover roughly
// max(calcStepSize(), MinStepSize) bytes of work (spec.md §4.7). It
// recomputes the step size on entry, so a rising allocation rate is
// reflected immediately, but never goes slower than the floor captured at
// the start of the current sweep.
func (c *Collector) Step() {
	lim := c.calcStepSize()
	if c.minStepSize > lim {
		lim = c.minStepSize
	}
	for {
		state := c.state
		done := c.SingleStep()
		if c.stepObserver != nil {
			c.stepObserver(state, done)
		}
		if done < lim {
			lim -= done
		} else {
			lim = 0
		}
		if lim == 0 || c.state == Pause {
			break
		}
	}
	if c.state != Pause {
		c.Threshold = c.AllocBytes
	} else {
		assertf(c.AllocBytes >= c.Estimate, "AllocBytes dropped below Estimate")
		c.SetThreshold()
	}
	c.stepCount++
}

// FullGC forces a stop-the-world collection (spec.md §4.10): discard any
// in-flight Propagate state, finish the current sweep (or start one from
// scratch), finalize, then run a fresh Pause→Propagate→Sweep→Finalize cycle
// to completion and recompute Threshold.
//
// Discarding an in-flight Propagate is safe: sweep re-whitens survivors, and
// anything that was gray at the discard is treated as dead in the ensuing
// sweep (spec.md §9). This implementation takes that option rather than
// finishing propagation first, matching spec.md's stated default.
func (c *Collector) FullGC() {
	if c.state == Pause || c.state == Propagate {
		c.sweepPos = &c.root
		c.gray = nil
		c.state = Sweep
	}
	for c.state != Finalize {
		c.SingleStep()
	}
	c.MarkRoot()
	for c.state != Pause {
		c.SingleStep()
	}
	c.SetThreshold()
}
