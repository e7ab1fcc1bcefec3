package stats

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"

	"github.com/zdoom-gc/tricolor/gc"
)

// StepHistory keeps a bounded window of recent SingleStep cost samples
// (the state is not kept), smoothing the instantaneous rate spec.md §4.7's step-size
// formula uses into a mean/stddev an operator can read at a glance via the
// console's "gc stats" subcommand.
type StepHistory struct {
	capacity int
	costs    []float64
}

// NewStepHistory returns a StepHistory retaining the most recent capacity
// samples.
func NewStepHistory(capacity int) *StepHistory {
	if capacity < 1 {
		capacity = 1
	}
	return &StepHistory{capacity: capacity}
}

// Record appends one SingleStep cost observation.
func (h *StepHistory) Record(cost uintptr) {
	h.costs = append(h.costs, float64(cost))
	if len(h.costs) > h.capacity {
		h.costs = h.costs[len(h.costs)-h.capacity:]
	}
}

// Mean and StdDev summarize the retained window; both are zero on an empty
// history.
func (h *StepHistory) Mean() float64 {
	if len(h.costs) == 0 {
		return 0
	}
	return stats.Sample{Xs: h.costs}.Mean()
}

func (h *StepHistory) StdDev() float64 {
	if len(h.costs) < 2 {
		return 0
	}
	return stats.Sample{Xs: h.costs}.StdDev()
}

// Summary renders the extended "gc stats" readout: the ordinary Readout
// line plus the step-cost mean/stddev over the retained window.
func (h *StepHistory) Summary(c *gc.Collector) string {
	return fmt.Sprintf("%s StepCost(mean=%.1f stddev=%.1f n=%d)",
		Readout(c), h.Mean(), h.StdDev(), len(h.costs))
}
