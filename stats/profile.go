package stats

import (
	"fmt"
	"os"

	"github.com/google/pprof/profile"

	"github.com/zdoom-gc/tricolor/gc"
)

// ProfileWriter accumulates one pprof sample per SingleStep call, attributed
// to a pseudo-function named after the collector state it ran in, so pprof's
// per-function views show where step cost actually goes (Propagate vs.
// Sweep vs. Finalize) instead of only the aggregate StepHistory mean. The
// samples carry no labels.
type ProfileWriter struct {
	samples []*profile.Sample
	states  map[string]*profile.Function
}

// NewProfileWriter returns an empty ProfileWriter.
func NewProfileWriter() *ProfileWriter {
	return &ProfileWriter{states: map[string]*profile.Function{}}
}

// Record adds one (state, cost) observation.
func (w *ProfileWriter) Record(state gc.State, cost uintptr) {
	fn := w.functionFor(state.String())
	loc := &profile.Location{
		ID:   uint64(len(w.samples) + 1),
		Line: []profile.Line{{Function: fn}},
	}
	w.samples = append(w.samples, &profile.Sample{
		Value:    []int64{int64(cost)},
		Location: []*profile.Location{loc},
	})
}

func (w *ProfileWriter) functionFor(name string) *profile.Function {
	if fn, ok := w.states[name]; ok {
		return fn
	}
	fn := &profile.Function{
		ID:   uint64(len(w.states) + 1),
		Name: name,
	}
	w.states[name] = fn
	return fn
}

// Dump writes the accumulated samples to path in pprof's gzip'd proto
// format, for the console "gc profile <path>" subcommand.
func (w *ProfileWriter) Dump(path string) error {
	functions := make([]*profile.Function, 0, len(w.states))
	locations := make([]*profile.Location, 0, len(w.samples))
	for _, s := range w.samples {
		locations = append(locations, s.Location[0])
	}
	for _, fn := range w.states {
		functions = append(functions, fn)
	}

	p := &profile.Profile{
		SampleType: []*profile.ValueType{{Type: "cost", Unit: "bytes"}},
		Sample:     w.samples,
		Location:   locations,
		Function:   functions,
		PeriodType: &profile.ValueType{Type: "step", Unit: "count"},
		Period:     1,
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("stats: creating profile %s: %w", path, err)
	}
	defer f.Close()
	if err := p.Write(f); err != nil {
		return fmt.Errorf("stats: writing profile %s: %w", path, err)
	}
	return nil
}
