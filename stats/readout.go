// Package stats formats collector state for an operator console and
// records per-step cost history for diagnosis, on top of the gc package's
// plain uintptr/State values.
package stats

import (
	"fmt"

	"github.com/inhies/go-bytesize"

	"github.com/zdoom-gc/tricolor/gc"
)

// Readout renders the one-line "[State] Alloc:xK Thresh:xK Est:xK Steps:n
// MinStep:xK" stat spec.md §6 describes, with byte counts formatted into
// human-scaled units instead of raw integers.
func Readout(c *gc.Collector) string {
	return fmt.Sprintf("[%s] Alloc:%s Thresh:%s Est:%s Steps:%d MinStep:%s",
		c.State(),
		bytesize.New(float64(c.AllocBytes)),
		bytesize.New(float64(c.Threshold)),
		bytesize.New(float64(c.Estimate)),
		c.StepCount(),
		bytesize.New(float64(c.MinStepSize())),
	)
}
