// Package config loads the host-adjustable collector tunables spec.md §3
// and §6 name (Pause, StepMul, and an optional step-size floor override)
// from a YAML document, and pushes them onto a running Collector.
package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v2"

	"github.com/zdoom-gc/tricolor/gc"
)

// Tunables mirrors the fields an operator is expected to hand-edit between
// runs. MinStepSizeOverride is a pointer so "absent" and "zero" are
// distinguishable in the YAML document.
type Tunables struct {
	Pause               int  `yaml:"pause"`
	StepMul             int  `yaml:"step_mul"`
	MinStepSizeOverride *int `yaml:"min_step_size,omitempty"`
}

// Loader reads a Tunables document from a file, holding a file lock for the
// duration of the read so a concurrent editor save can't be observed
// half-written.
type Loader struct {
	Path        string
	LockTimeout time.Duration
}

// NewLoader returns a Loader with a conservative default lock timeout.
func NewLoader(path string) *Loader {
	return &Loader{Path: path, LockTimeout: 2 * time.Second}
}

// Load reads and parses the tunables file under an exclusive lock.
func (l *Loader) Load() (*Tunables, error) {
	lock := flock.New(l.Path + ".lock")
	ctx, cancel := context.WithTimeout(context.Background(), l.LockTimeout)
	defer cancel()
	locked, err := lock.TryLockContext(ctx, 50*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("config: acquiring lock for %s: %w", l.Path, err)
	}
	if !locked {
		return nil, fmt.Errorf("config: timed out locking %s", l.Path)
	}
	defer lock.Unlock()

	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", l.Path, err)
	}

	var t Tunables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", l.Path, err)
	}
	if t.Pause == 0 {
		t.Pause = gc.DefaultPause
	}
	if t.StepMul == 0 {
		t.StepMul = gc.DefaultStepMul
	}
	return &t, nil
}

// Apply pushes t onto c through the same setter surface spec.md §6 exposes
// to hosts (SetPause/SetStepMul/SetSmallestObjectSize), so a live reload
// behaves exactly like the console's pause/stepmul subcommands.
func Apply(c *gc.Collector, t *Tunables) {
	c.SetPause(t.Pause)
	c.SetStepMul(t.StepMul)
	if t.MinStepSizeOverride != nil {
		c.SetSmallestObjectSize(uintptr(*t.MinStepSizeOverride) / 16)
	}
}
