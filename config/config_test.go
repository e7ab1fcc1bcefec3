package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zdoom-gc/tricolor/gc"
)

func TestLoadAppliesDefaultsForZeroFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pause: 0\nstep_mul: 0\n"), 0o644))

	tu, err := NewLoader(path).Load()
	require.NoError(t, err)
	require.Equal(t, gc.DefaultPause, tu.Pause)
	require.Equal(t, gc.DefaultStepMul, tu.StepMul)
	require.Nil(t, tu.MinStepSizeOverride)
}

func TestLoadAndApplyPushesOntoCollector(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pause: 300\nstep_mul: 400\n"), 0o644))

	tu, err := NewLoader(path).Load()
	require.NoError(t, err)

	c := gc.New(constTickHost{})
	Apply(c, tu)

	require.Equal(t, 300, c.Pause())
	require.Equal(t, 400, c.StepMul())
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "missing.yaml")).Load()
	require.Error(t, err)
}

type constTickHost struct{}

func (constTickHost) CurrentTick() uint64 { return 0 }
