package stats

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zdoom-gc/tricolor/gc"
)

type tickHost struct{ tick uint64 }

func (h *tickHost) CurrentTick() uint64 { return h.tick }

func TestReadoutContainsStateAndCounts(t *testing.T) {
	c := gc.New(&tickHost{})
	line := Readout(c)
	require.Contains(t, line, "Pause")
	require.Contains(t, line, "Alloc:")
	require.Contains(t, line, "Steps:0")
}

func TestStepHistoryMeanAndStdDev(t *testing.T) {
	h := NewStepHistory(3)
	require.Equal(t, 0.0, h.Mean())

	h.Record(10)
	h.Record(20)
	h.Record(30)
	h.Record(40) // evicts the first sample (10)

	require.InDelta(t, 30.0, h.Mean(), 0.0001)
	require.Greater(t, h.StdDev(), 0.0)
}

func TestProfileWriterDumpsReadableFile(t *testing.T) {
	w := NewProfileWriter()
	w.Record(gc.Propagate, 128)
	w.Record(gc.Sweep, 64)
	w.Record(gc.Propagate, 256)

	path := filepath.Join(t.TempDir(), "profile.pb.gz")
	require.NoError(t, w.Dump(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}
