package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zdoom-gc/tricolor/gc"
)

type tickHost struct{ tick uint64 }

func (h *tickHost) CurrentTick() uint64 { return h.tick }

func newTestConsole() (*Console, *bytes.Buffer) {
	c := gc.New(&tickHost{})
	con := New(c)
	var buf bytes.Buffer
	con.out = &buf
	return con, &buf
}

func TestBareGcCommandPrintsReadout(t *testing.T) {
	con, buf := newTestConsole()
	require.NoError(t, con.Dispatch("gc"))
	require.Contains(t, buf.String(), "Pause")
}

func TestPauseShowsThenSets(t *testing.T) {
	con, buf := newTestConsole()
	require.NoError(t, con.Dispatch("gc pause"))
	require.Contains(t, buf.String(), "Pause = 150")

	buf.Reset()
	require.NoError(t, con.Dispatch("gc pause 300"))
	require.Contains(t, buf.String(), "Pause = 300")
	require.Equal(t, 300, con.Collector.Pause())
}

func TestPauseClampsBelowMinimum(t *testing.T) {
	con, buf := newTestConsole()
	require.NoError(t, con.Dispatch("gc pause 0"))
	require.Contains(t, buf.String(), "Pause = 1")
}

func TestStepmulClampsBelowMinimum(t *testing.T) {
	con, buf := newTestConsole()
	require.NoError(t, con.Dispatch("gc stepmul 50"))
	require.Contains(t, buf.String(), "StepMul = 100")
}

func TestStopThenNowAdjustThreshold(t *testing.T) {
	con, _ := newTestConsole()
	require.NoError(t, con.Dispatch("gc stop"))
	require.Greater(t, con.Collector.Threshold, con.Collector.AllocBytes)

	require.NoError(t, con.Dispatch("gc now"))
	require.Equal(t, con.Collector.AllocBytes, con.Collector.Threshold)
}

func TestCountReportsLiveObjects(t *testing.T) {
	con, buf := newTestConsole()
	require.NoError(t, con.Dispatch("gc count"))
	require.Contains(t, buf.String(), "0 live objects")
}

func TestUnknownSubcommandErrors(t *testing.T) {
	con, _ := newTestConsole()
	require.Error(t, con.Dispatch("gc frobnicate"))
}

func TestNonGcCommandErrors(t *testing.T) {
	con, _ := newTestConsole()
	require.Error(t, con.Dispatch("quit"))
}

func TestStatsSubcommandIncludesStepCost(t *testing.T) {
	con, buf := newTestConsole()
	con.History.Record(42)
	require.NoError(t, con.Dispatch("gc stats"))
	require.Contains(t, buf.String(), "StepCost")
}
