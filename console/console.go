// Package console implements the operator-facing "gc" command spec.md §6
// describes: a single command with stop/now/full/count/pause/stepmul
// subcommands, plus two additions (stats, profile) that expose the domain
// stack's extended diagnostics without changing any of spec.md's named
// subcommand semantics.
package console

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/shlex"
	"github.com/mattn/go-colorable"
	"golang.org/x/sys/unix"

	"github.com/zdoom-gc/tricolor/gc"
	"github.com/zdoom-gc/tricolor/stats"
)

// Console bundles a Collector with the diagnostic state its two extra
// subcommands need (step history, profile accumulation). Dispatch is the
// only entry point a host needs to call.
type Console struct {
	Collector *gc.Collector
	History   *stats.StepHistory
	Profile   *stats.ProfileWriter

	out io.Writer
}

// New returns a Console writing to stdout through colorable.NewColorable.
// The console's own output is plain text; it writes no color sequences.
func New(c *gc.Collector) *Console {
	return &Console{
		Collector: c,
		History:   stats.NewStepHistory(64),
		Profile:   stats.NewProfileWriter(),
		out:       colorable.NewColorable(os.Stdout),
	}
}

// RecordStep feeds one SingleStep observation into both diagnostics
// streams. Install it with Collector.OnSingleStep so every step the host's
// frame loop drives through Step is recorded automatically.
func (con *Console) RecordStep(state gc.State, cost uintptr) {
	con.History.Record(cost)
	con.Profile.Record(state, cost)
}

// Dispatch tokenizes and runs one operator command line (e.g. "gc pause
// 300"), writing its output to con's configured writer. Unknown commands
// and malformed arguments return an error instead of panicking; nothing
// about a mistyped console command should bring down the host.
func (con *Console) Dispatch(line string) error {
	args, err := shlex.Split(line)
	if err != nil {
		return fmt.Errorf("console: parsing %q: %w", line, err)
	}
	if len(args) == 0 || args[0] != "gc" {
		return fmt.Errorf("console: unrecognized command %q", line)
	}
	if len(args) < 2 {
		fmt.Fprintln(con.out, wrap(stats.Readout(con.Collector), terminalWidth()))
		return nil
	}

	sub, rest := args[1], args[2:]
	switch sub {
	case "stop":
		con.Collector.ForceStop()
	case "now":
		con.Collector.ForceNow()
	case "full":
		con.Collector.FullGC()
	case "count":
		fmt.Fprintf(con.out, "%d live objects\n", con.Collector.Count())
	case "pause":
		return con.intSubcommand(rest, "Pause", con.Collector.Pause, con.Collector.SetPause)
	case "stepmul":
		return con.intSubcommand(rest, "StepMul", con.Collector.StepMul, con.Collector.SetStepMul)
	case "stats":
		fmt.Fprintln(con.out, wrap(con.History.Summary(con.Collector), terminalWidth()))
	case "profile":
		if len(rest) != 1 {
			return fmt.Errorf("console: profile requires exactly one path argument")
		}
		return con.Profile.Dump(rest[0])
	default:
		return fmt.Errorf("console: unknown gc subcommand %q", sub)
	}
	return nil
}

// intSubcommand implements the shared "show current value, or set a new
// one" shape of pause/stepmul (spec.md §6: "pause [N]", "stepmul [N]").
func (con *Console) intSubcommand(args []string, label string, get func() int, set func(int)) error {
	if len(args) == 0 {
		fmt.Fprintf(con.out, "%s = %d\n", label, get())
		return nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("console: %s expects an integer, got %q: %w", label, args[0], err)
	}
	set(n)
	fmt.Fprintf(con.out, "%s = %d\n", label, get())
	return nil
}

// wrap truncates s to width columns, leaving room for a continuation
// marker, so the stat readout never wraps mid-field on a narrow terminal.
func wrap(s string, width int) string {
	if width <= 1 || len(s) <= width {
		return s
	}
	return s[:width-1] + "…"
}

// terminalWidth reports the console's current width in columns, falling
// back to 80 when stdout isn't backed by a real terminal (piped output,
// CI, `go test`).
func terminalWidth() int {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return 80
	}
	return int(ws.Col)
}
