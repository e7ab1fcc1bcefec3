// Command gcdemo wires config, engine, console, and gc together into a
// simulated frame loop without any real rendering/audio/input/script-VM
// machinery. It exercises Alloc, root and bulk-marker registration (and so
// Mark/MarkArray), RefreshClock and CheckGC, plus whatever the console
// commands call (FullGC for "gc full"); it does not call Barrier,
// AddSoftRoot or DelSoftRoot.
package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"github.com/zdoom-gc/tricolor/config"
	"github.com/zdoom-gc/tricolor/console"
	"github.com/zdoom-gc/tricolor/engine"
	"github.com/zdoom-gc/tricolor/gc"
)

// frameHost is the demo's Host implementation: a plain tick counter
// advanced once per simulated frame.
type frameHost struct{ tick uint64 }

func (h *frameHost) CurrentTick() uint64 { return h.tick }

func main() {
	configPath := flag.String("config", "", "path to a gc.yaml tunables file (optional)")
	frames := flag.Int("frames", 0, "number of simulated frames to run before exiting (0 = read commands from stdin until EOF)")
	flag.Parse()

	host := &frameHost{}
	collector := gc.New(host)

	if *configPath != "" {
		tu, err := config.NewLoader(*configPath).Load()
		if err != nil {
			log.Fatalf("gcdemo: loading config: %v", err)
		}
		config.Apply(collector, tu)
		log.Printf("gcdemo: applied config from %s (pause=%d stepmul=%d)", *configPath, tu.Pause, tu.StepMul)
	}

	level := &engine.LevelState{}
	thinkers := &engine.ThinkerList{}
	sounds := &engine.SoundSequenceList{}
	bots := &engine.Bots{}
	var interpolatorHead gc.Collectable
	engine.RegisterAll(collector, level, thinkers, sounds, bots, &interpolatorHead)

	con := console.New(collector)
	collector.OnSingleStep(con.RecordStep)

	populateDemoLevel(collector, level, thinkers)

	if *frames > 0 {
		runFrames(collector, host, *frames)
		log.Println("gcdemo:", con.History.Summary(collector))
		return
	}

	runInteractive(collector, host, con)
}

// populateDemoLevel allocates a small, self-referential object graph so
// the demo has something to collect: a sector per thinker, each pointing
// at an actor the thinker owns.
func populateDemoLevel(c *gc.Collector, level *engine.LevelState, thinkers *engine.ThinkerList) {
	const numSectors = 64
	level.Sectors = make([]engine.Sector, numSectors)
	var prev *engine.Thinker
	for i := range level.Sectors {
		actor := engine.NewActor("demo")
		c.Alloc(actor)
		level.Sectors[i].FloorData = actor

		th := engine.NewThinker()
		th.Owner = actor
		c.Alloc(th)
		if prev != nil {
			prev.Next = th
			th.Prev = prev
		} else {
			thinkers.Head = th
		}
		prev = th
	}
}

// runFrames advances the demo for a fixed number of frames, calling
// CheckGC every frame the way a real host's main loop would.
func runFrames(c *gc.Collector, host *frameHost, n int) {
	for i := 0; i < n; i++ {
		host.tick++
		c.RefreshClock()
		c.CheckGC()
	}
}

// runInteractive advances one frame per stdin line and dispatches the line
// itself as a console command, so "gc pause 300" typed at the prompt takes
// effect on the next frame's CheckGC.
func runInteractive(c *gc.Collector, host *frameHost, con *console.Console) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		host.tick++
		c.RefreshClock()
		c.CheckGC()

		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := con.Dispatch(line); err != nil {
			log.Println("gcdemo:", err)
		}
	}
}
