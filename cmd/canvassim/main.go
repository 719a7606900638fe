// Command canvassim replays a scripted input scenario against the canvas
// controller and writes the frame trace.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/elektrokombinacija/portfolio-canvas/internal/config"
	"github.com/elektrokombinacija/portfolio-canvas/internal/sim"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", os.Getenv("CANVAS_CONFIG"), "YAML config file (defaults built in)")
	scenarioPath := flag.String("scenario", "", "Scenario YAML file (required)")
	contentPath := flag.String("content", "", "Override the scenario's content export")
	outPath := flag.String("out", "", "Trace output file (summary only when empty)")
	flag.Parse()

	if *scenarioPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	sc, err := sim.ReadScenario(*scenarioPath)
	if err != nil {
		log.Fatal(err)
	}
	if *contentPath != "" {
		sc.Content = *contentPath
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	trace, err := sim.RunScenario(ctx, cfg, sc)
	if err != nil {
		log.Fatal(err)
	}

	s := trace.Summary
	fmt.Printf("Scenario %q (%s, %d tiles)\n", trace.Scenario, trace.Device, trace.Tiles)
	fmt.Printf("  frames=%d time=%v clicks=%d focuses=%d stage_changes=%d pans=%d\n",
		s.Frames, s.SimulatedTime, s.Clicks, s.Focuses, s.StageChanges, s.Pans)
	fmt.Printf("  scale=[%.3f, %.3f] final_stage=%s bounds_violations=%d\n",
		s.MinScale, s.MaxScale, s.FinalStage, s.BoundsViolations)

	if *outPath != "" {
		if err := sim.WriteTrace(trace, *outPath); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Trace written to %s\n", *outPath)
	}
	if s.BoundsViolations > 0 {
		os.Exit(1)
	}
}
