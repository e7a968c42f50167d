package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"demandsim/internal/analysis"
	"demandsim/internal/config"
	"demandsim/internal/sim"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --config examples/config.yaml [--out results]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate writes desc.txt and data.csv into the output folder")
	fmt.Println("  - the output CSV compares smart/uncontrolled/spreadout demand per interval")
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	outDir := fs.String("out", "", "Output folder (overrides config output.dir)")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	params, err := cfg.Params()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	params.Logf = func(format string, a ...any) {
		fmt.Printf(format+"\n", a...)
	}

	archive, err := cfg.Archive()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Abort cleanly between ticks on Ctrl-C.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	started := time.Now()
	engine := sim.New(params, archive)
	res, err := engine.Run(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("simulation took %.3fs\n", time.Since(started).Seconds())

	dir := cfg.Output.Dir
	if *outDir != "" {
		dir = *outDir
	}
	if err := sim.WriteResults(dir, res); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d rows to %s\n", len(res.Rows), dir)

	summaries := analysis.Summarize(analysis.Input{
		Rows:      res.Rows,
		Costs:     res.Costs,
		StepHours: params.Timeline.StepHours(),
	})
	for _, s := range summaries {
		fmt.Printf("%-13s peak=%9.2fkW mean=%8.2fkW load_factor=%.3f energy=%10.1fkWh cost=%10.2f peak_cut=%5.1f%%\n",
			s.Strategy, s.PeakKW, s.MeanKW, s.LoadFactor, s.EnergyKWh, s.TotalCost, s.PeakReductionPct)
	}
}
