// Command tourbench runs a repeated-trial heuristic evaluation over one
// instance file and writes the three result tables (best, routes,
// distribution) as CSV plus a JSON run document.
//
// Usage:
//
//	tourbench -input instance.json -output results/ [-trials N] [-methods a,b] [-seed S]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/katalvlaran/tourbench/bench"
	"github.com/katalvlaran/tourbench/heuristics"
	"github.com/katalvlaran/tourbench/report"
)

var (
	inputF  *string
	outputF *string
	trials  *int
	methods *string
	seed    *int64
)

func main() {
	inputF = flag.String("input", "instance.json", "Path to the input instance (JSON)")
	outputF = flag.String("output", ".", "Output directory for the result tables")
	trials = flag.Int("trials", 0, "Override the instance's per-method trial budget")
	methods = flag.String("methods", "", "Comma-separated method ids (default: instance's list, else registry defaults)")
	seed = flag.Int64("seed", 0, "Base seed for reproducible runs (0 = fresh randomness)")

	flag.Parse()

	inst, err := report.LoadInstance(*inputF)
	if err != nil {
		log.Fatalf("At %s: %s", *inputF, err)
	}

	dist, err := inst.Matrix()
	if err != nil {
		log.Fatalf("At %s: %s", *inputF, err)
	}

	nsims := inst.Trials
	if *trials > 0 {
		nsims = *trials
	}

	methodIDs := inst.Methods
	if *methods != "" {
		methodIDs = strings.Split(*methods, ",")
	}
	if len(methodIDs) == 0 {
		methodIDs = heuristics.Methods()
	}

	reg := heuristics.NewRegistry(heuristics.Options{Seed: *seed})

	log.Printf("Evaluating %q: %d nodes, %s -> %s, methods=%v, trials=%d",
		inst.Name, len(inst.Labels), inst.Start, inst.End, methodIDs, nsims)

	startT := time.Now()
	res, err := bench.Evaluate(dist, inst.Labels, inst.Start, inst.End, methodIDs, nsims, reg)
	if err != nil {
		log.Fatalf("Evaluation failed: %s", err)
	}
	elapsed := time.Since(startT)

	if err = writeTables(*outputF, res); err != nil {
		log.Fatalf("Writing tables: %s", err)
	}

	doc := report.NewDocument(inst.Name, inst.Comment, elapsed.String(), res)
	if err = report.WriteDocument(filepath.Join(*outputF, "solution.json"), doc); err != nil {
		log.Fatalf("Writing document: %s", err)
	}

	for _, t := range res.GlobalBest {
		log.Printf("Best: method=%s trial=%d length=%v path=%v", t.Method, t.Index, t.Length, t.Path)
	}
	log.Printf("Done in %s (%d trials recorded)", elapsed, len(res.Distribution))
}

// writeTables emits best.csv, routes.csv and distribution.csv into dir.
func writeTables(dir string, res bench.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	if err := writeCSV(filepath.Join(dir, "best.csv"), func(f *os.File) error {
		return report.WriteBestCSV(f, res.BestTable())
	}); err != nil {
		return err
	}
	if err := writeCSV(filepath.Join(dir, "routes.csv"), func(f *os.File) error {
		return report.WriteRoutesCSV(f, res.RouteTable())
	}); err != nil {
		return err
	}

	return writeCSV(filepath.Join(dir, "distribution.csv"), func(f *os.File) error {
		return report.WriteDistributionCSV(f, res.DistributionTable())
	})
}

// writeCSV opens path, runs emit against it and closes, propagating the
// first error.
func writeCSV(path string, emit func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err = emit(f); err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}
