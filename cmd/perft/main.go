// Command perft walks the move generation tree of strictly legal moves to
// a given depth and counts the number of visited leaf nodes.  The counts
// are printed per depth together with their timings; the command does not
// check them against reference values itself.
//
// See https://www.chessprogramming.org/Perft_Results
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/clinaresl/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/newlysama/betterchess"
	"github.com/newlysama/betterchess/internal/logging"
)

// out prints node counts with grouped digits: 97,862 reads better than
// 97862 once the depths grow.
var out = message.NewPrinter(language.English)

func main() {
	log := logging.GetLog("perft")

	depth := flag.Int("depth", 5, "Performance test depth")
	fen := flag.String("fen", betterchess.InitialPos, "Root position")
	verbose := flag.Bool("verbose", false, "Print the per-move-kind breakdown")
	parallel := flag.Bool("parallel", false, "Split the root moves across goroutines")
	cpuprofile := flag.String("cpuprofile", "", "File to write a cpu profile")
	memprofile := flag.String("memprofile", "", "File to write a memory profile")

	flag.Parse()

	p, err := betterchess.ParseFEN(*fen)
	if err != nil {
		log.Fatal(err)
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	fmt.Print(betterchess.FormatPosition(p))
	log.Infof("running perft to depth %d", *depth)

	tab, err := table.NewTable("l | r | r | r")
	if err != nil {
		log.Fatal(err)
	}
	tab.AddRow("depth", "nodes", "time", "knps")
	tab.AddSingleRule()

	for d := 1; d <= *depth; d++ {
		start := time.Now()

		var nodes uint64
		if *parallel {
			nodes = betterchess.PerftParallel(p, d)
		} else {
			nodes = betterchess.Perft(&p, d)
		}

		elapsed := time.Since(start)
		knps := float64(nodes) / 1000 / elapsed.Seconds()

		tab.AddRow(
			out.Sprintf("%d", d),
			out.Sprintf("%d", nodes),
			elapsed.Round(time.Microsecond).String(),
			out.Sprintf("%.0f", knps),
		)
	}

	fmt.Printf("%v", tab)

	if *verbose {
		counters := betterchess.PerftCounters{}
		nodes := betterchess.PerftDetail(&p, *depth, &counters)

		out.Printf("nodes:         %d\n", nodes)
		out.Printf("captures:      %d\n", counters.Captures)
		out.Printf("en passants:   %d\n", counters.EnPassants)
		out.Printf("castles:       %d\n", counters.Castles)
		out.Printf("promotions:    %d\n", counters.Promotions)
		out.Printf("checks:        %d\n", counters.Checks)
		out.Printf("double checks: %d\n", counters.DoubleChecks)
		out.Printf("checkmates:    %d\n", counters.Checkmates)
	}
}
