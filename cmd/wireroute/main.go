// Command wireroute routes a VLSI wire list against a shared cost grid,
// reading the session file named by -f, iteratively re-routing for -n
// threads with simulated annealing parameters -p/-i, and writing a cost
// file and a wires file alongside the input — the same CLI surface and
// output file pairing as original_source/code/wireroute.cpp.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/katalvlaran/lvlath/grid"
	"github.com/katalvlaran/lvlath/gridgraph"
	"github.com/katalvlaran/lvlath/placement"
	"github.com/katalvlaran/lvlath/router"
	"github.com/katalvlaran/lvlath/wireio"
)

// contentionThreshold selects which cells the post-routing report groups
// into islands: 2 means "actually shared by more than one wire", the
// level a re-routing pass still couldn't fully resolve.
const contentionThreshold = 2

func countIslands(byLevel map[int][][]gridgraph.Cell) int {
	n := 0
	for _, islands := range byLevel {
		n += len(islands)
	}

	return n
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("wireroute", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s OPTIONS\n\nOPTIONS:\n", "wireroute")
		fmt.Fprintln(fs.Output(), "\t-f <input_filename> (required)")
		fmt.Fprintln(fs.Output(), "\t-n <num_of_threads>")
		fmt.Fprintln(fs.Output(), "\t-p <SA_prob>")
		fmt.Fprintln(fs.Output(), "\t-i <SA_iters>")
		fmt.Fprintln(fs.Output(), "\t-seed <corner|dijkstra>")
	}

	inputFilename := fs.String("f", "", "input session filename (required)")
	numThreads := fs.Int("n", 1, "number of worker threads")
	saProb := fs.Float64("p", 0.1, "simulated annealing trigger probability")
	saIters := fs.Int("i", 5, "simulated annealing inner iterations")
	seedMode := fs.String("seed", "corner", "initial placement: corner or dijkstra")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *inputFilename == "" {
		log.Println("Error: You need to specify -f.")
		fs.Usage()
		return 1
	}
	if *seedMode != "corner" && *seedMode != "dijkstra" {
		log.Printf("Error: -seed must be \"corner\" or \"dijkstra\", got %q.", *seedMode)
		fs.Usage()
		return 1
	}

	log.Printf("Number of threads: %d", *numThreads)
	log.Printf("Probability parameter for simulated annealing: %f.", *saProb)
	log.Printf("Number of simulated annealing iterations: %d", *saIters)
	log.Printf("Input file: %s", *inputFilename)

	initStart := time.Now()

	sess, err := wireio.ReadSession(*inputFilename)
	if err != nil {
		log.Printf("Unable to open file: %s.", *inputFilename)
		return 1
	}

	costGrid, err := grid.New(sess.DimX, sess.DimY)
	if err != nil {
		log.Printf("error: %v", err)
		return 1
	}
	if *seedMode == "dijkstra" {
		err = placement.SeedShortestPath(costGrid, sess.Wires)
	} else {
		err = placement.Seed(costGrid, sess.Wires)
	}
	if err != nil {
		log.Printf("error: %v", err)
		return 1
	}

	log.Printf("Initialization Time: %f.", time.Since(initStart).Seconds())

	computeStart := time.Now()

	cfg := router.DefaultConfig()
	cfg.NumThreads = *numThreads
	cfg.SAProb = *saProb
	cfg.SAInnerIters = *saIters

	routingSession := router.NewSession(costGrid, sess.Wires)
	if err := router.Run(context.Background(), routingSession, cfg); err != nil {
		log.Printf("error: %v", err)
		return 1
	}

	log.Printf("Computation Time: %f.", time.Since(computeStart).Seconds())

	islands, err := placement.ContentionIslands(costGrid, contentionThreshold)
	if err != nil {
		log.Printf("error computing contention islands: %v", err)
		return 1
	}
	log.Printf("Contention report (threshold=%d): %d level(s), %d island(s).",
		contentionThreshold, len(islands), countIslands(islands))

	costFilename := wireio.CostFilename(*inputFilename, *numThreads)
	if err := wireio.WriteCostFile(costFilename, costGrid); err != nil {
		log.Printf("error writing %s: %v", costFilename, err)
		return 1
	}

	wiresFilename := wireio.WiresFilename(*inputFilename, *numThreads)
	if err := wireio.WriteWiresFile(wiresFilename, sess.DimX, sess.DimY, sess.Wires); err != nil {
		log.Printf("error writing %s: %v", wiresFilename, err)
		return 1
	}

	return 0
}
