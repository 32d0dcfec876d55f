// Package cmd implements the xwords command line interface.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/spf13/cobra"

	"github.com/crossfill/xwords/pkg/dict"
	"github.com/crossfill/xwords/pkg/fill"
	"github.com/crossfill/xwords/pkg/grid"
)

const version = "0.1.0"

var (
	inputPath  string
	gridWidth  int
	gridHeight int
	profile    bool
	workers    int
	useSimple  bool
)

var rootCmd = &cobra.Command{
	Use:   "xwords",
	Short: "Crossword grid filler",
	Long: `xwords fills American-style crossword grids: every Across and Down run
becomes a dictionary word, no entry repeats, and pre-placed letters are kept.

Run "xwords index" once to build the dictionary indexes, then fill grids:

  xwords --input grid.txt
  xwords --input grid.txt --width 21 --height 15
  xwords --input grid.txt --workers 4`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runFill,
}

// Execute runs the root command; main calls this once.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to a grid text file (required)")
	rootCmd.Flags().IntVar(&gridWidth, "width", 0, "grid width; required together with --height for non-square grids")
	rootCmd.Flags().IntVar(&gridHeight, "height", 0, "grid height; required together with --width for non-square grids")
	rootCmd.Flags().BoolVarP(&profile, "profile", "p", false, "write a CPU profile to xwords.prof")
	rootCmd.Flags().IntVar(&workers, "workers", 0, "fill with a worker pool of this size (0 = single-threaded)")
	rootCmd.Flags().BoolVar(&useSimple, "simple", false, "use the depth-first driver instead of the priority frontier")
	rootCmd.MarkFlagRequired("input")
}

func runFill(cmd *cobra.Command, args []string) error {
	if (gridWidth == 0) != (gridHeight == 0) {
		return errors.New("--width and --height must be given together")
	}

	text, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	var g grid.Grid
	if gridWidth > 0 {
		g, err = grid.Rectangle(string(text), gridWidth, gridHeight)
	} else {
		g, err = grid.Square(string(text))
	}
	if err != nil {
		return fmt.Errorf("failed to parse grid: %w", err)
	}

	if profile {
		f, err := os.Create("xwords.prof")
		if err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("failed to start profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	trie, bigrams, err := dict.LoadDefault()
	if err != nil {
		return fmt.Errorf("failed to load indexes (run \"xwords index\" first): %w", err)
	}

	filler := pickFiller(trie, bigrams)
	solved, err := filler.Fill(g)
	if err != nil {
		return fmt.Errorf("failed to fill crossword: %w", err)
	}

	fmt.Println(solved)
	return nil
}

func pickFiller(trie *dict.Trie, bigrams *dict.BigramTable) fill.Filler {
	switch {
	case useSimple:
		return fill.NewSimpleSolver(trie)
	case workers > 1:
		solver := fill.NewParallelSolver(trie, bigrams)
		solver.Workers = workers
		return solver
	default:
		return fill.NewSolver(trie, bigrams)
	}
}
