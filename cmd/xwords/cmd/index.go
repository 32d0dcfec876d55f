package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crossfill/xwords/pkg/dict"
)

var (
	dictionaryPath string
	brodaFormat    bool
	minScore       int
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build and save the dictionary indexes",
	Long: `Build the letter trie and bigram table from a dictionary and save their
binary forms to the working directory, where fill runs pick them up.

The dictionary is a JSON object whose keys are the words (values are
ignored), or, with --broda, a WORD;SCORE list in Peter Broda's format.`,
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)

	indexCmd.Flags().StringVarP(&dictionaryPath, "dictionary", "d", "wordlist.json", "path to the dictionary file")
	indexCmd.Flags().BoolVar(&brodaFormat, "broda", false, "dictionary is a WORD;SCORE list")
	indexCmd.Flags().IntVar(&minScore, "min-score", 50, "minimum word score to keep (with --broda)")
}

func runIndex(cmd *cobra.Command, args []string) error {
	var (
		words []string
		err   error
	)
	if brodaFormat {
		words, err = dict.LoadBrodaWordlist(dictionaryPath, minScore)
	} else {
		words, err = dict.LoadWordlist(dictionaryPath)
	}
	if err != nil {
		return fmt.Errorf("failed to load dictionary: %w", err)
	}
	fmt.Printf("Building indexes from %d words\n", len(words))

	trie, bigrams := dict.BuildIndexes(words)
	if err := dict.SaveDefault(trie, bigrams); err != nil {
		return fmt.Errorf("failed to save indexes: %w", err)
	}

	fmt.Printf("Saved %s and %s\n", dict.DefaultTriePath, dict.DefaultBigramsPath)
	return nil
}
