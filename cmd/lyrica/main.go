package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/verselab/lyrica"
)

var (
	inputPath string
	compact   bool
)

var rootCmd = &cobra.Command{
	Use:   "lyrica [file]",
	Short: "Lyrica - a deterministic lyrics-analysis engine",
	Long: `Lyrica converts raw song-lyric text into a structured profile:
mood breakdown, themes, sentiment, energy, narrative arc, chorus
detection, and more. Reads from a file argument, --input, or stdin
and writes the analysis as JSON to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := inputPath
		if len(args) == 1 {
			path = args[0]
		}

		lyrics, err := readLyrics(path)
		if err != nil {
			return err
		}

		result := lyrica.Analyze(lyrics)

		enc := json.NewEncoder(cmd.OutOrStdout())
		if !compact {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(result)
	},
}

func readLyrics(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading lyrics file: %w", err)
	}
	return string(data), nil
}

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "lyrics file to analyze (default stdin)")
	rootCmd.Flags().BoolVar(&compact, "compact", false, "emit compact JSON")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
