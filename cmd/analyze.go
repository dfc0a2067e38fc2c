package cmd

import (
	"fmt"
	"os"

	"github.com/jsphweid/tonerow/chord"
	"github.com/jsphweid/tonerow/midi"
	"github.com/jsphweid/tonerow/model"
	"github.com/jsphweid/tonerow/util"
	"github.com/spf13/cobra"
)

var (
	analyzeMax     int
	analyzeSummary bool
)

func init() {
	analyzeCmd.Flags().IntVarP(&analyzeMax, "max", "m", 0, "analyze at most this many files (0 = all)")
	analyzeCmd.Flags().BoolVarP(&analyzeSummary, "summary", "s", false, "print only the prime form histogram")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file-or-dir>",
	Short: "Prints the set classes of the sonorities in midi files",
	Long:  `Prints the set class of every sonority in a midi file, or in every midi file under a directory.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := []string{args[0]}
		if info, err := os.Stat(args[0]); err == nil && info.IsDir() {
			paths, err = util.GatherAllMidiPaths(args[0], analyzeMax)
			if err != nil {
				return err
			}
		}

		var all []model.SonorityAnalysis
		for i, path := range paths {
			fmt.Printf("Processing %v of %v midi files\n", i+1, len(paths))
			analyses, err := analyzeFile(path)
			if err != nil {
				fmt.Printf("Skipping %v because: %v\n", path, err)
				continue
			}
			if !analyzeSummary {
				for _, a := range analyses {
					fmt.Printf("%8.3f  %-12v prime %-14v vector %v\n", a.Time, a.Keys, a.Key, a.Vector)
				}
			}
			all = append(all, analyses...)
		}

		hist := chord.Histogram(all)
		for _, key := range util.GetKeysSorted(hist) {
			fmt.Printf("%-14v %v\n", key, hist[key])
		}
		return nil
	},
}

func analyzeFile(path string) ([]model.SonorityAnalysis, error) {
	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		return nil, err
	}
	s, err := midi.ToSeq(parsed)
	if err != nil {
		return nil, err
	}
	return chord.Analyze(chord.FromSeq(s)), nil
}
