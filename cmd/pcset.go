package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/tonerow/chord"
	"github.com/jsphweid/tonerow/pc"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(pcsetCmd)
}

var pcsetCmd = &cobra.Command{
	Use:   "pcset <pcs>...",
	Short: "Prints normal form, prime form and interval vector of a set",
	Long: `Prints normal form, prime form and interval vector of a pitch-class set.
Pitch classes may be separated by spaces or commas, T/E stand for 10/11.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := pc.Parse(strings.Join(args, " "))
		if err != nil {
			return err
		}
		prime := pc.PrimeForm(set)
		fmt.Printf("set:    %v\n", set)
		fmt.Printf("normal: %v\n", pc.NormalForm(set))
		fmt.Printf("prime:  %v (%v)\n", prime, chord.Key(prime))
		fmt.Printf("vector: %v\n", pc.IntervalVector(set))
		return nil
	},
}
