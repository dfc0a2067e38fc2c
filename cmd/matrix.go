package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/tonerow/matrix"
	"github.com/jsphweid/tonerow/pc"
	"github.com/spf13/cobra"
)

var (
	matrixNames  bool
	matrixLabels []string
)

func init() {
	matrixCmd.Flags().BoolVarP(&matrixNames, "names", "n", false, "print note names instead of 0-9/T/E")
	matrixCmd.Flags().StringSliceVarP(&matrixLabels, "label", "l", nil, "print only these row forms, e.g. p0,ri3")
	rootCmd.AddCommand(matrixCmd)
}

var matrixCmd = &cobra.Command{
	Use:   "matrix <row>...",
	Short: "Prints the twelve-tone matrix of a row",
	Long:  `Prints the twelve-tone matrix of a row, or selected P/R/I/RI forms with --label.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		row, err := pc.ParseList(strings.Join(args, " "))
		if err != nil {
			return err
		}
		m, err := matrix.New(row)
		if err != nil {
			return err
		}

		if len(matrixLabels) == 0 {
			if matrixNames {
				fmt.Print(m.Format(matrix.NoteNames))
			} else {
				fmt.Print(m)
			}
			return nil
		}
		for _, label := range matrixLabels {
			form, err := m.Label(label)
			if err != nil {
				return err
			}
			fmt.Printf("%-4s %v\n", label+":", form)
		}
		return nil
	},
}
