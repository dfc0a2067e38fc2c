package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tonerow",
	Short: "Twelve-tone and pitch-class set toolkit",
	Long: `tonerow analyzes pitch-class sets, prints twelve-tone matrices and
composes pieces from row forms by running one composer per voice.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
