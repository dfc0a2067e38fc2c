package cmd

import (
	"log"
	"net/http"

	"github.com/jsphweid/tonerow/api"
	"github.com/jsphweid/tonerow/constants"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the pitch-class and matrix json api",
	Long:  `Serves POST /pcset and POST /matrix on TONEROW_PORT (default 8080).`,
	Run: func(cmd *cobra.Command, args []string) {
		addr := ":" + constants.GetPort()
		log.Printf("Listening on %v", addr)
		log.Fatal(http.ListenAndServe(addr, api.NewHandler()))
	},
}
