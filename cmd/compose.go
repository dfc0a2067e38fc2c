package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jsphweid/tonerow/constants"
	"github.com/jsphweid/tonerow/midi"
	"github.com/jsphweid/tonerow/model"
	"github.com/jsphweid/tonerow/piece"
	"github.com/jsphweid/tonerow/seq"
	"github.com/jsphweid/tonerow/util"
	"github.com/spf13/cobra"
)

var (
	composeOut  string
	composeJSON bool
)

func init() {
	composeCmd.Flags().StringVarP(&composeOut, "out", "o", "", "output file (default: <out dir>/<uuid>.mid)")
	composeCmd.Flags().BoolVar(&composeJSON, "json", false, "print the timeline as json instead of writing midi")
	rootCmd.AddCommand(composeCmd)
}

var composeCmd = &cobra.Command{
	Use:   "compose <piece.yml>",
	Short: "Composes a piece description into a midi file",
	Long:  `Composes a piece description (.yml or .json) into a midi file.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := piece.Load(args[0])
		if err != nil {
			return err
		}
		out, err := p.Compose()
		if err != nil {
			return err
		}
		if composeJSON {
			return printTimeline(out)
		}

		path := composeOut
		if path == "" {
			if err := util.EnsureOutputDir(constants.GetOutDir()); err != nil {
				return err
			}
			path = filepath.Join(constants.GetOutDir(), uuid.New().String()+".mid")
		}
		fmt.Printf("Writing %v events ending at %.2fs to %v\n", out.Len(), out.EndTime(), path)
		return midi.WriteFile(path, out)
	},
}

type timelineEvent struct {
	Tag   string      `json:"tag"`
	Time  float64     `json:"time"`
	Event model.Event `json:"event"`
}

func printTimeline(s *seq.Seq) error {
	events := seq.Map(s, func(ev model.Event) timelineEvent {
		te := timelineEvent{Time: ev.Time(), Event: ev}
		if t, ok := ev.(model.Tagged); ok {
			te.Tag = t.Tag()
		}
		return te
	})
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(events)
}
