package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsphweid/motifdex/analysis"
	"github.com/jsphweid/motifdex/extract"
)

var (
	mineFile    string
	mineFigures string
)

func init() {
	mineCmd.Flags().StringVar(&mineFile, "file", "", "Saved extraction response (JSON)")
	mineCmd.Flags().StringVar(&mineFigures, "figures", "", "Comma separated rhythm figures, one per note")
	rootCmd.AddCommand(mineCmd)
}

var mineCmd = &cobra.Command{
	Use:   "mine [notes...]",
	Short: "Finds patterns in a note sequence",
	Long: `Finds patterns in a note sequence given as degree tokens, e.g.

  motifdex mine 5 5 5 3 5 5 5 3
  motifdex mine 1,2,3b,1,2,3b
  motifdex mine --file response.json`,
	Run: func(cmd *cobra.Command, args []string) {
		var ex extract.Extractor
		source := "tokens"
		if mineFile != "" {
			ex = extract.JSONFile{Path: mineFile}
			source = mineFile
		} else {
			if len(args) == 0 {
				cobra.CheckErr("need notes or --file")
			}
			ex = extract.Tokens{Notes: splitList(args...), Figures: splitList(mineFigures)}
		}

		a, err := analysis.Run(cmd.Context(), ex, source)
		cobra.CheckErr(err)
		output(cmd, a)
	},
}

// splitList accepts both "1 2 3" as separate args and "1,2,3".
func splitList(args ...string) []string {
	var res []string
	for _, arg := range args {
		for _, s := range strings.Split(arg, ",") {
			s = strings.TrimSpace(s)
			if s != "" {
				res = append(res, s)
			}
		}
	}
	return res
}
