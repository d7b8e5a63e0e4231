package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/jsphweid/motifdex/constants"
	"github.com/jsphweid/motifdex/db"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Shows a saved analysis",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if constants.GetTableName() == "" {
			cobra.CheckErr("show needs MOTIFDEX_TABLE to be set")
		}
		s, err := openStore()
		cobra.CheckErr(err)

		a, err := s.Get(cmd.Context(), args[0])
		if errors.Is(err, db.ErrNotFound) {
			cobra.CheckErr("no analysis with id " + args[0])
		}
		cobra.CheckErr(err)

		// already stored
		saveFlag = false
		output(cmd, *a)
	},
}
