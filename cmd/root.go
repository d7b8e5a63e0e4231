package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jsphweid/motifdex/constants"
	"github.com/jsphweid/motifdex/db"
	"github.com/jsphweid/motifdex/model"
	"github.com/jsphweid/motifdex/report"
)

var (
	formatFlag string
	colorFlag  bool
	saveFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "motifdex",
	Short: "Finds repeated motifs in sheet music",
	Long: `Finds every run of 2 to 8 notes that repeats in a melody and ranks them.
Notes come from typed tokens, saved extraction responses, MIDI files or a
score image read by a vision model.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// a missing .env is fine
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: text or json")
	rootCmd.PersistentFlags().BoolVar(&colorFlag, "color", false, "Colour notes by pattern (text format)")
	rootCmd.PersistentFlags().BoolVar(&saveFlag, "save", false, "Persist the analysis ($MOTIFDEX_TABLE)")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// openStore uses DynamoDB when a table is configured.
func openStore() (db.Store, error) {
	table := constants.GetTableName()
	if table == "" {
		return db.NewMemoryStore(), nil
	}
	return db.NewDynamoStore(table, constants.GetRegion(), constants.GetDynamoEndpoint())
}

func output(cmd *cobra.Command, a model.Analysis) {
	if saveFlag {
		if constants.GetTableName() == "" {
			cobra.CheckErr(fmt.Errorf("--save needs MOTIFDEX_TABLE to be set"))
		}
		s, err := openStore()
		cobra.CheckErr(err)
		cobra.CheckErr(s.Put(cmd.Context(), a))
		fmt.Fprintf(os.Stderr, "saved analysis %s\n", a.ID)
	}

	switch formatFlag {
	case "json":
		cobra.CheckErr(report.JSON(cmd.OutOrStdout(), a))
	case "text":
		cobra.CheckErr(report.Text(cmd.OutOrStdout(), a, report.Options{Color: colorFlag}))
	default:
		cobra.CheckErr(fmt.Errorf("unknown format %q", formatFlag))
	}
}
