package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jsphweid/motifdex/analysis"
	"github.com/jsphweid/motifdex/constants"
	"github.com/jsphweid/motifdex/extract"
)

func init() {
	rootCmd.AddCommand(imageCmd)
}

var imageCmd = &cobra.Command{
	Use:   "image <score>",
	Short: "Reads a score image with Gemini and finds patterns",
	Long:  `Reads a score image (jpg, png, webp, gif or pdf) with Gemini ($GEMINI_MODEL) and finds patterns.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]
		mediaType, err := extract.ImageMediaType(path)
		cobra.CheckErr(err)
		image, err := os.ReadFile(path)
		cobra.CheckErr(err)

		cli, err := extract.NewGeminiClient(cmd.Context(), constants.MustGetGeminiAPIKey())
		cobra.CheckErr(err)

		ex := extract.NewGemini(cli, constants.GetGeminiModel(), image, mediaType)
		a, err := analysis.Run(cmd.Context(), ex, path)
		cobra.CheckErr(err)
		output(cmd, a)
	},
}
