package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/gal/plot"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Print the plot options as YAML",
	Long:  `Prints the effective plot options, defaults merged with --options and --mode, as a YAML file that --options accepts.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, opts, err := settings(cmd)
		if err != nil {
			return err
		}
		return plot.WriteOptions(cmd.OutOrStdout(), opts)
	},
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}
