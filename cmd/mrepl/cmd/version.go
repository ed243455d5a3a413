package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/mrepl/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), version.String("mrepl"))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
