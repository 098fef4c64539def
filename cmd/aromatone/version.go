package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mughesh03/aromatone"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of aromatone",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "aromatone version %s\n", strings.TrimSpace(aromatone.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
