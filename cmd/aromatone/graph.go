package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mughesh03/aromatone/internal/presentation/graph"
	"github.com/mughesh03/aromatone/pkg/flows"
	"github.com/mughesh03/aromatone/pkg/wizard"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <variant>",
	Short: "Export a wizard as a Mermaid diagram",
	Long:  `Outputs a Mermaid diagram (graph LR) of the steps of a wizard and the rules gating each one.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := wizard.NewRegistry()
		if err := flows.Register(reg); err != nil {
			return err
		}
		if dir, _ := cmd.Flags().GetString("wizards"); dir != "" {
			defs, err := wizard.LoadDir(dir)
			if err != nil {
				return err
			}
			for _, def := range defs {
				if err := reg.Register(def); err != nil {
					return err
				}
			}
		}

		def, err := reg.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(def, nil))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("wizards", "", "Directory of extra YAML wizard definitions")
}
