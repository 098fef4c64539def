package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mughesh03/aromatone/internal/cli"
	"github.com/mughesh03/aromatone/internal/presentation/tui"
	"github.com/mughesh03/aromatone/pkg/cooking"
	"github.com/mughesh03/aromatone/pkg/recipe"
)

var cookCmd = &cobra.Command{
	Use:   "cook",
	Short: "Walk through a recipe step by step",
	Long:  `Starts a cooking session for one of the built-in recipes and times it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetString("recipe")
		mood, _ := cmd.Flags().GetString("mood")
		out := cmd.OutOrStdout()

		catalogue := recipe.Catalogue()
		if list, _ := cmd.Flags().GetBool("list"); list {
			for _, r := range catalogue {
				fmt.Fprintf(out, "%-28s %s (%s, %s)\n", r.ID, r.Title, r.Difficulty, r.CookTime)
			}
			return nil
		}

		r := catalogue[0]
		if id != "" {
			found, ok := recipe.Find(catalogue, id)
			if !ok {
				return fmt.Errorf("unknown recipe %q (see --list)", id)
			}
			r = found
		}

		opts := cli.CookOptions{Mood: mood, Render: tui.PlainRenderer}
		if cli.IsTerminal(os.Stdout) {
			opts.Render = tui.NewRenderer(cli.TerminalWidth(os.Stdout))
		}

		sc := cli.NewSignalContext(cmd.Context())
		defer sc.Cancel()

		elapsed, err := cli.Cook(sc, cmd.InOrStdin(), out, r, opts)
		if cli.Interrupted(err) {
			fmt.Fprintf(out, "\nStopped after %s.\n", cooking.FormatElapsed(elapsed))
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(cookCmd)
	cookCmd.Flags().String("recipe", "", "Recipe id (defaults to the first built-in recipe)")
	cookCmd.Flags().String("mood", "", "Ambience mood to pair with the session")
	cookCmd.Flags().Bool("list", false, "List the built-in recipes and exit")
}
