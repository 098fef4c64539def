package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mughesh03/aromatone"
	"github.com/mughesh03/aromatone/internal/adapters/file"
	"github.com/mughesh03/aromatone/internal/cli"
	"github.com/mughesh03/aromatone/internal/presentation/tui"
)

var wizardCmd = &cobra.Command{
	Use:   "wizard <variant>",
	Short: "Run a wizard interactively in the terminal",
	Long: `Runs a wizard step by step. Progress is saved under SESSION_DIR after every
step, so an interrupted wizard can be resumed with --session.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		sessionID, _ := cmd.Flags().GetString("session")

		app, err := aromatone.New(cfg,
			aromatone.WithLogger(logger),
			aromatone.WithStore(file.New(cfg.SessionDir)),
		)
		if err != nil {
			return err
		}
		defer app.Close()

		out := cmd.OutOrStdout()
		render := tui.PlainRenderer
		if cli.IsTerminal(os.Stdout) {
			tui.PrintBanner(out)
			render = tui.NewRenderer(cli.TerminalWidth(os.Stdout))
		}

		sc := cli.NewSignalContext(cmd.Context())
		defer sc.Cancel()

		runner := cli.NewWizardRunner(app.Engine, cmd.InOrStdin(), out,
			cli.WithSessions(app.Sessions),
			cli.WithRenderer(render),
			cli.WithLogger(logger),
		)
		res, err := runner.Run(sc, args[0], sessionID)
		if cli.Interrupted(err) {
			fmt.Fprintln(out, "\nProgress saved. Resume with --session <id>.")
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(out, tui.Accent(out, "Wizard complete!"))
		data := res.Redacted()
		for _, k := range data.Keys() {
			fmt.Fprintf(out, "  %s: %v\n", k, data[k])
		}
		if res.Redirect != "" {
			fmt.Fprintf(out, "Next: %s\n", res.Redirect)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(wizardCmd)
	wizardCmd.Flags().String("session", "", "Resume (or name) a saved session")
}
