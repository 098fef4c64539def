package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mughesh03/aromatone/pkg/flows"
	"github.com/mughesh03/aromatone/pkg/wizard"
)

var validateCmd = &cobra.Command{
	Use:   "validate <dir>",
	Short: "Check YAML wizard definitions",
	Long: `Loads every definition in the directory, validates fields, steps and rules,
and checks that no variant collides with a built-in wizard.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runValidate(args[0]); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Definitions are valid! ✅")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(dir string) error {
	defs, err := wizard.LoadDir(dir)
	if err != nil {
		return err
	}
	if len(defs) == 0 {
		return fmt.Errorf("no definitions found in %s", dir)
	}

	reg := wizard.NewRegistry()
	if err := flows.Register(reg); err != nil {
		return err
	}
	for _, def := range defs {
		if _, err := reg.Get(def.Variant); err == nil {
			return fmt.Errorf("variant %q is already defined", def.Variant)
		}
		if err := reg.Register(def); err != nil {
			return err
		}
	}
	return nil
}
