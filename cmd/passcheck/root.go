// Package main provides the entry point for the passcheck CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for passcheck.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passcheck",
		Short: "Password composition analyzer and brute-force resistance estimator",
		Long: `Passcheck analyzes the character composition of a password, estimates the
time a brute-force attacker would need to exhaust its search space, and
classifies the result into a security tier from VERY WEAK to VERY STRONG.

The password is read interactively by default and never written to disk,
logs, or reports.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
