package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/decker502/spider/pkg/game"
)

var unlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Unlock the full version",
	Long: `Save the unlock flag so that a game started with --trial runs as the
full version. A running game picks the change up the next time it checks
the trial status.`,
	Args: cobra.NoArgs,
	RunE: runUnlock,
}

func runUnlock(cmd *cobra.Command, args []string) error {
	storage, err := openStorage()
	if err != nil {
		return err
	}
	license := game.StoredLicense{Props: storage}
	if !license.IsTrial() {
		fmt.Fprintln(cmd.OutOrStdout(), "Already unlocked.")
		return nil
	}
	if err := license.Unlock(); err != nil {
		return fmt.Errorf("unlock: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Full version unlocked.")
	return nil
}
