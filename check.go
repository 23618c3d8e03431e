package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/decker502/spider/pkg/game"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the asset directory is complete",
	Long: `Run the startup load plan for every theme pack in the manifest, trial
resources included, and list every file that is missing from --assets.

Examples:
  spider check --assets ./assets
  spider check --manifest ./my-resources.yaml`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	data, err := readManifest()
	if err != nil {
		return err
	}
	manifest, err := game.ParseResourceConfig(data)
	if err != nil {
		return err
	}

	missing, err := game.CheckAssets(os.DirFS(flagAssets), manifest)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(missing) == 0 {
		fmt.Fprintf(out, "All resources for %d theme packs found in %s.\n", len(manifest.ThemePacks), flagAssets)
		return nil
	}
	for _, name := range missing {
		fmt.Fprintf(out, "  missing: %s\n", name)
	}
	return fmt.Errorf("%d resources missing from %s", len(missing), flagAssets)
}
