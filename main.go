// spider is a spider solitaire game.
//
// Usage:
//
//	spider                  - Start the game
//	spider unlock           - Turn a trial install into the full version
//	spider events [n]       - Show the n most recent analytics events
//	spider check            - List resources missing from the asset directory
//
// Global flags:
//
//	--assets <dir>          - Asset root (default: assets)
//	--manifest <file>       - Asset manifest (default: the embedded data/resources.yaml)
//	--trial                 - Run as a trial until "spider unlock"
//	--analytics-db <path>   - Analytics database, empty to disable (default: ~/.spider/events.db)
//	--width, --height       - Logical screen size
//	--verbose               - Debug logging
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
	"github.com/spf13/cobra"

	"github.com/decker502/spider/internal/telemetry"
	"github.com/decker502/spider/pkg/app"
	"github.com/decker502/spider/pkg/config"
	"github.com/decker502/spider/pkg/embedded"
	"github.com/decker502/spider/pkg/game"
	"github.com/decker502/spider/pkg/logging"
)

var (
	flagAssets      string
	flagManifest    string
	flagTrial       bool
	flagAnalyticsDB string
	flagWidth       int
	flagHeight      int
	flagVerbose     bool
)

func main() {
	embedded.Init(dataFS)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spider",
	Short: "Spider solitaire",
	Long: `Spider solitaire with one, two or four suits, themed card packs and
local statistics.

Examples:
  spider
  spider --assets ./assets --verbose
  spider --trial
  spider unlock`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Configure(os.Stderr, flagVerbose)
	},
	RunE: runGame,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagAnalyticsDB, "analytics-db", "~/.spider/events.db", "Analytics database path (empty disables analytics)")

	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "assets", "Asset root directory")
	rootCmd.PersistentFlags().StringVar(&flagManifest, "manifest", "", "Asset manifest (default: embedded data/resources.yaml)")
	rootCmd.Flags().BoolVar(&flagTrial, "trial", false, "Run as a trial until unlocked")
	rootCmd.Flags().IntVar(&flagWidth, "width", config.GameWindowWidth, "Logical screen width")
	rootCmd.Flags().IntVar(&flagHeight, "height", config.GameWindowHeight, "Logical screen height")

	rootCmd.AddCommand(unlockCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(checkCmd)
}

// openStorage opens the per-user save directory.
func openStorage() (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: config.StorageAppName})
	if err != nil {
		return nil, fmt.Errorf("open save data: %w", err)
	}
	return m, nil
}

func readManifest() ([]byte, error) {
	if flagManifest == "" {
		return embedded.Manifest()
	}
	data, err := os.ReadFile(flagManifest)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return data, nil
}

func runGame(cmd *cobra.Command, args []string) error {
	log := logging.For("Main")

	manifest, err := readManifest()
	if err != nil {
		return err
	}

	cfg := app.Config{
		Assets:   os.DirFS(flagAssets),
		Manifest: manifest,
		Width:    flagWidth,
		Height:   flagHeight,
	}

	// A missing save directory degrades to in-memory stores.
	if storage, err := openStorage(); err != nil {
		log.Warn("save data unavailable, progress will not be kept", "err", err)
	} else {
		cfg.Props = storage
	}
	if flagTrial {
		cfg.License = game.StoredLicense{Props: cfg.Props}
	}

	if flagAnalyticsDB != "" {
		store, err := telemetry.Open(flagAnalyticsDB)
		if err != nil {
			log.Warn("analytics disabled", "err", err)
		} else {
			defer store.Close()
			cfg.Analytics = store
			log.Debug("analytics session", "id", store.SessionID())
		}
	}

	spider, err := app.NewApp(cfg)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(flagWidth, flagHeight)
	ebiten.SetWindowTitle(config.AppName)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(spider); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
