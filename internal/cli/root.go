package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/mgpai22/webvtt/internal/config"
	"github.com/mgpai22/webvtt/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	logger     = logging.NewLogger(false)
	cfg        = defaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   "webvtt",
	Short: "Parse, convert and retime WebVTT subtitles",
	Long: `webvtt reads, rewrites and re-emits WebVTT subtitle tracks.

It converts SubRip (SRT) files to WebVTT, shifts cue timings, prints
track summaries and normalizes existing WebVTT files.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, path, exists, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded

		level := cfg.Logging.Level
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(logging.Options{
			Level:  level,
			Format: cfg.Logging.Format,
		})
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		logger.Debugw("Loaded configuration",
			"path", path,
			"exists", exists,
		)
		return nil
	},
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	defer func() {
		_ = logger.Sync()
	}()
	return rootCmd.ExecuteContext(ctx)
}

func defaultConfig() *config.Config {
	c := config.Default()
	return &c
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file (default ~/.config/webvtt/config.toml)")
}
