package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-engine/internal"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
)

type serveOptions struct {
	configPath string
	inMemory   bool
}

func NewServeCommand() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and WebSocket servers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}

			logger := newLogger(cmd.OutOrStdout(), conf.LogLevel)

			if err = app.RunApp(logger, conf, app.Options{InMemory: opts.inMemory}); err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "config.yml", "path to the config file")
	cmd.Flags().BoolVar(&opts.inMemory, "memory", false, "keep live games in memory instead of redis")

	return cmd
}

// newLogger - JSON logger at the configured level; unknown levels fall back to info.
func newLogger(w io.Writer, logLevel string) *slog.Logger {
	var level slog.Level

	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
