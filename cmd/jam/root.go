package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	jamnodes "github.com/adityasai1234/jam-nodes"
	"github.com/adityasai1234/jam-nodes/nodes"
)

// app bundles what every subcommand needs: config, logger, registry and
// runner, all constructed once per invocation.
type app struct {
	cfg      Config
	logger   *slog.Logger
	registry jamnodes.Registry
	fetcher  jamnodes.Fetcher
	runner   *jamnodes.Runner
}

func newApp(cfgPath string, debug bool) (*app, error) {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return nil, err
	}

	level := slog.LevelWarn
	if debug || cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	registry := jamnodes.NewRegistry(logger)
	fetcher := jamnodes.NewFetchClient(logger)
	if err := nodes.RegisterBuiltins(registry, fetcher); err != nil {
		return nil, err
	}

	runner := jamnodes.NewRunner(registry, jamnodes.NewServiceBuilder(fetcher, logger), logger)

	return &app{
		cfg:      cfg,
		logger:   logger,
		registry: registry,
		fetcher:  fetcher,
		runner:   runner,
	}, nil
}

func newRootCmd() *cobra.Command {
	var cfgPath string
	var debug bool

	cmd := &cobra.Command{
		Use:           "jam",
		Short:         "Exercise workflow nodes from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		newListCmd(&cfgPath, &debug),
		newDescribeCmd(&cfgPath, &debug),
		newRunCmd(&cfgPath, &debug),
		newCredsCmd(&cfgPath, &debug),
		newServeCmd(&cfgPath, &debug),
	)

	return cmd
}
