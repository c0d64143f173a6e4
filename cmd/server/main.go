// @title         Space Portfolio API
// @version       1.0
// @description   Content API behind the space-themed personal portfolio site.
// @BasePath      /api
// @schemes       http
// @host          localhost:8080
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/faizan1495/my-portfolio-portfolio-new-space-space/docs"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/config"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/logging"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/repository"
	"github.com/faizan1495/my-portfolio-portfolio-new-space-space/pkg/seed"
)

const version = "1.0.0"

type options struct {
	configPath string
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Space portfolio content API",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file (defaults to $CONFIG_FILE)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override LOG_LEVEL (debug, info, warn, error)")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), opts)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Write the demo dataset into an empty store and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd.Context(), opts)
		},
	})
	return root
}

// bootstrap loads configuration, builds the logger and opens the store.
func bootstrap(ctx context.Context, opts options) (config.Config, *zap.Logger, *repository.Set, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, nil, nil, fmt.Errorf("load config: %w", err)
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	set, err := repository.Open(ctx, cfg, log)
	if err != nil {
		_ = log.Sync()
		return config.Config{}, nil, nil, fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
	}
	return cfg, log, set, nil
}

func serve(ctx context.Context, opts options) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, log, set, err := bootstrap(ctx, opts)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	defer closeStore(set, log, cfg)

	app := newApp(set, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", zap.String("port", cfg.Port), zap.String("store", cfg.StoreDriver))
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func runSeed(ctx context.Context, opts options) error {
	cfg, log, set, err := bootstrap(ctx, opts)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	defer closeStore(set, log, cfg)

	res, err := seed.NewService(seedRepositories(set), seed.DefaultDataset(), log).Run(ctx)
	if err != nil {
		return err
	}
	if res.AlreadySeeded {
		fmt.Println("Database already seeded")
		return nil
	}
	fmt.Printf("Database seeded successfully: %d portfolio, %d skills, %d projects, %d education\n",
		res.Portfolio, res.Skills, res.Projects, res.Education)
	return nil
}

func closeStore(set *repository.Set, log *zap.Logger, cfg config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()
	if err := set.Close(ctx); err != nil {
		log.Warn("close store", zap.Error(err))
	}
}
