package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"faredash/app/logging"
	"faredash/service"

	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address, overrides http.addr")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.HTTP.Addr = serveAddr
	}
	if err := logging.Init(cfg.Logger); err != nil {
		return err
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Get().Info("starting dashboard",
		"addr", cfg.HTTP.Addr,
		"store", cfg.Store.Path,
		"seed", cfg.Dataset.Seed,
	)
	return service.RunAppServer(ctx, cfg)
}
