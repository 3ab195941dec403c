package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/smarttravellers/tripplanner/internal/app"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			application, err := app.NewApplication(ctx, cfg)
			if err != nil {
				return err
			}
			return application.Run(ctx)
		},
	}
}
