package main

import (
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/elaraai/east-ui-sub007/internal/config"
	"github.com/elaraai/east-ui-sub007/pkg/dataset"
	"github.com/elaraai/east-ui-sub007/pkg/render"
	"github.com/elaraai/east-ui-sub007/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		address string
		traced  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dataset and rendering server",
		Long: `Start the HTTP server.

Datasets live under /workspaces/{workspace}/datasets/{path}, change
events stream over the /watch WebSocket, and /render shows the
component showcase page. The store backend comes from eastui.json.

Examples:
  eastui serve
  eastui serve --address=:3000
  eastui serve --trace`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(address, traced)
		},
	}

	cmd.Flags().StringVarP(&address, "address", "a", "", "Listen address (default from eastui.json)")
	cmd.Flags().BoolVar(&traced, "trace", false, "Wrap the store with OpenTelemetry tracing")

	return cmd
}

func runServe(address string, traced bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	if address != "" {
		cfg.Server.Address = address
	}

	store, err := buildStore(cfg)
	if err != nil {
		return err
	}
	if traced {
		store = dataset.NewTracedStore(store)
	}

	metrics := dataset.NewMetrics()
	cache := dataset.NewCache(store, dataset.WithMetrics(metrics))

	renderer := render.NewRenderer(render.RendererConfig{
		Pretty:          cfg.Render.Pretty,
		DisableSanitize: cfg.Render.DisableSanitize,
	})

	pollInterval, err := cfg.RefetchInterval()
	if err != nil {
		return err
	}

	srv := server.New(cache, &server.Config{
		Address:             cfg.Server.Address,
		DefaultPollInterval: pollInterval,
	}, server.WithRenderer(renderer))

	info("listening on %s (store: %s)", cfg.Server.Address, cfg.Store.Backend)
	return srv.Run()
}

// buildStore creates the dataset store the config names.
func buildStore(cfg *config.Config) (dataset.Store, error) {
	switch cfg.Store.Backend {
	case config.BackendS3:
		client := s3.New(s3.Options{Region: cfg.Store.Region})
		return dataset.NewS3Store(client, cfg.Store.Bucket, cfg.Store.Prefix), nil

	default:
		return dataset.NewMemoryStore(), nil
	}
}
