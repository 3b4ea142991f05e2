package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/codelens/codelens/internal/adapters/inbound/httpapi"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long:  "Serve the analyzer as a JSON REST API with analyze, fix and report endpoints.",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := zap.NewProduction()
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			defer log.Sync()

			svc, err := newServices(cmd, log)
			if err != nil {
				return err
			}
			if addr != "" {
				svc.cfg.Server.Addr = addr
			}

			status := make([]httpapi.ProviderStatus, 0, len(svc.providers))
			models := map[string]string{
				svc.providers[0].Name(): svc.cfg.Providers.OpenRouter.Model,
				svc.providers[1].Name(): svc.cfg.Providers.Google.Model,
			}
			for _, p := range svc.providers {
				status = append(status, httpapi.ProviderStatus{
					Name:       p.Name(),
					Configured: p.Configured(),
					Model:      models[p.Name()],
				})
			}

			srv := httpapi.NewServer(svc.analyze, svc.fix, svc.cfg.Server, status, log)
			return srv.Start()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")

	return cmd
}
