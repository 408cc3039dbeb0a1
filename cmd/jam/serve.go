package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/adityasai1234/jam-nodes/internal/api"
)

func newServeCmd(cfgPath *string, debug *bool) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the node playground HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath, *debug)
			if err != nil {
				return err
			}

			addr := listen
			if addr == "" {
				addr = a.cfg.Listen
			}

			server := api.NewServer(a.runner, a.registry, a.logger)

			httpServer := &http.Server{
				Addr:              addr,
				Handler:           server.Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			fmt.Println(headerStyle.Render("Playground listening on " + addr))
			return httpServer.ListenAndServe()
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "listen address (overrides config)")

	return cmd
}
