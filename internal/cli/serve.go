package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/axis2d/internal/server"
	"github.com/matzehuels/axis2d/pkg/cache"
)

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr  string
		ttl   time.Duration
		store cacheOpts
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve axis rendering over HTTP",
		Long: `Serve axis rendering over HTTP.

  GET  /healthz
  GET  /v1/axis.{svg,png,json}?min=0&max=100&title=Load
  POST /v1/axis?type=svg   (TOML axis file in the body)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			artifacts, err := c.openCache(ctx, store)
			if err != nil {
				return err
			}
			defer artifacts.Close()
			if store.noCache {
				printWarning("Artifact cache disabled")
			}

			srv := server.New(
				server.WithCache(artifacts),
				server.WithLogger(c.Logger),
				server.WithTTL(ttl),
			)
			printInfo("Serving on %s", StyleLink.Render("http://"+displayAddr(addr)))
			printNextStep("Try", "curl '"+"http://"+displayAddr(addr)+"/v1/axis.svg?min=0&max=100'")

			err = srv.ListenAndServe(ctx, addr)
			if ctx.Err() != nil {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().DurationVar(&ttl, "ttl", cache.DefaultTTL, "how long rendered artifacts stay cached")
	store.register(cmd)

	return cmd
}

// displayAddr turns a listen address into something a browser can open.
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
