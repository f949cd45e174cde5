// Package cli implements the axis2d command-line interface.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/axis2d/pkg/buildinfo"
	"github.com/matzehuels/axis2d/pkg/cache"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "axis2d"

	// redisEnv names the environment variable that supplies a default for --redis.
	redisEnv = "AXIS2D_REDIS_URL"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "axis2d lays out and renders labelled 2D axes",
		Long: `axis2d lays out a labelled axis between two points of a viewport: it rounds
the data range to nice numbers, sizes the label and title fonts to fit, and
renders the result as SVG, PNG or JSON geometry.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.ticksCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Artifact Cache
// =============================================================================

// cacheOpts are the flags of commands that read or write rendered artifacts.
type cacheOpts struct {
	noCache  bool
	redisURL string
}

func (o *cacheOpts) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "render without reading or writing the artifact cache")
	cmd.Flags().StringVar(&o.redisURL, "redis", os.Getenv(redisEnv), "redis URL for the artifact cache (default: file cache; env "+redisEnv+")")
}

// openCache returns the artifact cache selected by o, scoped to this build
// and reporting to the cache hooks.
func (c *CLI) openCache(ctx context.Context, o cacheOpts) (cache.Cache, error) {
	var inner cache.Cache
	switch {
	case o.noCache:
		return cache.NewNullCache(), nil

	case o.redisURL != "":
		spin := newSpinner(ctx, os.Stderr, "Connecting to redis")
		spin.Start()
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{URL: o.redisURL})
		spin.Stop()
		if err != nil {
			return nil, err
		}
		c.Logger.Debug("artifact cache", "backend", "redis")
		inner = rc

	default:
		dir, err := cache.DefaultDir()
		if err != nil {
			c.Logger.Warn("no cache directory, caching disabled", "err", err)
			return cache.NewNullCache(), nil
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, err
		}
		c.Logger.Debug("artifact cache", "backend", "file", "dir", dir)
		inner = fc
	}
	return cache.Instrumented(cache.Scoped(inner, buildinfo.CacheScope()), "artifact"), nil
}
