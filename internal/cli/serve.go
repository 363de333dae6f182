package cli

import (
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cargoscope/internal/config"
	"github.com/matzehuels/cargoscope/internal/server"
	"github.com/matzehuels/cargoscope/pkg/cache"
	"github.com/matzehuels/cargoscope/pkg/workspace"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	scanOpts
	addr     string // listen address override
	redis    string // redis address override
	cacheDir string // file cache directory, used when redis is not configured
}

// newServeCmd creates the serve command. It exposes the workspace graph
// and audit report over HTTP, rebuilding on each request unless a cached
// result is still fresh.
func newServeCmd() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve [path]",
		Short: "Serve the workspace graph and audit report over HTTP",
		Long: `Serve starts an HTTP server with /api/graph and /api/report endpoints
for the given workspace. Results are cached in Redis when configured,
otherwise in a local file cache, so repeated requests do not rescan an
unchanged workspace within the TTL.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			root, err := filepath.Abs(workspaceRoot(args))
			if err != nil {
				return err
			}
			cfg, err := config.Load(root)
			if err != nil {
				return err
			}
			if opts.addr != "" {
				cfg.Server.Addr = opts.addr
			}
			if opts.redis != "" {
				cfg.Server.Redis = opts.redis
			}

			wsOpts := workspace.Options{
				Manifest: cfg.Manifest,
				Ignore:   cfg.Ignore,
				Logf:     func(format string, args ...any) { logger.Debugf(format, args...) },
			}
			if opts.manifest != "" {
				wsOpts.Manifest = opts.manifest
			}
			if opts.noIgnore {
				wsOpts.Ignore = []string{}
			}

			var c cache.Cache
			switch {
			case cfg.Server.Redis != "":
				c, err = cache.NewRedisCache(ctx, cfg.Server.Redis)
				if err != nil {
					return err
				}
				logger.Infof("Using Redis cache at %s", cfg.Server.Redis)
			case opts.cacheDir != "":
				c, err = cache.NewFileCache(opts.cacheDir)
				if err != nil {
					return err
				}
				logger.Infof("Using file cache at %s", opts.cacheDir)
			default:
				c = cache.NewNullCache()
				logger.Debug("Caching disabled")
			}
			defer c.Close()

			ttl := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
			s := server.New(root, wsOpts, c, ttl, logger)

			logger.Infof("Listening on %s", cfg.Server.Addr)
			return s.ListenAndServe(ctx, cfg.Server.Addr)
		},
	}

	opts.addScanFlags(cmd)
	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default from config, :8422)")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "redis address for the shared cache")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", "", "file cache directory used when redis is not configured")

	return cmd
}
