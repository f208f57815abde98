package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/asciidiag/aasvg/internal/server"
	"github.com/asciidiag/aasvg/pkg/cache"
	"github.com/asciidiag/aasvg/pkg/config"
	aaerrors "github.com/asciidiag/aasvg/pkg/errors"
)

// newServeCmd creates the serve command. The default mode is an HTTP
// server with POST /render and GET /healthz; --stdio instead answers
// length-prefixed frames on stdin/stdout, for host processes that embed
// aasvg behind a byte pipe.
func newServeCmd() *cobra.Command {
	var addr string
	var stdio bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the renderer over HTTP or a framed stdio pipe",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			if stdio {
				logger.Debug("Serving framed requests on stdin/stdout")
				return server.ServeStdio(ctx, os.Stdin, os.Stdout)
			}

			c, err := openCache(ctx, cfg.Cache)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			defer c.Close()
			logger.Debugf("Cache backend: %s", cfg.Cache.Backend)

			listen := cfg.Server.Addr
			if cmd.Flags().Changed("addr") {
				listen = addr
			}
			ttl := time.Duration(cfg.Cache.TTLHours) * time.Hour
			return server.New(logger, c, ttl).ListenAndServe(ctx, listen)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8537", "listen address (default from config)")
	cmd.Flags().BoolVar(&stdio, "stdio", false, "serve length-prefixed frames on stdin/stdout instead of HTTP")

	return cmd
}

// openCache builds the cache backend selected in the config. The none
// backend (and an unset one) disables caching without erroring.
func openCache(ctx context.Context, cs config.CacheSettings) (cache.Cache, error) {
	switch cs.Backend {
	case config.BackendNone, "":
		return cache.NewNullCache(), nil
	case config.BackendFile:
		dir, err := cs.CacheDir()
		if err != nil {
			return nil, err
		}
		return cache.NewFileCache(dir)
	case config.BackendRedis:
		return cache.NewRedisCache(ctx, cs.RedisAddr)
	case config.BackendMongo:
		return cache.NewMongoCache(ctx, cs.MongoURI)
	}
	return nil, aaerrors.New(aaerrors.ErrCodeInvalidConfig, "unknown cache backend %q", cs.Backend)
}
