package querylog

import (
	"fmt"

	"animebot/pkg/cache"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

type Options struct {
	Backend     string
	Path        string
	RedisURL    string
	RedisPrefix string
}

// Open builds the Store for opts.Backend. The returned close func releases the
// backend's connection, if it holds one.
func Open(opts Options, log zerolog.Logger) (Store, func() error, error) {
	switch opts.Backend {
	case BackendFile, "":
		return NewFileStore(opts.Path, log), func() error { return nil }, nil
	case BackendRedis:
		if opts.RedisURL == "" {
			return nil, nil, errors.New("REDIS_URL is required for the redis query log backend")
		}
		c, err := cache.NewRedisCache(opts.RedisURL, opts.RedisPrefix)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to open query log")
		}
		return NewRedisStore(c, log), c.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown query log backend %q", opts.Backend)
	}
}
