package querylog

import (
	"context"

	"animebot/pkg/cache"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// RedisStore keeps one Redis list per user. RPUSH is atomic, so concurrent
// recorders, including ones in other processes, never lose appends.
type RedisStore struct {
	cache *cache.Cache
	log   zerolog.Logger
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(c *cache.Cache, log zerolog.Logger) *RedisStore {
	return &RedisStore{
		cache: c,
		log:   log.With().Str("module", "querylog").Str("backend", "redis").Logger(),
	}
}

func (s *RedisStore) RecordQuery(ctx context.Context, userID, query string) error {
	n, err := s.cache.RPush(ctx, s.cache.Key("queries", userID), query)
	if err != nil {
		return errors.Wrapf(err, "failed to record query for user %s", userID)
	}
	s.log.Debug().Str("user", userID).Int64("count", n).Msg("Recorded query")
	return nil
}

func (s *RedisStore) Queries(ctx context.Context, userID string) ([]string, error) {
	queries, err := s.cache.LRange(ctx, s.cache.Key("queries", userID), 0, -1)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load queries for user %s", userID)
	}
	if len(queries) == 0 {
		return nil, nil
	}
	return queries, nil
}
