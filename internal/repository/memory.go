package repository

import (
	"context"

	"github.com/patrickmn/go-cache"
)

// memoryArchive keeps match results in process memory. Used when no Redis
// address is configured; results expire on the same TTL as the Redis
// implementation.
type memoryArchive struct {
	cache *cache.Cache
}

func NewMemoryArchive() ArchiveRepository {
	return &memoryArchive{
		cache: cache.New(archiveTTL, archiveTTL/2),
	}
}

func (that *memoryArchive) Record(_ context.Context, result *MatchResult) error {
	that.cache.Set("match:"+result.SessionCode, result, cache.DefaultExpiration)
	return nil
}

func (that *memoryArchive) GetBySessionCode(_ context.Context, sessionCode string) (*MatchResult, error) {
	value, ok := that.cache.Get("match:" + sessionCode)
	if !ok {
		return nil, ErrResultNotFound
	}

	result, ok := value.(*MatchResult)
	if !ok {
		return nil, ErrResultNotFound
	}

	return result, nil
}
