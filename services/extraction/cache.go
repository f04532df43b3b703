package extraction

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"profitpilot/models"
	"profitpilot/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const extractionCachePrefix = "extract:"

// CachedExtractor memoizes extraction results in Redis, keyed by a hash of
// the raw text. Cache failures degrade to the inner extractor.
type CachedExtractor struct {
	Inner  Extractor
	Client *redis.Client
	TTL    time.Duration
}

func NewCachedExtractor(inner Extractor, client *redis.Client, ttl time.Duration) *CachedExtractor {
	return &CachedExtractor{Inner: inner, Client: client, TTL: ttl}
}

func (c *CachedExtractor) Extract(ctx context.Context, raw string) (models.ExtractedRequest, error) {
	sum := sha256.Sum256([]byte(raw))
	key := extractionCachePrefix + hex.EncodeToString(sum[:])

	if data, err := c.Client.Get(ctx, key).Result(); err == nil {
		var req models.ExtractedRequest
		if err := json.Unmarshal([]byte(data), &req); err == nil {
			return req, nil
		}
	} else if err != redis.Nil {
		utils.GetLogger().Warn("extraction cache read failed", zap.Error(err))
	}

	req, err := c.Inner.Extract(ctx, raw)
	if err != nil {
		return req, err
	}

	if data, err := json.Marshal(req); err == nil {
		if err := c.Client.Set(ctx, key, data, c.TTL).Err(); err != nil {
			utils.GetLogger().Warn("extraction cache write failed", zap.Error(err))
		}
	}
	return req, nil
}
