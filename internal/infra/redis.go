package infra

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/MotoWorkShop/MWSBackend/internal/dto"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	prefijoBarcode = "repuesto:barcode:"
	ttlBarcode     = 10 * time.Minute
)

// NewRedisClient connects and pings, failing fast on a bad URL.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}

// CacheBarcode is a read-through cache for the barcode scanner lookup, the
// hottest read path at the counter. Misses and redis failures fall back to
// the database; writers invalidate on part mutation.
type CacheBarcode struct {
	rdb *redis.Client
}

func NewCacheBarcode(rdb *redis.Client) *CacheBarcode {
	return &CacheBarcode{rdb: rdb}
}

func (c *CacheBarcode) Get(ctx context.Context, codigo string) (*dto.ConsultaBarcodeResponse, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, prefijoBarcode+codigo).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		log.Warn().Err(err).Str("codigo", codigo).Msg("fallo leyendo la caché de barcode")
		return nil, false
	}
	var resp dto.ConsultaBarcodeResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, false
	}
	return &resp, true
}

func (c *CacheBarcode) Set(ctx context.Context, codigo string, resp *dto.ConsultaBarcodeResponse) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, prefijoBarcode+codigo, raw, ttlBarcode).Err(); err != nil {
		log.Warn().Err(err).Str("codigo", codigo).Msg("fallo escribiendo la caché de barcode")
	}
}

func (c *CacheBarcode) Invalidate(ctx context.Context, codigo string) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, prefijoBarcode+codigo).Err(); err != nil {
		log.Warn().Err(err).Str("codigo", codigo).Msg("fallo invalidando la caché de barcode")
	}
}
