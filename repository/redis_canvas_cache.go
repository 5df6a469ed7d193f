package repository

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"whiteboard-server/models"

	"github.com/go-redis/redis/v8"
)

// CachedCanvasRepository decorates a CanvasRepository with a Redis
// read-through cache on FindCanvasByID. Cache failures are soft: the lookup
// falls through to the store and the error is only logged. Writes and
// touches invalidate the cached entry so updated_at never goes stale.
type CachedCanvasRepository struct {
	inner CanvasRepositoryInterface
	cache *redis.Client
	ttl   time.Duration
}

func NewCachedCanvasRepository(inner CanvasRepositoryInterface, cache *redis.Client, ttl time.Duration) *CachedCanvasRepository {
	return &CachedCanvasRepository{inner: inner, cache: cache, ttl: ttl}
}

func canvasCacheKey(id string) string {
	return "canvas:" + id
}

func (r *CachedCanvasRepository) SaveCanvas(ctx context.Context, canvas models.Canvas) error {
	if err := r.inner.SaveCanvas(ctx, canvas); err != nil {
		return err
	}
	r.invalidate(ctx, canvas.ID)
	return nil
}

func (r *CachedCanvasRepository) FindAllCanvases(ctx context.Context) ([]models.Canvas, error) {
	return r.inner.FindAllCanvases(ctx)
}

func (r *CachedCanvasRepository) FindCanvasByID(ctx context.Context, id string) (models.Canvas, error) {
	data, err := r.cache.Get(ctx, canvasCacheKey(id)).Result()
	if err == nil {
		var canvas models.Canvas
		if err := json.Unmarshal([]byte(data), &canvas); err == nil {
			return canvas, nil
		}
	} else if err != redis.Nil {
		log.Printf("[CanvasCache] get %s: %v", id, err)
	}

	canvas, err := r.inner.FindCanvasByID(ctx, id)
	if err != nil {
		return canvas, err
	}
	if data, err := json.Marshal(canvas); err == nil {
		if err := r.cache.Set(ctx, canvasCacheKey(id), data, r.ttl).Err(); err != nil {
			log.Printf("[CanvasCache] set %s: %v", id, err)
		}
	}
	return canvas, nil
}

func (r *CachedCanvasRepository) TouchCanvas(ctx context.Context, id string, ts time.Time) error {
	if err := r.inner.TouchCanvas(ctx, id, ts); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *CachedCanvasRepository) invalidate(ctx context.Context, id string) {
	if err := r.cache.Del(ctx, canvasCacheKey(id)).Err(); err != nil {
		log.Printf("[CanvasCache] invalidate %s: %v", id, err)
	}
}
