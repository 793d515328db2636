package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"healthathome/internal/domain/entities"
	"healthathome/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const examKeyPrefix = "lab_exam:"

// NewRedisClient connects and pings Redis.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return client, nil
}

// RedisCache stores catalog exams as JSON under lab_exam:<codigo>.
type RedisCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

var _ interfaces.ICatalogCache = (*RedisCache)(nil)

func NewRedisCache(client redis.Cmdable, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func ExamKey(codigo string) string {
	return examKeyPrefix + codigo
}

// Get reports a miss with ok=false and a nil error.
func (c *RedisCache) Get(ctx context.Context, codigo string) (entities.LaboratoryExam, bool, error) {
	raw, err := c.client.Get(ctx, ExamKey(codigo)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.LaboratoryExam{}, false, nil
	}
	if err != nil {
		return entities.LaboratoryExam{}, false, fmt.Errorf("failed to get from cache: %w", err)
	}

	var e entities.LaboratoryExam
	if err := json.Unmarshal(raw, &e); err != nil {
		return entities.LaboratoryExam{}, false, fmt.Errorf("corrupt cache entry %s: %w", ExamKey(codigo), err)
	}
	return e, true, nil
}

func (c *RedisCache) Set(ctx context.Context, e entities.LaboratoryExam) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, ExamKey(e.Codigo), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set in cache: %w", err)
	}
	return nil
}

func (c *RedisCache) Invalidate(ctx context.Context, codigos ...string) error {
	if len(codigos) == 0 {
		return nil
	}
	keys := make([]string, len(codigos))
	for i, codigo := range codigos {
		keys[i] = ExamKey(codigo)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete from cache: %w", err)
	}
	return nil
}
