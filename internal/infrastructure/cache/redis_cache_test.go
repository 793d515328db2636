package cache

import (
	"context"
	"testing"
	"time"

	"healthathome/internal/domain/entities"

	"github.com/redis/go-redis/v9"
)

func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestExamKey(t *testing.T) {
	if got := ExamKey("HEM01"); got != "lab_exam:HEM01" {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestRedisCache_Unreachable(t *testing.T) {
	ctx := context.Background()
	c := NewRedisCache(unreachableClient(t), time.Minute)

	t.Run("get reports the error, not a miss", func(t *testing.T) {
		_, ok, err := c.Get(ctx, "HEM01")
		if err == nil || ok {
			t.Fatalf("expected error, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("set", func(t *testing.T) {
		if err := c.Set(ctx, entities.LaboratoryExam{Codigo: "HEM01"}); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("invalidate nothing is a no-op", func(t *testing.T) {
		if err := c.Invalidate(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalidate", func(t *testing.T) {
		if err := c.Invalidate(ctx, "HEM01", "GLU02"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestNewRedisClient_PingFails(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if _, err := NewRedisClient(ctx, "127.0.0.1:1", "", 0); err == nil {
		t.Fatalf("expected connection error")
	}
}
