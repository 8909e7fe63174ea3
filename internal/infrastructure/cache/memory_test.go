package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vinolens/backend/internal/domain"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("set and get round trip", func(t *testing.T) {
		c := NewMemoryCache()
		defer c.Close()

		type payload struct {
			Name    string `json:"name"`
			Vintage int    `json:"vintage"`
		}

		if err := c.Set(ctx, "key", payload{Name: "Margaux", Vintage: 2015}, time.Minute); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		value, err := c.Get(ctx, "key")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}

		// Values are JSON round-tripped, so structs come back as maps
		data, ok := value.(map[string]interface{})
		if !ok {
			t.Fatalf("value type = %T, want map[string]interface{}", value)
		}
		if data["name"] != "Margaux" {
			t.Errorf("name = %v, want Margaux", data["name"])
		}
		if data["vintage"] != float64(2015) {
			t.Errorf("vintage = %v, want 2015", data["vintage"])
		}
	})

	t.Run("miss on unknown key", func(t *testing.T) {
		c := NewMemoryCache()
		defer c.Close()

		_, err := c.Get(ctx, "missing")
		if !errors.Is(err, domain.ErrCacheMiss) {
			t.Errorf("error = %v, want ErrCacheMiss", err)
		}
	})

	t.Run("expired entries miss", func(t *testing.T) {
		c := NewMemoryCache()
		defer c.Close()

		if err := c.Set(ctx, "key", "value", 10*time.Millisecond); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		time.Sleep(20 * time.Millisecond)

		if _, err := c.Get(ctx, "key"); !errors.Is(err, domain.ErrCacheMiss) {
			t.Errorf("error = %v, want ErrCacheMiss after expiry", err)
		}

		exists, err := c.Exists(ctx, "key")
		if err != nil {
			t.Fatalf("Exists() error = %v", err)
		}
		if exists {
			t.Error("Exists() = true for an expired entry")
		}
	})

	t.Run("delete", func(t *testing.T) {
		c := NewMemoryCache()
		defer c.Close()

		if err := c.Set(ctx, "key", "value", time.Minute); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		if err := c.Delete(ctx, "key"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if _, err := c.Get(ctx, "key"); !errors.Is(err, domain.ErrCacheMiss) {
			t.Errorf("error = %v, want ErrCacheMiss after delete", err)
		}
	})

	t.Run("exists", func(t *testing.T) {
		c := NewMemoryCache()
		defer c.Close()

		if err := c.Set(ctx, "key", "value", time.Minute); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		exists, err := c.Exists(ctx, "key")
		if err != nil {
			t.Fatalf("Exists() error = %v", err)
		}
		if !exists {
			t.Error("Exists() = false, want true")
		}
	})

	t.Run("size and clear", func(t *testing.T) {
		c := NewMemoryCache()
		defer c.Close()

		for _, key := range []string{"a", "b", "c"} {
			if err := c.Set(ctx, key, key, time.Minute); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
		}
		if c.Size() != 3 {
			t.Errorf("Size() = %d, want 3", c.Size())
		}

		c.Clear()
		if c.Size() != 0 {
			t.Errorf("Size() = %d after Clear, want 0", c.Size())
		}
	})

	t.Run("unmarshalable values are rejected", func(t *testing.T) {
		c := NewMemoryCache()
		defer c.Close()

		if err := c.Set(ctx, "key", make(chan int), time.Minute); err == nil {
			t.Error("Set() accepted an unmarshalable value")
		}
	})

	t.Run("concurrent access", func(t *testing.T) {
		c := NewMemoryCache()
		defer c.Close()

		done := make(chan struct{})
		for i := 0; i < 10; i++ {
			go func() {
				defer func() { done <- struct{}{} }()
				for j := 0; j < 50; j++ {
					_ = c.Set(ctx, "shared", j, time.Minute)
					_, _ = c.Get(ctx, "shared")
				}
			}()
		}
		for i := 0; i < 10; i++ {
			<-done
		}
	})
}
