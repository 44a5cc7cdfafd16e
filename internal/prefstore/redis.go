package prefstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type Options struct {
	Addr     string
	Username string
	Password string
	DB       int
	Prefix   string
}

// Redis stores preferences as "0"/"1" strings under a common prefix.
type Redis struct {
	client *redis.Client
	prefix string
}

func NewRedis(ctx context.Context, opts Options) (*Redis, error) {
	addr := strings.TrimSpace(opts.Addr)
	if addr == "" {
		return nil, fmt.Errorf("redis addr is required for the redis prefs backend")
	}
	c := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: strings.TrimSpace(opts.Username),
		Password: opts.Password,
		DB:       opts.DB,
	})
	return newRedisWithClient(ctx, c, opts.Prefix)
}

func newRedisWithClient(ctx context.Context, c *redis.Client, prefix string) (*Redis, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "domainselection:prefs:v1"
	}
	if ctx == nil {
		ctx = context.Background()
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := c.Ping(pingCtx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &Redis{client: c, prefix: prefix}, nil
}

func (r *Redis) key(k string) string {
	return r.prefix + ":" + strings.TrimSpace(k)
}

func (r *Redis) GetBool(ctx context.Context, key string) (bool, bool, error) {
	if r == nil || r.client == nil {
		return false, false, nil
	}
	s, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("get %s: %w", key, err)
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, false, fmt.Errorf("get %s: malformed value %q", key, s)
	}
	return v, true, nil
}

func (r *Redis) SetBool(ctx context.Context, key string, value bool) error {
	if r == nil || r.client == nil {
		return nil
	}
	v := "0"
	if value {
		v = "1"
	}
	if err := r.client.Set(ctx, r.key(key), v, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.Del(ctx, r.key(key)).Err()
}

func (r *Redis) Close() {
	if r == nil || r.client == nil {
		return
	}
	_ = r.client.Close()
}
