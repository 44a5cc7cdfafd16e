// Package prefstore persists small per-device preferences that must survive
// a restart of the domain selection service.
package prefstore

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Store is a boolean key/value store.
type Store interface {
	// GetBool returns the stored value and whether the key exists.
	GetBool(ctx context.Context, key string) (value, ok bool, err error)
	SetBool(ctx context.Context, key string, value bool) error
	Delete(ctx context.Context, key string) error
	Close()
}

// Backend names accepted by Config.Backend.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

type Config struct {
	Backend       string `env:"PREFS_BACKEND" envDefault:"memory"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisUsername string `env:"REDIS_USERNAME"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	Prefix        string `env:"PREFS_PREFIX" envDefault:"domainselection:prefs:v1"`
}

// Open builds the store selected by cfg.Backend.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", BackendMemory:
		return NewMemory(), nil
	case BackendRedis:
		return NewRedis(ctx, Options{
			Addr:     cfg.RedisAddr,
			Username: cfg.RedisUsername,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.Prefix,
		})
	default:
		return nil, fmt.Errorf("unknown prefs backend %q", cfg.Backend)
	}
}

// Memory is a process-local Store.
type Memory struct {
	mu     sync.RWMutex
	values map[string]bool
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]bool)}
}

func (m *Memory) GetBool(_ context.Context, key string) (bool, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) SetBool(_ context.Context, key string, value bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *Memory) Close() {}
