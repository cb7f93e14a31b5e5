package eodhd

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha1"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"

	"github.com/etnz/networth/date"
	"github.com/redis/go-redis/v9"
)

// errCacheMiss is returned by a Store without an entry for a key.
var errCacheMiss = errors.New("cache miss")

// Store persists raw HTTP responses.
type Store interface {
	// Get returns the content stored at key, or errCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores content at key for at least ttl.
	Put(ctx context.Context, key string, content []byte, ttl time.Duration) error
}

// DiskStore is a Store of files in a directory.
//
// Entries never expire on disk: keys change with the caching period instead.
type DiskStore struct {
	Dir string // os.TempDir() when empty
}

func (s DiskStore) file(key string) string {
	dir := s.Dir
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, key)
}

func (s DiskStore) Get(ctx context.Context, key string) ([]byte, error) {
	content, err := os.ReadFile(s.file(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errCacheMiss
	}
	return content, err
}

func (s DiskStore) Put(ctx context.Context, key string, content []byte, ttl time.Duration) error {
	if s.Dir != "" {
		if err := os.MkdirAll(s.Dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.file(key), content, 0o644)
}

// RedisStore is a Store in a redis database, entries expire with their ttl.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore returns a Store backed by client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	content, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errCacheMiss
	}
	return content, err
}

func (s *RedisStore) Put(ctx context.Context, key string, content []byte, ttl time.Duration) error {
	return s.client.Set(ctx, key, content, ttl).Err()
}

// cache is an http.RoundTripper serving successful GET responses from a Store.
//
// Keys contain the current period identifier, so entries are refreshed once
// per period.
type cache struct {
	base   http.RoundTripper
	store  Store
	period date.Period
	today  func() date.Date
	logger *slog.Logger
}

// RoundTrip implements the http.RoundTripper interface. It checks for a cached
// response first. If none is found, it proceeds with the actual HTTP request
// and caches the new response if it's successful.
func (c *cache) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return c.base.RoundTrip(req)
	}
	ctx := req.Context()
	rng := c.period.Range(c.today())
	key := fmt.Sprintf("%s %s %s", rng.Identifier(), req.Method, req.URL.String())
	key = fmt.Sprintf("eodhd-%s-%x", c.period, sha1.Sum([]byte(key)))

	if content, err := c.store.Get(ctx, key); err == nil {
		resp, err := http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req)
		if err == nil {
			return resp, nil
		}
		c.logger.Warn("corrupted cache entry", slog.String("key", key), slog.Any("error", err))
	} else if !errors.Is(err, errCacheMiss) {
		c.logger.Warn("cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("http", slog.String("method", req.Method), slog.String("path", req.URL.Path), slog.String("status", resp.Status))
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return nil, err
	}
	ttl := max(time.Until(rng.To.Add(1).Time()), time.Minute)
	if err := c.store.Put(ctx, key, content, ttl); err != nil {
		c.logger.Warn("cache write failed (ignored)", slog.String("key", key), slog.Any("error", err))
	}
	return resp, nil
}
