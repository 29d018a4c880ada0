package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/redis/go-redis/v9"

	"github.com/craftdays/craftfeed/pkg/domain"
)

// RedisCache keeps documents in redis as JSON, tags are redis sets of keys
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	hits   atomic.Int64
	misses atomic.Int64
}

// NewRedisCache connects to redis at addr. All keys are prefixed with prefix.
func NewRedisCache(ctx context.Context, addr, prefix string, ttl time.Duration) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis %s: %w", addr, err)
	}
	lgr.Printf("[INFO] connected to redis at %s", addr)
	return &RedisCache{client: client, prefix: prefix, ttl: ttl}, nil
}

// Get returns a cached document. Redis failures are logged and reported as a miss.
func (r *RedisCache) Get(ctx context.Context, key string) (domain.FeedDocument, bool) {
	data, err := r.client.Get(ctx, r.docKey(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			lgr.Printf("[WARN] redis get %s: %v", key, err)
		}
		r.misses.Add(1)
		return domain.FeedDocument{}, false
	}

	var doc domain.FeedDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		lgr.Printf("[WARN] bad cached document %s, dropped: %v", key, err)
		_ = r.client.Del(ctx, r.docKey(key)).Err()
		r.misses.Add(1)
		return domain.FeedDocument{}, false
	}
	r.hits.Add(1)
	return doc, true
}

// Set stores a document and adds its key to every tag set, zero ttl means cache default
func (r *RedisCache) Set(ctx context.Context, key string, doc domain.FeedDocument, ttl time.Duration, tags ...string) error {
	if ttl == 0 {
		ttl = r.ttl
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document %s: %w", key, err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.docKey(key), data, ttl)
	for _, tag := range tags {
		pipe.SAdd(ctx, r.tagKey(tag), key)
		pipe.Expire(ctx, r.tagKey(tag), ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("set document %s: %w", key, err)
	}
	return nil
}

// Invalidate drops all documents marked with any of the tags, and the tag sets
func (r *RedisCache) Invalidate(ctx context.Context, tags ...string) error {
	for _, tag := range tags {
		keys, err := r.client.SMembers(ctx, r.tagKey(tag)).Result()
		if err != nil {
			return fmt.Errorf("members of tag %s: %w", tag, err)
		}
		drop := make([]string, 0, len(keys)+1)
		for _, k := range keys {
			drop = append(drop, r.docKey(k))
		}
		drop = append(drop, r.tagKey(tag))
		if err := r.client.Del(ctx, drop...).Err(); err != nil {
			return fmt.Errorf("invalidate tag %s: %w", tag, err)
		}
	}
	return nil
}

// Stat returns hit/miss counters and the size of the redis database
func (r *RedisCache) Stat(ctx context.Context) Stats {
	res := Stats{Backend: "redis", Hits: r.hits.Load(), Misses: r.misses.Load()}
	if n, err := r.client.DBSize(ctx).Result(); err == nil {
		res.Keys = n
	}
	return res
}

// Close closes the redis connection
func (r *RedisCache) Close() error {
	return r.client.Close()
}

func (r *RedisCache) docKey(key string) string { return r.prefix + "doc:" + key }

func (r *RedisCache) tagKey(tag string) string { return r.prefix + "tag:" + tag }
