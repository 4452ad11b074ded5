// Package redisvault keeps vault entries as Redis strings under a key prefix.
// Keys are written without a server-side TTL: expiry is decided lazily by the
// secure store when an entry is read.
package redisvault

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "securestore:"

// Vault implements vault.Vault and vault.BatchSetter on a Redis client.
type Vault struct {
	client *redis.Client
	prefix string
}

// New creates a Redis-backed vault. An empty prefix selects "securestore:".
func New(client *redis.Client, prefix string) *Vault {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &Vault{client: client, prefix: prefix}
}

// Dial connects to addr and verifies the connection with PING.
func Dial(ctx context.Context, addr, password string, db int, prefix string) (*Vault, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return New(client, prefix), nil
}

// Get returns (nil, nil) when the key does not exist.
func (v *Vault) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := v.client.Get(ctx, v.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (v *Vault) Set(ctx context.Context, key string, value []byte) error {
	return v.client.Set(ctx, v.key(key), value, 0).Err()
}

// SetMany writes all values inside MULTI/EXEC.
func (v *Vault) SetMany(ctx context.Context, values map[string][]byte) error {
	_, err := v.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for k, val := range values {
			pipe.Set(ctx, v.key(k), val, 0)
		}
		return nil
	})
	return err
}

func (v *Vault) Delete(ctx context.Context, key string) error {
	return v.client.Del(ctx, v.key(key)).Err()
}

func (v *Vault) Close() error {
	return v.client.Close()
}

func (v *Vault) key(k string) string {
	return v.prefix + k
}
