// Package cache guarda resultados de análisis en Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/sellout-api/internal/domain/promociones"
	"github.com/jhoicas/sellout-api/pkg/config"
)

// NewRedisClient abre el cliente y verifica la conexión con un PING.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// RedisCache implementa ports.ResultadoCache con valores JSON.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache construye la caché sobre un cliente ya conectado.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Get devuelve (nil, false, nil) si la clave no existe o expiró.
func (c *RedisCache) Get(ctx context.Context, key string) (*promociones.PromocionResultado, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache.Get: %w", err)
	}

	var res promociones.PromocionResultado
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, false, fmt.Errorf("cache.Get decode: %w", err)
	}
	return &res, true, nil
}

// Set guarda el resultado con el TTL indicado; 0 = sin expiración.
func (c *RedisCache) Set(ctx context.Context, key string, r *promociones.PromocionResultado, ttl time.Duration) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("cache.Set encode: %w", err)
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("cache.Set: %w", err)
	}
	return nil
}
