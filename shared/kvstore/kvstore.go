package kvstore

//go:generate go run go.uber.org/mock/mockgen -source=./kvstore.go -destination=./mocks/kvstore_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"safar/infras/otel"
	"safar/shared/constant"
)

const (
	otelKeyAttribute    = "kv.key"
	otelPrefixAttribute = "kv.prefix"
)

// ErrNotFound is returned by Get when the key does not exist in the store.
var ErrNotFound = errors.New("key not found")

// Store is the persistence boundary for prefixed records. Values are stored as
// JSON documents keyed by generated identifiers such as "booking:1718000000000".
// Writes are durable and visible to subsequent reads; storage errors propagate
// to the caller with no retry.
type Store interface {
	Get(ctx context.Context, key string, value any) error
	Set(ctx context.Context, key string, value any) error
	GetByPrefix(ctx context.Context, prefix string) ([]json.RawMessage, error)
	Delete(ctx context.Context, key string) error
}

type redisStore struct {
	client *redis.Client
	otel   otel.Otel
}

func New(client *redis.Client, ot otel.Otel) Store {
	return &redisStore{
		client: client,
		otel:   ot,
	}
}

// Get implements Store.
func (store *redisStore) Get(ctx context.Context, key string, value any) (err error) {
	ctx, scope := store.otel.NewScope(ctx, constant.OtelKVScopeName, constant.OtelKVScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelKeyAttribute, key)

	raw, err := store.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}

		log.Error().Err(err).Str("key", key).Msg("failed to get record")

		return fmt.Errorf("failed to get record: %w", err)
	}

	if err = json.Unmarshal([]byte(raw), value); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to unmarshal record")

		return fmt.Errorf("failed to unmarshal record: %w", err)
	}

	return nil
}

// Set implements Store.
func (store *redisStore) Set(ctx context.Context, key string, value any) (err error) {
	ctx, scope := store.otel.NewScope(ctx, constant.OtelKVScopeName, constant.OtelKVScopeName+".Set")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelKeyAttribute, key)

	raw, err := json.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to marshal record")

		return fmt.Errorf("failed to marshal record: %w", err)
	}

	// Records persist without TTL; deletion is an explicit operation.
	if err = store.client.Set(ctx, key, raw, 0).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to set record")

		return fmt.Errorf("failed to set record: %w", err)
	}

	return nil
}

// GetByPrefix implements Store. Result order is unspecified; callers sort.
func (store *redisStore) GetByPrefix(ctx context.Context, prefix string) (res []json.RawMessage, err error) {
	ctx, scope := store.otel.NewScope(ctx, constant.OtelKVScopeName, constant.OtelKVScopeName+".GetByPrefix")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelPrefixAttribute, prefix)

	keys := []string{}
	iter := store.client.Scan(ctx, 0, prefix+"*", 0).Iterator()

	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}

	if err = iter.Err(); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to scan keys")

		return nil, fmt.Errorf("failed to scan keys: %w", err)
	}

	if len(keys) == 0 {
		return []json.RawMessage{}, nil
	}

	values, err := store.client.MGet(ctx, keys...).Result()
	if err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to fetch records")

		return nil, fmt.Errorf("failed to fetch records: %w", err)
	}

	res = make([]json.RawMessage, 0, len(values))

	for _, value := range values {
		// Keys can expire between SCAN and MGET.
		raw, ok := value.(string)
		if !ok {
			continue
		}

		res = append(res, json.RawMessage(raw))
	}

	return res, nil
}

// Delete implements Store.
func (store *redisStore) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := store.otel.NewScope(ctx, constant.OtelKVScopeName, constant.OtelKVScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelKeyAttribute, key)

	if err = store.client.Del(ctx, key).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete record")

		return fmt.Errorf("failed to delete record: %w", err)
	}

	return nil
}
