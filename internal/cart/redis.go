package cart

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/greenbasket/checkout/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisStorage stores each cart as a JSON-encoded item list under its key.
type RedisStorage struct {
	client redis.UniversalClient
}

func NewRedisStorage(client redis.UniversalClient) *RedisStorage {
	return &RedisStorage{
		client: client,
	}
}

func (r *RedisStorage) Load(ctx context.Context, key string) ([]domain.CartItem, error) {
	cartBytes, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var items []domain.CartItem
	err = json.Unmarshal(cartBytes, &items)
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *RedisStorage) Save(ctx context.Context, key string, items []domain.CartItem) error {
	cartBytes, err := json.Marshal(items)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, key, cartBytes, 0).Err()
}
