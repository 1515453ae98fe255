package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DRSN-tech/dropflow/internal/cfg"
	"github.com/DRSN-tech/dropflow/internal/domain"
	"github.com/DRSN-tech/dropflow/internal/repository/redis/converter"
	"github.com/DRSN-tech/dropflow/pkg/clients"
	"github.com/DRSN-tech/dropflow/pkg/e"
	"github.com/DRSN-tech/dropflow/pkg/logger"
	"github.com/jimlawless/whereami"
	goredis "github.com/redis/go-redis/v9"
)

// Store хранит каждую коллекцию JSON-массивом под отдельным ключом:
// <prefix>:products, <prefix>:suppliers, <prefix>:orders.
type Store struct {
	client *clients.RedisClient
	conv   converter.CollectionsConverter
	prefix string
	logger logger.Logger
}

func NewStore(client *clients.RedisClient, cfg *cfg.RedisCfg, logger logger.Logger) *Store {
	return &Store{
		client: client,
		prefix: cfg.KeyPrefix,
		logger: logger,
	}
}

// Load читает три ключа одним MGET. Отсутствующий ключ даёт пустую коллекцию.
// Повреждённый JSON возвращается как ошибка, чтобы следующий Save не затёр данные.
func (s *Store) Load(ctx context.Context) (*domain.Collections, error) {
	keys := s.keys()

	values, err := s.client.Client.MGet(ctx, keys...).Result()
	if err != nil {
		s.logger.Warnf("Redis MGET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var (
		products  []converter.ProductRedisModel
		suppliers []converter.SupplierRedisModel
		orders    []converter.OrderRedisModel
	)
	targets := []any{&products, &suppliers, &orders}

	for i, val := range values {
		data, err := redisValueToBytes(val, keys[i])
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		if data == nil {
			continue
		}

		if err := json.Unmarshal(data, targets[i]); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), fmt.Errorf("decode %s: %w", keys[i], err))
		}
	}

	return &domain.Collections{
		Products:  s.conv.ToProducts(products),
		Suppliers: s.conv.ToSuppliers(suppliers),
		Orders:    s.conv.ToOrders(orders),
	}, nil
}

// Save записывает все три коллекции в одной транзакции MULTI/EXEC.
func (s *Store) Save(ctx context.Context, collections *domain.Collections) error {
	payloads := []any{
		s.conv.ToProductModels(collections.Products),
		s.conv.ToSupplierModels(collections.Suppliers),
		s.conv.ToOrderModels(collections.Orders),
	}

	keys := s.keys()
	encoded := make([][]byte, len(payloads))
	for i, p := range payloads {
		data, err := json.Marshal(p)
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), fmt.Errorf("encode %s: %w", keys[i], err))
		}
		encoded[i] = data
	}

	_, err := s.client.Client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		for i, key := range keys {
			pipe.Set(ctx, key, encoded[i], 0)
		}
		return nil
	})
	if err != nil {
		s.logger.Warnf("Redis transaction failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (s *Store) keys() []string {
	return []string{
		s.key(domain.KindProduct),
		s.key(domain.KindSupplier),
		s.key(domain.KindOrder),
	}
}

// key возвращает ключ коллекции, например dropflow:products.
func (s *Store) key(kind domain.EntityKind) string {
	return fmt.Sprintf("%s:%ss", s.prefix, kind)
}

// redisValueToBytes конвертирует значение из Redis в []byte.
// Поддерживает string и []byte, возвращает ошибку для неизвестных типов.
func redisValueToBytes(val any, key string) ([]byte, error) {
	switch v := val.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("unexpected Redis value type for key %s: %T", key, val)
	}
}
