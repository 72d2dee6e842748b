package session

import (
	"context"
	"errors"
	"time"

	"bankdemo/biz/model/domain"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "bank_token:"

type RedisStore struct {
	rdb    redis.UniversalClient
	prefix string
}

func NewRedisStore(rdb redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &RedisStore{rdb: rdb, prefix: prefix}
}

func (s *RedisStore) Put(ctx context.Context, token string, sess *domain.Session, ttl time.Duration) error {
	data, err := sonic.Marshal(sess)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.key(token), data, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, token string) (*domain.Session, error) {
	data, err := s.rdb.Get(ctx, s.key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var sess domain.Session
	if err := sonic.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	if sess.Expired(time.Now()) {
		return nil, nil
	}
	return &sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, s.key(token)).Err()
}

func (s *RedisStore) key(token string) string {
	return s.prefix + token
}
