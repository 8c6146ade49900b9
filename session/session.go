package session

import (
	"errors"
	"fmt"
	"time"

	"niteout-backend/codec"

	"github.com/go-redis/redis"
)

var ErrNotFound = errors.New("no session for key")

// Store holds the device-session mapping from an authenticated account id to
// its publican id. The event-creation path only reads it.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string, ttl time.Duration) error
}

type redisStore struct {
	client *redis.Client
	secret []byte
}

// NewRedis returns a redis-backed Store. Values are AES-encrypted with
// secret before they leave the process.
func NewRedis(client *redis.Client, secret []byte) Store {
	return &redisStore{client: client, secret: secret}
}

func (s *redisStore) Get(key string) (string, error) {
	sealed, err := s.client.Get(sessionKey(key)).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get: error reading session %s: %w", key, err)
	}

	value, err := codec.Decrypt(s.secret, sealed)
	if err != nil {
		return "", fmt.Errorf("get: error decrypting session %s: %w", key, err)
	}

	return string(value), nil
}

func (s *redisStore) Set(key, value string, ttl time.Duration) error {
	sealed, err := codec.Encrypt(s.secret, []byte(value))
	if err != nil {
		return fmt.Errorf("set: error encrypting session %s: %w", key, err)
	}

	if err := s.client.Set(sessionKey(key), sealed, ttl).Err(); err != nil {
		return fmt.Errorf("set: error writing session %s: %w", key, err)
	}

	return nil
}

func sessionKey(key string) string {
	return fmt.Sprintf("session-%s", key)
}
