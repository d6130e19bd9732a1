package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// LimiterStorage ทำให้ Redis client ใช้เป็น fiber.Storage ของ rate limiter ได้
// ทุก instance ของ API จะแชร์ counter เดียวกัน
type LimiterStorage struct {
	client *Client
}

func NewLimiterStorage(client *Client) *LimiterStorage {
	return &LimiterStorage{client: client}
}

// Get คืน nil, nil เมื่อไม่มี key (ตาม contract ของ fiber.Storage)
func (s *LimiterStorage) Get(key string) ([]byte, error) {
	val, err := s.client.Get(context.Background(), key)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return val, nil
}

func (s *LimiterStorage) Set(key string, val []byte, exp time.Duration) error {
	return s.client.Set(context.Background(), key, val, exp)
}

func (s *LimiterStorage) Delete(key string) error {
	return s.client.Del(context.Background(), key)
}

func (s *LimiterStorage) Reset() error {
	return s.client.FlushDB(context.Background())
}

func (s *LimiterStorage) Close() error {
	// connection เป็นของ container - ปิดที่ Cleanup
	return nil
}
