package helper

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
	"vietqr_checkout/config"

	"github.com/redis/go-redis/v9"
)

var ErrCheckoutInProgress = errors.New("checkout with this idempotency key is in progress")

// CheckoutDeduper chống tạo trùng đơn khi client gửi lại cùng Idempotency-Key
type CheckoutDeduper interface {
	// Reserve returns the stored redirect when the key already completed,
	// or reserved=true when the caller now owns the key.
	Reserve(ctx context.Context, key string) (redirectUrl string, reserved bool, err error)
	Complete(ctx context.Context, key, redirectUrl string) error
	Release(ctx context.Context, key string) error
}

func NewRedisClient() *redis.Client {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Config("REDIS_PASSWORD"),
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("warning: redis ping failed: %v", err)
	}
	return rdb
}

// DefaultCheckoutLockTTL giới hạn thời gian một key ở trạng thái "đang xử lý"
const DefaultCheckoutLockTTL = 30 * time.Second

// RedisCheckoutDeduper giữ key "đang xử lý" trong lockTTL; redirect đã hoàn tất được giữ trong ttl.
// A crashed or failed request therefore blocks retries for at most lockTTL.
type RedisCheckoutDeduper struct {
	rdb     *redis.Client
	ttl     time.Duration
	lockTTL time.Duration
}

func NewRedisCheckoutDeduper(rdb *redis.Client, ttl, lockTTL time.Duration) *RedisCheckoutDeduper {
	if lockTTL <= 0 {
		lockTTL = DefaultCheckoutLockTTL
	}
	return &RedisCheckoutDeduper{rdb: rdb, ttl: ttl, lockTTL: lockTTL}
}

func (d *RedisCheckoutDeduper) key(k string) string {
	return fmt.Sprintf("idem:vietqr-checkout:%s", k)
}

func (d *RedisCheckoutDeduper) Reserve(ctx context.Context, key string) (string, bool, error) {
	ok, err := d.rdb.SetNX(ctx, d.key(key), "", d.lockTTL).Result()
	if err != nil {
		return "", false, err
	}
	if ok {
		return "", true, nil
	}

	existing, err := d.rdb.Get(ctx, d.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		// key vừa hết hạn giữa SETNX và GET
		return d.Reserve(ctx, key)
	}
	if err != nil {
		return "", false, err
	}
	if existing == "" {
		return "", false, ErrCheckoutInProgress
	}
	return existing, false, nil
}

func (d *RedisCheckoutDeduper) Complete(ctx context.Context, key, redirectUrl string) error {
	return d.rdb.Set(ctx, d.key(key), redirectUrl, d.ttl).Err()
}

func (d *RedisCheckoutDeduper) Release(ctx context.Context, key string) error {
	return d.rdb.Del(ctx, d.key(key)).Err()
}
