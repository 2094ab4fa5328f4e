package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"ton-mini-app-backend/internal/features/user/models"
	"ton-mini-app-backend/internal/features/user/repository"
	rplatform "ton-mini-app-backend/internal/platform/redis"
)

// ErrCacheMiss is returned by Get when the user is not cached.
var ErrCacheMiss = errors.New("user cache miss")

const maxSetAttempts = 3

// UserCache provides Redis-based caching for users keyed by Telegram ID.
type UserCache struct {
	client *rplatform.Client
	ttl    time.Duration
}

var _ repository.UserCache = (*UserCache)(nil)

func NewUserCache(client *rplatform.Client, ttl time.Duration) *UserCache {
	return &UserCache{client: client, ttl: ttl}
}

func keyByTelegramID(id int64) string { return fmt.Sprintf("user:tg:%d", id) }

func (c *UserCache) Get(ctx context.Context, telegramID int64) (*models.User, error) {
	v, err := c.client.Get(ctx, keyByTelegramID(telegramID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}
	var u models.User
	if err := json.Unmarshal(v, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Set stores u unless the cached record is newer. The check and the write run
// under WATCH, so a reader that fetched a row before a wallet update cannot put
// it back over the updated one.
func (c *UserCache) Set(ctx context.Context, u *models.User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	key := keyByTelegramID(u.TelegramID)

	txf := func(tx *goredis.Tx) error {
		cur, err := tx.Get(ctx, key).Bytes()
		if err != nil && !errors.Is(err, goredis.Nil) {
			return err
		}
		if err == nil {
			var cached models.User
			if json.Unmarshal(cur, &cached) == nil && cached.UpdatedAt.After(u.UpdatedAt) {
				return nil
			}
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, b, c.ttl)
			return nil
		})
		return err
	}

	for i := 0; i < maxSetAttempts; i++ {
		err = c.client.Watch(ctx, txf, key)
		if !errors.Is(err, goredis.TxFailedErr) {
			return err
		}
	}
	return err
}

func (c *UserCache) Invalidate(ctx context.Context, telegramID int64) error {
	return c.client.Del(ctx, keyByTelegramID(telegramID)).Err()
}
