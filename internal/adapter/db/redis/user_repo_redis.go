package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"kitchen-control-backend/internal/domain/user"
)

// UserRepoRedis implements the user Repository on top of Redis.
//
// Users live in two keys: a sorted set of ids scored by id, which fixes the
// enumeration order, and a hash mapping each id to its JSON record.
type UserRepoRedis struct {
	client redis.UniversalClient
	prefix string
	log    *zap.Logger
}

// NewUserRepoRedis creates a new Redis-backed user repository.
// prefix is prepended to every key, e.g. "kitchen:".
func NewUserRepoRedis(client redis.UniversalClient, prefix string, log *zap.Logger) *UserRepoRedis {
	return &UserRepoRedis{
		client: client,
		prefix: prefix,
		log:    log,
	}
}

// IDsKey returns the sorted set key holding user ids.
func (r *UserRepoRedis) IDsKey() string {
	return r.prefix + "users:ids"
}

// RecordsKey returns the hash key holding user records.
func (r *UserRepoRedis) RecordsKey() string {
	return r.prefix + "users"
}

// FindAll retrieves every user in ascending id order.
func (r *UserRepoRedis) FindAll(ctx context.Context) ([]user.User, error) {
	ids, err := r.client.ZRange(ctx, r.IDsKey(), 0, -1).Result()
	if err != nil {
		r.log.Error("failed to read user ids from redis", zap.String("key", r.IDsKey()), zap.Error(err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if len(ids) == 0 {
		return []user.User{}, nil
	}

	values, err := r.client.HMGet(ctx, r.RecordsKey(), ids...).Result()
	if err != nil {
		r.log.Error("failed to read user records from redis", zap.String("key", r.RecordsKey()), zap.Error(err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]user.User, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Indexed but never written; not a persisted row.
			r.log.Debug("user id without record", zap.String("id", ids[i]))
			continue
		}

		var u user.User
		if err := json.Unmarshal([]byte(raw), &u); err != nil {
			r.log.Error("failed to unmarshal user record", zap.String("id", ids[i]), zap.Error(err))
			return nil, fmt.Errorf("failed to decode user %s: %w", ids[i], err)
		}
		if u.ID == 0 {
			if id, perr := strconv.ParseInt(ids[i], 10, 64); perr == nil {
				u.ID = id
			}
		}
		users = append(users, u)
	}

	r.log.Debug("listed users from redis", zap.Int("count", len(users)))
	return users, nil
}

// Ping checks if the Redis connection is alive.
func (r *UserRepoRedis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
