package service

import (
	"context"
	"time"

	repository "github.com/ds124wfegd/contactremind/internal/database/postgres"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const settingsKeyPrefix = "contactremind:settings:"

// settingsResolver answers email-eligibility lookups through a short-TTL
// redis cache in front of the user_settings table. Cache failures fall
// through to Postgres; only a failed Postgres lookup surfaces as an
// error (and the caller then fails closed).
type settingsResolver struct {
	userRepo repository.UserRepository
	redis    *redis.Client
	ttl      time.Duration
}

// NewSettingsResolver creates a resolver; redisClient may be nil, in
// which case every lookup goes straight to Postgres.
func NewSettingsResolver(userRepo repository.UserRepository, redisClient *redis.Client, ttl time.Duration) SettingsResolver {
	return &settingsResolver{
		userRepo: userRepo,
		redis:    redisClient,
		ttl:      ttl,
	}
}

func (r *settingsResolver) EmailEnabled(ctx context.Context, userID string) (bool, error) {
	if r.redis != nil {
		val, err := r.redis.Get(ctx, settingsKeyPrefix+userID).Result()
		if err == nil {
			return val == "1", nil
		}
		if err != redis.Nil {
			logrus.Debugf("Settings cache read failed for user %s: %v", userID, err)
		}
	}

	settings, err := r.userRepo.GetSettings(ctx, userID)
	if err != nil {
		return false, err
	}

	if r.redis != nil {
		val := "0"
		if settings.EmailNotifications {
			val = "1"
		}
		if err := r.redis.Set(ctx, settingsKeyPrefix+userID, val, r.ttl).Err(); err != nil {
			logrus.Debugf("Settings cache write failed for user %s: %v", userID, err)
		}
	}

	return settings.EmailNotifications, nil
}

func (r *settingsResolver) Invalidate(ctx context.Context, userID string) {
	if r.redis == nil {
		return
	}
	if err := r.redis.Del(ctx, settingsKeyPrefix+userID).Err(); err != nil {
		logrus.Debugf("Settings cache invalidation failed for user %s: %v", userID, err)
	}
}
