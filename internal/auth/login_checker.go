package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	secret      []byte
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(secret []byte, ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		secret:      secret,
		ttl:         ttl,
		redisClient: redisClient,
	}
}

// IsLogged validates the token signature and expiry, then checks that its session
// was not revoked. It returns the user id the token was issued for.
func (c *LoginChecker) IsLogged(ctx context.Context, token string) (string, bool, error) {
	claims, err := parseToken(c.secret, token)
	if err != nil {
		return "", false, nil
	}

	cmd := c.redisClient.Get(ctx, sessionKeyPrefix+claims.ID)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}

	createdAtUnix, err := strconv.ParseInt(cmd.Val(), 10, 64)
	if err != nil {
		return "", false, err
	}
	// logged out
	if createdAtUnix == 0 {
		return "", false, nil
	}

	if time.Since(time.Unix(createdAtUnix, 0)) > c.ttl {
		return "", false, nil
	}

	return claims.Subject, true, nil
}
