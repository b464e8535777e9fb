package utils

import (
	"context"
	"fmt"
	"time"

	DB "Backend-CrickZone/src/database"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

// StoreRefreshToken stores a refresh token in Redis with an expiration.
// Returns nil if Redis is not available (development mode).
func StoreRefreshToken(userID, refreshToken string, expiresIn time.Duration) error {
	client := DB.RedisClient
	if client == nil {
		return nil
	}

	key := fmt.Sprintf("refresh_token:%s", userID)
	if err := client.Set(Ctx, key, refreshToken, expiresIn).Err(); err != nil {
		return fmt.Errorf("failed to store refresh token: %v", err)
	}
	return nil
}

// ValidateRefreshToken checks the stored token against the presented one.
// Returns true if Redis is not available (development mode - skip validation).
func ValidateRefreshToken(userID, refreshToken string) (bool, error) {
	client := DB.RedisClient
	if client == nil {
		return true, nil
	}

	key := fmt.Sprintf("refresh_token:%s", userID)
	storedToken, err := client.Get(Ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	return storedToken == refreshToken, nil
}

// RevokeRefreshToken removes the stored refresh token on logout
func RevokeRefreshToken(userID string) error {
	client := DB.RedisClient
	if client == nil {
		return nil
	}
	return client.Del(Ctx, fmt.Sprintf("refresh_token:%s", userID)).Err()
}
