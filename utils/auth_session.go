package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const AuthSessionPrefix = "authSession:"

// AuthSession is the Redis-backed record of one issued token. The key is
// the token's jti claim; the stored hash lets the middleware verify the
// presented token is the one the session was issued for.
type AuthSession struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	TokenHash string    `json:"tokenHash"`
	CreatedAt time.Time `json:"createdAt"`
}

// SaveAuthSession stores the session under its id with a TTL matching
// the token lifetime.
func SaveAuthSession(client *redis.Client, sessionID string, session AuthSession, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal auth session: %w", err)
	}
	ctx := context.Background()
	if err := client.Set(ctx, AuthSessionPrefix+sessionID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save auth session: %w", err)
	}
	return nil
}

// GetAuthSession retrieves a session by id. Returns redis.Nil when the
// session does not exist or has expired.
func GetAuthSession(client *redis.Client, sessionID string) (*AuthSession, error) {
	ctx := context.Background()
	data, err := client.Get(ctx, AuthSessionPrefix+sessionID).Result()
	if err != nil {
		return nil, err
	}
	var session AuthSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal auth session: %w", err)
	}
	return &session, nil
}

// RevokeAuthSession deletes a session, invalidating its token.
func RevokeAuthSession(client *redis.Client, sessionID string) error {
	ctx := context.Background()
	if err := client.Del(ctx, AuthSessionPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to revoke auth session: %w", err)
	}
	return nil
}
