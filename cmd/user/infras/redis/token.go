package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

const revokedTokenPrefix = "auth:revoked:"

func revokedKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return revokedTokenPrefix + hex.EncodeToString(sum[:])
}

// RevokeToken blacklists a session token until it would have expired on
// its own.
func RevokeToken(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return rdb.Set(ctx, revokedKey(token), 1, ttl).Err()
}

func IsTokenRevoked(ctx context.Context, token string) (bool, error) {
	n, err := rdb.Exists(ctx, revokedKey(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
