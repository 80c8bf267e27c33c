// Package session tracks revoked JWTs in Redis so logout takes effect
// before token expiry.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotConfigured is returned when no Redis backend was wired in. Logout
// handlers treat it as a no-op revocation.
var ErrNotConfigured = errors.New("session store not configured")

// defaultBlacklistTTL bounds how long a revoked token is remembered when
// its expiry is already in the past.
const defaultBlacklistTTL = 30 * 24 * time.Hour

// Store blacklists token IDs until their natural expiry.
type Store struct {
	client       *redis.Client
	blacklistTTL time.Duration
}

// NewStore wraps an existing Redis client. client may be nil; every
// operation then reports ErrNotConfigured.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client, blacklistTTL: defaultBlacklistTTL}
}

// Connect dials Redis at redisURL and verifies the connection.
func Connect(ctx context.Context, redisURL string) (*Store, error) {
	opts, err := parseRedisURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return NewStore(client), nil
}

// Close releases the underlying client.
func (s *Store) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

// RevokeToken blacklists a token ID until expiresAt.
func (s *Store) RevokeToken(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.client == nil {
		return ErrNotConfigured
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		ttl = s.blacklistTTL
	}
	if err := s.client.Set(ctx, blacklistKey(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsTokenRevoked reports whether a token ID has been blacklisted.
func (s *Store) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	if s.client == nil {
		return false, ErrNotConfigured
	}
	n, err := s.client.Exists(ctx, blacklistKey(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return n > 0, nil
}

func blacklistKey(jti string) string {
	return "blacklist:jti:" + jti
}

func parseRedisURL(redisURL string) (*redis.Options, error) {
	u, err := url.Parse(redisURL)
	if err != nil {
		return nil, err
	}

	opts := &redis.Options{
		Addr: u.Host,
	}

	if u.User != nil {
		if password, ok := u.User.Password(); ok {
			opts.Password = password
		}
		if u.User.Username() != "" {
			opts.Username = u.User.Username()
		}
	}

	if u.Path != "" && u.Path != "/" {
		if db, err := strconv.Atoi(u.Path[1:]); err == nil {
			opts.DB = db
		}
	}

	return opts, nil
}
