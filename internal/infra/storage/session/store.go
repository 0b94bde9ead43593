package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "palmblack:session:"

// Store keeps admin sessions in Redis. A session maps an opaque token
// to the display name of the logged-in admin and expires on its own
// after the configured TTL.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a session store on top of the given Redis client.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Set stores a session token with the admin display name as its value.
func (s *Store) Set(ctx context.Context, token, displayName string) error {
	err := s.client.Set(ctx, keyPrefix+token, displayName, s.ttl).Err()
	if err != nil {
		return fmt.Errorf("%w: Set - %v", ErrExecCommand, err)
	}

	return nil
}

// Get returns the display name bound to the token and refreshes the
// session TTL, so active admins are not logged out mid-session.
func (s *Store) Get(ctx context.Context, token string) (string, error) {
	displayName, err := s.client.GetEx(ctx, keyPrefix+token, s.ttl).Result()
	if err == redis.Nil {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: Get - %v", ErrExecCommand, err)
	}

	return displayName, nil
}

// Delete removes the session. Deleting an unknown token is not an error.
func (s *Store) Delete(ctx context.Context, token string) error {
	err := s.client.Del(ctx, keyPrefix+token).Err()
	if err != nil {
		return fmt.Errorf("%w: Delete - %v", ErrExecCommand, err)
	}

	return nil
}
