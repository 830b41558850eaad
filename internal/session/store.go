package session

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"go-hrms/internal/shared/apperror"
)

const keyPrefix = "session:"

var ErrSessionNotFound = apperror.New(
	apperror.CodeUnauthorized,
	"session not found or expired",
	http.StatusUnauthorized,
)

// Session is the server-side state bound to an opaque token. The token itself
// carries no information; everything lives in Redis.
type Session struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Store{rdb: rdb, ttl: ttl}
}

// Issue creates a new opaque token for the given identity.
func (s *Store) Issue(ctx context.Context, userID, role string) (string, error) {
	token := uuid.NewString()

	payload, err := json.Marshal(Session{UserID: userID, Role: role})
	if err != nil {
		return "", err
	}

	if err := s.rdb.Set(ctx, keyPrefix+token, payload, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Get resolves a token back to its session, refreshing the TTL so active
// sessions stay alive.
func (s *Store) Get(ctx context.Context, token string) (Session, error) {
	raw, err := s.rdb.Get(ctx, keyPrefix+token).Result()
	if err == redis.Nil {
		return Session{}, ErrSessionNotFound
	}
	if err != nil {
		return Session{}, err
	}

	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return Session{}, ErrSessionNotFound
	}

	_ = s.rdb.Expire(ctx, keyPrefix+token, s.ttl).Err()
	return sess, nil
}

// Revoke deletes the session. Revoking an unknown token is not an error.
func (s *Store) Revoke(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}
