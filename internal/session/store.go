package session

import (
	"context"
	"errors"

	"clinic-portal/internal/domain/entity"
)

var ErrNotFound = errors.New("session not found")

// Store persists session records keyed by session ID. Records carry
// the role and the backend bearer token; the cookie only carries the
// signed ID.
type Store interface {
	Get(ctx context.Context, id string) (entity.Session, error)
	Put(ctx context.Context, sess entity.Session) error
	Delete(ctx context.Context, id string) error
}
