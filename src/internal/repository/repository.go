package repository

import (
	"context"

	"rider-client/src/internal/entity"
)

// SessionRepository persists the logged-in rider. Get returns (nil, nil) when
// nobody is logged in.
type SessionRepository interface {
	Get(ctx context.Context) (*entity.RiderSession, error)
	Set(ctx context.Context, session *entity.RiderSession) error
	Clear(ctx context.Context) error
}
