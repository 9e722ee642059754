package contract

import (
	"context"

	"counselling-portal-be/internal/entity"
	"counselling-portal-be/internal/repository/specification"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error

	// FindAllWithParties returns sessions with client, counsellor and parent appointment joined.
	FindAllWithParties(ctx context.Context, specs ...specification.Specification) ([]*entity.Session, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
