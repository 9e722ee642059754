package contract

import (
	"context"

	"counselling-portal-be/internal/entity"
	"counselling-portal-be/internal/repository/specification"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
}
