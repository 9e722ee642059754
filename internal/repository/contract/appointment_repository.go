package contract

import (
	"context"

	"counselling-portal-be/internal/entity"
	"counselling-portal-be/internal/repository/specification"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error

	// FindAllWithParties returns appointments with client and counsellor joined.
	FindAllWithParties(ctx context.Context, specs ...specification.Specification) ([]*entity.Appointment, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// CountByCategory returns per-category counts, largest first.
	CountByCategory(ctx context.Context, specs ...specification.Specification) ([]entity.CategoryCount, error)
}
