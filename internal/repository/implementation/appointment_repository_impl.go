package implementation

import (
	"context"

	"counselling-portal-be/internal/entity"
	"counselling-portal-be/internal/mapper"
	"counselling-portal-be/internal/model"
	"counselling-portal-be/internal/repository/contract"
	"counselling-portal-be/internal/repository/scope"
	"counselling-portal-be/internal/repository/specification"

	"gorm.io/gorm"
)

type appointmentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AppointmentMapper
}

func NewAppointmentRepository(db *gorm.DB) contract.AppointmentRepository {
	return &appointmentRepositoryImpl{
		db:     db,
		mapper: mapper.NewAppointmentMapper(),
	}
}

func (r *appointmentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *appointmentRepositoryImpl) Create(ctx context.Context, appointment *entity.Appointment) error {
	m := r.mapper.ToModel(appointment)
	if err := r.db.WithContext(ctx).Omit("Client", "Counsellor").Create(m).Error; err != nil {
		return err
	}
	appointment.Id = m.Id
	appointment.CreatedAt = m.CreatedAt
	appointment.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *appointmentRepositoryImpl) FindAllWithParties(ctx context.Context, specs ...specification.Specification) ([]*entity.Appointment, error) {
	var models []*model.Appointment
	query := r.db.WithContext(ctx).
		Model(&model.Appointment{}).
		Scopes(scope.WithParties)
	query = r.applySpecifications(query, specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *appointmentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Appointment{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *appointmentRepositoryImpl) CountByCategory(ctx context.Context, specs ...specification.Specification) ([]entity.CategoryCount, error) {
	var rows []struct {
		Category string
		Count    int64
	}

	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Appointment{}), specs...)
	err := query.
		Select("appointments.category AS category, COUNT(*) AS count").
		Group("appointments.category").
		Order("count DESC, category ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]entity.CategoryCount, 0, len(rows))
	for _, row := range rows {
		res = append(res, entity.CategoryCount{
			Category: entity.Category(row.Category),
			Count:    row.Count,
		})
	}
	return res, nil
}
