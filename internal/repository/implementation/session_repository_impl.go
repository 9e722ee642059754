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

type sessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionMapper
}

func NewSessionRepository(db *gorm.DB) contract.SessionRepository {
	return &sessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionMapper(),
	}
}

func (r *sessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *sessionRepositoryImpl) Create(ctx context.Context, session *entity.Session) error {
	m := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Omit("Appointment", "Client", "Counsellor").Create(m).Error; err != nil {
		return err
	}
	session.Id = m.Id
	session.CreatedAt = m.CreatedAt
	session.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *sessionRepositoryImpl) FindAllWithParties(ctx context.Context, specs ...specification.Specification) ([]*entity.Session, error) {
	var models []*model.Session
	query := r.db.WithContext(ctx).
		Model(&model.Session{}).
		Scopes(scope.WithParties, scope.WithParentAppointment)
	query = r.applySpecifications(query, specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *sessionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Session{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
