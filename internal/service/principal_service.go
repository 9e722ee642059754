package service

import (
	"context"
	"errors"

	"counselling-portal-be/internal/entity"
	"counselling-portal-be/internal/pkg/logger"
	"counselling-portal-be/internal/repository/contract"
	"counselling-portal-be/internal/repository/specification"
	"counselling-portal-be/internal/repository/unitofwork"
	"counselling-portal-be/pkg/report"

	"github.com/google/uuid"
)

var ErrUnauthenticated = errors.New("unauthenticated")

type IPrincipalService interface {
	// Resolve loads the caller's current role. Unknown or inactive users are
	// ErrUnauthenticated.
	// A role change or deactivation applies once the cached entry expires.
	Resolve(ctx context.Context, userId uuid.UUID) (entity.Principal, error)
}

type principalService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      contract.PrincipalCache
	logger     logger.ILogger
}

func NewPrincipalService(uowFactory unitofwork.RepositoryFactory, cache contract.PrincipalCache, logger logger.ILogger) IPrincipalService {
	return &principalService{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger,
	}
}

func (s *principalService) Resolve(ctx context.Context, userId uuid.UUID) (entity.Principal, error) {
	if p, ok := s.cache.Get(userId); ok {
		return p, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		s.logger.Error("AUTH", "Failed to load principal", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		return entity.Principal{}, report.StorageError("load user", err)
	}
	if user == nil || !user.IsActive {
		return entity.Principal{}, ErrUnauthenticated
	}

	p := entity.Principal{Id: user.Id, Role: user.Role}
	s.cache.Save(p)
	return p, nil
}
