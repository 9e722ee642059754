package unitofwork

import (
	"context"

	"counselling-portal-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	AppointmentRepository() contract.AppointmentRepository
	SessionRepository() contract.SessionRepository
}
