package contract

import (
	"counselling-portal-be/internal/entity"

	"github.com/google/uuid"
)

// PrincipalCache holds resolved principals between requests. A miss is never an
// error. Entries only leave by expiring; nothing here edits users.
type PrincipalCache interface {
	Save(principal entity.Principal)
	Get(id uuid.UUID) (entity.Principal, bool)
}
