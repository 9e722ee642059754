package memory

import (
	"time"

	"counselling-portal-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// PrincipalRepository caches resolved principals so role lookups do not hit
// the database on every request. Entries expire after ttl, which bounds how
// long a role change made by an admin takes to apply.
type PrincipalRepository struct {
	cache *cache.Cache
}

func NewPrincipalRepository(ttl time.Duration) *PrincipalRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &PrincipalRepository{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (r *PrincipalRepository) Save(principal entity.Principal) {
	r.cache.Set(principal.Id.String(), principal, cache.DefaultExpiration)
}

func (r *PrincipalRepository) Get(id uuid.UUID) (entity.Principal, bool) {
	if x, found := r.cache.Get(id.String()); found {
		return x.(entity.Principal), true
	}
	return entity.Principal{}, false
}
