package rediscache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"counselling-portal-be/internal/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "principal:"
	opTimeout = 500 * time.Millisecond
)

// PrincipalRepository shares the principal cache between instances. Redis
// failures degrade to cache misses so requests fall through to the database.
type PrincipalRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewPrincipalRepository(rdb *redis.Client, ttl time.Duration) *PrincipalRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &PrincipalRepository{rdb: rdb, ttl: ttl}
}

// NewClient parses a redis:// URL, falling back to treating it as host:port.
func NewClient(url string) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: url}
	}
	return redis.NewClient(opt)
}

func key(id uuid.UUID) string {
	return keyPrefix + id.String()
}

func (r *PrincipalRepository) Save(principal entity.Principal) {
	data, err := json.Marshal(principal)
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := r.rdb.Set(ctx, key(principal.Id), data, r.ttl).Err(); err != nil {
		log.Printf("[WARN] Failed to cache principal %s: %v", principal.Id, err)
	}
}

func (r *PrincipalRepository) Get(id uuid.UUID) (entity.Principal, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	data, err := r.rdb.Get(ctx, key(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[WARN] Failed to read cached principal %s: %v", id, err)
		}
		return entity.Principal{}, false
	}

	var p entity.Principal
	if err := json.Unmarshal(data, &p); err != nil || p.Id != id {
		return entity.Principal{}, false
	}
	return p, true
}
