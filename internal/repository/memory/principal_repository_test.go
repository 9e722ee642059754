package memory

import (
	"testing"
	"time"

	"counselling-portal-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPrincipalRepository(t *testing.T) {
	repo := NewPrincipalRepository(time.Minute)
	p := entity.Principal{Id: uuid.New(), Role: entity.UserRoleCounsellor}

	_, found := repo.Get(p.Id)
	assert.False(t, found)

	repo.Save(p)
	got, found := repo.Get(p.Id)
	assert.True(t, found)
	assert.Equal(t, p, got)
}

func TestPrincipalRepositoryExpires(t *testing.T) {
	repo := NewPrincipalRepository(20 * time.Millisecond)
	p := entity.Principal{Id: uuid.New(), Role: entity.UserRoleAdmin}

	repo.Save(p)
	time.Sleep(50 * time.Millisecond)

	_, found := repo.Get(p.Id)
	assert.False(t, found)
}
