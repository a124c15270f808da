package memory

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"megacart/internal/domain"
)

// UserRepo keeps registered users in memory so that auth keeps working in
// fallback mode. Accounts do not survive a restart.
type UserRepo struct {
	mu      sync.RWMutex
	byEmail map[string]*domain.User
	byID    map[string]*domain.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[string]*domain.User),
	}
}

var _ domain.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[u.Email]; exists {
		return domain.ErrConflict
	}

	u.ID = primitive.NewObjectID().Hex()
	u.CreatedAt = time.Now().UTC()

	stored := *u
	r.byEmail[u.Email] = &stored
	r.byID[u.ID] = &stored
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	out := *u
	return &out, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	out := *u
	return &out, nil
}
