package registrations

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of RegistrationsRepo, used when
// no database is configured.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Registration // userID -> registrations
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Registration),
	}
}

// Create stores a registration for a user.
func (r *MemoryRepo) Create(ctx context.Context, reg Registration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[reg.UserID] = append(r.data[reg.UserID], reg)
	return nil
}

// GetByID returns a registration by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, id string) (Registration, error) {
	if err := ctx.Err(); err != nil {
		return Registration{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	regs := r.data[userID]
	for i := range regs {
		if regs[i].ID == id {
			return regs[i], nil
		}
	}
	return Registration{}, ErrNotFound
}

// ListByUser returns registrations for a user, newest first, honoring
// limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Registration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	userRegs := r.data[userID]
	r.mu.RUnlock()

	if len(userRegs) == 0 || offset >= len(userRegs) {
		return []Registration{}, nil
	}

	regs := make([]Registration, len(userRegs))
	copy(regs, userRegs)
	sort.Slice(regs, func(i, j int) bool {
		return regs[i].CreatedAt.After(regs[j].CreatedAt)
	})

	end := len(regs)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return regs[offset:end], nil
}

// Update replaces a stored registration in place.
func (r *MemoryRepo) Update(ctx context.Context, reg Registration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	regs := r.data[reg.UserID]
	for i := range regs {
		if regs[i].ID == reg.ID {
			regs[i] = reg
			r.data[reg.UserID] = regs
			return nil
		}
	}
	return ErrNotFound
}

var _ RegistrationsRepo = (*MemoryRepo)(nil)
