package registrations

import "context"

// RegistrationsRepo defines persistence operations for registrations.
type RegistrationsRepo interface {
	Create(ctx context.Context, reg Registration) error
	GetByID(ctx context.Context, userID, id string) (Registration, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Registration, error)
	Update(ctx context.Context, reg Registration) error
}
