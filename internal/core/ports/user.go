package ports

import (
	"context"

	"todoapp/internal/core/domain"
)

type UserRepository interface {
	// Create persists a new user. A duplicate email surfaces as
	// domain.ErrEmailTaken, enforced by the unique constraint rather than
	// an application-level lookup.
	Create(ctx context.Context, firstName, email, passwordHash string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByID(ctx context.Context, id uint64) (domain.User, error)
	// Delete removes the user; owned tasks go with it via the cascading
	// foreign key.
	Delete(ctx context.Context, id uint64) (int64, error)
}

type AuthService interface {
	Signup(ctx context.Context, in domain.SignupInput) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
	UserByID(ctx context.Context, id uint64) (domain.User, error)
	DeleteAccount(ctx context.Context, id uint64) error
}
