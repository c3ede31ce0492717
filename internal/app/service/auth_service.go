package service

import (
	"context"
	"errors"
	"fmt"

	"todoapp/internal/core/domain"
	"todoapp/internal/core/ports"
)

type AuthService struct {
	userRepository ports.UserRepository
	hasher         *PasswordHasher
}

func NewAuthService(userRepository ports.UserRepository, hasher *PasswordHasher) *AuthService {
	return &AuthService{userRepository: userRepository, hasher: hasher}
}

var _ ports.AuthService = (*AuthService)(nil)

func (s *AuthService) Signup(ctx context.Context, in domain.SignupInput) (domain.User, error) {
	in, verr := domain.ValidateSignup(in)
	if verr != nil {
		return domain.User{}, verr
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	// No prior existence check: the unique constraint on email is the
	// only defense that closes the concurrent-signup race.
	return s.userRepository.Create(ctx, in.FirstName, in.Email, hash)
}

// Login never reveals whether the email or the password was the wrong
// half of the pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.userRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, domain.ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return domain.User{}, domain.ErrInvalidCredentials
	}

	return user, nil
}

func (s *AuthService) UserByID(ctx context.Context, id uint64) (domain.User, error) {
	return s.userRepository.FindByID(ctx, id)
}

func (s *AuthService) DeleteAccount(ctx context.Context, id uint64) error {
	deleted, err := s.userRepository.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
