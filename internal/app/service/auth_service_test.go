package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"todoapp/internal/app/service"
	"todoapp/internal/core/domain"
)

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) Create(ctx context.Context, firstName, email, passwordHash string) (domain.User, error) {
	args := m.Called(ctx, firstName, email, passwordHash)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) FindByID(ctx context.Context, id uint64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) Delete(ctx context.Context, id uint64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestAuthService_Signup_HashesPassword(t *testing.T) {
	repo := new(userRepositoryMock)
	svc := service.NewAuthService(repo, service.NewPasswordHasher())

	repo.On("Create", mock.Anything, "Ada", "ada@example.com", mock.MatchedBy(func(hash string) bool {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte("hunter22")) == nil
	})).Return(domain.User{ID: 1, FirstName: "Ada", Email: "ada@example.com"}, nil).Once()

	user, err := svc.Signup(context.Background(), domain.SignupInput{
		FirstName: "Ada",
		Email:     "ada@example.com",
		Password:  "hunter22",
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1), user.ID)
	repo.AssertExpectations(t)
}

func TestAuthService_Signup_InvalidInputSkipsRepository(t *testing.T) {
	repo := new(userRepositoryMock)
	svc := service.NewAuthService(repo, service.NewPasswordHasher())

	_, err := svc.Signup(context.Background(), domain.SignupInput{Email: "bad"})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	repo.AssertNotCalled(t, "Create")
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	repo := new(userRepositoryMock)
	svc := service.NewAuthService(repo, service.NewPasswordHasher())

	repo.On("Create", mock.Anything, "Ada", "ada@example.com", mock.Anything).
		Return(domain.User{}, domain.ErrEmailTaken).Once()

	_, err := svc.Signup(context.Background(), domain.SignupInput{
		FirstName: "Ada",
		Email:     "ada@example.com",
		Password:  "hunter22",
	})
	require.ErrorIs(t, err, domain.ErrEmailTaken)
	repo.AssertExpectations(t)
}

func TestAuthService_Login_WrongPasswordIsGeneric(t *testing.T) {
	repo := new(userRepositoryMock)
	hasher := service.NewPasswordHasher()
	svc := service.NewAuthService(repo, hasher)

	hash, err := hasher.Hash("hunter22")
	require.NoError(t, err)

	repo.On("FindByEmail", mock.Anything, "ada@example.com").
		Return(domain.User{ID: 1, Email: "ada@example.com", PasswordHash: hash}, nil).Once()

	_, err = svc.Login(context.Background(), "ada@example.com", "wrong-password")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	repo.AssertExpectations(t)
}

func TestAuthService_Login_UnknownEmailIsSameError(t *testing.T) {
	repo := new(userRepositoryMock)
	svc := service.NewAuthService(repo, service.NewPasswordHasher())

	repo.On("FindByEmail", mock.Anything, "ghost@example.com").
		Return(domain.User{}, domain.ErrUserNotFound).Once()

	_, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	repo.AssertExpectations(t)
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := new(userRepositoryMock)
	hasher := service.NewPasswordHasher()
	svc := service.NewAuthService(repo, hasher)

	hash, err := hasher.Hash("hunter22")
	require.NoError(t, err)

	repo.On("FindByEmail", mock.Anything, "ada@example.com").
		Return(domain.User{ID: 1, Email: "ada@example.com", PasswordHash: hash}, nil).Once()

	user, err := svc.Login(context.Background(), "ada@example.com", "hunter22")
	require.NoError(t, err)
	require.Equal(t, uint64(1), user.ID)
	repo.AssertExpectations(t)
}

func TestAuthService_DeleteAccount(t *testing.T) {
	repo := new(userRepositoryMock)
	svc := service.NewAuthService(repo, service.NewPasswordHasher())

	repo.On("Delete", mock.Anything, uint64(1)).Return(int64(1), nil).Once()
	require.NoError(t, svc.DeleteAccount(context.Background(), 1))

	repo.On("Delete", mock.Anything, uint64(2)).Return(int64(0), nil).Once()
	require.ErrorIs(t, svc.DeleteAccount(context.Background(), 2), domain.ErrUserNotFound)
	repo.AssertExpectations(t)
}
