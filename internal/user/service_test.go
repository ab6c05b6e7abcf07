package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, name, email, hashedPassword string) (User, error) {
	args := m.Called(ctx, name, email, hashedPassword)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id uint) (User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(User), args.Error(1)
}

// --- Tests ---

func TestService_Register(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Create", mock.Anything, "Anita", "anita@example.com", mock.AnythingOfType("string")).
			Return(User{ID: 1, Name: "Anita", Email: "anita@example.com"}, nil)

		svc := NewService(repo, []byte("secret"))
		token, u, err := svc.Register(context.Background(), "Anita", "anita@example.com", "password123")

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, uint(1), u.ID)
		repo.AssertExpectations(t)
	})

	t.Run("ShortPassword", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, []byte("secret"))

		_, _, err := svc.Register(context.Background(), "Anita", "anita@example.com", "123")
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(User{}, ErrEmailExists)

		svc := NewService(repo, []byte("secret"))
		_, _, err := svc.Register(context.Background(), "Anita", "anita@example.com", "password123")
		assert.ErrorIs(t, err, ErrEmailExists)
	})
}

func TestService_Login(t *testing.T) {
	hashed, err := HashPassword("password123")
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindByEmail", mock.Anything, "anita@example.com").
			Return(User{ID: 1, Email: "anita@example.com", Password: hashed}, nil)

		svc := NewService(repo, []byte("secret"))
		token, u, err := svc.Login(context.Background(), "anita@example.com", "password123")

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Empty(t, u.Password)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindByEmail", mock.Anything, "anita@example.com").
			Return(User{ID: 1, Email: "anita@example.com", Password: hashed}, nil)

		svc := NewService(repo, []byte("secret"))
		_, _, err := svc.Login(context.Background(), "anita@example.com", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindByEmail", mock.Anything, "ghost@example.com").
			Return(User{}, ErrUserNotFound)

		svc := NewService(repo, []byte("secret"))
		_, _, err := svc.Login(context.Background(), "ghost@example.com", "password123")
		// Do not leak whether the email exists.
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
