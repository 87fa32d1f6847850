package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktrack/internal/models"
)

type mockUserRepository struct {
	users map[string]*models.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: map[string]*models.User{}}
}

func (m *mockUserRepository) Create(_ context.Context, user *models.User) error {
	m.users[user.Email] = user
	return nil
}

func (m *mockUserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return m.users[email], nil
}

func (m *mockUserRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func newTestUserService() (UserService, AuthService, *mockUserRepository) {
	repo := newMockUserRepository()
	auth := NewAuthService([]byte("test-secret"), 15*time.Minute)
	return NewUserService(repo, auth), auth, repo
}

func TestUserService_Register(t *testing.T) {
	svc, auth, repo := newTestUserService()

	user, err := svc.Register(context.Background(), "a@example.com", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "a@example.com", user.Email)

	stored := repo.users["a@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret", stored.PasswordHash, "password must be stored hashed")
	assert.NoError(t, auth.CheckPassword(stored.PasswordHash, "s3cret"))
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestUserService()

	_, err := svc.Register(context.Background(), "a@example.com", "s3cret")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "a@example.com", "other")
	assert.Error(t, err)
}

func TestUserService_Register_EmptyFields(t *testing.T) {
	svc, _, _ := newTestUserService()

	_, err := svc.Register(context.Background(), "", "s3cret")
	assert.Error(t, err)

	_, err = svc.Register(context.Background(), "a@example.com", "   ")
	assert.Error(t, err)
}
