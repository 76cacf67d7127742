package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dates-shop-backend/internal/models"
)

type fakeUsers struct {
	byEmail map[string]models.User
	nextID  int64
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: make(map[string]models.User), nextID: 1}
}

func (f *fakeUsers) Create(ctx context.Context, name, email, passwordHash string) (int64, error) {
	if _, ok := f.byEmail[email]; ok {
		return 0, models.ErrEmailTaken
	}
	id := f.nextID
	f.nextID++
	f.byEmail[email] = models.User{ID: id, Name: name, Email: email, PasswordHash: passwordHash}
	return id, nil
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return models.User{}, models.ErrInvalidCredentials
	}
	return u, nil
}

func newAuthService() *AuthService {
	return &AuthService{
		Users:    newFakeUsers(),
		Secret:   []byte("test-secret"),
		TokenTTL: time.Hour,
	}
}

func TestRegisterLoginRoundtrip(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	id, err := svc.Register(ctx, "Hazem", "hazem@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	u, token, err := svc.Login(ctx, "hazem@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.False(t, u.IsAdmin)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.False(t, claims.IsAdmin)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Hazem", "hazem@example.com", "hunter2")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Other", "hazem@example.com", "pw")
	assert.ErrorIs(t, err, models.ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Hazem", "hazem@example.com", "hunter2")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "hazem@example.com", "wrong")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newAuthService()

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "pw")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestVerifyTokenRejectsTampered(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Hazem", "hazem@example.com", "hunter2")
	require.NoError(t, err)
	_, token, err := svc.Login(ctx, "hazem@example.com", "hunter2")
	require.NoError(t, err)

	other := &AuthService{Secret: []byte("other-secret"), TokenTTL: time.Hour}
	_, err = other.VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyTokenExpired(t *testing.T) {
	svc := newAuthService()
	svc.TokenTTL = -time.Minute
	ctx := context.Background()

	_, err := svc.Register(ctx, "Hazem", "hazem@example.com", "hunter2")
	require.NoError(t, err)
	_, token, err := svc.Login(ctx, "hazem@example.com", "hunter2")
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.Error(t, err)
}
