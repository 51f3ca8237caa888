package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mkarev/recipebox/internal/config"
	"github.com/mkarev/recipebox/internal/crypto"
	"github.com/mkarev/recipebox/internal/logger"
	"github.com/mkarev/recipebox/internal/mock"
	"github.com/mkarev/recipebox/internal/store"
	"github.com/mkarev/recipebox/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository) {
	t.Helper()

	mockUsers := mock.NewMockUserRepository(ctrl)
	cfg := config.Auth{
		TokenSignKey:      "test-sign-key",
		TokenIssuer:       "recipebox",
		TokenDuration:     time.Hour,
		PasswordMinLength: 6,
	}

	return NewAuthService(mockUsers, cfg, logger.Nop()), mockUsers
}

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "Test.User@example.com", user.Email)
			assert.Equal(t, "Test User", user.Name)
			assert.True(t, user.IsActive)
			assert.True(t, crypto.CheckPassword(user.PasswordHash, "testpass123"))
			user.ID = 1
			return user, nil
		})

	user, err := svc.Register(ctx, models.CreateUserRequest{
		Email:    "Test.User@EXAMPLE.COM",
		Password: "testpass123",
		Name:     "Test User",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}

func TestAuthService_Register_InvalidEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Register(context.Background(), models.CreateUserRequest{
		Email:    "not-an-email",
		Password: "testpass123",
	})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Register(context.Background(), models.CreateUserRequest{
		Email:    "test@example.com",
		Password: "pw",
	})
	assert.ErrorIs(t, err, ErrShortPassword)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().
		CreateUser(ctx, gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Register(ctx, models.CreateUserRequest{
		Email:    "test@example.com",
		Password: "testpass123",
	})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := crypto.HashPassword("testpass123")
	require.NoError(t, err)

	mockUsers.EXPECT().
		FindUserByEmail(ctx, "test@example.com").
		Return(models.User{ID: 1, Email: "test@example.com", PasswordHash: hash, IsActive: true}, nil)

	user, err := svc.Login(ctx, "test@example.com", "testpass123")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := crypto.HashPassword("rightpass")
	require.NoError(t, err)

	mockUsers.EXPECT().
		FindUserByEmail(ctx, "test@example.com").
		Return(models.User{ID: 1, Email: "test@example.com", PasswordHash: hash, IsActive: true}, nil)

	_, err = svc.Login(ctx, "test@example.com", "wrongpass")
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthService_Login_UnknownEmailIndistinguishable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().
		FindUserByEmail(ctx, "missing@example.com").
		Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Login(ctx, "missing@example.com", "whatever-pass")
	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := crypto.HashPassword("testpass123")
	require.NoError(t, err)

	mockUsers.EXPECT().
		FindUserByEmail(ctx, "test@example.com").
		Return(models.User{ID: 1, Email: "test@example.com", PasswordHash: hash, IsActive: false}, nil)

	_, err = svc.Login(ctx, "test@example.com", "testpass123")
	assert.ErrorIs(t, err, ErrInactiveUser)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{ID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.ParseToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_UpdateProfile_NameOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	existing := models.User{ID: 1, Email: "test@example.com", Name: "Old Name", PasswordHash: "hash", IsActive: true}

	mockUsers.EXPECT().FindUserByID(ctx, int64(1)).Return(existing, nil)
	mockUsers.EXPECT().
		UpdateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "New Name", user.Name)
			assert.Equal(t, "hash", user.PasswordHash)
			return user, nil
		})

	newName := "New Name"
	updated, err := svc.UpdateProfile(ctx, 1, models.UpdateProfileRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
}

func TestAuthService_UpdateProfile_ShortPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().
		FindUserByID(ctx, int64(1)).
		Return(models.User{ID: 1, Email: "test@example.com"}, nil)

	shortPass := "pw"
	_, err := svc.UpdateProfile(ctx, 1, models.UpdateProfileRequest{Password: &shortPass})
	assert.ErrorIs(t, err, ErrShortPassword)
}

func TestAuthService_GetProfile_PropagatesNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().
		FindUserByID(ctx, int64(99)).
		Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.GetProfile(ctx, 99)
	assert.True(t, errors.Is(err, store.ErrUserNotFound))
}
