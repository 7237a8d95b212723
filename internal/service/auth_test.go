package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/TonmoyBishwas/web-scanner-sub001/config"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/domain/model"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/mocks"
	"github.com/TonmoyBishwas/web-scanner-sub001/internal/service"
)

// testAuthConfig returns a config.AuthConfig for testing.
func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecretKey:     "test-secret-key",
		JWTRefreshSecret: "test-refresh-secret-key",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  7 * 24 * time.Hour,
	}
}

func newTokenRepoMock() *mocks.MockTokenRepositoryInterface {
	tokenRepo := new(mocks.MockTokenRepositoryInterface)
	tokenRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	tokenRepo.On("DeleteByUserID", mock.Anything, mock.Anything, "refresh").Return(nil)
	tokenRepo.On("IsBlacklisted", mock.Anything, mock.Anything).Return(false, nil)
	return tokenRepo
}

func TestAuthService_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	tests := []struct {
		name          string
		email         string
		password      string
		setupMocks    func(*mocks.MockUserRepositoryInterface)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: "password123",
			setupMocks: func(userRepo *mocks.MockUserRepositoryInterface) {
				userRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:       primitive.NewObjectID(),
					Email:    "test@example.com",
					Password: string(hashedPassword),
					Name:     "Test Operator",
					Active:   true,
				}, nil)
			},
		},
		{
			name:     "user not found",
			email:    "notfound@example.com",
			password: "password123",
			setupMocks: func(userRepo *mocks.MockUserRepositoryInterface) {
				userRepo.On("FindByEmail", mock.Anything, "notfound@example.com").Return(nil, nil)
			},
			expectedError: service.ErrInvalidCredentials,
		},
		{
			name:     "user inactive",
			email:    "inactive@example.com",
			password: "password123",
			setupMocks: func(userRepo *mocks.MockUserRepositoryInterface) {
				userRepo.On("FindByEmail", mock.Anything, "inactive@example.com").Return(&model.User{
					ID:       primitive.NewObjectID(),
					Email:    "inactive@example.com",
					Password: string(hashedPassword),
					Active:   false,
				}, nil)
			},
			expectedError: service.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "test@example.com",
			password: "wrong",
			setupMocks: func(userRepo *mocks.MockUserRepositoryInterface) {
				userRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:       primitive.NewObjectID(),
					Email:    "test@example.com",
					Password: string(hashedPassword),
					Active:   true,
				}, nil)
			},
			expectedError: service.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(mocks.MockUserRepositoryInterface)
			tt.setupMocks(userRepo)

			svc := service.NewAuthService(userRepo, newTokenRepoMock(), testAuthConfig())

			tokenPair, user, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, tokenPair)
			assert.NotEmpty(t, tokenPair.AccessToken)
			assert.NotEmpty(t, tokenPair.RefreshToken)
			assert.Equal(t, tt.email, user.Email)
		})
	}
}

func TestAuthService_Register(t *testing.T) {
	t.Run("successful registration", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepositoryInterface)
		userRepo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, nil)
		userRepo.On("FindByUsername", mock.Anything, "scanner1").Return(nil, nil)
		userRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			user := args.Get(1).(*model.User)
			user.ID = primitive.NewObjectID()
		}).Return(nil)

		svc := service.NewAuthService(userRepo, newTokenRepoMock(), testAuthConfig())

		tokenPair, user, err := svc.Register(context.Background(), "new@example.com", "scanner1", "password123", "New Operator")
		require.NoError(t, err)
		assert.NotEmpty(t, tokenPair.AccessToken)
		assert.Equal(t, "scanner1", user.Username)
		assert.True(t, user.Active)
		// Password must be stored hashed
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	})

	t.Run("email already exists", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepositoryInterface)
		userRepo.On("FindByEmail", mock.Anything, "taken@example.com").Return(&model.User{
			ID: primitive.NewObjectID(), Email: "taken@example.com",
		}, nil)

		svc := service.NewAuthService(userRepo, newTokenRepoMock(), testAuthConfig())

		_, _, err := svc.Register(context.Background(), "taken@example.com", "scanner1", "password123", "Name")
		assert.ErrorIs(t, err, service.ErrUserExists)
	})

	t.Run("username already exists", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepositoryInterface)
		userRepo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, nil)
		userRepo.On("FindByUsername", mock.Anything, "taken").Return(&model.User{
			ID: primitive.NewObjectID(), Username: "taken",
		}, nil)

		svc := service.NewAuthService(userRepo, newTokenRepoMock(), testAuthConfig())

		_, _, err := svc.Register(context.Background(), "new@example.com", "taken", "password123", "Name")
		assert.ErrorIs(t, err, service.ErrUserExists)
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	userRepo := new(mocks.MockUserRepositoryInterface)
	userID := primitive.NewObjectID()
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	userRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
		ID:       userID,
		Email:    "test@example.com",
		Password: string(hashedPassword),
		Name:     "Test Operator",
		Active:   true,
	}, nil)

	svc := service.NewAuthService(userRepo, newTokenRepoMock(), testAuthConfig())

	tokenPair, _, err := svc.Login(context.Background(), "test@example.com", "password123")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(context.Background(), tokenPair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "test@example.com", claims.Email)

	_, err = svc.ValidateToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestAuthService_ValidateTokenBlacklisted(t *testing.T) {
	userRepo := new(mocks.MockUserRepositoryInterface)
	tokenRepo := new(mocks.MockTokenRepositoryInterface)
	tokenRepo.On("IsBlacklisted", mock.Anything, "blacklisted-token").Return(true, nil)

	svc := service.NewAuthService(userRepo, tokenRepo, testAuthConfig())

	_, err := svc.ValidateToken(context.Background(), "blacklisted-token")
	assert.ErrorIs(t, err, service.ErrTokenBlacklisted)
}
