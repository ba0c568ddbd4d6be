package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"miblog/internal/config"
	"miblog/internal/models"
	"miblog/internal/repository"
)

func newAuthServiceForTest() (AuthService, *MockUserRepository) {
	userRepo := new(MockUserRepository)
	cfg := &config.Config{
		JWTSecretKey:        "test-secret-key",
		AccessTokenDuration: 2 * time.Hour,
	}
	return NewAuthService(userRepo, cfg), userRepo
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Успешная регистрация выдаёт токен", func(t *testing.T) {
		svc, userRepo := newAuthServiceForTest()

		userRepo.On("CreateUser", mock.Anything, "alice", "pw1").Return(&models.User{
			ID: 1, Username: "alice",
		}, nil)

		user, accessToken, err := svc.Register(ctx, "alice", "pw1")

		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.NotEmpty(t, accessToken)

		// токен подписан нашим секретом и несёт числовой user_id
		token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
			return []byte("test-secret-key"), nil
		})
		require.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, float64(1), claims["user_id"])
		assert.Equal(t, "alice", claims["username"])
	})

	t.Run("Занятое имя пользователя", func(t *testing.T) {
		svc, userRepo := newAuthServiceForTest()

		userRepo.On("CreateUser", mock.Anything, "alice", "pw1").
			Return(nil, repository.ErrDuplicateUsername)

		user, _, err := svc.Register(ctx, "alice", "pw1")

		assert.ErrorIs(t, err, ErrDuplicateUsername)
		assert.Nil(t, user)
	})

	t.Run("Пустые поля отклоняются", func(t *testing.T) {
		svc, userRepo := newAuthServiceForTest()

		_, _, err := svc.Register(ctx, "", "pw1")
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, _, err = svc.Register(ctx, "alice", "")
		assert.ErrorIs(t, err, ErrInvalidInput)

		userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Успешный вход", func(t *testing.T) {
		svc, userRepo := newAuthServiceForTest()

		userRepo.On("VerifyPassword", mock.Anything, "alice", "pw1").Return(&models.User{
			ID: 1, Username: "alice",
		}, nil)

		user, accessToken, err := svc.Login(ctx, "alice", "pw1")

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.NotEmpty(t, accessToken)
	})

	t.Run("Несуществующее имя и неверный пароль неразличимы", func(t *testing.T) {
		svc, userRepo := newAuthServiceForTest()

		// репозиторий падает по-разному, наружу уходит одна и та же ошибка
		userRepo.On("VerifyPassword", mock.Anything, "ghost", "pw1").
			Return(nil, sql.ErrNoRows)
		userRepo.On("VerifyPassword", mock.Anything, "alice", "wrong").
			Return(nil, repository.ErrWrongPassword)

		_, _, errNoUser := svc.Login(ctx, "ghost", "pw1")
		_, _, errBadPassword := svc.Login(ctx, "alice", "wrong")

		assert.ErrorIs(t, errNoUser, ErrInvalidCredentials)
		assert.ErrorIs(t, errBadPassword, ErrInvalidCredentials)
		assert.Equal(t, errNoUser.Error(), errBadPassword.Error())
	})
}
