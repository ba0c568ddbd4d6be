package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"miblog/internal/config"
	"miblog/internal/models"
	"miblog/internal/repository"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (*models.User, string, error)
	Login(ctx context.Context, username, password string) (*models.User, string, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// Register создаёт пользователя и сразу выдаёт access token.
// Сырой пароль дальше репозитория не уходит и нигде не логируется.
func (s *authService) Register(ctx context.Context, username, password string) (*models.User, string, error) {
	if username == "" || password == "" {
		return nil, "", ErrInvalidInput
	}

	user, err := s.userRepo.CreateUser(ctx, username, password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, "", ErrDuplicateUsername
		}
		return nil, "", fmt.Errorf("ошибка при регистрации: %w", err)
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка генерации access token: %w", err)
	}

	return user, accessToken, nil
}

// Login проверяет пароль и выдаёт access token. Несуществующее имя и неверный
// пароль дают один и тот же ответ, чтобы не подсказывать занятые имена.
func (s *authService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	if username == "" || password == "" {
		return nil, "", ErrInvalidInput
	}

	user, err := s.userRepo.VerifyPassword(ctx, username, password)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка генерации access token: %w", err)
	}

	return user, accessToken, nil
}

func (s *authService) generateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(s.cfg.AccessTokenDuration).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}
