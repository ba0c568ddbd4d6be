package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"miblog/internal/config"
	handlers "miblog/internal/handler"
	"miblog/internal/service"
)

type Middleware func(http.Handler) http.Handler

// IdentityMiddleware устанавливает личность запроса и кладёт числовой
// userID в контекст. Два пути:
//   - Authorization: Bearer <jwt> - подписанный токен, выданный на логине
//   - X-User-ID: user-<n> - унаследованная схема без подписи, принимается как есть
//
// JWT имеет приоритет, если передан.
func IdentityMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions || isPublicPath(r) {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := resolveRequestIdentity(r, cfg)
			if err != nil {
				handlers.WriteError(w, err.Error(), http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), "userID", userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveRequestIdentity(r *http.Request, cfg *config.Config) (int64, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		// Checking the "Bearer <token>" format
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return 0, service.ErrMalformedIdentity
		}

		return userIDFromToken(parts[1], cfg.JWTSecretKey)
	}

	return service.ResolveIdentity(r.Header.Get("X-User-ID"))
}

func userIDFromToken(tokenString, secret string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Checking the signature algorithm
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, service.ErrMalformedIdentity
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, service.ErrMalformedIdentity
	}

	// json-числа приходят как float64
	rawUserID, ok := claims["user_id"].(float64)
	if !ok || rawUserID <= 0 {
		return 0, service.ErrMalformedIdentity
	}

	return int64(rawUserID), nil
}

// isPublicPath - эндпоинты, доступные без личности: регистрация, логин,
// витрина блогов и служебные ручки. Посты блога публичными не являются.
func isPublicPath(r *http.Request) bool {
	if r.URL.Path == "/" || r.URL.Path == "/health" {
		return true
	}

	if strings.HasPrefix(r.URL.Path, "/api/auth/") {
		return true
	}

	if r.Method == http.MethodGet {
		if r.URL.Path == "/api/blogs" {
			return true
		}

		// GET /api/blogs/{id} публичный, всё глубже - нет
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		if len(parts) == 3 && parts[0] == "api" && parts[1] == "blogs" {
			return true
		}
	}

	return false
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-User-ID")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("Method: %s, URL: %s", r.Method, r.RequestURI)
		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
