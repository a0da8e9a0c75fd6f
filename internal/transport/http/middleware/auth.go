package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainErrors "github.com/AbdelazizSaid250/membership-service/internal/domain/errors"
)

// RoleAdmin значение claim role для администратора
const RoleAdmin = "admin"

// AdminClaims claims административного токена
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AdminAuth проверяет JWT администратора (HS256)
func AdminAuth(secret string) func(http.Handler) http.Handler {
	key := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")

			const prefix = "Bearer "
			if !strings.HasPrefix(authHeader, prefix) {
				respondError(w, http.StatusUnauthorized, domainErrors.CodeUnauthorized)
				return
			}

			claims, err := ParseAdminToken(key, strings.TrimPrefix(authHeader, prefix))
			if err != nil {
				respondError(w, http.StatusUnauthorized, domainErrors.CodeUnauthorized)
				return
			}

			if claims.Role != RoleAdmin {
				respondError(w, http.StatusForbidden, domainErrors.CodeForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ParseAdminToken проверяет подпись и срок действия токена
func ParseAdminToken(key []byte, raw string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// IssueAdminToken выпускает токен администратора со сроком жизни ttl
func IssueAdminToken(secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := AdminClaims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// respondError отправляет ошибку в формате API
func respondError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(domainErrors.Codes(code))
}
