package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by staff tokens.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// RequireAdmin rejects requests without a valid HS256 bearer token carrying
// the admin role.
func RequireAdmin(secret string) func(http.Handler) http.Handler {
	key := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !found {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			claims := &Claims{}

			token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}

				return key, nil
			})
			if err != nil || !token.Valid {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			if claims.Role != "admin" {
				http.Error(w, "admin role required", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
