package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ReservationEngine/internal/api/handlers"
)

const (
	// OperatorTokenHeader альтернативный заголовок с токеном оператора
	OperatorTokenHeader = "X-Operator-Token"

	msgUnauthorized = "требуется токен оператора"
)

// OperatorAuth пропускает запрос только со статическим токеном оператора
// в Authorization: Bearer или X-Operator-Token
func OperatorAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(OperatorTokenHeader)
			if provided == "" {
				authHeader := r.Header.Get("Authorization")
				if strings.HasPrefix(authHeader, "Bearer ") {
					provided = strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
				}
			}

			if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
