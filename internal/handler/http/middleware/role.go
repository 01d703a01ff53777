package middleware

import (
	"net/http"

	"github.com/fc-hr/worklog-backend-go/internal/domain/user"
	"github.com/fc-hr/worklog-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// HROnly requires the hr role
func HROnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrHRAccessRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(user.RoleHR) {
			response.HandleError(w, user.ErrHRAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
