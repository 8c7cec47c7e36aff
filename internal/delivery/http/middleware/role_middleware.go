package middleware

import (
	"net/http"

	"unibooking/pkg/response"
)

// RequireAdmin gates an endpoint to administrator accounts. The admin
// flag is read from context (set by AuthMiddleware from JWT claims).
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := GetActorFromContext(r.Context())
		if !ok {
			response.Unauthorized(w, "Role information not found")
			return
		}

		if !actor.IsAdmin {
			response.Forbidden(w, "You don't have permission to access this resource")
			return
		}

		next.ServeHTTP(w, r)
	})
}
