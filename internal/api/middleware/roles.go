package middleware

import (
	"net/http"

	"github.com/trustmed/trustmed/internal/domain/user"
	"github.com/trustmed/trustmed/internal/pkg/errors"
	"github.com/trustmed/trustmed/internal/pkg/utils"
)

// RequireRole gates a route group to the given roles. A signed-in user
// with the wrong role is redirected to their own landing path rather
// than shown an error; only an unauthenticated request gets a 401.
// Must run after AuthMiddleware.
func RequireRole(roles ...user.Role) func(http.Handler) http.Handler {
	allowed := make(map[user.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetUserRole(r)
			if !ok {
				utils.WriteError(w, errors.NotAuthenticated("Authentication required"))
				return
			}

			if !allowed[role] {
				AddLogField(w, "redirected_to", user.SignInLanding(role))
				utils.WriteRedirect(w, user.SignInLanding(role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
