package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/payadjust/payadjust-backend-go/internal/domain/auth"
	"github.com/payadjust/payadjust-backend-go/internal/handler/http/response"
	"github.com/payadjust/payadjust-backend-go/internal/pkg/jwt"
)

// AuthRequired rejects requests that do not carry a valid, unrevoked access
// token. Refresh tokens are only accepted by the refresh endpoint.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if jwtService.IsTokenRevoked(jwtauth.TokenFromHeader(r)) {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
