package middleware

import (
	"net/http"

	"github.com/easycodingbd/hazira-backend-go/internal/handler/http/response"
	"github.com/easycodingbd/hazira-backend-go/internal/pkg/jwt"
)

// CompanyRequired rejects tokens that carry no tenant. Every route
// behind it can rely on a non-empty company claim.
func CompanyRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if jwt.CompanyIDFromContext(r.Context()) == "" {
			response.Forbidden(w, "Token is not bound to a company")
			return
		}
		next.ServeHTTP(w, r)
	})
}
