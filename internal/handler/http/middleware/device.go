package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/easycodingbd/hazira-backend-go/internal/handler/http/response"
)

// DeviceKeyRequired guards the unauthenticated terminal webhook with a
// shared key carried in the X-Device-Key header. An empty configured
// key disables the endpoint entirely.
func DeviceKeyRequired(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			if key == "" {
				response.Unauthorized(w, "Push ingestion is not enabled")
				return
			}

			presented := r.Header.Get("X-Device-Key")
			if subtle.ConstantTimeCompare([]byte(presented), []byte(key)) != 1 {
				response.Unauthorized(w, "Invalid device key")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
