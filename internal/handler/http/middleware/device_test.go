package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeviceKeyRequired(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	call := func(configuredKey, presentedKey string) int {
		req := httptest.NewRequest(http.MethodPost, "/device/zkteco/push/company-1", nil)
		if presentedKey != "" {
			req.Header.Set("X-Device-Key", presentedKey)
		}
		rec := httptest.NewRecorder()
		DeviceKeyRequired(configuredKey)(next).ServeHTTP(rec, req)
		return rec.Code
	}

	t.Run("matching key passes through", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, call("terminal-secret", "terminal-secret"))
	})

	t.Run("missing key is rejected", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, call("terminal-secret", ""))
	})

	t.Run("wrong key is rejected", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, call("terminal-secret", "guess"))
	})

	t.Run("no configured key disables the endpoint", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, call("", "anything"))
	})
}
