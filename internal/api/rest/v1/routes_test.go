//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	mockSymmetricCipher := new(MockSymmetricCipher)
	mockAsymmetricCipher := new(MockAsymmetricCipher)
	mockSignatureService := new(MockSignatureService)

	gin.SetMode(gin.TestMode)
	r := gin.Default()

	SetupRoutes(r, mockSymmetricCipher, mockAsymmetricCipher, mockSignatureService)

	// Verify routes are registered by testing they respond (even with errors)
	tests := []struct {
		method string
		url    string
	}{
		{"POST", "/api/v1/sandbox/symmetric/encrypt"},
		{"POST", "/api/v1/sandbox/symmetric/decrypt"},
		{"POST", "/api/v1/sandbox/asymmetric/encrypt"},
		{"POST", "/api/v1/sandbox/asymmetric/decrypt"},
		{"POST", "/api/v1/sandbox/signature/sign"},
		{"POST", "/api/v1/sandbox/signature/verify"},
		{"POST", "/api/v1/sandbox/signature/digest"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			// Just verify route exists (status != 404)
			assert.NotEqual(t, http.StatusNotFound, w.Code, "Route should be registered")
		})
	}
}
