//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"secured_start_service/internal/domain/crypto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSymmetricHandler_Encrypt_Success(t *testing.T) {
	mockCipher := new(MockSymmetricCipher)
	handler := NewSymmetricHandler(mockCipher)

	requestBody := `{"message": "attack at dawn"}`

	mockCipher.
		On("Encrypt", []byte("attack at dawn")).
		Return(&crypto.SymmetricEncryptResult{Bundle: "Y3Q=.bm9uY2U=", Key: "a2V5"}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/symmetric/encrypt", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Encrypt(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Y3Q=.bm9uY2U=")
	assert.Contains(t, w.Body.String(), "a2V5")
	mockCipher.AssertExpectations(t)
}

func TestSymmetricHandler_Encrypt_WithPassphrase(t *testing.T) {
	mockCipher := new(MockSymmetricCipher)
	handler := NewSymmetricHandler(mockCipher)

	requestBody := `{"message": "attack at dawn", "passphrase": "secret"}`

	mockCipher.
		On("EncryptWithPassphrase", []byte("attack at dawn"), "secret").
		Return(&crypto.SymmetricEncryptResult{Bundle: "Y3Q=.bm9uY2U=", Key: "a2V5"}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/symmetric/encrypt", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Encrypt(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockCipher.AssertExpectations(t)
	mockCipher.AssertNotCalled(t, "Encrypt", mock.Anything)
}

func TestSymmetricHandler_Encrypt_MissingMessage(t *testing.T) {
	mockCipher := new(MockSymmetricCipher)
	handler := NewSymmetricHandler(mockCipher)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/symmetric/encrypt", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Encrypt(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockCipher.AssertNotCalled(t, "Encrypt", mock.Anything)
}

func TestSymmetricHandler_Decrypt_Success(t *testing.T) {
	mockCipher := new(MockSymmetricCipher)
	handler := NewSymmetricHandler(mockCipher)

	requestBody := `{"bundle": "Y3Q=.bm9uY2U=", "key_material": "a2V5", "is_passphrase": false}`

	mockCipher.
		On("Decrypt", "Y3Q=.bm9uY2U=", "a2V5", false).
		Return([]byte("attack at dawn"), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/symmetric/decrypt", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Decrypt(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "attack at dawn")
	mockCipher.AssertExpectations(t)
}

func TestSymmetricHandler_Decrypt_Failure(t *testing.T) {
	mockCipher := new(MockSymmetricCipher)
	handler := NewSymmetricHandler(mockCipher)

	requestBody := `{"bundle": "Y3Q=.bm9uY2U=", "key_material": "d3Jvbmc=", "is_passphrase": false}`

	mockCipher.
		On("Decrypt", "Y3Q=.bm9uY2U=", "d3Jvbmc=", false).
		Return(nil, errors.New("decryption failed: ciphertext rejected"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/symmetric/decrypt", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Decrypt(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "decryption failed")
	mockCipher.AssertExpectations(t)
}

func TestSymmetricHandler_Decrypt_InvalidBody(t *testing.T) {
	mockCipher := new(MockSymmetricCipher)
	handler := NewSymmetricHandler(mockCipher)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/symmetric/decrypt", bytes.NewBufferString(`not json`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Decrypt(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockCipher.AssertNotCalled(t, "Decrypt", mock.Anything, mock.Anything, mock.Anything)
}
