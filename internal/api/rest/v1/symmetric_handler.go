package v1

import (
	"fmt"
	"net/http"

	"secured_start_service/internal/domain/crypto"

	"github.com/gin-gonic/gin"
)

// SymmetricHandler defines the interface for handling symmetric encryption operations
type SymmetricHandler interface {
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
}

type symmetricHandler struct {
	symmetricCipher crypto.SymmetricCipher
}

// NewSymmetricHandler creates a new SymmetricHandler
func NewSymmetricHandler(symmetricCipher crypto.SymmetricCipher) SymmetricHandler {
	return &symmetricHandler{
		symmetricCipher: symmetricCipher,
	}
}

// Encrypt handles the POST request to encrypt a message with AES-GCM
// @Summary Encrypt a message with AES-GCM
// @Description Encrypt a message under a random key, or under a key derived from the supplied passphrase.
// @Tags Symmetric
// @Accept json
// @Produce json
// @Param requestBody body SymmetricEncryptRequest true "Message and optional passphrase"
// @Success 200 {object} SymmetricEncryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /symmetric/encrypt [post]
func (handler *symmetricHandler) Encrypt(ctx *gin.Context) {
	var request SymmetricEncryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request body: %v", err.Error())})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	var result *crypto.SymmetricEncryptResult
	var err error
	if request.Passphrase != "" {
		result, err = handler.symmetricCipher.EncryptWithPassphrase([]byte(request.Message), request.Passphrase)
	} else {
		result, err = handler.symmetricCipher.Encrypt([]byte(request.Message))
	}
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("encryption failed: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, SymmetricEncryptResponse{
		Bundle: result.Bundle,
		Key:    result.Key,
	})
}

// Decrypt handles the POST request to decrypt an AES-GCM bundle
// @Summary Decrypt an AES-GCM bundle
// @Description Authenticate and decrypt a bundle with a base64 key or a passphrase. Tampering and wrong keys fail identically.
// @Tags Symmetric
// @Accept json
// @Produce json
// @Param requestBody body SymmetricDecryptRequest true "Bundle and key material"
// @Success 200 {object} SymmetricDecryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /symmetric/decrypt [post]
func (handler *symmetricHandler) Decrypt(ctx *gin.Context) {
	var request SymmetricDecryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request body: %v", err.Error())})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	message, err := handler.symmetricCipher.Decrypt(request.Bundle, request.KeyMaterial, request.IsPassphrase)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("decryption failed: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, SymmetricDecryptResponse{Message: string(message)})
}
