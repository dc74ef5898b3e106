package v1

import (
	"fmt"
	"net/http"

	"secured_start_service/internal/domain/crypto"

	"github.com/gin-gonic/gin"
)

// AsymmetricHandler defines the interface for handling RSA-OAEP encryption operations
type AsymmetricHandler interface {
	GenerateKeyPair(ctx *gin.Context)
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
}

type asymmetricHandler struct {
	asymmetricCipher crypto.AsymmetricCipher
}

// NewAsymmetricHandler creates a new AsymmetricHandler
func NewAsymmetricHandler(asymmetricCipher crypto.AsymmetricCipher) AsymmetricHandler {
	return &asymmetricHandler{
		asymmetricCipher: asymmetricCipher,
	}
}

// GenerateKeyPair handles the POST request to generate an RSA-4096 encryption key pair
// @Summary Generate an RSA-4096 encryption key pair
// @Description Generate a fresh key pair and return both halves as PEM text.
// @Tags Asymmetric
// @Produce json
// @Success 200 {object} KeyPairResponse
// @Failure 400 {object} ErrorResponse
// @Router /asymmetric/keypair [post]
func (handler *asymmetricHandler) GenerateKeyPair(ctx *gin.Context) {
	keyPair, err := handler.asymmetricCipher.GenerateKeyPair()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("key generation failed: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, KeyPairResponse{
		PublicKey:  keyPair.PublicKeyPEM,
		PrivateKey: keyPair.PrivateKeyPEM,
	})
}

// Encrypt handles the POST request to encrypt a message with RSA-OAEP
// @Summary Encrypt a message with RSA-OAEP
// @Description Encrypt a message under the recipient's public key. Messages above 446 bytes are rejected.
// @Tags Asymmetric
// @Accept json
// @Produce json
// @Param requestBody body AsymmetricEncryptRequest true "Message and public key PEM"
// @Success 200 {object} AsymmetricEncryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /asymmetric/encrypt [post]
func (handler *asymmetricHandler) Encrypt(ctx *gin.Context) {
	var request AsymmetricEncryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request body: %v", err.Error())})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	ciphertext, err := handler.asymmetricCipher.Encrypt([]byte(request.Message), request.PublicKey)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("encryption failed: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, AsymmetricEncryptResponse{Ciphertext: ciphertext})
}

// Decrypt handles the POST request to decrypt an RSA-OAEP ciphertext
// @Summary Decrypt an RSA-OAEP ciphertext
// @Description Decrypt a base64 ciphertext with the matching private key.
// @Tags Asymmetric
// @Accept json
// @Produce json
// @Param requestBody body AsymmetricDecryptRequest true "Ciphertext and private key PEM"
// @Success 200 {object} AsymmetricDecryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /asymmetric/decrypt [post]
func (handler *asymmetricHandler) Decrypt(ctx *gin.Context) {
	var request AsymmetricDecryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request body: %v", err.Error())})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	message, err := handler.asymmetricCipher.Decrypt(request.Ciphertext, request.PrivateKey)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("decryption failed: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, AsymmetricDecryptResponse{Message: string(message)})
}
