package v1

import (
	"fmt"
	"net/http"

	"secured_start_service/internal/domain/crypto"

	"github.com/gin-gonic/gin"
)

// SignatureHandler defines the interface for handling RSA-PSS signature operations
type SignatureHandler interface {
	GenerateKeyPair(ctx *gin.Context)
	Sign(ctx *gin.Context)
	Verify(ctx *gin.Context)
	Digest(ctx *gin.Context)
}

type signatureHandler struct {
	signatureService crypto.SignatureService
}

// NewSignatureHandler creates a new SignatureHandler
func NewSignatureHandler(signatureService crypto.SignatureService) SignatureHandler {
	return &signatureHandler{
		signatureService: signatureService,
	}
}

// GenerateKeyPair handles the POST request to generate an RSA-4096 signing key pair
// @Summary Generate an RSA-4096 signing key pair
// @Description Generate a fresh key pair for signing and return both halves as PEM text.
// @Tags Signature
// @Produce json
// @Success 200 {object} KeyPairResponse
// @Failure 400 {object} ErrorResponse
// @Router /signature/keypair [post]
func (handler *signatureHandler) GenerateKeyPair(ctx *gin.Context) {
	keyPair, err := handler.signatureService.GenerateKeyPair()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("key generation failed: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, KeyPairResponse{
		PublicKey:  keyPair.PublicKeyPEM,
		PrivateKey: keyPair.PrivateKeyPEM,
	})
}

// Sign handles the POST request to sign a message with RSA-PSS
// @Summary Sign a message with RSA-PSS
// @Description Sign the SHA-256 digest of a message and return the signature together with the digest.
// @Tags Signature
// @Accept json
// @Produce json
// @Param requestBody body SignRequest true "Message and private key PEM"
// @Success 200 {object} SignResponse
// @Failure 400 {object} ErrorResponse
// @Router /signature/sign [post]
func (handler *signatureHandler) Sign(ctx *gin.Context) {
	var request SignRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request body: %v", err.Error())})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	result, err := handler.signatureService.Sign([]byte(request.Message), request.PrivateKey)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("signing failed: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, SignResponse{
		Signature: result.Signature,
		Digest:    result.Digest,
	})
}

// Verify handles the POST request to verify an RSA-PSS signature.
// An invalid signature is a regular outcome, not an error, so the
// response is always 200 with the verdict in the body.
// @Summary Verify an RSA-PSS signature
// @Description Verify a signature over a message. Returns valid=false for any mismatch or malformed input.
// @Tags Signature
// @Accept json
// @Produce json
// @Param requestBody body VerifyRequest true "Message, signature and public key PEM"
// @Success 200 {object} VerifyResponse
// @Failure 400 {object} ErrorResponse
// @Router /signature/verify [post]
func (handler *signatureHandler) Verify(ctx *gin.Context) {
	var request VerifyRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request body: %v", err.Error())})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	result := handler.signatureService.Verify([]byte(request.Message), request.Signature, request.PublicKey)

	ctx.JSON(http.StatusOK, VerifyResponse{
		Valid:  result.Valid,
		Digest: result.Digest,
	})
}

// Digest handles the POST request to compute the SHA-256 digest of a message
// @Summary Compute the SHA-256 digest of a message
// @Description Return the lowercase hex SHA-256 digest of the message.
// @Tags Signature
// @Accept json
// @Produce json
// @Param requestBody body DigestRequest true "Message"
// @Success 200 {object} DigestResponse
// @Failure 400 {object} ErrorResponse
// @Router /signature/digest [post]
func (handler *signatureHandler) Digest(ctx *gin.Context) {
	var request DigestRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request body: %v", err.Error())})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, DigestResponse{Digest: handler.signatureService.Digest([]byte(request.Message))})
}
