package v1

import (
	"secured_start_service/internal/domain/crypto"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	symmetricCipher crypto.SymmetricCipher,
	asymmetricCipher crypto.AsymmetricCipher,
	signatureService crypto.SignatureService) {

	v1 := r.Group(BasePath) // lookup in version file

	// Symmetric Routes
	symmetricHandler := NewSymmetricHandler(symmetricCipher)
	v1.POST("/symmetric/encrypt", symmetricHandler.Encrypt)
	v1.POST("/symmetric/decrypt", symmetricHandler.Decrypt)

	// Asymmetric Routes
	asymmetricHandler := NewAsymmetricHandler(asymmetricCipher)
	v1.POST("/asymmetric/keypair", asymmetricHandler.GenerateKeyPair)
	v1.POST("/asymmetric/encrypt", asymmetricHandler.Encrypt)
	v1.POST("/asymmetric/decrypt", asymmetricHandler.Decrypt)

	// Signature Routes
	signatureHandler := NewSignatureHandler(signatureService)
	v1.POST("/signature/keypair", signatureHandler.GenerateKeyPair)
	v1.POST("/signature/sign", signatureHandler.Sign)
	v1.POST("/signature/verify", signatureHandler.Verify)
	v1.POST("/signature/digest", signatureHandler.Digest)
}
