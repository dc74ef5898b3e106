package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"secured_start_service/internal/app"
	"secured_start_service/internal/domain/crypto"
	"secured_start_service/internal/infrastructure/cryptography"
	"secured_start_service/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// SignatureCommandHandler encapsulates logic for handling RSA-PSS operations via CLI.
type SignatureCommandHandler struct {
	signatureService crypto.SignatureService
	logger           logger.Logger
}

// NewSignatureCommandHandler initializes and returns a SignatureCommandHandler instance with
// configured logger and signature service.
func NewSignatureCommandHandler() (*SignatureCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	signatureService, err := app.NewSignatureService(rsaProcessor, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create signature service: %w", err)
	}

	return &SignatureCommandHandler{
		signatureService: signatureService,
		logger:           loggerInstance,
	}, nil
}

// GenerateSigningKeysCmd generates an RSA key pair for signing and persists both halves
func (commandHandler *SignatureCommandHandler) GenerateSigningKeysCmd(cmd *cobra.Command, _ []string) {
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		commandHandler.logger.Error("invalid key-dir flag ", err)
		return
	}

	uniqueID := uuid.New()

	keyPair, err := commandHandler.signatureService.GenerateKeyPair()
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	publicKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-signing-public-key.pem", uniqueID))
	err = os.WriteFile(publicKeyFilePath, []byte(keyPair.PublicKeyPEM), 0600)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	privateKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-signing-private-key.pem", uniqueID))
	err = os.WriteFile(privateKeyFilePath, []byte(keyPair.PrivateKeyPEM), 0600)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Signing public key saved to ", publicKeyFilePath)
	commandHandler.logger.Info("Signing private key saved to ", privateKeyFilePath)
}

// SignCmd signs a message with a private key read from a PEM file
func (commandHandler *SignatureCommandHandler) SignCmd(cmd *cobra.Command, _ []string) {
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		commandHandler.logger.Error("invalid message flag ", err)
		return
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		commandHandler.logger.Error("invalid private-key flag ", err)
		return
	}

	privateKeyPEM, err := os.ReadFile(filepath.Clean(privateKeyPath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	result, err := commandHandler.signatureService.Sign([]byte(message), string(privateKeyPEM))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Printf("signature: %s\n", result.Signature)
	fmt.Printf("digest: %s\n", result.Digest)
}

// VerifyCmd verifies a signature with a public key read from a PEM file
func (commandHandler *SignatureCommandHandler) VerifyCmd(cmd *cobra.Command, _ []string) {
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		commandHandler.logger.Error("invalid message flag ", err)
		return
	}
	signature, err := cmd.Flags().GetString("signature")
	if err != nil {
		commandHandler.logger.Error("invalid signature flag ", err)
		return
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		commandHandler.logger.Error("invalid public-key flag ", err)
		return
	}

	publicKeyPEM, err := os.ReadFile(filepath.Clean(publicKeyPath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	result := commandHandler.signatureService.Verify([]byte(message), signature, string(publicKeyPEM))

	fmt.Printf("valid: %t\n", result.Valid)
	fmt.Printf("digest: %s\n", result.Digest)
}

// DigestCmd prints the SHA-256 digest of a message
func (commandHandler *SignatureCommandHandler) DigestCmd(cmd *cobra.Command, _ []string) {
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		commandHandler.logger.Error("invalid message flag ", err)
		return
	}

	fmt.Printf("digest: %s\n", commandHandler.signatureService.Digest([]byte(message)))
}

// InitSignatureCommands registers RSA-PSS related commands
func InitSignatureCommands(rootCmd *cobra.Command) error {
	handler, err := NewSignatureCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create signature command handler %w", err)
	}

	var generateSigningKeysCmd = &cobra.Command{
		Use:   "generate-signing-keys",
		Short: "Generate an RSA-4096 signing key pair",
		Run:   handler.GenerateSigningKeysCmd,
	}
	generateSigningKeysCmd.Flags().StringP("key-dir", "", "", "Directory to store the key pair")
	rootCmd.AddCommand(generateSigningKeysCmd)

	var signCmd = &cobra.Command{
		Use:   "sign",
		Short: "Sign a message with RSA-PSS",
		Run:   handler.SignCmd,
	}
	signCmd.Flags().StringP("message", "", "", "Message to sign")
	signCmd.Flags().StringP("private-key", "", "", "Path to the private key PEM file")
	rootCmd.AddCommand(signCmd)

	var verifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "Verify an RSA-PSS signature",
		Run:   handler.VerifyCmd,
	}
	verifyCmd.Flags().StringP("message", "", "", "Message that was signed")
	verifyCmd.Flags().StringP("signature", "", "", "Base64 signature produced by sign")
	verifyCmd.Flags().StringP("public-key", "", "", "Path to the public key PEM file")
	rootCmd.AddCommand(verifyCmd)

	var digestCmd = &cobra.Command{
		Use:   "digest",
		Short: "Compute the SHA-256 digest of a message",
		Run:   handler.DigestCmd,
	}
	digestCmd.Flags().StringP("message", "", "", "Message to hash")
	rootCmd.AddCommand(digestCmd)

	return nil
}
