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

// AsymmetricCommandHandler encapsulates logic for handling RSA-OAEP operations via CLI.
type AsymmetricCommandHandler struct {
	asymmetricCipher crypto.AsymmetricCipher
	logger           logger.Logger
}

// NewAsymmetricCommandHandler initializes and returns an AsymmetricCommandHandler instance with
// configured logger and asymmetric cipher.
func NewAsymmetricCommandHandler() (*AsymmetricCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	asymmetricCipher, err := app.NewAsymmetricCipher(rsaProcessor, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create asymmetric cipher: %w", err)
	}

	return &AsymmetricCommandHandler{
		asymmetricCipher: asymmetricCipher,
		logger:           loggerInstance,
	}, nil
}

// GenerateEncryptionKeysCmd generates an RSA key pair and persists both halves in a selected directory
func (commandHandler *AsymmetricCommandHandler) GenerateEncryptionKeysCmd(cmd *cobra.Command, _ []string) {
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		commandHandler.logger.Error("invalid key-dir flag ", err)
		return
	}

	uniqueID := uuid.New()

	keyPair, err := commandHandler.asymmetricCipher.GenerateKeyPair()
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	publicKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-public-key.pem", uniqueID))
	err = os.WriteFile(publicKeyFilePath, []byte(keyPair.PublicKeyPEM), 0600)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	privateKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-private-key.pem", uniqueID))
	err = os.WriteFile(privateKeyFilePath, []byte(keyPair.PrivateKeyPEM), 0600)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Public key saved to ", publicKeyFilePath)
	commandHandler.logger.Info("Private key saved to ", privateKeyFilePath)
}

// EncryptAsymmetricCmd encrypts a message with a public key read from a PEM file
func (commandHandler *AsymmetricCommandHandler) EncryptAsymmetricCmd(cmd *cobra.Command, _ []string) {
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		commandHandler.logger.Error("invalid message flag ", err)
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

	ciphertext, err := commandHandler.asymmetricCipher.Encrypt([]byte(message), string(publicKeyPEM))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Printf("ciphertext: %s\n", ciphertext)
}

// DecryptAsymmetricCmd decrypts a ciphertext with a private key read from a PEM file
func (commandHandler *AsymmetricCommandHandler) DecryptAsymmetricCmd(cmd *cobra.Command, _ []string) {
	ciphertext, err := cmd.Flags().GetString("ciphertext")
	if err != nil {
		commandHandler.logger.Error("invalid ciphertext flag ", err)
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

	message, err := commandHandler.asymmetricCipher.Decrypt(ciphertext, string(privateKeyPEM))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Printf("message: %s\n", message)
}

// InitAsymmetricCommands registers RSA-OAEP related commands
func InitAsymmetricCommands(rootCmd *cobra.Command) error {
	handler, err := NewAsymmetricCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create asymmetric command handler %w", err)
	}

	var generateEncryptionKeysCmd = &cobra.Command{
		Use:   "generate-encryption-keys",
		Short: "Generate an RSA-4096 encryption key pair",
		Run:   handler.GenerateEncryptionKeysCmd,
	}
	generateEncryptionKeysCmd.Flags().StringP("key-dir", "", "", "Directory to store the key pair")
	rootCmd.AddCommand(generateEncryptionKeysCmd)

	var encryptAsymmetricCmd = &cobra.Command{
		Use:   "encrypt-asymmetric",
		Short: "Encrypt a message with RSA-OAEP",
		Run:   handler.EncryptAsymmetricCmd,
	}
	encryptAsymmetricCmd.Flags().StringP("message", "", "", "Message to encrypt (at most 446 bytes)")
	encryptAsymmetricCmd.Flags().StringP("public-key", "", "", "Path to the public key PEM file")
	rootCmd.AddCommand(encryptAsymmetricCmd)

	var decryptAsymmetricCmd = &cobra.Command{
		Use:   "decrypt-asymmetric",
		Short: "Decrypt an RSA-OAEP ciphertext",
		Run:   handler.DecryptAsymmetricCmd,
	}
	decryptAsymmetricCmd.Flags().StringP("ciphertext", "", "", "Base64 ciphertext produced by encrypt-asymmetric")
	decryptAsymmetricCmd.Flags().StringP("private-key", "", "", "Path to the private key PEM file")
	rootCmd.AddCommand(decryptAsymmetricCmd)

	return nil
}
