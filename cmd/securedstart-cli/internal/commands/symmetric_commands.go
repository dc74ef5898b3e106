package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"secured_start_service/internal/app"
	"secured_start_service/internal/domain/crypto"
	"secured_start_service/internal/infrastructure/cryptography"
	"secured_start_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// SymmetricCommandHandler encapsulates logic for handling AES-GCM operations via CLI.
type SymmetricCommandHandler struct {
	symmetricCipher crypto.SymmetricCipher
	logger          logger.Logger
}

// NewSymmetricCommandHandler initializes and returns a SymmetricCommandHandler instance with
// configured logger and symmetric cipher.
func NewSymmetricCommandHandler() (*SymmetricCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	aesProcessor, err := cryptography.NewAESProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES processor: %w", err)
	}

	symmetricCipher, err := app.NewSymmetricCipher(aesProcessor, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create symmetric cipher: %w", err)
	}

	return &SymmetricCommandHandler{
		symmetricCipher: symmetricCipher,
		logger:          loggerInstance,
	}, nil
}

// EncryptSymmetricCmd encrypts a message and prints the bundle and the base64 key
func (commandHandler *SymmetricCommandHandler) EncryptSymmetricCmd(cmd *cobra.Command, _ []string) {
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		commandHandler.logger.Error("invalid message flag ", err)
		return
	}
	passphrase, err := cmd.Flags().GetString("passphrase")
	if err != nil {
		commandHandler.logger.Error("invalid passphrase flag ", err)
		return
	}

	var result *crypto.SymmetricEncryptResult
	if passphrase != "" {
		result, err = commandHandler.symmetricCipher.EncryptWithPassphrase([]byte(message), passphrase)
	} else {
		result, err = commandHandler.symmetricCipher.Encrypt([]byte(message))
	}
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Printf("bundle: %s\n", result.Bundle)
	fmt.Printf("key: %s\n", result.Key)
}

// DecryptSymmetricCmd decrypts a bundle with a base64 key or a passphrase
func (commandHandler *SymmetricCommandHandler) DecryptSymmetricCmd(cmd *cobra.Command, _ []string) {
	bundle, err := cmd.Flags().GetString("bundle")
	if err != nil {
		commandHandler.logger.Error("invalid bundle flag ", err)
		return
	}
	key, err := cmd.Flags().GetString("key")
	if err != nil {
		commandHandler.logger.Error("invalid key flag ", err)
		return
	}
	passphrase, err := cmd.Flags().GetString("passphrase")
	if err != nil {
		commandHandler.logger.Error("invalid passphrase flag ", err)
		return
	}

	keyMaterial := key
	isPassphrase := false
	if passphrase != "" {
		keyMaterial = passphrase
		isPassphrase = true
	}

	message, err := commandHandler.symmetricCipher.Decrypt(bundle, keyMaterial, isPassphrase)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Printf("message: %s\n", message)
}

// EncryptSymmetricFileCmd encrypts a file and writes the bundle next to the key material
func (commandHandler *SymmetricCommandHandler) EncryptSymmetricFileCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag ", err)
		return
	}
	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag ", err)
		return
	}

	plainText, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	result, err := commandHandler.symmetricCipher.Encrypt(plainText)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	err = os.WriteFile(outputFilePath, []byte(result.Bundle), 0600)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	err = os.WriteFile(outputFilePath+".key", []byte(result.Key), 0600)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Encrypted bundle saved to ", outputFilePath)
	commandHandler.logger.Info("Key saved to ", outputFilePath+".key")
}

// InitSymmetricCommands registers AES-GCM related commands
func InitSymmetricCommands(rootCmd *cobra.Command) error {
	handler, err := NewSymmetricCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create symmetric command handler %w", err)
	}

	var encryptSymmetricCmd = &cobra.Command{
		Use:   "encrypt-symmetric",
		Short: "Encrypt a message with AES-256-GCM",
		Run:   handler.EncryptSymmetricCmd,
	}
	encryptSymmetricCmd.Flags().StringP("message", "", "", "Message to encrypt")
	encryptSymmetricCmd.Flags().StringP("passphrase", "", "", "Optional passphrase to derive the key from")
	rootCmd.AddCommand(encryptSymmetricCmd)

	var decryptSymmetricCmd = &cobra.Command{
		Use:   "decrypt-symmetric",
		Short: "Decrypt an AES-256-GCM bundle",
		Run:   handler.DecryptSymmetricCmd,
	}
	decryptSymmetricCmd.Flags().StringP("bundle", "", "", "Bundle produced by encrypt-symmetric")
	decryptSymmetricCmd.Flags().StringP("key", "", "", "Base64 key returned by encrypt-symmetric")
	decryptSymmetricCmd.Flags().StringP("passphrase", "", "", "Passphrase used during encryption")
	rootCmd.AddCommand(decryptSymmetricCmd)

	var encryptSymmetricFileCmd = &cobra.Command{
		Use:   "encrypt-symmetric-file",
		Short: "Encrypt a file with AES-256-GCM",
		Run:   handler.EncryptSymmetricFileCmd,
	}
	encryptSymmetricFileCmd.Flags().StringP("input-file", "", "", "Path to input file that needs to be encrypted")
	encryptSymmetricFileCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file")
	rootCmd.AddCommand(encryptSymmetricFileCmd)

	return nil
}
