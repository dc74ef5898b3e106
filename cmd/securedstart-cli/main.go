// Package main is the entry point for the securedstart-cli application.
// It initializes the root command and registers the symmetric, asymmetric
// and signature sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "secured_start_service/cmd/securedstart-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "securedstart-cli",
		Short: "Educational cryptography sandbox CLI",
		Long: `securedstart-cli is a command-line playground for exploring cryptography.
Supports AES-256-GCM encryption/decryption with random or passphrase-derived keys,
RSA-4096 OAEP encryption, and RSA-PSS signing with SHA-256 digests.

The passphrase mode derives keys with a single unsalted SHA-256 and exists for
demonstration only. Do not protect real data with this tool.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitSymmetricCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize symmetric commands: %w", err)
	}

	if err := commands.InitAsymmetricCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize asymmetric commands: %w", err)
	}

	if err := commands.InitSignatureCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize signature commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
