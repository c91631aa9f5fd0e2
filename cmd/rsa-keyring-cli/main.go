// Package main is the entry point for the rsa-keyring-cli application.
// It registers the key commands on the root command and executes it.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/MGTheTrain/rsa-keyring/cmd/rsa-keyring-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "rsa-keyring-cli",
		Short: "Textbook RSA key tool",
		Long: `rsa-keyring-cli generates textbook RSA key pairs and applies them to values.

Keys are stored as "hexmodulus,hexexponent" text files. Applying a key computes
value^exponent mod modulus; hex values answer in hex, integers answer in decimal.`,
		SilenceUsage: true,
	}

	if err := commands.InitRSACommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize RSA commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
