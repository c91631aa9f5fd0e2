package commands

import (
	"fmt"
	"io"
	"math/big"
	"path/filepath"

	"github.com/MGTheTrain/rsa-keyring/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-keyring/internal/domain/cryptoerr"
	"github.com/MGTheTrain/rsa-keyring/internal/domain/rsakey"
	"github.com/MGTheTrain/rsa-keyring/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/rsa-keyring/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// Value types accepted by the apply command
const (
	ValueTypeHex     = "hex"
	ValueTypeInteger = "integer"
)

// RSACommandHandler encapsulates logic for handling RSA key operations via CLI.
type RSACommandHandler struct {
	rsaProcessor cryptoalg.RSAKeyProcessor
	logger       logger.Logger
}

// NewRSACommandHandler initializes a new RSACommandHandler logging to logOut and an RSA key processor.
func NewRSACommandHandler(logOut io.Writer) (*RSACommandHandler, error) {
	loggerInstance, err := setupLogger(logOut)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAKeyProcessor(loggerInstance, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	return &RSACommandHandler{
		rsaProcessor: rsaProcessor,
		logger:       loggerInstance,
	}, nil
}

// CreateKeyPairCmd generates a key pair and writes both halves into the key directory
func (commandHandler *RSACommandHandler) CreateKeyPairCmd(cmd *cobra.Command, _ []string) error {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		return fmt.Errorf("invalid key-size flag: %w", err)
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		return fmt.Errorf("invalid key-dir flag: %w", err)
	}

	pair, err := commandHandler.rsaProcessor.CreateKeyPair(keySize)
	if err != nil {
		return err
	}

	keyPairID := uuid.NewString()
	publicKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-public-key.txt", keyPairID))
	privateKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-private-key.txt", keyPairID))

	if err := commandHandler.rsaProcessor.SaveKeyToFile(pair.Public, publicKeyFilePath); err != nil {
		return err
	}
	if err := commandHandler.rsaProcessor.SaveKeyToFile(pair.Private, privateKeyFilePath); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), publicKeyFilePath)
	fmt.Fprintln(cmd.OutOrStdout(), privateKeyFilePath)
	return nil
}

// ApplyCmd applies a key to a hex or integer value and prints the result in the same shape
func (commandHandler *RSACommandHandler) ApplyCmd(cmd *cobra.Command, _ []string) error {
	key, err := commandHandler.keyFromFlags(cmd)
	if err != nil {
		return err
	}

	rawValue, err := cmd.Flags().GetString("value")
	if err != nil {
		return fmt.Errorf("invalid value flag: %w", err)
	}
	valueType, err := cmd.Flags().GetString("value-type")
	if err != nil {
		return fmt.Errorf("invalid value-type flag: %w", err)
	}

	var value rsakey.Value
	switch valueType {
	case ValueTypeHex:
		value = rsakey.HexValue(rawValue)
	case ValueTypeInteger:
		i, ok := new(big.Int).SetString(rawValue, 10)
		if !ok {
			return fmt.Errorf("value %q is not a decimal integer: %w", rawValue, cryptoerr.ErrUnsupportedValueType)
		}
		value = rsakey.IntegerValue(i)
	default:
		return fmt.Errorf("value type %q: %w", valueType, cryptoerr.ErrUnsupportedValueType)
	}

	result, err := commandHandler.rsaProcessor.Apply(key, value)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.String())
	return nil
}

// DescribeKeyCmd prints the display form and modulus size of a key
func (commandHandler *RSACommandHandler) DescribeKeyCmd(cmd *cobra.Command, _ []string) error {
	key, err := commandHandler.keyFromFlags(cmd)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%#v\n", key)
	fmt.Fprintf(cmd.OutOrStdout(), "modulus bits: %d\n", key.Bits())
	return nil
}

// keyFromFlags reads the key from --key-file, or parses --key when no file is given.
func (commandHandler *RSACommandHandler) keyFromFlags(cmd *cobra.Command) (rsakey.RSAKey, error) {
	keyFile, err := cmd.Flags().GetString("key-file")
	if err != nil {
		return rsakey.RSAKey{}, fmt.Errorf("invalid key-file flag: %w", err)
	}
	if keyFile != "" {
		return commandHandler.rsaProcessor.ReadKey(keyFile)
	}

	keyText, err := cmd.Flags().GetString("key")
	if err != nil {
		return rsakey.RSAKey{}, fmt.Errorf("invalid key flag: %w", err)
	}
	if keyText == "" {
		return rsakey.RSAKey{}, fmt.Errorf("one of --key-file or --key is required")
	}
	return commandHandler.rsaProcessor.ParseKey(keyText)
}

// InitRSACommands registers RSA key commands
func InitRSACommands(rootCmd *cobra.Command) error {
	handler, err := NewRSACommandHandler(rootCmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to create RSA command handler %w", err)
	}

	var createKeyPairCmd = &cobra.Command{
		Use:   "create-key-pair",
		Short: "Generate an RSA key pair",
		RunE:  handler.CreateKeyPairCmd,
	}
	createKeyPairCmd.Flags().IntP("key-size", "", 2048, "Modulus size in bits, a power of two between 16 and 16384")
	createKeyPairCmd.Flags().StringP("key-dir", "", ".", "Directory to store the key files")
	rootCmd.AddCommand(createKeyPairCmd)

	var applyCmd = &cobra.Command{
		Use:   "apply",
		Short: "Apply an RSA key to a value",
		RunE:  handler.ApplyCmd,
	}
	applyCmd.Flags().StringP("key-file", "", "", "Path to a key file")
	applyCmd.Flags().StringP("key", "", "", "Key as \"hexmodulus,hexexponent\"")
	applyCmd.Flags().StringP("value", "", "", "Value to transform")
	applyCmd.Flags().StringP("value-type", "", ValueTypeHex, "Value type: hex or integer")
	_ = applyCmd.MarkFlagRequired("value")
	rootCmd.AddCommand(applyCmd)

	var describeKeyCmd = &cobra.Command{
		Use:   "describe-key",
		Short: "Print a key and its modulus size",
		RunE:  handler.DescribeKeyCmd,
	}
	describeKeyCmd.Flags().StringP("key-file", "", "", "Path to a key file")
	describeKeyCmd.Flags().StringP("key", "", "", "Key as \"hexmodulus,hexexponent\"")
	rootCmd.AddCommand(describeKeyCmd)

	return nil
}
