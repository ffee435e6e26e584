// Command keystore manages a directory of encrypted wallet key files.
//
// Usage:
//
//	keystore create --path "m/44'/60'/0'/0/0"
//	keystore list --output json
//	keystore serve --port 8080
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/AlexZinkM/keystore/internal/config"
	"github.com/AlexZinkM/keystore/internal/crypto"
	"github.com/AlexZinkM/keystore/keystore"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// options are the persistent flags shared by every subcommand
type options struct {
	dir      string
	lightKDF bool
	output   string
}

// Password and secret prompts; tests replace them
var (
	defaultReadPassword    = config.ReadPassword
	defaultReadNewPassword = config.ReadNewPassword

	readPassword    = defaultReadPassword
	readNewPassword = defaultReadNewPassword
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "keystore",
		Short:         "Encrypted wallet keystore",
		Long:          "A command-line tool for creating, importing, exporting and managing password-encrypted wallet key files.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Init(); err != nil {
				return err
			}
			setupLogger(config.Get().LogLevel)

			if !cmd.Flags().Changed("dir") {
				opts.dir = config.GetKeystoreDir()
			}
			if !cmd.Flags().Changed("light-kdf") {
				opts.lightKDF = config.Get().LightKDF
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.dir, "dir", "d", "keystore", "Key directory (default from KEYSTORE_DIR)")
	cmd.PersistentFlags().BoolVar(&opts.lightKDF, "light-kdf", false, "Use cheap scrypt parameters (development only)")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "plain", "Output format: plain|json")

	cmd.AddCommand(
		newListCmd(opts),
		newCreateCmd(opts),
		newImportCmd(opts),
		newExportCmd(opts),
		newAccountsCmd(opts),
		newPasswordCmd(opts),
		newDeleteCmd(opts),
		newQRCmd(opts),
		newServeCmd(opts),
	)

	return cmd
}

// setupLogger writes human-readable logs to stderr at level
func setupLogger(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
}

// openStore loads the key directory with the configured engine
func (o *options) openStore() (*keystore.Store, error) {
	var engineOpts []crypto.Option
	if o.lightKDF {
		log.Warn().Msg("Using light scrypt parameters")
		engineOpts = append(engineOpts, crypto.WithLightScrypt())
	}
	return keystore.Load(o.dir, crypto.NewEngine(engineOpts...))
}

// resolveWallet finds a wallet by ID or by one of its account addresses
func resolveWallet(s *keystore.Store, ref string) (*keystore.Wallet, error) {
	if w, err := s.Wallet(ref); err == nil {
		return w, nil
	}
	w, _, err := s.FindByAddress(ref)
	return w, err
}
