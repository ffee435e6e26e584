package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlexZinkM/keystore/internal/model"
	"github.com/AlexZinkM/keystore/keystore"

	"github.com/spf13/cobra"
)

func newImportCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a private key, an encrypted key record or a mnemonic",
	}

	cmd.AddCommand(
		newImportKeyCmd(opts),
		newImportJSONCmd(opts),
		newImportMnemonicCmd(opts),
	)
	return cmd
}

func newImportKeyCmd(opts *options) *cobra.Command {
	var chain string

	cmd := &cobra.Command{
		Use:     "key",
		Short:   "Import a hex encoded private key (read without echo)",
		Example: `  keystore import key --chain bitcoin`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := resolveChain(chain)
			if err != nil {
				return err
			}

			s, err := opts.openStore()
			if err != nil {
				return err
			}

			secret, err := readPassword("Private key (hex): ")
			if err != nil {
				return err
			}
			defer clear(secret)

			key := make([]byte, hex.DecodedLen(len(secret)))
			defer clear(key)
			n, err := hex.Decode(key, []byte(strings.TrimPrefix(strings.TrimSpace(string(secret)), "0x")))
			if err != nil {
				return fmt.Errorf("%w: not hex", model.ErrInvalidKey)
			}

			password, err := readNewPassword("New wallet password: ")
			if err != nil {
				return err
			}
			defer clear(password)

			w, err := s.ImportPrivateKey(key[:n], password, c)
			if err != nil {
				return fmt.Errorf("failed to import private key: %w", err)
			}
			return printImported(cmd, opts, w)
		},
	}

	cmd.Flags().StringVar(&chain, "chain", "", "Chain of the key (ethereum|bitcoin|solana)")
	return cmd
}

func newImportJSONCmd(opts *options) *cobra.Command {
	var chain string

	cmd := &cobra.Command{
		Use:     "json <file>",
		Short:   "Import a single-key record exported by a keystore",
		Example: `  keystore import json exported.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var c model.Chain
			if chain != "" {
				var err error
				if c, err = model.ParseChain(chain); err != nil {
					return err
				}
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read key record: %w", err)
			}

			s, err := opts.openStore()
			if err != nil {
				return err
			}

			password, err := readPassword("Record password: ")
			if err != nil {
				return err
			}
			defer clear(password)

			newPassword, err := readNewPassword("New wallet password: ")
			if err != nil {
				return err
			}
			defer clear(newPassword)

			w, err := s.ImportJSON(data, password, newPassword, c)
			if err != nil {
				return fmt.Errorf("failed to import key record: %w", err)
			}
			return printImported(cmd, opts, w)
		},
	}

	cmd.Flags().StringVar(&chain, "chain", "", "Override the chain stored in the record")
	return cmd
}

func newImportMnemonicCmd(opts *options) *cobra.Command {
	var (
		path       string
		chain      string
		passphrase bool
	)

	cmd := &cobra.Command{
		Use:   "mnemonic",
		Short: "Import a BIP39 mnemonic (read without echo) as an HD wallet",
		Example: `  keystore import mnemonic
  keystore import mnemonic --path "m/44'/501'/0'/0'" --passphrase`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := resolveChain(chain)
			if err != nil {
				return err
			}
			paths, err := pathsOrDefault(nonEmpty(path), c)
			if err != nil {
				return err
			}

			s, err := opts.openStore()
			if err != nil {
				return err
			}

			mnemonic, err := readPassword("Mnemonic: ")
			if err != nil {
				return err
			}
			defer clear(mnemonic)

			var words []byte
			if passphrase {
				if words, err = readPassword("Mnemonic passphrase: "); err != nil {
					return err
				}
				defer clear(words)
			}

			password, err := readNewPassword("New wallet password: ")
			if err != nil {
				return err
			}
			defer clear(password)

			w, err := s.ImportMnemonic(string(mnemonic), string(words), password, paths[0])
			if err != nil {
				return fmt.Errorf("failed to import mnemonic: %w", err)
			}
			return printImported(cmd, opts, w)
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Derivation path of the first account (default: the chain's first BIP44 account)")
	cmd.Flags().StringVar(&chain, "chain", "", "Chain of the default path")
	cmd.Flags().BoolVar(&passphrase, "passphrase", false, "Prompt for a BIP39 passphrase")
	return cmd
}

func printImported(cmd *cobra.Command, opts *options, w *keystore.Wallet) error {
	wallet := describeWallet(w)
	return opts.print(cmd, wallet, func(out io.Writer) { printWallet(out, wallet) })
}

func nonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}
