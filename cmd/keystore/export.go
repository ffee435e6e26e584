package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlexZinkM/keystore/internal/model"

	"github.com/spf13/cobra"
)

func newExportCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a wallet as an encrypted record, a raw private key or a mnemonic",
	}

	cmd.AddCommand(
		newExportJSONCmd(opts),
		newExportKeyCmd(opts),
		newExportMnemonicCmd(opts),
	)
	return cmd
}

func newExportJSONCmd(opts *options) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:     "json <wallet>",
		Short:   "Export the wallet re-encrypted under a new password",
		Example: `  keystore export json 0x2c7536E3605D9C16a7a3D7b1898e529396a65c23 --out backup.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.openStore()
			if err != nil {
				return err
			}
			w, err := resolveWallet(s, args[0])
			if err != nil {
				return err
			}

			password, err := readPassword("Wallet password: ")
			if err != nil {
				return err
			}
			defer clear(password)

			newPassword, err := readNewPassword("Export password: ")
			if err != nil {
				return err
			}
			defer clear(newPassword)

			data, err := s.ExportJSON(w, password, newPassword)
			if err != nil {
				return fmt.Errorf("failed to export wallet: %w", err)
			}

			if out == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			if err := os.WriteFile(out, data, 0600); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %s to %s\n", w.ID(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Write the record to a file instead of stdout")
	return cmd
}

func newExportKeyCmd(opts *options) *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "key <wallet>",
		Short: "Print the raw private key of a single-key wallet or of one HD account",
		Example: `  keystore export key 0x2c7536E3605D9C16a7a3D7b1898e529396a65c23
  keystore export key <hd-wallet> --address 0x9858EfFD232B4033E47d90003D41EC34EcaEda94`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.openStore()
			if err != nil {
				return err
			}
			w, err := resolveWallet(s, args[0])
			if err != nil {
				return err
			}

			if address == "" && w.Kind() != model.KindPrivateKey {
				return errors.New("HD wallet: pass --address to export one account key, or use export mnemonic")
			}

			password, err := readPassword("Wallet password: ")
			if err != nil {
				return err
			}
			defer clear(password)

			var key []byte
			if address != "" {
				account, ok := w.Account(address)
				if !ok {
					return fmt.Errorf("%w: no account %s in %s", model.ErrWalletNotFound, address, w.ID())
				}
				key, err = s.ExportAccountPrivateKey(w, account, password)
			} else {
				key, err = s.ExportPrivateKey(w, password)
			}
			if err != nil {
				return fmt.Errorf("failed to export private key: %w", err)
			}
			defer clear(key)

			encoded := hex.EncodeToString(key)
			resp := struct {
				PrivateKey string `json:"privateKey"`
			}{encoded}
			return opts.print(cmd, resp, func(out io.Writer) { fmt.Fprintln(out, encoded) })
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "Account address (required for HD wallets)")
	return cmd
}

func newExportMnemonicCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "mnemonic <wallet>",
		Short: "Print the mnemonic of an HD wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.openStore()
			if err != nil {
				return err
			}
			w, err := resolveWallet(s, args[0])
			if err != nil {
				return err
			}

			password, err := readPassword("Wallet password: ")
			if err != nil {
				return err
			}
			defer clear(password)

			mnemonic, err := s.ExportMnemonic(w, password)
			if err != nil {
				return fmt.Errorf("failed to export mnemonic: %w", err)
			}

			resp := struct {
				Mnemonic string `json:"mnemonic"`
			}{mnemonic}
			return opts.print(cmd, resp, func(out io.Writer) { fmt.Fprintln(out, mnemonic) })
		},
	}
}
