package main

import (
	"fmt"
	"io"

	"github.com/AlexZinkM/keystore/internal/config"
	"github.com/AlexZinkM/keystore/internal/model"
	"github.com/AlexZinkM/keystore/keystore"

	"github.com/spf13/cobra"
)

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List wallets and their accounts",
		Example: `  keystore list
  keystore list --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.openStore()
			if err != nil {
				return err
			}

			resp := model.WalletsResponse{Wallets: []model.WalletResponse{}}
			for _, w := range s.Wallets() {
				resp.Wallets = append(resp.Wallets, describeWallet(w))
			}

			return opts.print(cmd, resp, func(w io.Writer) {
				if len(resp.Wallets) == 0 {
					fmt.Fprintf(w, "No wallets in %s\n", s.Dir())
					return
				}
				for i, wallet := range resp.Wallets {
					if i > 0 {
						fmt.Fprintln(w)
					}
					printWallet(w, wallet)
				}
			})
		},
	}
}

func newCreateCmd(opts *options) *cobra.Command {
	var (
		chain     string
		paths     []string
		singleKey bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new HD or single-key wallet",
		Example: `  keystore create
  keystore create --path "m/44'/60'/0'/0/0" --path "m/44'/0'/0'/0/0"
  keystore create --single-key --chain solana`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := resolveChain(chain)
			if err != nil {
				return err
			}

			s, err := opts.openStore()
			if err != nil {
				return err
			}

			password, err := readNewPassword("New wallet password: ")
			if err != nil {
				return err
			}
			defer clear(password)

			var w *keystore.Wallet
			if singleKey {
				w, err = s.CreateSingleKeyWallet(password, c)
			} else {
				var derivationPaths []model.DerivationPath
				derivationPaths, err = pathsOrDefault(paths, c)
				if err != nil {
					return err
				}
				w, err = s.CreateWallet(password, derivationPaths)
			}
			if err != nil {
				return fmt.Errorf("failed to create wallet: %w", err)
			}

			wallet := describeWallet(w)
			return opts.print(cmd, wallet, func(out io.Writer) { printWallet(out, wallet) })
		},
	}

	cmd.Flags().StringVar(&chain, "chain", "", "Chain of the default path or the single key (ethereum|bitcoin|solana)")
	cmd.Flags().StringArrayVar(&paths, "path", nil, "Derivation path of an initial account (repeatable)")
	cmd.Flags().BoolVar(&singleKey, "single-key", false, "Create a single-key wallet instead of an HD wallet")
	cmd.MarkFlagsMutuallyExclusive("single-key", "path")

	return cmd
}

func newAccountsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage the accounts of an HD wallet",
	}

	cmd.AddCommand(newAccountsAddCmd(opts))
	return cmd
}

func newAccountsAddCmd(opts *options) *cobra.Command {
	var paths []string

	cmd := &cobra.Command{
		Use:     "add <wallet>",
		Short:   "Derive and store accounts at the given paths",
		Example: `  keystore accounts add UTC--2024-01-02T03-04-05.000000000Z--5f0c... --path "m/44'/60'/0'/0/1"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			derivationPaths, err := model.ParseDerivationPaths(paths)
			if err != nil {
				return err
			}

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

			added, err := s.AddAccounts(w, derivationPaths, password)
			if err != nil {
				return fmt.Errorf("failed to add accounts: %w", err)
			}

			resp := model.AccountsResponse{WalletID: w.ID(), Accounts: describeAccounts(added)}
			return opts.print(cmd, resp, func(out io.Writer) {
				fmt.Fprintf(out, "Added %d account(s) to %s\n", len(resp.Accounts), resp.WalletID)
				printAccounts(out, resp.Accounts)
			})
		},
	}

	cmd.Flags().StringArrayVar(&paths, "path", nil, "Derivation path (repeatable)")
	_ = cmd.MarkFlagRequired("path")

	return cmd
}

func newPasswordCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "password <wallet>",
		Short: "Change the password of a wallet",
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

			password, err := readPassword("Current password: ")
			if err != nil {
				return err
			}
			defer clear(password)

			newPassword, err := readNewPassword("New password: ")
			if err != nil {
				return err
			}
			defer clear(newPassword)

			if err := s.UpdatePassword(w, password, newPassword); err != nil {
				return fmt.Errorf("failed to update password: %w", err)
			}

			resp := model.SuccessResponse{Success: true, Message: "Password updated for " + w.ID()}
			return opts.print(cmd, resp, func(out io.Writer) { fmt.Fprintln(out, resp.Message) })
		},
	}
}

func newDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <wallet>",
		Short: "Delete a wallet and its key file",
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

			if err := s.Delete(w, password); err != nil {
				return fmt.Errorf("failed to delete wallet: %w", err)
			}

			resp := model.SuccessResponse{Success: true, Message: "Deleted " + w.ID()}
			return opts.print(cmd, resp, func(out io.Writer) { fmt.Fprintln(out, resp.Message) })
		},
	}
}

// resolveChain parses chain, falling back to the configured default
func resolveChain(chain string) (model.Chain, error) {
	if chain == "" {
		return config.GetDefaultChain(), nil
	}
	return model.ParseChain(chain)
}

// pathsOrDefault parses paths; none means the default path of chain
func pathsOrDefault(paths []string, chain model.Chain) ([]model.DerivationPath, error) {
	if len(paths) == 0 {
		return []model.DerivationPath{chain.DefaultDerivationPath()}, nil
	}
	return model.ParseDerivationPaths(paths)
}
