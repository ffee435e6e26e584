package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/AlexZinkM/keystore/internal/model"
	"github.com/AlexZinkM/keystore/keystore"

	"github.com/spf13/cobra"
)

// print writes v as indented JSON with --output json, otherwise calls plain
func (o *options) print(cmd *cobra.Command, v any, plain func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	switch o.output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "plain", "":
		plain(w)
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want plain or json)", o.output)
	}
}

func describeWallet(w *keystore.Wallet) model.WalletResponse {
	return model.WalletResponse{
		ID:       w.ID(),
		Kind:     w.Kind(),
		Chain:    w.Chain(),
		Accounts: describeAccounts(w.Accounts()),
	}
}

func describeAccounts(accounts []keystore.Account) []model.AccountResponse {
	out := make([]model.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, model.AccountResponse{
			Address:        a.Address,
			PublicKey:      a.PublicKey,
			Chain:          a.Chain,
			DerivationPath: a.DerivationPath,
		})
	}
	return out
}

func printWallet(w io.Writer, wallet model.WalletResponse) {
	fmt.Fprintf(w, "Wallet: %s\nKind: %s\n", wallet.ID, wallet.Kind)
	if wallet.Chain != "" {
		fmt.Fprintf(w, "Chain: %s\n", wallet.Chain)
	}
	printAccounts(w, wallet.Accounts)
}

func printAccounts(w io.Writer, accounts []model.AccountResponse) {
	for _, a := range accounts {
		if a.DerivationPath != "" {
			fmt.Fprintf(w, "  %-8s %s  %s\n", a.Chain, a.Address, a.DerivationPath)
		} else {
			fmt.Fprintf(w, "  %-8s %s\n", a.Chain, a.Address)
		}
	}
}
