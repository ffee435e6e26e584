package main

import (
	"fmt"
	"os"

	"github.com/AlexZinkM/keystore/internal/common"

	"github.com/spf13/cobra"
)

func newQRCmd(opts *options) *cobra.Command {
	var (
		out  string
		size int
	)

	cmd := &cobra.Command{
		Use:   "qr <address>",
		Short: "Show the QR code of a stored account address",
		Example: `  keystore qr 0x2c7536E3605D9C16a7a3D7b1898e529396a65c23
  keystore qr 1LqBGSKuX5yYUonjxT5qGfpUsXKYYWeabA --out address.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.openStore()
			if err != nil {
				return err
			}
			_, account, err := s.FindByAddress(args[0])
			if err != nil {
				return err
			}

			if out == "" {
				text, err := common.AddressQRCodeText(account.Address)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), text)
				fmt.Fprintln(cmd.OutOrStdout(), account.Address)
				return nil
			}

			png, err := common.AddressQRCode(account.Address, size)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, png, 0644); err != nil {
				return fmt.Errorf("failed to write QR code: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "QR code for %s written to %s\n", account.Address, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Write a PNG file instead of printing to the terminal")
	cmd.Flags().IntVar(&size, "size", common.QRCodeSize, "PNG edge length in pixels")
	return cmd
}
