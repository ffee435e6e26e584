package common

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRCodeSize is the default PNG edge length in pixels
const QRCodeSize = 256

// AddressQRCode renders address as a PNG QR code
func AddressQRCode(address string, size int) ([]byte, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	png, err := qr.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}
	return png, nil
}

// AddressQRCodeText renders address as a QR code made of block characters, for terminals
func AddressQRCodeText(address string) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}
	return qr.ToString(false), nil
}
