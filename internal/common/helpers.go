package common

import (
	"encoding/hex"
	"strings"
	"unicode/utf8"
)

// IsASCII reports whether every byte of b is 7-bit ASCII
func IsASCII(b []byte) bool {
	for _, c := range b {
		if c >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// TrimNullPadding strips exactly one trailing NUL left by fixed-width storage
// Example: TrimNullPadding("word word\x00") = "word word"
func TrimNullPadding(s string) string {
	return strings.TrimSuffix(s, "\x00")
}

// AddressIdentifier converts an address into the hex identifier used in key file names.
// 0x-prefixed hex addresses lose the prefix and are lower-cased; any other encoding
// (base58, bech32) is hex-encoded byte by byte.
func AddressIdentifier(address string) string {
	if body, ok := strings.CutPrefix(address, "0x"); ok {
		if _, err := hex.DecodeString(body); err == nil {
			return strings.ToLower(body)
		}
	}
	return hex.EncodeToString([]byte(address))
}
