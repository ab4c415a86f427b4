//go:build !windows

package cobia

import (
	"strings"
	"unicode/utf8"

	"github.com/cape-open/cobia/capi"
)

// Platform text codec, UTF-8 flavor. Code units are bytes; conversion is
// total in both directions: encoding a Go string copies its bytes, decoding
// replaces invalid sequences with U+FFFD and never fails.

// encodeUnits converts a Go string to wire code units, without terminator.
func encodeUnits(s string) []capi.CapeCharacter {
	return []byte(s)
}

// decodeUnits converts wire code units to a Go string, lossily.
func decodeUnits(u []capi.CapeCharacter) string {
	if len(u) == 0 {
		return ""
	}
	if utf8.Valid(u) {
		return string(u)
	}
	return strings.ToValidUTF8(string(u), string(utf8.RuneError))
}
