//go:build windows

package cobia

import (
	"unicode/utf16"

	"github.com/cape-open/cobia/capi"
)

// Platform text codec, UTF-16 flavor. Code units are 16 bit; conversion is
// total in both directions: utf16.Decode maps unpaired surrogates to
// U+FFFD and never fails.

// encodeUnits converts a Go string to wire code units, without terminator.
func encodeUnits(s string) []capi.CapeCharacter {
	return utf16.Encode([]rune(s))
}

// decodeUnits converts wire code units to a Go string, lossily.
func decodeUnits(u []capi.CapeCharacter) string {
	if len(u) == 0 {
		return ""
	}
	return string(utf16.Decode(u))
}
