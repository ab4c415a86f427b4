//go:build !windows

package capi

// CapeCharacter is the string code unit on the wire. POSIX-like targets
// use UTF-8, so the unit is one byte.
type CapeCharacter = byte
