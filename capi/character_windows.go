//go:build windows

package capi

// CapeCharacter is the string code unit on the wire. Windows targets use
// UTF-16, so the unit is two bytes.
type CapeCharacter = uint16
