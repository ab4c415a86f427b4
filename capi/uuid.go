package capi

import (
	"github.com/google/uuid"
)

// CapeUUID is the 16-byte identifier naming an interface shape. On the
// wire it is compared byte for byte; the text form exists only for
// registry storage and tooling.
type CapeUUID [16]byte

// UUIDFromSlice builds a CapeUUID from exactly 16 raw bytes. Panics on any
// other length; identifiers are compile-time constants and a bad length is
// a programming error.
func UUIDFromSlice(b []byte) CapeUUID {
	if len(b) != 16 {
		panic("capi: CapeUUID requires exactly 16 bytes")
	}
	var u CapeUUID
	copy(u[:], b)
	return u
}

// ParseUUID parses the canonical text form (with or without braces).
func ParseUUID(s string) (CapeUUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return CapeUUID{}, err
	}
	return CapeUUID(u), nil
}

// MustParseUUID is ParseUUID for compile-time constant identifiers.
func MustParseUUID(s string) CapeUUID {
	return CapeUUID(uuid.MustParse(s))
}

// String returns the canonical lowercase text form.
func (u CapeUUID) String() string {
	return uuid.UUID(u).String()
}

// IsNil reports whether the identifier is all zero.
func (u CapeUUID) IsNil() bool {
	return u == CapeUUID{}
}
