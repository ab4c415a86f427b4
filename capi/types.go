package capi

// Fixed-width scalar types of the COBIA ABI. CapeCharacter is defined in
// the build-tagged character_*.go files.

type (
	// CapeResult is the numeric result code returned by every fallible
	// ABI call. Zero is success.
	CapeResult = int32

	// CapeSize is the element count type used for strings and arrays.
	CapeSize = uint64

	// CapeInteger is the signed integer scalar.
	CapeInteger = int64

	// CapeReal is the double precision scalar.
	CapeReal = float64

	// CapeBoolean is the ABI boolean; zero is false, anything else true.
	CapeBoolean = uint32

	// CapeByte is the raw octet type.
	CapeByte = uint8

	// CapeEnumeration is the wire representation of enumerated values.
	CapeEnumeration = int32

	// CapeValueType is the raw type tag of an ICapeValue.
	CapeValueType = int32
)

// Result codes. Zero denotes success; ErrCapeOpenError is the distinguished
// "delegated error" code meaning the detail lives in the object's error
// object and must be fetched immediately; all other nonzero codes are
// self-describing and resolvable through the error description lookup.
const (
	ErrNoError         CapeResult = 0
	ErrUnknownError    CapeResult = 1
	ErrNotImplemented  CapeResult = 2
	ErrNoSuchItem      CapeResult = 3
	ErrInvalidArgument CapeResult = 4
	ErrNullPointer     CapeResult = 5
	ErrDenied          CapeResult = 6
	ErrOutOfMemory     CapeResult = 7
	ErrNoInterface     CapeResult = 8
	ErrRegistry        CapeResult = 9
	ErrNotFound        CapeResult = 10
	ErrBounds          CapeResult = 11
	ErrCapeOpenError   CapeResult = 100
)

// Raw value type tags of ICapeValue.getValueType.
const (
	ValueTypeString  CapeValueType = 0
	ValueTypeInteger CapeValueType = 1
	ValueTypeBoolean CapeValueType = 2
	ValueTypeReal    CapeValueType = 3
	ValueTypeEmpty   CapeValueType = 4
)

// Raw registry value type tags.
const (
	RegistryValueString  CapeEnumeration = 0
	RegistryValueInteger CapeEnumeration = 1
	RegistryValueUUID    CapeEnumeration = 2
	RegistryValueEmpty   CapeEnumeration = 3
)

// ToCapeBoolean converts a Go bool to the wire representation.
func ToCapeBoolean(b bool) CapeBoolean {
	if b {
		return 1
	}
	return 0
}

// FromCapeBoolean converts a wire boolean to a Go bool.
func FromCapeBoolean(b CapeBoolean) bool {
	return b != 0
}
