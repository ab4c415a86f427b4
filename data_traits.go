package cobia

import "github.com/cape-open/cobia/capi"

// Provider interfaces. Anything implementing one of these can be handed to
// the far side as the corresponding ABI argument. "In" providers expose a
// read view, "Out" providers a writable one; the distinction is a calling
// convention, both return the same carrier interface struct.

// CapeStringProviderIn can be passed as an ICapeString input argument.
type CapeStringProviderIn interface {
	AsCapeStringIn() capi.ICapeString
}

// CapeStringProviderOut can be passed as an ICapeString output argument.
type CapeStringProviderOut interface {
	AsCapeStringOut() capi.ICapeString
}

// CapeStringConstProvider exposes the raw null terminated buffer of a
// string for comparison and for value-name style arguments.
//
// The pointer is tied to the provider's lifetime and is invalidated by any
// mutation of the provider.
type CapeStringConstProvider interface {
	// AsCapeCharConst returns the null terminated buffer.
	AsCapeCharConst() *capi.CapeCharacter
	// AsCapeCharConstWithLength returns the buffer and its length
	// excluding the terminator.
	AsCapeCharConstWithLength() (*capi.CapeCharacter, capi.CapeSize)
}

// CapeArrayProviderIn can be passed as an array input argument.
type CapeArrayProviderIn[E any] interface {
	AsCapeArrayIn() capi.ICapeArray[E]
}

// CapeArrayProviderOut can be passed as an array output argument.
type CapeArrayProviderOut[E any] interface {
	AsCapeArrayOut() capi.ICapeArray[E]
}

// CapeValueProviderIn can be passed as an ICapeValue input argument.
type CapeValueProviderIn interface {
	AsCapeValueIn() capi.ICapeValue
}

// CapeValueProviderOut can be passed as an ICapeValue output argument.
type CapeValueProviderOut interface {
	AsCapeValueOut() capi.ICapeValue
}
