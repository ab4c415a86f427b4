package capi

import "unsafe"

// ICapeArrayVTable is the two-slot data carrier vtable for homogeneous
// arrays of element type E.
type ICapeArrayVTable[E any] struct {
	// Get yields the current storage as a borrowed pointer and element
	// count. The pointer is invalidated by any subsequent call on the
	// same array.
	Get func(me unsafe.Pointer, data **E, size *CapeSize)

	// SetSize resizes the storage to exactly size elements and writes the
	// (possibly reallocated) storage pointer through data. Read-only
	// implementations return ErrDenied.
	SetSize func(me unsafe.Pointer, size CapeSize, data **E) CapeResult
}

// ICapeArray is an array argument on the ABI boundary, generic over the
// element type. It is a data carrier, not a reference counted object.
type ICapeArray[E any] struct {
	VTbl *ICapeArrayVTable[E]
	Me   unsafe.Pointer
}

// Concrete array interfaces as fixed by the middleware headers. String and
// value arrays carry interface structs as elements.
type (
	ICapeArrayReal        = ICapeArray[CapeReal]
	ICapeArrayInteger     = ICapeArray[CapeInteger]
	ICapeArrayBoolean     = ICapeArray[CapeBoolean]
	ICapeArrayByte        = ICapeArray[CapeByte]
	ICapeArrayEnumeration = ICapeArray[CapeEnumeration]
	ICapeArrayString      = ICapeArray[ICapeString]
	ICapeArrayValue       = ICapeArray[ICapeValue]
)
