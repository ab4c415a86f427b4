package capi

import "unsafe"

// ICapeStringVTable is the two-slot data carrier vtable for strings.
type ICapeStringVTable struct {
	// Get yields the current content as a borrowed, null terminated
	// buffer. The size excludes the terminator. The pointer is valid only
	// until the next mutating call on the same string.
	Get func(me unsafe.Pointer, data **CapeCharacter, size *CapeSize)

	// Set replaces the content. The data need not be null terminated;
	// size is the number of code units to copy.
	Set func(me unsafe.Pointer, data *CapeCharacter, size CapeSize) CapeResult
}

// ICapeString is a string argument on the ABI boundary. It is a data
// carrier, not a reference counted object.
type ICapeString struct {
	VTbl *ICapeStringVTable
	Me   unsafe.Pointer
}
