package capi

import "unsafe"

// ICapeErrorVTable describes a reference counted error object. ICapeError
// derives from ICobiaBase, so the first two slots are addReference and
// release.
type ICapeErrorVTable struct {
	Base ICobiaBaseVTable

	GetErrorText func(me unsafe.Pointer, text *ICapeString) CapeResult

	// GetCause yields the causal predecessor, if any, as a fresh owned
	// reference. ErrNoSuchItem means this error is the root cause.
	GetCause func(me unsafe.Pointer, cause **ICapeError) CapeResult

	// GetSource names the component that raised the error.
	GetSource func(me unsafe.Pointer, source *ICapeString) CapeResult

	// GetScope names the operation that was executing when the error was
	// raised.
	GetScope func(me unsafe.Pointer, scope *ICapeString) CapeResult
}

// ICapeError is a reference counted error description object.
type ICapeError struct {
	VTbl *ICapeErrorVTable
	Me   unsafe.Pointer
}
