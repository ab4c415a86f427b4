package capi

import "unsafe"

// ICapeValueVTable is the ten-slot vtable of the tagged value carrier:
// type query, four typed getters, four typed setters, clear. Slot order is
// fixed by the ABI.
type ICapeValueVTable struct {
	GetValueType func(me unsafe.Pointer) CapeValueType

	// Typed getters fail with ErrNoSuchItem unless the active variant
	// matches; there is no implicit conversion. The string getter yields
	// a borrowed buffer valid until the next mutating call.
	GetStringValue  func(me unsafe.Pointer, data **CapeCharacter, size *CapeSize) CapeResult
	GetIntegerValue func(me unsafe.Pointer, value *CapeInteger) CapeResult
	GetBooleanValue func(me unsafe.Pointer, value *CapeBoolean) CapeResult
	GetRealValue    func(me unsafe.Pointer, value *CapeReal) CapeResult

	// Typed setters replace the active variant.
	SetStringValue  func(me unsafe.Pointer, data *CapeCharacter, size CapeSize) CapeResult
	SetIntegerValue func(me unsafe.Pointer, value CapeInteger) CapeResult
	SetBooleanValue func(me unsafe.Pointer, value CapeBoolean) CapeResult
	SetRealValue    func(me unsafe.Pointer, value CapeReal) CapeResult

	// Clear resets to the empty variant.
	Clear func(me unsafe.Pointer) CapeResult
}

// ICapeValue is a tagged value argument on the ABI boundary. It is a data
// carrier, not a reference counted object.
type ICapeValue struct {
	VTbl *ICapeValueVTable
	Me   unsafe.Pointer
}
