package capi

import "unsafe"

// ICobiaBaseVTable holds the first two slots of every object vtable.
// The order is fixed by the ABI: addReference, then release.
type ICobiaBaseVTable struct {
	AddReference func(me unsafe.Pointer)
	Release      func(me unsafe.Pointer)
}

// ICapeInterfaceVTable is the base object interface: reference counting,
// capability negotiation and the last-error slot.
type ICapeInterfaceVTable struct {
	Base ICobiaBaseVTable

	// QueryInterface asks whether the object supports the interface shape
	// named by iid. On success the out pointer carries a fresh reference
	// that the caller owns.
	QueryInterface func(me unsafe.Pointer, iid *CapeUUID, iface **ICapeInterface) CapeResult

	// GetLastError fetches the error object after a call that returned
	// ErrCapeOpenError. The slot may be overwritten by the next call on
	// the same object.
	GetLastError func(me unsafe.Pointer, err **ICapeError) CapeResult
}

// ICapeInterface is the base object reference: a vtable pointer and an
// opaque instance pointer, in that order.
type ICapeInterface struct {
	VTbl *ICapeInterfaceVTable
	Me   unsafe.Pointer
}

// AsCapeInterface reinterprets any object interface pointer as its
// ICapeInterface base. All object interfaces are laid out with the base
// vtable first, so this cast is always valid for them.
func AsCapeInterface[T any](iface *T) *ICapeInterface {
	return (*ICapeInterface)(unsafe.Pointer(iface))
}
