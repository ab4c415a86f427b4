package cobia

import (
	"github.com/cape-open/cobia/capi"
)

// ICapeInterfaceUUID identifies the base object interface in capability
// queries.
var ICapeInterfaceUUID = capi.MustParseUUID("53a74ee9-adfa-4916-be95-04e9283cc22e")

// CapeObject is an owned reference to an object behind the base object
// interface. Ownership follows the reference counting contract: every
// owned copy is released exactly once, Clone takes an extra reference,
// Detach hands the reference out without releasing. There is no
// finalizer; pair each owning constructor with a deferred Release.
type CapeObject struct {
	iface *capi.ICapeInterface
}

// CapeObjectFromInterfacePointer takes a new reference on iface. Panics
// on nil: a null interface pointer at this entry is a producer bug.
func CapeObjectFromInterfacePointer(iface *capi.ICapeInterface) CapeObject {
	if iface == nil {
		panic("cobia: nil object interface")
	}
	iface.VTbl.Base.AddReference(iface.Me)
	return CapeObject{iface: iface}
}

// AttachCapeObject adopts an already counted reference. Panics on nil.
func AttachCapeObject(iface *capi.ICapeInterface) CapeObject {
	if iface == nil {
		panic("cobia: attach of nil object interface")
	}
	return CapeObject{iface: iface}
}

// CapeObjectFromObject asks other for the interface named by iid and
// returns an owned reference to it. Unlike the pointer constructors this
// never panics: an object that lacks the capability is an ordinary
// outcome, reported as an error.
func CapeObjectFromObject(other CapeObject, iid capi.CapeUUID) (CapeObject, *Error) {
	return other.QueryInterface(iid)
}

// IsNil reports whether the pointer holds no object.
func (o CapeObject) IsNil() bool {
	return o.iface == nil
}

// Interface returns the raw interface without transferring ownership.
func (o CapeObject) Interface() *capi.ICapeInterface {
	return o.iface
}

// Clone takes an additional reference.
func (o CapeObject) Clone() CapeObject {
	if o.iface != nil {
		o.iface.VTbl.Base.AddReference(o.iface.Me)
	}
	return CapeObject{iface: o.iface}
}

// Release drops this copy's reference. Safe on a nil pointer.
func (o *CapeObject) Release() {
	if o.iface != nil {
		o.iface.VTbl.Base.Release(o.iface.Me)
		o.iface = nil
	}
}

// Detach hands the owned reference out without releasing it.
func (o *CapeObject) Detach() *capi.ICapeInterface {
	iface := o.iface
	o.iface = nil
	return iface
}

// QueryInterface asks the object for the interface named by iid. On
// success the returned object owns a fresh reference.
func (o CapeObject) QueryInterface(iid capi.CapeUUID) (CapeObject, *Error) {
	if o.iface == nil {
		return CapeObject{}, ErrorFromCode(capi.ErrNullPointer)
	}
	var out *capi.ICapeInterface
	res := o.iface.VTbl.QueryInterface(o.iface.Me, &iid, &out)
	if err := errorFromResult(res, o.iface); err != nil {
		return CapeObject{}, err
	}
	if out == nil {
		return CapeObject{}, ErrorFromCode(capi.ErrNoInterface)
	}
	return AttachCapeObject(out), nil
}

// Supports reports whether the object provides the interface named by
// iid, releasing the probe reference immediately.
func (o CapeObject) Supports(iid capi.CapeUUID) bool {
	probe, err := o.QueryInterface(iid)
	if err != nil {
		err.Release()
		return false
	}
	probe.Release()
	return true
}

// LastError converts a call outcome on this object into an Error,
// fetching the object's error object immediately when the outcome is the
// delegated code. Returns nil for the success code.
func (o CapeObject) LastError(res capi.CapeResult) *Error {
	return errorFromResult(res, o.iface)
}
