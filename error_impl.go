package cobia

import (
	"sync/atomic"
	"unsafe"

	"github.com/cape-open/cobia/capi"
)

// CapeErrorObject is a reference counted error object served to the
// other side of the boundary. It starts with one reference, owned by the
// creator; when the count reaches zero the reference it holds on its
// cause, if any, is dropped.
type CapeErrorObject struct {
	iface  capi.ICapeError
	refs   atomic.Int32
	text   string
	scope  string
	source string
	cause  *capi.ICapeError
}

var capeErrorObjectVTable = capi.ICapeErrorVTable{
	Base: capi.ICobiaBaseVTable{
		AddReference: errorObjectAddReference,
		Release:      errorObjectRelease,
	},
	GetErrorText: errorObjectGetText,
	GetCause:     errorObjectGetCause,
	GetSource:    errorObjectGetSource,
	GetScope:     errorObjectGetScope,
}

// NewCapeErrorObject creates an error object with one reference.
func NewCapeErrorObject(text, scope, source string) *CapeErrorObject {
	o := &CapeErrorObject{text: text, scope: scope, source: source}
	o.refs.Store(1)
	o.iface = capi.ICapeError{VTbl: &capeErrorObjectVTable, Me: unsafe.Pointer(o)}
	return o
}

// NewCapeErrorObjectWithCause creates an error object holding a
// reference on cause.
func NewCapeErrorObjectWithCause(text, scope, source string, cause CapeError) *CapeErrorObject {
	o := NewCapeErrorObject(text, scope, source)
	owned := cause.Clone()
	o.cause = owned.Detach()
	return o
}

// Iface returns the object's interface without adding a reference.
func (o *CapeErrorObject) Iface() *capi.ICapeError {
	return &o.iface
}

// AsCapeError hands out a fresh owned reference.
func (o *CapeErrorObject) AsCapeError() CapeError {
	return CapeErrorFromInterfacePointer(&o.iface)
}

// Release drops the creator's reference.
func (o *CapeErrorObject) Release() {
	errorObjectRelease(unsafe.Pointer(o))
}

func errorObjectAddReference(me unsafe.Pointer) {
	(*CapeErrorObject)(me).refs.Add(1)
}

func errorObjectRelease(me unsafe.Pointer) {
	o := (*CapeErrorObject)(me)
	if o.refs.Add(-1) == 0 {
		if o.cause != nil {
			o.cause.VTbl.Base.Release(o.cause.Me)
			o.cause = nil
		}
	}
}

func errorObjectGetText(me unsafe.Pointer, text *capi.ICapeString) capi.CapeResult {
	return writeStringOut(text, (*CapeErrorObject)(me).text)
}

func errorObjectGetSource(me unsafe.Pointer, source *capi.ICapeString) capi.CapeResult {
	return writeStringOut(source, (*CapeErrorObject)(me).source)
}

func errorObjectGetScope(me unsafe.Pointer, scope *capi.ICapeString) capi.CapeResult {
	return writeStringOut(scope, (*CapeErrorObject)(me).scope)
}

func errorObjectGetCause(me unsafe.Pointer, cause **capi.ICapeError) capi.CapeResult {
	o := (*CapeErrorObject)(me)
	if o.cause == nil {
		return capi.ErrNoSuchItem
	}
	o.cause.VTbl.Base.AddReference(o.cause.Me)
	*cause = o.cause
	return capi.ErrNoError
}

// writeStringOut writes s through a string interface received as an out
// argument.
func writeStringOut(out *capi.ICapeString, s string) capi.CapeResult {
	if out == nil {
		return capi.ErrNullPointer
	}
	units := terminated(encodeUnits(s))
	return out.VTbl.Set(out.Me, &units[0], capi.CapeSize(len(units)-1))
}
