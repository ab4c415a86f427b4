package cobia

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/cape-open/cobia/capi"
)

// ObjectBase is the reusable core of an object served over the boundary:
// a reference count, a capability table for queryInterface, and the
// last-error slot. A concrete object embeds or holds an ObjectBase,
// exposes each of its derived interfaces with Expose, and reports
// failures through RaiseError.
//
// The object starts with one reference, owned by the creator.
type ObjectBase struct {
	iface      capi.ICapeInterface
	refs       atomic.Int32
	mu         sync.Mutex
	interfaces map[capi.CapeUUID]*capi.ICapeInterface
	lastError  *capi.ICapeError
	onFree     func()
}

var objectBaseVTable = capi.ICapeInterfaceVTable{
	Base: capi.ICobiaBaseVTable{
		AddReference: objectBaseAddReference,
		Release:      objectBaseRelease,
	},
	QueryInterface: objectBaseQueryInterface,
	GetLastError:   objectBaseGetLastError,
}

// NewObjectBase creates an object core with one reference. The base
// object interface itself is pre-registered.
func NewObjectBase() *ObjectBase {
	o := &ObjectBase{interfaces: make(map[capi.CapeUUID]*capi.ICapeInterface)}
	o.refs.Store(1)
	o.iface = capi.ICapeInterface{VTbl: &objectBaseVTable, Me: unsafe.Pointer(o)}
	o.interfaces[ICapeInterfaceUUID] = &o.iface
	return o
}

// Expose registers a derived interface under iid so capability queries
// can reach it. Interfaces are registered during construction, before
// the object is handed out.
func (o *ObjectBase) Expose(iid capi.CapeUUID, iface *capi.ICapeInterface) {
	o.interfaces[iid] = iface
}

// SetOnFree installs a hook run when the last reference is dropped.
func (o *ObjectBase) SetOnFree(fn func()) {
	o.onFree = fn
}

// Iface returns the base interface without adding a reference.
func (o *ObjectBase) Iface() *capi.ICapeInterface {
	return &o.iface
}

// AsCapeObject hands out a fresh owned reference.
func (o *ObjectBase) AsCapeObject() CapeObject {
	return CapeObjectFromInterfacePointer(&o.iface)
}

// Release drops the creator's reference.
func (o *ObjectBase) Release() {
	objectBaseRelease(unsafe.Pointer(o))
}

// RaiseError stores a fresh error object in the last-error slot and
// returns the delegated result code for the caller to propagate.
func (o *ObjectBase) RaiseError(text, scope, source string) capi.CapeResult {
	obj := NewCapeErrorObject(text, scope, source)
	o.setLastError(obj.Iface())
	return capi.ErrCapeOpenError
}

// RaiseErrorWithCause is RaiseError with a causal predecessor attached.
func (o *ObjectBase) RaiseErrorWithCause(text, scope, source string, cause CapeError) capi.CapeResult {
	obj := NewCapeErrorObjectWithCause(text, scope, source, cause)
	o.setLastError(obj.Iface())
	return capi.ErrCapeOpenError
}

// setLastError adopts the creator's reference on iface, dropping any
// previous occupant of the slot.
func (o *ObjectBase) setLastError(iface *capi.ICapeError) {
	o.mu.Lock()
	prev := o.lastError
	o.lastError = iface
	o.mu.Unlock()
	if prev != nil {
		prev.VTbl.Base.Release(prev.Me)
	}
}

func objectBaseAddReference(me unsafe.Pointer) {
	(*ObjectBase)(me).refs.Add(1)
}

func objectBaseRelease(me unsafe.Pointer) {
	o := (*ObjectBase)(me)
	if o.refs.Add(-1) != 0 {
		return
	}
	o.setLastError(nil)
	if o.onFree != nil {
		o.onFree()
	}
}

func objectBaseQueryInterface(me unsafe.Pointer, iid *capi.CapeUUID, iface **capi.ICapeInterface) capi.CapeResult {
	if iid == nil || iface == nil {
		return capi.ErrNullPointer
	}
	o := (*ObjectBase)(me)
	found, ok := o.interfaces[*iid]
	if !ok {
		return capi.ErrNoInterface
	}
	o.refs.Add(1)
	*iface = found
	return capi.ErrNoError
}

func objectBaseGetLastError(me unsafe.Pointer, err **capi.ICapeError) capi.CapeResult {
	if err == nil {
		return capi.ErrNullPointer
	}
	o := (*ObjectBase)(me)
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.lastError == nil {
		return capi.ErrNoSuchItem
	}
	o.lastError.VTbl.Base.AddReference(o.lastError.Me)
	*err = o.lastError
	return capi.ErrNoError
}
