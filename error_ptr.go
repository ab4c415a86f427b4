package cobia

import (
	"strings"
	"unsafe"

	"github.com/cape-open/cobia/capi"
)

// CapeError is an owned reference to a reference counted error object.
// Each owned copy must be released exactly once; Clone takes a new
// reference, Detach hands the reference out without releasing.
type CapeError struct {
	iface *capi.ICapeError
}

// AttachCapeError adopts an already counted reference. Panics on nil,
// matching the other attach constructors: a null pointer here is a
// producer bug, not a recoverable condition.
func AttachCapeError(iface *capi.ICapeError) CapeError {
	if iface == nil {
		panic("cobia: attach of nil error interface")
	}
	return CapeError{iface: iface}
}

// CapeErrorFromInterfacePointer takes a new reference on iface. Panics
// on nil.
func CapeErrorFromInterfacePointer(iface *capi.ICapeError) CapeError {
	if iface == nil {
		panic("cobia: nil error interface")
	}
	iface.VTbl.Base.AddReference(iface.Me)
	return CapeError{iface: iface}
}

// IsNil reports whether the pointer holds no object.
func (e CapeError) IsNil() bool {
	return e.iface == nil
}

// Interface returns the raw interface without transferring ownership.
func (e CapeError) Interface() *capi.ICapeError {
	return e.iface
}

// Clone takes an additional reference.
func (e CapeError) Clone() CapeError {
	if e.iface != nil {
		e.iface.VTbl.Base.AddReference(e.iface.Me)
	}
	return CapeError{iface: e.iface}
}

// Release drops this copy's reference. Safe on a nil pointer.
func (e *CapeError) Release() {
	if e.iface != nil {
		e.iface.VTbl.Base.Release(e.iface.Me)
		e.iface = nil
	}
}

// Detach hands the owned reference out without releasing it.
func (e *CapeError) Detach() *capi.ICapeError {
	iface := e.iface
	e.iface = nil
	return iface
}

// Text fetches the error text.
func (e CapeError) Text() string {
	return e.fetchString(e.iface.VTbl.GetErrorText)
}

// Source fetches the name of the component that raised the error.
func (e CapeError) Source() string {
	return e.fetchString(e.iface.VTbl.GetSource)
}

// Scope fetches the name of the operation that raised the error.
func (e CapeError) Scope() string {
	return e.fetchString(e.iface.VTbl.GetScope)
}

// Cause fetches the causal predecessor as an owned reference, or a nil
// pointer when this error is the root cause.
func (e CapeError) Cause() CapeError {
	var cause *capi.ICapeError
	if res := e.iface.VTbl.GetCause(e.iface.Me, &cause); res != capi.ErrNoError || cause == nil {
		return CapeError{}
	}
	return CapeError{iface: cause}
}

func (e CapeError) fetchString(get func(me unsafe.Pointer, out *capi.ICapeString) capi.CapeResult) string {
	s := NewCapeString()
	out := s.AsCapeStringOut()
	if res := get(e.iface.Me, &out); res != capi.ErrNoError {
		return ""
	}
	return s.String()
}

// Describe renders the full causal chain, outermost error first.
func (e CapeError) Describe() string {
	var b strings.Builder
	link := e.Clone()
	defer link.Release()
	for {
		b.WriteString("in ")
		b.WriteString(link.Scope())
		b.WriteString(" of ")
		b.WriteString(link.Source())
		b.WriteString(": ")
		b.WriteString(link.Text())
		cause := link.Cause()
		if cause.IsNil() {
			return b.String()
		}
		b.WriteString(", caused by: ")
		link.Release()
		link = cause
	}
}
