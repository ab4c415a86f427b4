package cobia

import (
	"github.com/cape-open/cobia/capi"
)

// CapeArrayIn wraps an array interface received as a read argument.
// The wrapper borrows the interface; the producer keeps ownership of the
// buffer, and views returned here are invalid once the producer mutates
// or releases the array.
type CapeArrayIn[E any] struct {
	iface capi.ICapeArray[E]
}

// WrapCapeArrayIn wraps a received array interface.
func WrapCapeArrayIn[E any](iface capi.ICapeArray[E]) CapeArrayIn[E] {
	return CapeArrayIn[E]{iface: iface}
}

// View returns a zero copy view of the content.
func (a CapeArrayIn[E]) View() []E {
	var ptr *E
	var size capi.CapeSize
	a.iface.VTbl.Get(a.iface.Me, &ptr, &size)
	return sliceFromRaw(ptr, size)
}

// Copy returns the content as a freshly allocated slice.
func (a CapeArrayIn[E]) Copy() []E {
	view := a.View()
	if len(view) == 0 {
		return nil
	}
	out := make([]E, len(view))
	copy(out, view)
	return out
}

// Len returns the element count.
func (a CapeArrayIn[E]) Len() int {
	var ptr *E
	var size capi.CapeSize
	a.iface.VTbl.Get(a.iface.Me, &ptr, &size)
	return int(size)
}

// CapeArrayOut wraps an array interface received as a writable argument.
type CapeArrayOut[E any] struct {
	CapeArrayIn[E]
}

// WrapCapeArrayOut wraps a received writable array interface.
func WrapCapeArrayOut[E any](iface capi.ICapeArray[E]) CapeArrayOut[E] {
	return CapeArrayOut[E]{CapeArrayIn[E]{iface: iface}}
}

// Resize asks the producer to resize the array and returns a view of the
// resized content. A producer that does not support resizing reports
// access denied and keeps its content.
func (a CapeArrayOut[E]) Resize(n int) ([]E, capi.CapeResult) {
	var ptr *E
	if res := a.iface.VTbl.SetSize(a.iface.Me, capi.CapeSize(n), &ptr); res != capi.ErrNoError {
		return nil, res
	}
	return sliceFromRaw(ptr, capi.CapeSize(n)), capi.ErrNoError
}

// SetSlice resizes the array to len(elems) and copies elems into it.
func (a CapeArrayOut[E]) SetSlice(elems []E) capi.CapeResult {
	dst, res := a.Resize(len(elems))
	if res != capi.ErrNoError {
		return res
	}
	copy(dst, elems)
	return capi.ErrNoError
}

// CapeArrayStringIn wraps a received array of strings, reading each
// element through its own string interface.
type CapeArrayStringIn struct {
	iface capi.ICapeArrayString
}

// WrapCapeArrayStringIn wraps a received string array interface.
func WrapCapeArrayStringIn(iface capi.ICapeArrayString) CapeArrayStringIn {
	return CapeArrayStringIn{iface: iface}
}

// Len returns the element count.
func (a CapeArrayStringIn) Len() int {
	return WrapCapeArrayIn(a.iface).Len()
}

// Strings returns the content decoded to Go strings.
func (a CapeArrayStringIn) Strings() []string {
	view := WrapCapeArrayIn(a.iface).View()
	if len(view) == 0 {
		return nil
	}
	out := make([]string, len(view))
	for i := range view {
		var ptr *capi.CapeCharacter
		var size capi.CapeSize
		view[i].VTbl.Get(view[i].Me, &ptr, &size)
		out[i] = decodeUnits(unitsFromRaw(ptr, size))
	}
	return out
}

// CapeArrayStringOut wraps a received writable array of strings.
type CapeArrayStringOut struct {
	CapeArrayStringIn
}

// WrapCapeArrayStringOut wraps a received writable string array
// interface.
func WrapCapeArrayStringOut(iface capi.ICapeArrayString) CapeArrayStringOut {
	return CapeArrayStringOut{CapeArrayStringIn{iface: iface}}
}

// SetStrings resizes the array to len(elems) and writes each element.
func (a CapeArrayStringOut) SetStrings(elems []string) capi.CapeResult {
	dst, res := WrapCapeArrayOut(a.iface).Resize(len(elems))
	if res != capi.ErrNoError {
		return res
	}
	for i, s := range elems {
		units := terminated(encodeUnits(s))
		if res := dst[i].VTbl.Set(dst[i].Me, &units[0], capi.CapeSize(len(units)-1)); res != capi.ErrNoError {
			return res
		}
	}
	return capi.ErrNoError
}
