package cobia

import (
	"math"
	"unsafe"

	"github.com/cape-open/cobia/capi"
)

// CapeArrayVec is an owning, resizable array exposed over the two-entry
// array interface. Callers on the other side of the boundary may both
// read the content and resize it; a resize may reallocate, so any data
// pointer handed out earlier is invalid afterwards.
type CapeArrayVec[E any] struct {
	data []E
	vtbl capi.ICapeArrayVTable[E]
}

// NewCapeArrayVec creates an empty array.
func NewCapeArrayVec[E any]() *CapeArrayVec[E] {
	return CapeArrayVecFromSlice[E](nil)
}

// CapeArrayVecFromSlice creates an array owning a copy of elems.
func CapeArrayVecFromSlice[E any](elems []E) *CapeArrayVec[E] {
	a := &CapeArrayVec[E]{}
	if len(elems) > 0 {
		a.data = make([]E, len(elems))
		copy(a.data, elems)
	}
	a.vtbl = capi.ICapeArrayVTable[E]{
		Get:     arrayVecGet[E],
		SetSize: arrayVecSetSize[E],
	}
	return a
}

// Slice returns the backing slice. The slice is invalidated by Resize,
// SetSlice and by resizes arriving through the interface.
func (a *CapeArrayVec[E]) Slice() []E {
	return a.data
}

// Len returns the element count.
func (a *CapeArrayVec[E]) Len() int {
	return len(a.data)
}

// At returns the element at index i.
func (a *CapeArrayVec[E]) At(i int) E {
	return a.data[i]
}

// SetAt replaces the element at index i.
func (a *CapeArrayVec[E]) SetAt(i int, v E) {
	a.data[i] = v
}

// Resize grows or shrinks the array to n elements, keeping the common
// prefix. New elements are zero valued.
func (a *CapeArrayVec[E]) Resize(n int) {
	a.data = resized(a.data, n)
}

// SetSlice replaces the content with a copy of elems.
func (a *CapeArrayVec[E]) SetSlice(elems []E) {
	a.data = nil
	if len(elems) > 0 {
		a.data = make([]E, len(elems))
		copy(a.data, elems)
	}
}

// Set copies the content of any array provider of the same element type.
func (a *CapeArrayVec[E]) Set(p CapeArrayProviderIn[E]) capi.CapeResult {
	iface := p.AsCapeArrayIn()
	var ptr *E
	var size capi.CapeSize
	iface.VTbl.Get(iface.Me, &ptr, &size)
	a.SetSlice(sliceFromRaw(ptr, size))
	return capi.ErrNoError
}

// AsCapeArrayIn exposes the array as a read argument.
func (a *CapeArrayVec[E]) AsCapeArrayIn() capi.ICapeArray[E] {
	return capi.ICapeArray[E]{VTbl: &a.vtbl, Me: unsafe.Pointer(a)}
}

// AsCapeArrayOut exposes the array as a writable argument.
func (a *CapeArrayVec[E]) AsCapeArrayOut() capi.ICapeArray[E] {
	return capi.ICapeArray[E]{VTbl: &a.vtbl, Me: unsafe.Pointer(a)}
}

func arrayVecGet[E any](me unsafe.Pointer, data **E, size *capi.CapeSize) {
	a := (*CapeArrayVec[E])(me)
	if len(a.data) == 0 {
		*data = nil
		*size = 0
		return
	}
	*data = &a.data[0]
	*size = capi.CapeSize(len(a.data))
}

func arrayVecSetSize[E any](me unsafe.Pointer, size capi.CapeSize, data **E) capi.CapeResult {
	a := (*CapeArrayVec[E])(me)
	if size > math.MaxInt {
		// Larger than any slice Go can allocate.
		return capi.ErrOutOfMemory
	}
	a.data = resized(a.data, int(size))
	if data != nil {
		if len(a.data) == 0 {
			*data = nil
		} else {
			*data = &a.data[0]
		}
	}
	return capi.ErrNoError
}

func resized[E any](s []E, n int) []E {
	if n == 0 {
		return nil
	}
	if n <= cap(s) {
		old := len(s)
		s = s[:n]
		var zero E
		for i := old; i < n; i++ {
			s[i] = zero
		}
		return s
	}
	grown := make([]E, n)
	copy(grown, s)
	return grown
}

// sliceFromRaw builds a zero copy view of count elements at data. The
// view is only valid while the producer keeps the buffer alive.
func sliceFromRaw[E any](data *E, count capi.CapeSize) []E {
	if data == nil || count == 0 {
		return nil
	}
	return unsafe.Slice(data, count)
}

// Concrete element type shorthands matching the CAPE-OPEN data kinds.
type (
	CapeArrayRealVec        = CapeArrayVec[capi.CapeReal]
	CapeArrayIntegerVec     = CapeArrayVec[capi.CapeInteger]
	CapeArrayBooleanVec     = CapeArrayVec[capi.CapeBoolean]
	CapeArrayByteVec        = CapeArrayVec[capi.CapeByte]
	CapeArrayEnumerationVec = CapeArrayVec[capi.CapeEnumeration]
)
