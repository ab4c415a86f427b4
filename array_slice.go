package cobia

import (
	"unsafe"

	"github.com/cape-open/cobia/capi"
)

// CapeArraySlice exposes an existing slice over the array interface
// without copying. The content can be read but not resized; a resize
// request is refused with access denied and leaves the slice untouched.
// The view is only valid while the underlying slice stays alive.
type CapeArraySlice[E any] struct {
	data []E
	vtbl capi.ICapeArrayVTable[E]
}

// NewCapeArraySlice wraps elems as a fixed size array view.
func NewCapeArraySlice[E any](elems []E) *CapeArraySlice[E] {
	a := &CapeArraySlice[E]{data: elems}
	a.vtbl = capi.ICapeArrayVTable[E]{
		Get:     arraySliceGet[E],
		SetSize: arraySliceSetSize[E],
	}
	return a
}

// Slice returns the wrapped slice.
func (a *CapeArraySlice[E]) Slice() []E {
	return a.data
}

// Len returns the element count.
func (a *CapeArraySlice[E]) Len() int {
	return len(a.data)
}

// AsCapeArrayIn exposes the view as a read argument.
func (a *CapeArraySlice[E]) AsCapeArrayIn() capi.ICapeArray[E] {
	return capi.ICapeArray[E]{VTbl: &a.vtbl, Me: unsafe.Pointer(a)}
}

func arraySliceGet[E any](me unsafe.Pointer, data **E, size *capi.CapeSize) {
	a := (*CapeArraySlice[E])(me)
	if len(a.data) == 0 {
		*data = nil
		*size = 0
		return
	}
	*data = &a.data[0]
	*size = capi.CapeSize(len(a.data))
}

func arraySliceSetSize[E any](me unsafe.Pointer, size capi.CapeSize, data **E) capi.CapeResult {
	return capi.ErrDenied
}
