package cobia

import (
	"math"
	"unsafe"

	"github.com/cape-open/cobia/capi"
)

// CapeArrayRealScalar holds a single real value exposed as a one element
// array. Several CAPE-OPEN property calls take an array argument that is
// a scalar in all but type; this wrapper serves those without allocating
// a vector. The size is fixed at one: a resize to any other size is
// refused with invalid argument, and a resize to one is a no-op.
type CapeArrayRealScalar struct {
	value capi.CapeReal
	vtbl  capi.ICapeArrayVTable[capi.CapeReal]
}

// NewCapeArrayRealScalar creates a scalar holding NaN, the conventional
// not-yet-set value for real properties.
func NewCapeArrayRealScalar() *CapeArrayRealScalar {
	return CapeArrayRealScalarFromValue(math.NaN())
}

// CapeArrayRealScalarFromValue creates a scalar holding v.
func CapeArrayRealScalarFromValue(v capi.CapeReal) *CapeArrayRealScalar {
	a := &CapeArrayRealScalar{value: v}
	a.vtbl = capi.ICapeArrayVTable[capi.CapeReal]{
		Get:     arrayScalarGet,
		SetSize: arrayScalarSetSize,
	}
	return a
}

// Value returns the held value.
func (a *CapeArrayRealScalar) Value() capi.CapeReal {
	return a.value
}

// SetValue replaces the held value.
func (a *CapeArrayRealScalar) SetValue(v capi.CapeReal) {
	a.value = v
}

// AsCapeArrayIn exposes the scalar as a read argument.
func (a *CapeArrayRealScalar) AsCapeArrayIn() capi.ICapeArray[capi.CapeReal] {
	return capi.ICapeArray[capi.CapeReal]{VTbl: &a.vtbl, Me: unsafe.Pointer(a)}
}

// AsCapeArrayOut exposes the scalar as a writable argument. The consumer
// may rewrite the single element but not change the size.
func (a *CapeArrayRealScalar) AsCapeArrayOut() capi.ICapeArray[capi.CapeReal] {
	return capi.ICapeArray[capi.CapeReal]{VTbl: &a.vtbl, Me: unsafe.Pointer(a)}
}

func arrayScalarGet(me unsafe.Pointer, data **capi.CapeReal, size *capi.CapeSize) {
	a := (*CapeArrayRealScalar)(me)
	*data = &a.value
	*size = 1
}

func arrayScalarSetSize(me unsafe.Pointer, size capi.CapeSize, data **capi.CapeReal) capi.CapeResult {
	if size != 1 {
		return capi.ErrInvalidArgument
	}
	a := (*CapeArrayRealScalar)(me)
	if data != nil {
		*data = &a.value
	}
	return capi.ErrNoError
}
