package cobia

import (
	"unsafe"

	"github.com/cape-open/cobia/capi"
)

// CapeArrayStringVec is an owning array of strings. Each element is a
// full string object; the array interface exposes a contiguous buffer of
// interface structs rebuilt whenever the content is fetched, so pointers
// obtained from an earlier fetch are invalid after any resize.
type CapeArrayStringVec struct {
	items   []*CapeStringImpl
	scratch []capi.ICapeString
	vtbl    capi.ICapeArrayVTable[capi.ICapeString]
}

// NewCapeArrayStringVec creates an empty string array.
func NewCapeArrayStringVec() *CapeArrayStringVec {
	return CapeArrayStringVecFromStrings(nil)
}

// CapeArrayStringVecFromStrings creates a string array holding a copy of
// elems.
func CapeArrayStringVecFromStrings(elems []string) *CapeArrayStringVec {
	a := &CapeArrayStringVec{}
	for _, s := range elems {
		a.items = append(a.items, CapeStringFromString(s))
	}
	a.vtbl = capi.ICapeArrayVTable[capi.ICapeString]{
		Get:     arrayStringGet,
		SetSize: arrayStringSetSize,
	}
	return a
}

// Len returns the element count.
func (a *CapeArrayStringVec) Len() int {
	return len(a.items)
}

// StringAt returns the content of element i.
func (a *CapeArrayStringVec) StringAt(i int) string {
	return a.items[i].String()
}

// SetStringAt replaces the content of element i.
func (a *CapeArrayStringVec) SetStringAt(i int, s string) {
	a.items[i].SetString(s)
}

// Item returns the string object at index i.
func (a *CapeArrayStringVec) Item(i int) *CapeStringImpl {
	return a.items[i]
}

// Append adds an element holding s.
func (a *CapeArrayStringVec) Append(s string) {
	a.items = append(a.items, CapeStringFromString(s))
	a.scratch = nil
}

// Strings returns a copy of the content as Go strings.
func (a *CapeArrayStringVec) Strings() []string {
	out := make([]string, len(a.items))
	for i, item := range a.items {
		out[i] = item.String()
	}
	return out
}

// SetStrings replaces the content with a copy of elems.
func (a *CapeArrayStringVec) SetStrings(elems []string) {
	a.items = a.items[:0]
	for _, s := range elems {
		a.items = append(a.items, CapeStringFromString(s))
	}
	a.scratch = nil
}

// AsCapeArrayIn exposes the array as a read argument.
func (a *CapeArrayStringVec) AsCapeArrayIn() capi.ICapeArray[capi.ICapeString] {
	return capi.ICapeArray[capi.ICapeString]{VTbl: &a.vtbl, Me: unsafe.Pointer(a)}
}

// AsCapeArrayOut exposes the array as a writable argument.
func (a *CapeArrayStringVec) AsCapeArrayOut() capi.ICapeArray[capi.ICapeString] {
	return capi.ICapeArray[capi.ICapeString]{VTbl: &a.vtbl, Me: unsafe.Pointer(a)}
}

func (a *CapeArrayStringVec) rebuild() {
	a.scratch = make([]capi.ICapeString, len(a.items))
	for i, item := range a.items {
		a.scratch[i] = item.AsCapeStringOut()
	}
}

func arrayStringGet(me unsafe.Pointer, data **capi.ICapeString, size *capi.CapeSize) {
	a := (*CapeArrayStringVec)(me)
	if len(a.items) == 0 {
		*data = nil
		*size = 0
		return
	}
	a.rebuild()
	*data = &a.scratch[0]
	*size = capi.CapeSize(len(a.scratch))
}

func arrayStringSetSize(me unsafe.Pointer, size capi.CapeSize, data **capi.ICapeString) capi.CapeResult {
	a := (*CapeArrayStringVec)(me)
	n := int(size)
	for len(a.items) > n {
		a.items = a.items[:len(a.items)-1]
	}
	for len(a.items) < n {
		a.items = append(a.items, NewCapeString())
	}
	a.scratch = nil
	if data != nil {
		if n == 0 {
			*data = nil
		} else {
			a.rebuild()
			*data = &a.scratch[0]
		}
	}
	return capi.ErrNoError
}

// CapeArrayValueVec is an owning array of tagged values, structured the
// same way as CapeArrayStringVec. New elements created by a resize are
// empty values.
type CapeArrayValueVec struct {
	items   []*CapeValueImpl
	scratch []capi.ICapeValue
	vtbl    capi.ICapeArrayVTable[capi.ICapeValue]
}

// NewCapeArrayValueVec creates an empty value array.
func NewCapeArrayValueVec() *CapeArrayValueVec {
	a := &CapeArrayValueVec{}
	a.vtbl = capi.ICapeArrayVTable[capi.ICapeValue]{
		Get:     arrayValueGet,
		SetSize: arrayValueSetSize,
	}
	return a
}

// Len returns the element count.
func (a *CapeArrayValueVec) Len() int {
	return len(a.items)
}

// Item returns the value object at index i.
func (a *CapeArrayValueVec) Item(i int) *CapeValueImpl {
	return a.items[i]
}

// Append adds v to the array.
func (a *CapeArrayValueVec) Append(v *CapeValueImpl) {
	a.items = append(a.items, v)
	a.scratch = nil
}

// AsCapeArrayIn exposes the array as a read argument.
func (a *CapeArrayValueVec) AsCapeArrayIn() capi.ICapeArray[capi.ICapeValue] {
	return capi.ICapeArray[capi.ICapeValue]{VTbl: &a.vtbl, Me: unsafe.Pointer(a)}
}

// AsCapeArrayOut exposes the array as a writable argument.
func (a *CapeArrayValueVec) AsCapeArrayOut() capi.ICapeArray[capi.ICapeValue] {
	return capi.ICapeArray[capi.ICapeValue]{VTbl: &a.vtbl, Me: unsafe.Pointer(a)}
}

func (a *CapeArrayValueVec) rebuild() {
	a.scratch = make([]capi.ICapeValue, len(a.items))
	for i, item := range a.items {
		a.scratch[i] = item.AsCapeValueOut()
	}
}

func arrayValueGet(me unsafe.Pointer, data **capi.ICapeValue, size *capi.CapeSize) {
	a := (*CapeArrayValueVec)(me)
	if len(a.items) == 0 {
		*data = nil
		*size = 0
		return
	}
	a.rebuild()
	*data = &a.scratch[0]
	*size = capi.CapeSize(len(a.scratch))
}

func arrayValueSetSize(me unsafe.Pointer, size capi.CapeSize, data **capi.ICapeValue) capi.CapeResult {
	a := (*CapeArrayValueVec)(me)
	n := int(size)
	for len(a.items) > n {
		a.items = a.items[:len(a.items)-1]
	}
	for len(a.items) < n {
		a.items = append(a.items, NewCapeValue())
	}
	a.scratch = nil
	if data != nil {
		if n == 0 {
			*data = nil
		} else {
			a.rebuild()
			*data = &a.scratch[0]
		}
	}
	return capi.ErrNoError
}
