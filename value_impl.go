package cobia

import (
	"unsafe"

	"github.com/cape-open/cobia/capi"
)

// CapeValueImpl is an owning tagged value holding exactly one of a
// string, an integer, a boolean, a real, or nothing. Getters for a kind
// other than the stored one report no such item; there is no coercion
// between kinds. Setting a value of any kind replaces whatever was held
// before.
type CapeValueImpl struct {
	kind    capi.CapeValueType
	str     string
	integer capi.CapeInteger
	boolean bool
	real    capi.CapeReal

	// scratch backs the pointer handed out by string reads; stable
	// until the next mutation.
	scratch []capi.CapeCharacter
	vtbl    capi.ICapeValueVTable
}

// NewCapeValue creates an empty value.
func NewCapeValue() *CapeValueImpl {
	v := &CapeValueImpl{kind: capi.ValueTypeEmpty}
	v.vtbl = capeValueVTable
	return v
}

// CapeValueFromString creates a value holding s.
func CapeValueFromString(s string) *CapeValueImpl {
	v := NewCapeValue()
	v.SetString(s)
	return v
}

// CapeValueFromInteger creates a value holding i.
func CapeValueFromInteger(i capi.CapeInteger) *CapeValueImpl {
	v := NewCapeValue()
	v.SetInteger(i)
	return v
}

// CapeValueFromBoolean creates a value holding b.
func CapeValueFromBoolean(b bool) *CapeValueImpl {
	v := NewCapeValue()
	v.SetBoolean(b)
	return v
}

// CapeValueFromReal creates a value holding r.
func CapeValueFromReal(r capi.CapeReal) *CapeValueImpl {
	v := NewCapeValue()
	v.SetReal(r)
	return v
}

// ValueType returns the kind of the held value.
func (v *CapeValueImpl) ValueType() capi.CapeValueType {
	return v.kind
}

// IsEmpty reports whether no value is held.
func (v *CapeValueImpl) IsEmpty() bool {
	return v.kind == capi.ValueTypeEmpty
}

// StringValue returns the held string, or false when the value holds a
// different kind.
func (v *CapeValueImpl) StringValue() (string, bool) {
	if v.kind != capi.ValueTypeString {
		return "", false
	}
	return v.str, true
}

// IntegerValue returns the held integer, or false when the value holds a
// different kind.
func (v *CapeValueImpl) IntegerValue() (capi.CapeInteger, bool) {
	if v.kind != capi.ValueTypeInteger {
		return 0, false
	}
	return v.integer, true
}

// BooleanValue returns the held boolean, or false when the value holds a
// different kind.
func (v *CapeValueImpl) BooleanValue() (bool, bool) {
	if v.kind != capi.ValueTypeBoolean {
		return false, false
	}
	return v.boolean, true
}

// RealValue returns the held real, or false when the value holds a
// different kind.
func (v *CapeValueImpl) RealValue() (capi.CapeReal, bool) {
	if v.kind != capi.ValueTypeReal {
		return 0, false
	}
	return v.real, true
}

// SetString stores s, replacing any held value.
func (v *CapeValueImpl) SetString(s string) {
	v.clearContent()
	v.kind = capi.ValueTypeString
	v.str = s
}

// SetInteger stores i, replacing any held value.
func (v *CapeValueImpl) SetInteger(i capi.CapeInteger) {
	v.clearContent()
	v.kind = capi.ValueTypeInteger
	v.integer = i
}

// SetBoolean stores b, replacing any held value.
func (v *CapeValueImpl) SetBoolean(b bool) {
	v.clearContent()
	v.kind = capi.ValueTypeBoolean
	v.boolean = b
}

// SetReal stores r, replacing any held value.
func (v *CapeValueImpl) SetReal(r capi.CapeReal) {
	v.clearContent()
	v.kind = capi.ValueTypeReal
	v.real = r
}

// Clear empties the value.
func (v *CapeValueImpl) Clear() {
	v.clearContent()
}

func (v *CapeValueImpl) clearContent() {
	v.kind = capi.ValueTypeEmpty
	v.str = ""
	v.integer = 0
	v.boolean = false
	v.real = 0
	v.scratch = nil
}

// Set copies the content of another value provider, kind included.
func (v *CapeValueImpl) Set(p CapeValueProviderIn) capi.CapeResult {
	iface := p.AsCapeValueIn()
	switch iface.VTbl.GetValueType(iface.Me) {
	case capi.ValueTypeString:
		var ptr *capi.CapeCharacter
		var size capi.CapeSize
		if res := iface.VTbl.GetStringValue(iface.Me, &ptr, &size); res != capi.ErrNoError {
			return res
		}
		v.SetString(decodeUnits(unitsFromRaw(ptr, size)))
	case capi.ValueTypeInteger:
		var i capi.CapeInteger
		if res := iface.VTbl.GetIntegerValue(iface.Me, &i); res != capi.ErrNoError {
			return res
		}
		v.SetInteger(i)
	case capi.ValueTypeBoolean:
		var b capi.CapeBoolean
		if res := iface.VTbl.GetBooleanValue(iface.Me, &b); res != capi.ErrNoError {
			return res
		}
		v.SetBoolean(capi.FromCapeBoolean(b))
	case capi.ValueTypeReal:
		var r capi.CapeReal
		if res := iface.VTbl.GetRealValue(iface.Me, &r); res != capi.ErrNoError {
			return res
		}
		v.SetReal(r)
	default:
		v.Clear()
	}
	return capi.ErrNoError
}

// AsCapeValueIn exposes the value as a read argument.
func (v *CapeValueImpl) AsCapeValueIn() capi.ICapeValue {
	return capi.ICapeValue{VTbl: &v.vtbl, Me: unsafe.Pointer(v)}
}

// AsCapeValueOut exposes the value as a writable argument.
func (v *CapeValueImpl) AsCapeValueOut() capi.ICapeValue {
	return capi.ICapeValue{VTbl: &v.vtbl, Me: unsafe.Pointer(v)}
}

var capeValueVTable = capi.ICapeValueVTable{
	GetValueType:    valueImplGetValueType,
	GetStringValue:  valueImplGetString,
	GetIntegerValue: valueImplGetInteger,
	GetBooleanValue: valueImplGetBoolean,
	GetRealValue:    valueImplGetReal,
	SetStringValue:  valueImplSetString,
	SetIntegerValue: valueImplSetInteger,
	SetBooleanValue: valueImplSetBoolean,
	SetRealValue:    valueImplSetReal,
	Clear:           valueImplClear,
}

func valueImplGetValueType(me unsafe.Pointer) capi.CapeValueType {
	return (*CapeValueImpl)(me).kind
}

func valueImplGetString(me unsafe.Pointer, data **capi.CapeCharacter, size *capi.CapeSize) capi.CapeResult {
	v := (*CapeValueImpl)(me)
	if v.kind != capi.ValueTypeString {
		return capi.ErrNoSuchItem
	}
	v.scratch = terminated(encodeUnits(v.str))
	*data = &v.scratch[0]
	*size = capi.CapeSize(len(v.scratch) - 1)
	return capi.ErrNoError
}

func valueImplGetInteger(me unsafe.Pointer, out *capi.CapeInteger) capi.CapeResult {
	v := (*CapeValueImpl)(me)
	if v.kind != capi.ValueTypeInteger {
		return capi.ErrNoSuchItem
	}
	*out = v.integer
	return capi.ErrNoError
}

func valueImplGetBoolean(me unsafe.Pointer, out *capi.CapeBoolean) capi.CapeResult {
	v := (*CapeValueImpl)(me)
	if v.kind != capi.ValueTypeBoolean {
		return capi.ErrNoSuchItem
	}
	*out = capi.ToCapeBoolean(v.boolean)
	return capi.ErrNoError
}

func valueImplGetReal(me unsafe.Pointer, out *capi.CapeReal) capi.CapeResult {
	v := (*CapeValueImpl)(me)
	if v.kind != capi.ValueTypeReal {
		return capi.ErrNoSuchItem
	}
	*out = v.real
	return capi.ErrNoError
}

func valueImplSetString(me unsafe.Pointer, data *capi.CapeCharacter, size capi.CapeSize) capi.CapeResult {
	(*CapeValueImpl)(me).SetString(decodeUnits(unitsFromRaw(data, size)))
	return capi.ErrNoError
}

func valueImplSetInteger(me unsafe.Pointer, value capi.CapeInteger) capi.CapeResult {
	(*CapeValueImpl)(me).SetInteger(value)
	return capi.ErrNoError
}

func valueImplSetBoolean(me unsafe.Pointer, value capi.CapeBoolean) capi.CapeResult {
	(*CapeValueImpl)(me).SetBoolean(capi.FromCapeBoolean(value))
	return capi.ErrNoError
}

func valueImplSetReal(me unsafe.Pointer, value capi.CapeReal) capi.CapeResult {
	(*CapeValueImpl)(me).SetReal(value)
	return capi.ErrNoError
}

func valueImplClear(me unsafe.Pointer) capi.CapeResult {
	(*CapeValueImpl)(me).Clear()
	return capi.ErrNoError
}
