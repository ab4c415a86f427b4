package cobia

import (
	"github.com/cape-open/cobia/capi"
)

// CapeValueIn wraps a tagged value interface received as a read
// argument. The wrapper borrows the interface for the duration of the
// call.
type CapeValueIn struct {
	iface capi.ICapeValue
}

// WrapCapeValueIn wraps a received value interface.
func WrapCapeValueIn(iface capi.ICapeValue) CapeValueIn {
	return CapeValueIn{iface: iface}
}

// ValueType returns the kind of the held value.
func (v CapeValueIn) ValueType() capi.CapeValueType {
	return v.iface.VTbl.GetValueType(v.iface.Me)
}

// StringValue fetches the held string. The producer reports no such item
// when a different kind is held.
func (v CapeValueIn) StringValue() (string, capi.CapeResult) {
	var ptr *capi.CapeCharacter
	var size capi.CapeSize
	if res := v.iface.VTbl.GetStringValue(v.iface.Me, &ptr, &size); res != capi.ErrNoError {
		return "", res
	}
	return decodeUnits(unitsFromRaw(ptr, size)), capi.ErrNoError
}

// IntegerValue fetches the held integer.
func (v CapeValueIn) IntegerValue() (capi.CapeInteger, capi.CapeResult) {
	var out capi.CapeInteger
	res := v.iface.VTbl.GetIntegerValue(v.iface.Me, &out)
	return out, res
}

// BooleanValue fetches the held boolean.
func (v CapeValueIn) BooleanValue() (bool, capi.CapeResult) {
	var out capi.CapeBoolean
	res := v.iface.VTbl.GetBooleanValue(v.iface.Me, &out)
	return capi.FromCapeBoolean(out), res
}

// RealValue fetches the held real.
func (v CapeValueIn) RealValue() (capi.CapeReal, capi.CapeResult) {
	var out capi.CapeReal
	res := v.iface.VTbl.GetRealValue(v.iface.Me, &out)
	return out, res
}

// Materialize copies the held value into an owned CapeValueImpl.
func (v CapeValueIn) Materialize() (*CapeValueImpl, capi.CapeResult) {
	out := NewCapeValue()
	if res := out.Set(wrappedValueProvider{v.iface}); res != capi.ErrNoError {
		return nil, res
	}
	return out, capi.ErrNoError
}

type wrappedValueProvider struct {
	iface capi.ICapeValue
}

func (p wrappedValueProvider) AsCapeValueIn() capi.ICapeValue {
	return p.iface
}

// CapeValueOut wraps a tagged value interface received as a writable
// argument.
type CapeValueOut struct {
	CapeValueIn
}

// WrapCapeValueOut wraps a received writable value interface.
func WrapCapeValueOut(iface capi.ICapeValue) CapeValueOut {
	return CapeValueOut{CapeValueIn{iface: iface}}
}

// SetString stores s in the consumer's value.
func (v CapeValueOut) SetString(s string) capi.CapeResult {
	units := terminated(encodeUnits(s))
	return v.iface.VTbl.SetStringValue(v.iface.Me, &units[0], capi.CapeSize(len(units)-1))
}

// SetInteger stores i in the consumer's value.
func (v CapeValueOut) SetInteger(i capi.CapeInteger) capi.CapeResult {
	return v.iface.VTbl.SetIntegerValue(v.iface.Me, i)
}

// SetBoolean stores b in the consumer's value.
func (v CapeValueOut) SetBoolean(b bool) capi.CapeResult {
	return v.iface.VTbl.SetBooleanValue(v.iface.Me, capi.ToCapeBoolean(b))
}

// SetReal stores r in the consumer's value.
func (v CapeValueOut) SetReal(r capi.CapeReal) capi.CapeResult {
	return v.iface.VTbl.SetRealValue(v.iface.Me, r)
}

// Clear empties the consumer's value.
func (v CapeValueOut) Clear() capi.CapeResult {
	return v.iface.VTbl.Clear(v.iface.Me)
}
