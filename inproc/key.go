package inproc

import (
	"sync/atomic"
	"unsafe"

	"github.com/cape-open/cobia"
	"github.com/cape-open/cobia/capi"
)

// keyObject serves one tree node over the registry key interface. The
// tree itself is immutable; the object only carries the reference count.
type keyObject struct {
	iface capi.ICapeRegistryKey
	refs  atomic.Int32
	node  *node
}

var keyObjectVTable = capi.ICapeRegistryKeyVTable{
	Base: capi.ICobiaBaseVTable{
		AddReference: keyAddReference,
		Release:      keyRelease,
	},
	GetValues:       keyGetValues,
	GetKeys:         keyGetKeys,
	GetValueType:    keyGetValueType,
	GetStringValue:  keyGetStringValue,
	GetIntegerValue: keyGetIntegerValue,
	GetUUIDValue:    keyGetUUIDValue,
	IsAllUsers:      keyIsAllUsers,
}

// keyGetSubKey references keyObjectVTable through newKeyObject, so the
// slot is filled here rather than in the composite literal.
func init() {
	keyObjectVTable.GetSubKey = keyGetSubKey
}

// newKeyObject creates a served key with one reference.
func newKeyObject(n *node) *keyObject {
	k := &keyObject{node: n}
	k.refs.Store(1)
	k.iface = capi.ICapeRegistryKey{VTbl: &keyObjectVTable, Me: unsafe.Pointer(k)}
	return k
}

func keyAddReference(me unsafe.Pointer) {
	(*keyObject)(me).refs.Add(1)
}

func keyRelease(me unsafe.Pointer) {
	(*keyObject)(me).refs.Add(-1)
}

func keyGetValues(me unsafe.Pointer, names *capi.ICapeArrayString) capi.CapeResult {
	if names == nil {
		return capi.ErrNullPointer
	}
	k := (*keyObject)(me)
	return cobia.WrapCapeArrayStringOut(*names).SetStrings(k.node.valueNames)
}

func keyGetKeys(me unsafe.Pointer, names *capi.ICapeArrayString) capi.CapeResult {
	if names == nil {
		return capi.ErrNullPointer
	}
	k := (*keyObject)(me)
	return cobia.WrapCapeArrayStringOut(*names).SetStrings(k.node.keyNames)
}

// resolveValue finds the named value on this key or, when subKey is not
// nil, on the key at the relative path.
func (k *keyObject) resolveValue(valueName, subKey *capi.CapeCharacter) (value, capi.CapeResult) {
	if valueName == nil {
		return value{}, capi.ErrNullPointer
	}
	n := k.node
	if subKey != nil {
		found, ok := n.lookup(cobia.StringFromNullTerminated(subKey))
		if !ok {
			return value{}, capi.ErrNotFound
		}
		n = found
	}
	v, ok := n.values.Get(cobia.StringFromNullTerminated(valueName))
	if !ok {
		return value{}, capi.ErrNoSuchItem
	}
	return v, capi.ErrNoError
}

func keyGetValueType(me unsafe.Pointer, valueName, subKey *capi.CapeCharacter, valueType *capi.CapeEnumeration) capi.CapeResult {
	if valueType == nil {
		return capi.ErrNullPointer
	}
	v, res := (*keyObject)(me).resolveValue(valueName, subKey)
	if res != capi.ErrNoError {
		return res
	}
	*valueType = v.kind
	return capi.ErrNoError
}

func keyGetStringValue(me unsafe.Pointer, valueName, subKey *capi.CapeCharacter, out *capi.ICapeString) capi.CapeResult {
	v, res := (*keyObject)(me).resolveValue(valueName, subKey)
	if res != capi.ErrNoError {
		return res
	}
	if v.kind != capi.RegistryValueString {
		return capi.ErrNoSuchItem
	}
	return cobia.WriteCapeString(out, v.str)
}

func keyGetIntegerValue(me unsafe.Pointer, valueName, subKey *capi.CapeCharacter, out *int32) capi.CapeResult {
	if out == nil {
		return capi.ErrNullPointer
	}
	v, res := (*keyObject)(me).resolveValue(valueName, subKey)
	if res != capi.ErrNoError {
		return res
	}
	if v.kind != capi.RegistryValueInteger {
		return capi.ErrNoSuchItem
	}
	*out = v.integer
	return capi.ErrNoError
}

func keyGetUUIDValue(me unsafe.Pointer, valueName, subKey *capi.CapeCharacter, out *capi.CapeUUID) capi.CapeResult {
	if out == nil {
		return capi.ErrNullPointer
	}
	v, res := (*keyObject)(me).resolveValue(valueName, subKey)
	if res != capi.ErrNoError {
		return res
	}
	if v.kind != capi.RegistryValueUUID {
		return capi.ErrNoSuchItem
	}
	*out = v.uuid
	return capi.ErrNoError
}

func keyGetSubKey(me unsafe.Pointer, name *capi.CapeCharacter, key **capi.ICapeRegistryKey) capi.CapeResult {
	if name == nil || key == nil {
		return capi.ErrNullPointer
	}
	k := (*keyObject)(me)
	n, ok := k.node.lookup(cobia.StringFromNullTerminated(name))
	if !ok {
		return capi.ErrNotFound
	}
	*key = &newKeyObject(n).iface
	return capi.ErrNoError
}

func keyIsAllUsers(me unsafe.Pointer, allUsers *capi.CapeBoolean) capi.CapeResult {
	if allUsers == nil {
		return capi.ErrNullPointer
	}
	*allUsers = capi.ToCapeBoolean((*keyObject)(me).node.allUsers)
	return capi.ErrNoError
}
