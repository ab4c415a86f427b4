package registry

import (
	"unsafe"

	"go.uber.org/zap"

	"github.com/cape-open/cobia"
	"github.com/cape-open/cobia/capi"
)

// Key is an owned reference to a registry key.
type Key struct {
	iface *capi.ICapeRegistryKey
}

// Root opens the registry root.
func Root() (Key, *cobia.Error) {
	return open(nil, "<root>")
}

// Open opens the key at a path relative to the root, path elements
// separated by '/'.
func Open(path string) (Key, *cobia.Error) {
	s := cobia.CapeStringFromString(path)
	return open(s.AsCapeCharConst(), path)
}

func open(path *capi.CapeCharacter, display string) (Key, *cobia.Error) {
	p := capi.GetProcs()
	if p == nil || p.GetRegistryKey == nil {
		return Key{}, cobia.NewError("no middleware backend installed")
	}
	var raw *capi.ICapeRegistryKey
	if res := p.GetRegistryKey(path, &raw); res != capi.ErrNoError {
		Logger().Debug("registry open failed",
			zap.String("path", display),
			zap.Int32("code", res))
		return Key{}, cobia.ErrorFromCode(res)
	}
	if raw == nil {
		return Key{}, cobia.ErrorFromCode(capi.ErrNullPointer)
	}
	return Attach(raw), nil
}

// Attach adopts an already counted reference. Panics on nil.
func Attach(iface *capi.ICapeRegistryKey) Key {
	if iface == nil {
		panic("registry: attach of nil key interface")
	}
	return Key{iface: iface}
}

// FromInterfacePointer takes a new reference on iface. Panics on nil.
func FromInterfacePointer(iface *capi.ICapeRegistryKey) Key {
	if iface == nil {
		panic("registry: nil key interface")
	}
	iface.VTbl.Base.AddReference(iface.Me)
	return Key{iface: iface}
}

// IsNil reports whether the key holds no object.
func (k Key) IsNil() bool {
	return k.iface == nil
}

// Interface returns the raw interface without transferring ownership.
func (k Key) Interface() *capi.ICapeRegistryKey {
	return k.iface
}

// Clone takes an additional reference.
func (k Key) Clone() Key {
	if k.iface != nil {
		k.iface.VTbl.Base.AddReference(k.iface.Me)
	}
	return Key{iface: k.iface}
}

// Release drops this copy's reference. Safe on a nil key.
func (k *Key) Release() {
	if k.iface != nil {
		k.iface.VTbl.Base.Release(k.iface.Me)
		k.iface = nil
	}
}

// SubKey opens the child key with the given case insensitive name.
func (k Key) SubKey(name string) (Key, *cobia.Error) {
	s := cobia.CapeStringFromString(name)
	var raw *capi.ICapeRegistryKey
	if res := k.iface.VTbl.GetSubKey(k.iface.Me, s.AsCapeCharConst(), &raw); res != capi.ErrNoError {
		return Key{}, cobia.ErrorFromCode(res)
	}
	if raw == nil {
		return Key{}, cobia.ErrorFromCode(capi.ErrNullPointer)
	}
	return Attach(raw), nil
}

// Values lists the names of the values stored on this key.
func (k Key) Values() ([]string, *cobia.Error) {
	return k.fetchNames(k.iface.VTbl.GetValues)
}

// Keys lists the names of the child keys.
func (k Key) Keys() ([]string, *cobia.Error) {
	return k.fetchNames(k.iface.VTbl.GetKeys)
}

func (k Key) fetchNames(get func(me unsafe.Pointer, names *capi.ICapeArrayString) capi.CapeResult) ([]string, *cobia.Error) {
	a := cobia.NewCapeArrayStringVec()
	out := a.AsCapeArrayOut()
	if res := get(k.iface.Me, &out); res != capi.ErrNoError {
		return nil, cobia.ErrorFromCode(res)
	}
	return a.Strings(), nil
}

// ValueType reports the kind of the named value. subKey may be empty to
// address this key.
func (k Key) ValueType(valueName, subKey string) (cobia.RegistryValueKind, *cobia.Error) {
	var kind capi.CapeEnumeration
	res := k.iface.VTbl.GetValueType(k.iface.Me, namePtr(valueName), optionalPtr(subKey), &kind)
	if res != capi.ErrNoError {
		return cobia.RegistryValueKindEmpty, cobia.ErrorFromCode(res)
	}
	return cobia.RegistryValueKind(kind), nil
}

// StringValue fetches a string value. subKey may be empty.
func (k Key) StringValue(valueName, subKey string) (string, *cobia.Error) {
	s := cobia.NewCapeString()
	out := s.AsCapeStringOut()
	res := k.iface.VTbl.GetStringValue(k.iface.Me, namePtr(valueName), optionalPtr(subKey), &out)
	if res != capi.ErrNoError {
		return "", cobia.ErrorFromCode(res)
	}
	return s.String(), nil
}

// IntegerValue fetches an integer value. subKey may be empty.
func (k Key) IntegerValue(valueName, subKey string) (int32, *cobia.Error) {
	var v int32
	res := k.iface.VTbl.GetIntegerValue(k.iface.Me, namePtr(valueName), optionalPtr(subKey), &v)
	if res != capi.ErrNoError {
		return 0, cobia.ErrorFromCode(res)
	}
	return v, nil
}

// UUIDValue fetches a UUID value. subKey may be empty.
func (k Key) UUIDValue(valueName, subKey string) (capi.CapeUUID, *cobia.Error) {
	var v capi.CapeUUID
	res := k.iface.VTbl.GetUUIDValue(k.iface.Me, namePtr(valueName), optionalPtr(subKey), &v)
	if res != capi.ErrNoError {
		return capi.CapeUUID{}, cobia.ErrorFromCode(res)
	}
	return v, nil
}

// AllUsers reports whether the key lives in the machine wide hive.
func (k Key) AllUsers() (bool, *cobia.Error) {
	var b capi.CapeBoolean
	if res := k.iface.VTbl.IsAllUsers(k.iface.Me, &b); res != capi.ErrNoError {
		return false, cobia.ErrorFromCode(res)
	}
	return capi.FromCapeBoolean(b), nil
}

func namePtr(s string) *capi.CapeCharacter {
	return cobia.CapeStringFromString(s).AsCapeCharConst()
}

// optionalPtr maps the empty string to a nil pointer, the ABI's way of
// omitting a sub key path.
func optionalPtr(s string) *capi.CapeCharacter {
	if s == "" {
		return nil
	}
	return namePtr(s)
}
