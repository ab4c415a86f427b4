package capi

import "unsafe"

// ICapeRegistryKeyVTable is the read-side registry key interface. It
// derives from ICobiaBase. Value getters take a null terminated value name
// and an optional (possibly nil) null terminated sub key path relative to
// this key.
type ICapeRegistryKeyVTable struct {
	Base ICobiaBaseVTable

	GetValues func(me unsafe.Pointer, names *ICapeArrayString) CapeResult
	GetKeys   func(me unsafe.Pointer, names *ICapeArrayString) CapeResult

	GetValueType    func(me unsafe.Pointer, valueName, subKey *CapeCharacter, valueType *CapeEnumeration) CapeResult
	GetStringValue  func(me unsafe.Pointer, valueName, subKey *CapeCharacter, value *ICapeString) CapeResult
	GetIntegerValue func(me unsafe.Pointer, valueName, subKey *CapeCharacter, value *int32) CapeResult
	GetUUIDValue    func(me unsafe.Pointer, valueName, subKey *CapeCharacter, value *CapeUUID) CapeResult

	// GetSubKey opens a child key; the out pointer carries a fresh owned
	// reference.
	GetSubKey func(me unsafe.Pointer, name *CapeCharacter, key **ICapeRegistryKey) CapeResult

	// IsAllUsers reports whether the key lives in the machine-wide hive.
	IsAllUsers func(me unsafe.Pointer, allUsers *CapeBoolean) CapeResult
}

// ICapeRegistryKey is a reference counted registry key object.
type ICapeRegistryKey struct {
	VTbl *ICapeRegistryKeyVTable
	Me   unsafe.Pointer
}
