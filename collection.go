package cobia

import (
	"sync/atomic"
	"unsafe"

	"github.com/cape-open/cobia/capi"
)

// ICapeCollectionUUID identifies the collection interface in capability
// queries.
var ICapeCollectionUUID = capi.MustParseUUID("deafea79-d349-4d03-bb05-377c0d3e478b")

// CapeCollection is an owned reference to a collection of objects,
// addressable by zero based index or by case insensitive name.
type CapeCollection struct {
	iface *capi.ICapeCollection
}

// AttachCapeCollection adopts an already counted reference. Panics on
// nil.
func AttachCapeCollection(iface *capi.ICapeCollection) CapeCollection {
	if iface == nil {
		panic("cobia: attach of nil collection interface")
	}
	return CapeCollection{iface: iface}
}

// CapeCollectionFromInterfacePointer takes a new reference on iface.
// Panics on nil.
func CapeCollectionFromInterfacePointer(iface *capi.ICapeCollection) CapeCollection {
	if iface == nil {
		panic("cobia: nil collection interface")
	}
	iface.VTbl.Base.Base.AddReference(iface.Me)
	return CapeCollection{iface: iface}
}

// CapeCollectionFromObject asks other for the collection interface.
func CapeCollectionFromObject(other CapeObject) (CapeCollection, *Error) {
	obj, err := other.QueryInterface(ICapeCollectionUUID)
	if err != nil {
		return CapeCollection{}, err
	}
	// A positive capability query guarantees the collection layout.
	return CapeCollection{iface: (*capi.ICapeCollection)(unsafe.Pointer(obj.Detach()))}, nil
}

// IsNil reports whether the pointer holds no object.
func (c CapeCollection) IsNil() bool {
	return c.iface == nil
}

// Clone takes an additional reference.
func (c CapeCollection) Clone() CapeCollection {
	if c.iface != nil {
		c.iface.VTbl.Base.Base.AddReference(c.iface.Me)
	}
	return CapeCollection{iface: c.iface}
}

// Release drops this copy's reference. Safe on a nil pointer.
func (c *CapeCollection) Release() {
	if c.iface != nil {
		c.iface.VTbl.Base.Base.Release(c.iface.Me)
		c.iface = nil
	}
}

// Count returns the number of items. A failing count is treated as
// empty.
func (c CapeCollection) Count() int {
	var n capi.CapeInteger
	if res := c.iface.VTbl.GetCount(c.iface.Me, &n); res != capi.ErrNoError {
		return 0
	}
	return int(n)
}

// At returns the item at index as an owned reference.
func (c CapeCollection) At(index int) (CapeObject, *Error) {
	var item *capi.ICapeInterface
	res := c.iface.VTbl.ItemByIndex(c.iface.Me, capi.CapeInteger(index), &item)
	if err := errorFromResult(res, capi.AsCapeInterface(c.iface)); err != nil {
		return CapeObject{}, err
	}
	if item == nil {
		return CapeObject{}, ErrorFromCode(capi.ErrNullPointer)
	}
	return AttachCapeObject(item), nil
}

// Get returns the item with the given case insensitive name as an owned
// reference.
func (c CapeCollection) Get(name string) (CapeObject, *Error) {
	s := CapeStringFromString(name)
	in := s.AsCapeStringIn()
	var item *capi.ICapeInterface
	res := c.iface.VTbl.ItemByName(c.iface.Me, &in, &item)
	if err := errorFromResult(res, capi.AsCapeInterface(c.iface)); err != nil {
		return CapeObject{}, err
	}
	if item == nil {
		return CapeObject{}, ErrorFromCode(capi.ErrNullPointer)
	}
	return AttachCapeObject(item), nil
}

// Each calls fn with an owned reference to every item in index order
// until fn returns false. The reference is released after each call.
func (c CapeCollection) Each(fn func(index int, item CapeObject) bool) *Error {
	count := c.Count()
	for i := 0; i < count; i++ {
		item, err := c.At(i)
		if err != nil {
			return err
		}
		keep := fn(i, item)
		item.Release()
		if !keep {
			return nil
		}
	}
	return nil
}

// CollectionObject is a served collection holding owned references to
// its items. Items are addressable by index and by case insensitive
// name; the object drops its item references when the last reference to
// the collection itself is dropped.
type CollectionObject struct {
	iface  capi.ICapeCollection
	refs   atomic.Int32
	items  []CapeObject
	names  []string
	byName *CapeOpenMap[int]
}

var collectionObjectVTable = capi.ICapeCollectionVTable{
	Base: capi.ICapeInterfaceVTable{
		Base: capi.ICobiaBaseVTable{
			AddReference: collectionAddReference,
			Release:      collectionRelease,
		},
		QueryInterface: collectionQueryInterface,
		GetLastError:   collectionGetLastError,
	},
	GetCount:    collectionGetCount,
	ItemByIndex: collectionItemByIndex,
	ItemByName:  collectionItemByName,
}

// NewCollectionObject creates a served collection with one reference.
// Ownership of the item references moves to the collection; names and
// items correspond by position.
func NewCollectionObject(names []string, items []CapeObject) *CollectionObject {
	c := &CollectionObject{items: items, names: names, byName: NewCapeOpenMap[int]()}
	c.refs.Store(1)
	c.iface = capi.ICapeCollection{VTbl: &collectionObjectVTable, Me: unsafe.Pointer(c)}
	for i, name := range names {
		c.byName.Set(name, i)
	}
	return c
}

// Iface returns the collection interface without adding a reference.
func (c *CollectionObject) Iface() *capi.ICapeCollection {
	return &c.iface
}

// NameAt returns the name of the item at index i.
func (c *CollectionObject) NameAt(i int) string {
	return c.names[i]
}

// AsCapeCollection hands out a fresh owned reference.
func (c *CollectionObject) AsCapeCollection() CapeCollection {
	return CapeCollectionFromInterfacePointer(&c.iface)
}

// Release drops the creator's reference.
func (c *CollectionObject) Release() {
	collectionRelease(unsafe.Pointer(c))
}

func collectionAddReference(me unsafe.Pointer) {
	(*CollectionObject)(me).refs.Add(1)
}

func collectionRelease(me unsafe.Pointer) {
	c := (*CollectionObject)(me)
	if c.refs.Add(-1) != 0 {
		return
	}
	for i := range c.items {
		c.items[i].Release()
	}
	c.items = nil
}

func collectionQueryInterface(me unsafe.Pointer, iid *capi.CapeUUID, iface **capi.ICapeInterface) capi.CapeResult {
	if iid == nil || iface == nil {
		return capi.ErrNullPointer
	}
	c := (*CollectionObject)(me)
	switch *iid {
	case ICapeInterfaceUUID, ICapeCollectionUUID:
		c.refs.Add(1)
		*iface = capi.AsCapeInterface(&c.iface)
		return capi.ErrNoError
	}
	return capi.ErrNoInterface
}

func collectionGetLastError(me unsafe.Pointer, err **capi.ICapeError) capi.CapeResult {
	return capi.ErrNoSuchItem
}

func collectionGetCount(me unsafe.Pointer, count *capi.CapeInteger) capi.CapeResult {
	if count == nil {
		return capi.ErrNullPointer
	}
	*count = capi.CapeInteger(len((*CollectionObject)(me).items))
	return capi.ErrNoError
}

func collectionItemByIndex(me unsafe.Pointer, index capi.CapeInteger, item **capi.ICapeInterface) capi.CapeResult {
	if item == nil {
		return capi.ErrNullPointer
	}
	c := (*CollectionObject)(me)
	if index < 0 || int(index) >= len(c.items) {
		return capi.ErrBounds
	}
	owned := c.items[index].Clone()
	*item = owned.Detach()
	return capi.ErrNoError
}

func collectionItemByName(me unsafe.Pointer, name *capi.ICapeString, item **capi.ICapeInterface) capi.CapeResult {
	if name == nil || item == nil {
		return capi.ErrNullPointer
	}
	c := (*CollectionObject)(me)
	var ptr *capi.CapeCharacter
	var size capi.CapeSize
	name.VTbl.Get(name.Me, &ptr, &size)
	i, ok := c.byName.Get(decodeUnits(unitsFromRaw(ptr, size)))
	if !ok {
		return capi.ErrNoSuchItem
	}
	owned := c.items[i].Clone()
	*item = owned.Detach()
	return capi.ErrNoError
}
