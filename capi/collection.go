package capi

import "unsafe"

// ICapeCollectionVTable describes an ordered, name addressable set of
// objects. ICapeCollection derives from ICapeInterface; the base slots
// come first so a collection pointer can be cast to the base interface.
type ICapeCollectionVTable struct {
	Base ICapeInterfaceVTable

	// GetCount yields the number of items.
	GetCount func(me unsafe.Pointer, count *CapeInteger) CapeResult

	// ItemByIndex yields the item at a zero based index as a fresh owned
	// reference.
	ItemByIndex func(me unsafe.Pointer, index CapeInteger, item **ICapeInterface) CapeResult

	// ItemByName yields the item with the given case insensitive name as
	// a fresh owned reference.
	ItemByName func(me unsafe.Pointer, name *ICapeString, item **ICapeInterface) CapeResult
}

// ICapeCollection is a reference to a collection object.
type ICapeCollection struct {
	VTbl *ICapeCollectionVTable
	Me   unsafe.Pointer
}
