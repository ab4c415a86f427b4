package cobia

import (
	"testing"

	"github.com/cape-open/cobia/capi"
)

func newTestCollection(t *testing.T, names ...string) (*CollectionObject, []*ObjectBase) {
	t.Helper()
	var items []CapeObject
	var bases []*ObjectBase
	for range names {
		b := NewObjectBase()
		items = append(items, b.AsCapeObject())
		b.Release()
		bases = append(bases, b)
	}
	return NewCollectionObject(names, items), bases
}

func TestCollectionCountAndIndex(t *testing.T) {
	co, _ := newTestCollection(t, "Feed", "Product")
	defer co.Release()

	c := co.AsCapeCollection()
	defer c.Release()

	if c.Count() != 2 {
		t.Fatalf("count %d", c.Count())
	}

	item, err := c.At(0)
	if err != nil {
		t.Fatalf("at(0): %v", err)
	}
	item.Release()

	if _, err := c.At(2); err == nil {
		t.Fatal("out of bounds index should fail")
	} else if err.Code() != capi.ErrBounds {
		t.Fatalf("code %d", err.Code())
	}
}

func TestCollectionByNameCaseInsensitive(t *testing.T) {
	co, bases := newTestCollection(t, "Feed", "Product")
	defer co.Release()

	c := co.AsCapeCollection()
	defer c.Release()

	item, err := c.Get("PRODUCT")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if item.Interface() != bases[1].Iface() {
		t.Fatal("wrong item returned")
	}
	item.Release()

	if _, err := c.Get("Bottoms"); err == nil {
		t.Fatal("unknown name should fail")
	} else if err.Code() != capi.ErrNoSuchItem {
		t.Fatalf("code %d", err.Code())
	}
}

func TestCollectionEach(t *testing.T) {
	co, _ := newTestCollection(t, "A", "B", "C")
	defer co.Release()

	c := co.AsCapeCollection()
	defer c.Release()

	var seen int
	if err := c.Each(func(i int, item CapeObject) bool {
		seen++
		return seen < 2
	}); err != nil {
		t.Fatalf("each: %v", err)
	}
	if seen != 2 {
		t.Fatalf("visited %d items, want early stop at 2", seen)
	}
}

func TestCollectionQueryInterface(t *testing.T) {
	co, _ := newTestCollection(t, "A")
	defer co.Release()

	base := CapeObjectFromInterfacePointer(capi.AsCapeInterface(co.Iface()))
	defer base.Release()

	c, err := CapeCollectionFromObject(base)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if c.Count() != 1 {
		t.Fatalf("count %d", c.Count())
	}
	c.Release()
}
