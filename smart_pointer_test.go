package cobia

import (
	"testing"
	"unsafe"

	"github.com/cape-open/cobia/capi"
)

// mockObject counts reference operations so tests can assert the
// ownership discipline: one release per owned copy, no more, no less.
type mockObject struct {
	iface    capi.ICapeInterface
	adds     int
	releases int
	extra    capi.CapeUUID
}

var mockVTable = capi.ICapeInterfaceVTable{
	Base: capi.ICobiaBaseVTable{
		AddReference: func(me unsafe.Pointer) { (*mockObject)(me).adds++ },
		Release:      func(me unsafe.Pointer) { (*mockObject)(me).releases++ },
	},
	QueryInterface: func(me unsafe.Pointer, iid *capi.CapeUUID, iface **capi.ICapeInterface) capi.CapeResult {
		m := (*mockObject)(me)
		if *iid == ICapeInterfaceUUID || *iid == m.extra {
			m.adds++
			*iface = &m.iface
			return capi.ErrNoError
		}
		return capi.ErrNoInterface
	},
	GetLastError: func(me unsafe.Pointer, err **capi.ICapeError) capi.CapeResult {
		return capi.ErrNoSuchItem
	},
}

func newMockObject() *mockObject {
	m := &mockObject{}
	m.iface = capi.ICapeInterface{VTbl: &mockVTable, Me: unsafe.Pointer(m)}
	return m
}

func TestObjectOwnershipSymmetry(t *testing.T) {
	m := newMockObject()

	o := CapeObjectFromInterfacePointer(&m.iface)
	clone := o.Clone()
	clone.Release()
	o.Release()

	if m.adds != 2 || m.releases != 2 {
		t.Fatalf("adds=%d releases=%d, want 2/2", m.adds, m.releases)
	}

	// Release on an already released pointer is a no-op.
	o.Release()
	if m.releases != 2 {
		t.Fatal("double release reached the object")
	}
}

func TestObjectAttachTakesNoReference(t *testing.T) {
	m := newMockObject()
	o := AttachCapeObject(&m.iface)
	if m.adds != 0 {
		t.Fatalf("attach added %d references", m.adds)
	}
	o.Release()
	if m.releases != 1 {
		t.Fatalf("releases=%d", m.releases)
	}
}

func TestObjectDetachKeepsReference(t *testing.T) {
	m := newMockObject()
	o := CapeObjectFromInterfacePointer(&m.iface)
	iface := o.Detach()
	if iface != &m.iface {
		t.Fatal("detach returned wrong interface")
	}
	if m.releases != 0 {
		t.Fatal("detach released the reference")
	}
	if !o.IsNil() {
		t.Fatal("pointer must be empty after detach")
	}
	// The detached reference is now the caller's to release.
	iface.VTbl.Base.Release(iface.Me)
	if m.releases != 1 {
		t.Fatalf("releases=%d", m.releases)
	}
}

func TestObjectConstructorPanicsOnNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on nil interface")
		}
	}()
	CapeObjectFromInterfacePointer(nil)
}

func TestQueryInterfaceSuccess(t *testing.T) {
	m := newMockObject()
	m.extra = capi.MustParseUUID("11111111-2222-3333-4444-555555555555")

	o := CapeObjectFromInterfacePointer(&m.iface)
	defer o.Release()

	derived, err := o.QueryInterface(m.extra)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	derived.Release()

	if m.adds != 2 || m.releases != 1 {
		t.Fatalf("adds=%d releases=%d", m.adds, m.releases)
	}
}

func TestQueryInterfaceFailureIsOrdinary(t *testing.T) {
	m := newMockObject()
	o := CapeObjectFromInterfacePointer(&m.iface)
	defer o.Release()

	_, err := o.QueryInterface(capi.MustParseUUID("99999999-9999-9999-9999-999999999999"))
	if err == nil {
		t.Fatal("expected error for unsupported interface")
	}
	if err.Code() != capi.ErrNoInterface {
		t.Fatalf("code %d", err.Code())
	}
}

func TestSupportsProbes(t *testing.T) {
	m := newMockObject()
	m.extra = capi.MustParseUUID("11111111-2222-3333-4444-555555555555")
	o := CapeObjectFromInterfacePointer(&m.iface)
	defer o.Release()

	if !o.Supports(m.extra) {
		t.Fatal("extra interface should be supported")
	}
	if o.Supports(capi.MustParseUUID("99999999-9999-9999-9999-999999999999")) {
		t.Fatal("unknown interface reported supported")
	}
	// The probe reference must have been balanced.
	if m.adds-m.releases != 1 {
		t.Fatalf("adds=%d releases=%d, want delta 1", m.adds, m.releases)
	}
}
