package cobia

import (
	"math"
	"testing"

	"github.com/cape-open/cobia/capi"
)

func TestArrayVecRoundTrip(t *testing.T) {
	a := CapeArrayVecFromSlice([]capi.CapeReal{4.5, 6.5, -1.0})
	in := WrapCapeArrayIn(a.AsCapeArrayIn())
	got := in.View()
	if len(got) != 3 || got[0] != 4.5 || got[1] != 6.5 || got[2] != -1.0 {
		t.Fatalf("got %v", got)
	}
}

func TestArrayVecResizeKeepsPrefix(t *testing.T) {
	a := CapeArrayVecFromSlice([]capi.CapeInteger{1, 2, 3})
	out := WrapCapeArrayOut(a.AsCapeArrayOut())

	view, res := out.Resize(5)
	if res != capi.ErrNoError {
		t.Fatalf("resize failed with %d", res)
	}
	if len(view) != 5 {
		t.Fatalf("resized view has len %d", len(view))
	}
	if view[0] != 1 || view[1] != 2 || view[2] != 3 {
		t.Fatalf("prefix lost: %v", view)
	}
	if view[3] != 0 || view[4] != 0 {
		t.Fatalf("new elements not zeroed: %v", view)
	}

	if _, res := out.Resize(2); res != capi.ErrNoError {
		t.Fatalf("shrink failed with %d", res)
	}
	if a.Len() != 2 {
		t.Fatalf("owner sees len %d after shrink", a.Len())
	}
}

func TestArrayVecSetSliceThroughInterface(t *testing.T) {
	a := NewCapeArrayVec[capi.CapeReal]()
	out := WrapCapeArrayOut(a.AsCapeArrayOut())
	if res := out.SetSlice([]capi.CapeReal{4.5, 6.5, -1.0}); res != capi.ErrNoError {
		t.Fatalf("set failed with %d", res)
	}
	if a.Len() != 3 || a.At(1) != 6.5 {
		t.Fatalf("owner sees %v", a.Slice())
	}
}

func TestArraySliceDeniesResize(t *testing.T) {
	backing := []capi.CapeReal{1, 2, 3}
	a := NewCapeArraySlice(backing)
	out := WrapCapeArrayOut(a.AsCapeArrayIn())

	if _, res := out.Resize(5); res != capi.ErrDenied {
		t.Fatalf("resize returned %d, want denied", res)
	}
	// A refused resize leaves the content untouched.
	if a.Len() != 3 {
		t.Fatalf("len changed to %d", a.Len())
	}
	view := out.View()
	if len(view) != 3 || view[0] != 1 {
		t.Fatalf("content changed: %v", view)
	}
}

func TestArrayScalarDefaultsToNaN(t *testing.T) {
	a := NewCapeArrayRealScalar()
	if !math.IsNaN(a.Value()) {
		t.Fatalf("default value %v, want NaN", a.Value())
	}
}

func TestArrayScalarSizeIsFixed(t *testing.T) {
	a := CapeArrayRealScalarFromValue(300.15)
	out := WrapCapeArrayOut(a.AsCapeArrayOut())

	if _, res := out.Resize(3); res != capi.ErrInvalidArgument {
		t.Fatalf("resize to 3 returned %d, want invalid argument", res)
	}
	if a.Value() != 300.15 {
		t.Fatalf("value changed to %v", a.Value())
	}

	view, res := out.Resize(1)
	if res != capi.ErrNoError {
		t.Fatalf("resize to 1 returned %d", res)
	}
	view[0] = 310.15
	if a.Value() != 310.15 {
		t.Fatalf("write through view not seen, value %v", a.Value())
	}
}

func TestArrayVecSetSliceReplacesContent(t *testing.T) {
	a := CapeArrayVecFromSlice([]capi.CapeReal{1, 2, 3})

	a.SetSlice([]capi.CapeReal{7.5, 8.5})
	if got := a.Slice(); len(got) != 2 || got[0] != 7.5 || got[1] != 8.5 {
		t.Fatalf("got %v", got)
	}

	a.SetSlice(nil)
	if a.Len() != 0 {
		t.Fatalf("len %d after clearing", a.Len())
	}
}

func TestArrayVecRejectsOversizedResize(t *testing.T) {
	a := CapeArrayVecFromSlice([]capi.CapeReal{1, 2, 3})
	out := WrapCapeArrayOut(a.AsCapeArrayOut())

	if _, res := out.Resize(-1); res != capi.ErrOutOfMemory {
		t.Fatalf("oversized resize returned %d, want out of memory", res)
	}
	if got := a.Slice(); len(got) != 3 || got[0] != 1 {
		t.Fatalf("content changed after refused resize: %v", got)
	}
}

func TestArrayVecThenSliceView(t *testing.T) {
	// Fill an owning array through the interface, element by element,
	// then expose the same data as a read-only view.
	a := NewCapeArrayVec[capi.CapeReal]()
	out := WrapCapeArrayOut(a.AsCapeArrayOut())

	buf, res := out.Resize(3)
	if res != capi.ErrNoError {
		t.Fatalf("resize failed with %d", res)
	}
	buf[0], buf[1], buf[2] = 4.5, 6.5, -1.0

	got := a.Slice()
	if len(got) != 3 || got[0] != 4.5 || got[1] != 6.5 || got[2] != -1.0 {
		t.Fatalf("got %v", got)
	}

	view := NewCapeArraySlice(a.Slice())
	viewOut := WrapCapeArrayOut(view.AsCapeArrayIn())
	if _, res := viewOut.Resize(5); res != capi.ErrDenied {
		t.Fatalf("view resize returned %d, want denied", res)
	}
	if viewOut.Len() != 3 {
		t.Fatalf("view len %d after refused resize", viewOut.Len())
	}
}

func TestArrayStringVecRoundTrip(t *testing.T) {
	a := CapeArrayStringVecFromStrings([]string{"Water", "Ethanol"})
	in := WrapCapeArrayStringIn(a.AsCapeArrayIn())
	got := in.Strings()
	if len(got) != 2 || got[0] != "Water" || got[1] != "Ethanol" {
		t.Fatalf("got %v", got)
	}
}

func TestArrayStringVecSetThroughInterface(t *testing.T) {
	a := NewCapeArrayStringVec()
	out := WrapCapeArrayStringOut(a.AsCapeArrayOut())
	if res := out.SetStrings([]string{"Methane", "Ethane", "Propane"}); res != capi.ErrNoError {
		t.Fatalf("set failed with %d", res)
	}
	if a.Len() != 3 || a.StringAt(2) != "Propane" {
		t.Fatalf("owner sees %v", a.Strings())
	}

	// Shrink through the interface keeps the surviving prefix.
	if res := out.SetStrings([]string{"Butane"}); res != capi.ErrNoError {
		t.Fatalf("set failed with %d", res)
	}
	if a.Len() != 1 || a.StringAt(0) != "Butane" {
		t.Fatalf("after shrink: %v", a.Strings())
	}
}

func TestArrayValueVecResizeCreatesEmpty(t *testing.T) {
	a := NewCapeArrayValueVec()
	a.Append(CapeValueFromReal(1.5))

	iface := a.AsCapeArrayOut()
	var ptr *capi.ICapeValue
	if res := iface.VTbl.SetSize(iface.Me, 3, &ptr); res != capi.ErrNoError {
		t.Fatalf("resize failed with %d", res)
	}
	if a.Len() != 3 {
		t.Fatalf("len %d", a.Len())
	}
	if got, ok := a.Item(0).RealValue(); !ok || got != 1.5 {
		t.Fatalf("first element lost: %v %v", got, ok)
	}
	if !a.Item(2).IsEmpty() {
		t.Fatal("new elements must be empty values")
	}
}
