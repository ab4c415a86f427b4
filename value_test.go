package cobia

import (
	"testing"

	"github.com/cape-open/cobia/capi"
)

func TestValueHoldsOneKindAtATime(t *testing.T) {
	v := NewCapeValue()
	if !v.IsEmpty() {
		t.Fatal("new value should be empty")
	}

	v.SetString("C2H6")
	if v.ValueType() != capi.ValueTypeString {
		t.Fatalf("kind %d", v.ValueType())
	}
	if s, ok := v.StringValue(); !ok || s != "C2H6" {
		t.Fatalf("got %q, %v", s, ok)
	}

	// Setting a different kind replaces the string entirely.
	v.SetInteger(30)
	if _, ok := v.StringValue(); ok {
		t.Fatal("string survived integer store")
	}
	if i, ok := v.IntegerValue(); !ok || i != 30 {
		t.Fatalf("got %d, %v", i, ok)
	}

	v.Clear()
	if !v.IsEmpty() {
		t.Fatal("clear did not empty the value")
	}
	if _, ok := v.IntegerValue(); ok {
		t.Fatal("integer survived clear")
	}
}

func TestValueWrongKindThroughInterface(t *testing.T) {
	v := CapeValueFromReal(44.1)
	in := WrapCapeValueIn(v.AsCapeValueIn())

	if _, res := in.StringValue(); res != capi.ErrNoSuchItem {
		t.Fatalf("string getter on real value returned %d", res)
	}
	if _, res := in.IntegerValue(); res != capi.ErrNoSuchItem {
		t.Fatalf("integer getter on real value returned %d", res)
	}
	if r, res := in.RealValue(); res != capi.ErrNoError || r != 44.1 {
		t.Fatalf("real getter: %v, %d", r, res)
	}
}

func TestValueSetStringThenGetInteger(t *testing.T) {
	v := NewCapeValue()
	out := WrapCapeValueOut(v.AsCapeValueOut())
	in := WrapCapeValueIn(v.AsCapeValueIn())

	if res := out.SetString("C2H6"); res != capi.ErrNoError {
		t.Fatalf("set string returned %d", res)
	}
	if _, res := in.IntegerValue(); res != capi.ErrNoSuchItem {
		t.Fatalf("integer getter on string value returned %d", res)
	}
	if s, res := in.StringValue(); res != capi.ErrNoError || s != "C2H6" {
		t.Fatalf("string getter: %q, %d", s, res)
	}
}

func TestValueStringPointerStableUntilMutation(t *testing.T) {
	v := CapeValueFromString("ethane")
	iface := v.AsCapeValueIn()

	var ptr1, ptr2 *capi.CapeCharacter
	var size capi.CapeSize
	if res := iface.VTbl.GetStringValue(iface.Me, &ptr1, &size); res != capi.ErrNoError {
		t.Fatalf("get failed with %d", res)
	}
	if got := StringFromRaw(ptr1, size); got != "ethane" {
		t.Fatalf("got %q", got)
	}

	v.SetString("propane")
	if res := iface.VTbl.GetStringValue(iface.Me, &ptr2, &size); res != capi.ErrNoError {
		t.Fatalf("get failed with %d", res)
	}
	if got := StringFromRaw(ptr2, size); got != "propane" {
		t.Fatalf("after mutation: got %q", got)
	}
}

func TestValueSetThroughInterface(t *testing.T) {
	v := NewCapeValue()
	out := WrapCapeValueOut(v.AsCapeValueOut())

	if res := out.SetBoolean(true); res != capi.ErrNoError {
		t.Fatalf("set failed with %d", res)
	}
	if b, ok := v.BooleanValue(); !ok || !b {
		t.Fatalf("got %v, %v", b, ok)
	}

	if res := out.Clear(); res != capi.ErrNoError {
		t.Fatalf("clear failed with %d", res)
	}
	if out.ValueType() != capi.ValueTypeEmpty {
		t.Fatalf("kind %d after clear", out.ValueType())
	}
}

func TestValueCopyFromProvider(t *testing.T) {
	src := CapeValueFromString("methanol")
	dst := NewCapeValue()
	if res := dst.Set(src); res != capi.ErrNoError {
		t.Fatalf("copy failed with %d", res)
	}
	if s, ok := dst.StringValue(); !ok || s != "methanol" {
		t.Fatalf("got %q, %v", s, ok)
	}

	src.SetReal(1.0)
	if s, _ := dst.StringValue(); s != "methanol" {
		t.Fatal("destination must own its copy")
	}
}

func TestValueMaterialize(t *testing.T) {
	src := CapeValueFromInteger(42)
	in := WrapCapeValueIn(src.AsCapeValueIn())
	got, res := in.Materialize()
	if res != capi.ErrNoError {
		t.Fatalf("materialize failed with %d", res)
	}
	if i, ok := got.IntegerValue(); !ok || i != 42 {
		t.Fatalf("got %d, %v", i, ok)
	}
}
