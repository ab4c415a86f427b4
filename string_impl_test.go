package cobia

import (
	"testing"

	"github.com/cape-open/cobia/capi"
)

func TestCapeStringRoundTrip(t *testing.T) {
	s := CapeStringFromString("Methanol")
	if s.String() != "Methanol" {
		t.Fatalf("got %q, want %q", s.String(), "Methanol")
	}
	if s.Len() != len("Methanol") {
		t.Fatalf("got len %d, want %d", s.Len(), len("Methanol"))
	}

	iface := s.AsCapeStringIn()
	var ptr *capi.CapeCharacter
	var size capi.CapeSize
	iface.VTbl.Get(iface.Me, &ptr, &size)
	if got := StringFromRaw(ptr, size); got != "Methanol" {
		t.Fatalf("via interface: got %q", got)
	}
}

func TestCapeStringEmpty(t *testing.T) {
	s := NewCapeString()
	if !s.IsEmpty() {
		t.Fatal("new string should be empty")
	}
	iface := s.AsCapeStringIn()
	var ptr *capi.CapeCharacter
	var size capi.CapeSize
	iface.VTbl.Get(iface.Me, &ptr, &size)
	if size != 0 {
		t.Fatalf("empty string reports size %d", size)
	}
	if ptr == nil {
		t.Fatal("buffer must stay terminated even when empty")
	}
	if *ptr != 0 {
		t.Fatal("empty string buffer must start with the terminator")
	}
}

func TestCapeStringSetThroughInterface(t *testing.T) {
	s := NewCapeString()
	out := s.AsCapeStringOut()
	if res := WriteCapeString(&out, "päällikkö"); res != capi.ErrNoError {
		t.Fatalf("set failed with %d", res)
	}
	if s.String() != "päällikkö" {
		t.Fatalf("got %q", s.String())
	}

	// Overwrite with shorter content.
	if res := WriteCapeString(&out, "ok"); res != capi.ErrNoError {
		t.Fatalf("set failed with %d", res)
	}
	if s.String() != "ok" {
		t.Fatalf("after overwrite: got %q", s.String())
	}
}

func TestStringFromNullTerminated(t *testing.T) {
	s := CapeStringFromString("water")
	if got := StringFromNullTerminated(s.AsCapeCharConst()); got != "water" {
		t.Fatalf("got %q", got)
	}
	if got := StringFromNullTerminated(nil); got != "" {
		t.Fatalf("nil pointer decodes to %q", got)
	}
}

func TestCapeStringSetFromProvider(t *testing.T) {
	src := CapeStringFromString("Benzene")
	dst := NewCapeString()
	dst.Set(src)
	if dst.String() != "Benzene" {
		t.Fatalf("got %q", dst.String())
	}
	src.SetString("changed")
	if dst.String() != "Benzene" {
		t.Fatal("destination must own its copy")
	}
}
