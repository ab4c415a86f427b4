package cobia

import "testing"

func TestStringConstFoldsAtConstruction(t *testing.T) {
	c := CapeStringConstFromString("MolWeight")
	if c.String() != "molweight" {
		t.Fatalf("got %q", c.String())
	}
	if !c.EqualString("MOLWEIGHT") {
		t.Fatal("case insensitive compare failed")
	}
	if c.EqualString("molweight2") {
		t.Fatal("different strings compare equal")
	}
}

func TestStringConstEqualProvider(t *testing.T) {
	c := CapeStringConstFromString("Temperature")
	other := CapeStringFromString("TEMPERATURE")
	if !c.EqualProvider(other) {
		t.Fatal("provider comparison should fold the other side")
	}
	other.SetString("Pressure")
	if c.EqualProvider(other) {
		t.Fatal("mismatched content compares equal")
	}
}

func TestHashKeyEquality(t *testing.T) {
	owned := HashKeyFromString("Enthalpy")
	upper := HashKeyFromString("ENTHALPY")
	if !owned.Equal(upper) {
		t.Fatal("owned keys differing only in case must be equal")
	}

	borrowedSrc := CapeStringFromString("eNtHaLpY")
	borrowed := BorrowedHashKey(borrowedSrc)
	if borrowed.IsOwned() {
		t.Fatal("borrowed key reports owned")
	}
	if !owned.Equal(borrowed) {
		t.Fatal("owned and borrowed keys with same folded text must be equal")
	}
	if !borrowed.Equal(owned) {
		t.Fatal("equality must be symmetric")
	}
}

func TestHashKeyHashConsistency(t *testing.T) {
	// Equal keys must hash equal, whatever mix of owned and borrowed
	// forms is involved.
	owned := HashKeyFromString("Density")
	borrowedSrc := CapeStringFromString("DENSITY")
	borrowed := BorrowedHashKey(borrowedSrc)
	if owned.Hash() != borrowed.Hash() {
		t.Fatal("equal keys hash differently")
	}

	different := HashKeyFromString("Viscosity")
	if owned.Equal(different) {
		t.Fatal("different keys compare equal")
	}
}

func TestHashKeyFromRawCopies(t *testing.T) {
	src := CapeStringFromString("Pressure")
	ptr, size := src.AsCapeCharConstWithLength()
	key := HashKeyFromRaw(ptr, size)
	src.SetString("changed")
	if key.String() != "pressure" {
		t.Fatalf("owned key must not alias the source, got %q", key.String())
	}
}
