package capi

import "testing"

func TestParseUUIDRoundTrip(t *testing.T) {
	const text = "53a74ee9-adfa-4916-be95-04e9283cc22e"
	u, err := ParseUUID(text)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if u.String() != text {
		t.Fatalf("got %q", u.String())
	}

	want := UUIDFromSlice([]byte{
		0x53, 0xa7, 0x4e, 0xe9, 0xad, 0xfa, 0x49, 0x16,
		0xbe, 0x95, 0x04, 0xe9, 0x28, 0x3c, 0xc2, 0x2e,
	})
	if u != want {
		t.Fatal("byte layout mismatch")
	}
}

func TestParseUUIDBraced(t *testing.T) {
	u, err := ParseUUID("{53a74ee9-adfa-4916-be95-04e9283cc22e}")
	if err != nil {
		t.Fatalf("parse braced: %v", err)
	}
	if u.IsNil() {
		t.Fatal("parsed uuid is nil")
	}
}

func TestParseUUIDRejectsGarbage(t *testing.T) {
	if _, err := ParseUUID("not-a-uuid"); err == nil {
		t.Fatal("expected parse failure")
	}
}

func TestUUIDFromSlicePanicsOnBadLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	UUIDFromSlice([]byte{1, 2, 3})
}

func TestUUIDIsNil(t *testing.T) {
	var zero CapeUUID
	if !zero.IsNil() {
		t.Fatal("zero value must be nil")
	}
	if MustParseUUID("53a74ee9-adfa-4916-be95-04e9283cc22e").IsNil() {
		t.Fatal("parsed uuid must not be nil")
	}
}
