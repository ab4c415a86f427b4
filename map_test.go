package cobia

import "testing"

func TestCapeOpenMapCaseInsensitive(t *testing.T) {
	m := NewCapeOpenMap[int]()
	m.Set("molWeight", 1)

	for _, key := range []string{"molWeight", "MOLWEIGHT", "MolWeight"} {
		v, ok := m.Get(key)
		if !ok || v != 1 {
			t.Fatalf("lookup %q: got %d, %v", key, v, ok)
		}
	}

	// Same folded key replaces, never duplicates.
	m.Set("MOLWEIGHT", 2)
	if m.Len() != 1 {
		t.Fatalf("len %d after overwrite", m.Len())
	}
	if v, _ := m.Get("molweight"); v != 2 {
		t.Fatalf("got %d after overwrite", v)
	}
}

func TestCapeOpenMapDelete(t *testing.T) {
	m := NewCapeOpenMap[string]()
	m.Set("Water", "H2O")
	m.Delete("WATER")
	if m.Contains("water") {
		t.Fatal("entry survived delete under different case")
	}
}

func TestCapeOpenMapGetKey(t *testing.T) {
	m := NewCapeOpenMap[int]()
	m.Set("Ethanol", 46)

	src := CapeStringFromString("ETHANOL")
	if v, ok := m.GetKey(BorrowedHashKey(src)); !ok || v != 46 {
		t.Fatalf("borrowed key lookup: got %d, %v", v, ok)
	}
	if v, ok := m.GetKey(HashKeyFromString("ethanol")); !ok || v != 46 {
		t.Fatalf("owned key lookup: got %d, %v", v, ok)
	}
}

func TestCapeOpenMapRange(t *testing.T) {
	m := NewCapeOpenMap[int]()
	m.Set("A", 1)
	m.Set("B", 2)
	seen := map[string]int{}
	m.Range(func(k string, v int) bool {
		seen[k] = v
		return true
	})
	if len(seen) != 2 || seen["a"] != 1 || seen["b"] != 2 {
		t.Fatalf("range saw %v", seen)
	}
}
