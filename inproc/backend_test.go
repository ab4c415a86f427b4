package inproc_test

import (
	"strings"
	"testing"

	"github.com/cape-open/cobia"
	"github.com/cape-open/cobia/capi"
	"github.com/cape-open/cobia/inproc"
	"github.com/cape-open/cobia/pmc"
	"github.com/cape-open/cobia/registry"
)

const teaUUID = "12345678-1234-5678-1234-567812345678"

// start loads the testdata snapshot, installs the backend and opens the
// initialization bracket.
func start(t *testing.T) {
	t.Helper()
	cfg, err := inproc.LoadConfig("testdata/registry.toml")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	inproc.NewBackend(cfg).Install()
	if ierr := cobia.Initialize(); ierr != nil {
		t.Fatalf("initialize: %s", ierr.Error())
	}
	t.Cleanup(cobia.Cleanup)
}

func TestParseConfigRejectsTwoKinds(t *testing.T) {
	_, err := inproc.ParseConfig([]byte(`
[keys.a.values]
v = { string = "x", integer = 1 }
`))
	if err == nil || !strings.Contains(err.Error(), "more than one kind") {
		t.Fatalf("got %v", err)
	}
}

func TestParseConfigRejectsBadUUID(t *testing.T) {
	_, err := inproc.ParseConfig([]byte(`
[keys.a.values]
v = { uuid = "nope" }
`))
	if err == nil {
		t.Fatal("expected parse failure")
	}
}

func TestRegistryDeniedBeforeInitialize(t *testing.T) {
	cfg, err := inproc.ParseConfig([]byte(`version = "v"`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	inproc.NewBackend(cfg).Install()

	if _, rerr := registry.Root(); rerr == nil {
		t.Fatal("registry access before initialize should fail")
	}
}

func TestVersionFromSnapshot(t *testing.T) {
	start(t)
	if got := cobia.Version(); got != "test-registry 0.1" {
		t.Fatalf("version %q", got)
	}
}

func TestRegistryValuesCaseInsensitive(t *testing.T) {
	start(t)

	key, err := registry.Open("pmcs/" + teaUUID)
	if err != nil {
		t.Fatalf("open: %s", err.Error())
	}
	defer key.Release()

	// Value names fold like key names do.
	name, err := key.StringValue("NAME", "")
	if err != nil {
		t.Fatalf("string value: %s", err.Error())
	}
	if name != "TEA Property Package Manager" {
		t.Fatalf("got %q", name)
	}

	kind, err := key.ValueType("name", "")
	if err != nil {
		t.Fatalf("value type: %s", err.Error())
	}
	if kind != cobia.RegistryValueKindString {
		t.Fatalf("kind %v", kind)
	}

	if _, err := key.StringValue("absent", ""); err == nil {
		t.Fatal("missing value should fail")
	} else if err.Code() != capi.ErrNoSuchItem {
		t.Fatalf("code %d", err.Code())
	}
}

func TestRegistrySubKeyPath(t *testing.T) {
	start(t)

	root, err := registry.Root()
	if err != nil {
		t.Fatalf("root: %s", err.Error())
	}
	defer root.Release()

	// Value getters accept a relative sub key path in one call.
	loc, err := root.StringValue("inprocess", "pmcs/"+teaUUID+"/locations")
	if err != nil {
		t.Fatalf("string value via sub key: %s", err.Error())
	}
	if loc != "/opt/tea/libtea.so" {
		t.Fatalf("got %q", loc)
	}

	u, err := root.UUIDValue("ppm", "PMCS/"+strings.ToUpper(teaUUID)+"/catids")
	if err != nil {
		t.Fatalf("uuid value: %s", err.Error())
	}
	if u.String() != "678c0b15-7d66-11d2-a67d-00105a42887f" {
		t.Fatalf("got %s", u)
	}

	n, err := root.IntegerValue("schema", "types")
	if err != nil {
		t.Fatalf("integer value: %s", err.Error())
	}
	if n != 2 {
		t.Fatalf("got %d", n)
	}
}

func TestRegistrySubKeyChain(t *testing.T) {
	start(t)

	root, err := registry.Root()
	if err != nil {
		t.Fatalf("root: %s", err.Error())
	}
	defer root.Release()

	// Every key handed out by a sub key lookup must itself serve sub
	// key lookups.
	pmcs, err := root.SubKey("pmcs")
	if err != nil {
		t.Fatalf("pmcs: %s", err.Error())
	}
	defer pmcs.Release()

	tea, err := pmcs.SubKey(teaUUID)
	if err != nil {
		t.Fatalf("tea: %s", err.Error())
	}
	defer tea.Release()

	locs, err := tea.SubKey("locations")
	if err != nil {
		t.Fatalf("locations: %s", err.Error())
	}
	defer locs.Release()

	loc, err := locs.StringValue("inprocess", "")
	if err != nil {
		t.Fatalf("string value: %s", err.Error())
	}
	if loc != "/opt/tea/libtea.so" {
		t.Fatalf("got %q", loc)
	}
}

func TestRegistryListings(t *testing.T) {
	start(t)

	key, err := registry.Open("pmcs")
	if err != nil {
		t.Fatalf("open: %s", err.Error())
	}
	defer key.Release()

	keys, err := key.Keys()
	if err != nil {
		t.Fatalf("keys: %s", err.Error())
	}
	if len(keys) != 2 {
		t.Fatalf("got %d keys: %v", len(keys), keys)
	}

	sub, err := key.SubKey(teaUUID)
	if err != nil {
		t.Fatalf("sub key: %s", err.Error())
	}
	defer sub.Release()

	all, err := sub.AllUsers()
	if err != nil {
		t.Fatalf("all users: %s", err.Error())
	}
	if !all {
		t.Fatal("tea key is registered for all users")
	}

	values, err := sub.Values()
	if err != nil {
		t.Fatalf("values: %s", err.Error())
	}
	if len(values) != 5 {
		t.Fatalf("got %d values: %v", len(values), values)
	}
}

func TestPMCEnumerate(t *testing.T) {
	start(t)

	details, err := pmc.Enumerate()
	if err != nil {
		t.Fatalf("enumerate: %s", err.Error())
	}
	if len(details) != 2 {
		t.Fatalf("got %d registrations", len(details))
	}
	// Sorted by name.
	if details[0].Name != "Mixer Splitter" || details[1].Name != "TEA Property Package Manager" {
		t.Fatalf("order: %q, %q", details[0].Name, details[1].Name)
	}

	tea := details[1]
	if tea.ID != teaUUID {
		t.Fatalf("uuid %s", tea.ID)
	}
	if !tea.AllUsers {
		t.Fatal("allUsers lost")
	}
	if path, ok := tea.LocationFor(cobia.ServiceTypeInProcess); !ok || path != "/opt/tea/libtea.so" {
		t.Fatalf("location: %q, %v", path, ok)
	}
	if _, ok := tea.LocationFor(cobia.ServiceTypeNetwork); ok {
		t.Fatal("unexpected network location")
	}
}

func TestPMCEnumerateCategory(t *testing.T) {
	start(t)

	cat := capi.MustParseUUID("678c0b15-7d66-11d2-a67d-00105a42887f")
	details, err := pmc.EnumerateCategory(cat)
	if err != nil {
		t.Fatalf("enumerate: %s", err.Error())
	}
	if len(details) != 1 || details[0].ID != teaUUID {
		t.Fatalf("got %v", details)
	}
}

func TestPMCByUUIDAndJSON(t *testing.T) {
	start(t)

	d, err := pmc.ByUUID(capi.MustParseUUID(teaUUID))
	if err != nil {
		t.Fatalf("by uuid: %s", err.Error())
	}
	data, jerr := pmc.ExportJSON([]pmc.RegistrationDetails{d})
	if jerr != nil {
		t.Fatalf("export: %v", jerr)
	}
	for _, want := range []string{teaUUID, "TEA Property Package Manager", "678c0b15-7d66-11d2-a67d-00105a42887f"} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("json missing %q:\n%s", want, data)
		}
	}
}
