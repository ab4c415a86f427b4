package pmc

import (
	"sort"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/cape-open/cobia"
	"github.com/cape-open/cobia/capi"
	"github.com/cape-open/cobia/registry"
)

// registryPath is the key under which component registrations live.
const registryPath = "pmcs"

// Enumerate reads every component registration, sorted by name. Keys
// that do not parse as a registration are skipped with a log entry
// rather than failing the whole enumeration.
func Enumerate() ([]RegistrationDetails, *cobia.Error) {
	root, err := registry.Open(registryPath)
	if err != nil {
		return nil, cobia.NewErrorWithCause("cannot open component registrations", err)
	}
	defer root.Release()

	names, err := root.Keys()
	if err != nil {
		return nil, cobia.NewErrorWithCause("cannot list component registrations", err)
	}

	var out []RegistrationDetails
	for _, name := range names {
		uuid, perr := capi.ParseUUID(name)
		if perr != nil {
			Logger().Warn("skipping malformed registration key",
				zap.String("key", name))
			continue
		}
		key, err := root.SubKey(name)
		if err != nil {
			err.Release()
			continue
		}
		d, err := DetailsFromKey(uuid, key)
		key.Release()
		if err != nil {
			Logger().Warn("skipping unreadable registration",
				zap.String("key", name),
				zap.String("reason", err.Error()))
			err.Release()
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// EnumerateCategory is Enumerate restricted to components registered
// under cat.
func EnumerateCategory(cat capi.CapeUUID) ([]RegistrationDetails, *cobia.Error) {
	all, err := Enumerate()
	if err != nil {
		return nil, err
	}
	var out []RegistrationDetails
	for _, d := range all {
		if d.InCategory(cat) {
			out = append(out, d)
		}
	}
	return out, nil
}

// ByUUID reads a single registration.
func ByUUID(uuid capi.CapeUUID) (RegistrationDetails, *cobia.Error) {
	root, err := registry.Open(registryPath)
	if err != nil {
		return RegistrationDetails{}, cobia.NewErrorWithCause("cannot open component registrations", err)
	}
	defer root.Release()
	key, err := root.SubKey(uuid.String())
	if err != nil {
		return RegistrationDetails{}, err
	}
	defer key.Release()
	return DetailsFromKey(uuid, key)
}

// ExportJSON renders registrations as indented JSON.
func ExportJSON(details []RegistrationDetails) ([]byte, error) {
	return json.MarshalIndent(details, "", "  ")
}
