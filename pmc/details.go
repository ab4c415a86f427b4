package pmc

import (
	"github.com/cape-open/cobia"
	"github.com/cape-open/cobia/capi"
	"github.com/cape-open/cobia/registry"
)

// Value and sub key names of a component registration key.
const (
	valueName          = "name"
	valueDescription   = "description"
	valueCapeVersion   = "capeVersion"
	valueComponentVer  = "componentVersion"
	valueVendorURL     = "vendorURL"
	valueHelpURL       = "helpURL"
	valueAbout         = "about"
	valueProgID        = "progId"
	valueVIProgID      = "versionIndependentProgId"
	subKeyCategories   = "catids"
	subKeyLocations    = "locations"
	locationInProcess  = "inprocess"
	locationOutOfProc  = "outofprocess"
	locationNetwork    = "network"
)

// Location is where a component can be instantiated for one service
// type.
type Location struct {
	ServiceType cobia.ServiceType `json:"serviceType"`
	Path        string            `json:"path"`
}

// RegistrationDetails is the registry record of one registered
// component. Optional values that are absent from the registry are left
// empty.
type RegistrationDetails struct {
	UUID                     capi.CapeUUID   `json:"-"`
	ID                       string          `json:"uuid"`
	Name                     string          `json:"name"`
	Description              string          `json:"description,omitempty"`
	CapeVersion              string          `json:"capeVersion,omitempty"`
	ComponentVersion         string          `json:"componentVersion,omitempty"`
	VendorURL                string          `json:"vendorURL,omitempty"`
	HelpURL                  string          `json:"helpURL,omitempty"`
	About                    string          `json:"about,omitempty"`
	ProgID                   string          `json:"progId,omitempty"`
	VersionIndependentProgID string          `json:"versionIndependentProgId,omitempty"`
	Categories               []capi.CapeUUID `json:"-"`
	CategoryIDs              []string        `json:"categories,omitempty"`
	Locations                []Location      `json:"locations,omitempty"`
	AllUsers                 bool            `json:"allUsers"`
}

// DetailsFromKey reads one registration record from its registry key.
// The name value is mandatory; everything else is optional.
func DetailsFromKey(uuid capi.CapeUUID, key registry.Key) (RegistrationDetails, *cobia.Error) {
	d := RegistrationDetails{UUID: uuid, ID: uuid.String()}

	name, err := key.StringValue(valueName, "")
	if err != nil {
		return d, cobia.NewErrorWithCause("registration has no name", err)
	}
	d.Name = name

	d.Description = optionalString(key, valueDescription)
	d.CapeVersion = optionalString(key, valueCapeVersion)
	d.ComponentVersion = optionalString(key, valueComponentVer)
	d.VendorURL = optionalString(key, valueVendorURL)
	d.HelpURL = optionalString(key, valueHelpURL)
	d.About = optionalString(key, valueAbout)
	d.ProgID = optionalString(key, valueProgID)
	d.VersionIndependentProgID = optionalString(key, valueVIProgID)

	if all, err := key.AllUsers(); err == nil {
		d.AllUsers = all
	} else {
		err.Release()
	}

	d.readCategories(key)
	d.readLocations(key)
	return d, nil
}

// InCategory reports whether the component is registered under cat.
func (d RegistrationDetails) InCategory(cat capi.CapeUUID) bool {
	for _, c := range d.Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// LocationFor returns the instantiation path for a service type.
func (d RegistrationDetails) LocationFor(t cobia.ServiceType) (string, bool) {
	for _, loc := range d.Locations {
		if loc.ServiceType == t {
			return loc.Path, true
		}
	}
	return "", false
}

func (d *RegistrationDetails) readCategories(key registry.Key) {
	cats, err := key.SubKey(subKeyCategories)
	if err != nil {
		err.Release()
		return
	}
	defer cats.Release()
	names, err := cats.Values()
	if err != nil {
		err.Release()
		return
	}
	for _, name := range names {
		id, err := cats.UUIDValue(name, "")
		if err != nil {
			err.Release()
			continue
		}
		d.Categories = append(d.Categories, id)
		d.CategoryIDs = append(d.CategoryIDs, id.String())
	}
}

func (d *RegistrationDetails) readLocations(key registry.Key) {
	locs, err := key.SubKey(subKeyLocations)
	if err != nil {
		err.Release()
		return
	}
	defer locs.Release()
	for _, entry := range []struct {
		name string
		t    cobia.ServiceType
	}{
		{locationInProcess, cobia.ServiceTypeInProcess},
		{locationOutOfProc, cobia.ServiceTypeOutOfProcess},
		{locationNetwork, cobia.ServiceTypeNetwork},
	} {
		path, err := locs.StringValue(entry.name, "")
		if err != nil {
			err.Release()
			continue
		}
		d.Locations = append(d.Locations, Location{ServiceType: entry.t, Path: path})
	}
}

func optionalString(key registry.Key, name string) string {
	v, err := key.StringValue(name, "")
	if err != nil {
		err.Release()
		return ""
	}
	return v
}
