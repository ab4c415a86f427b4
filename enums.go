package cobia

import (
	"fmt"

	"github.com/cape-open/cobia/capi"
)

// Typed views over the raw enumeration values of the ABI, for logging
// and display. The raw values cross the boundary as plain integers; the
// typed forms stay inside Go code.

// ValueKind is the kind held by a tagged value.
type ValueKind capi.CapeValueType

const (
	ValueKindString  ValueKind = ValueKind(capi.ValueTypeString)
	ValueKindInteger ValueKind = ValueKind(capi.ValueTypeInteger)
	ValueKindBoolean ValueKind = ValueKind(capi.ValueTypeBoolean)
	ValueKindReal    ValueKind = ValueKind(capi.ValueTypeReal)
	ValueKindEmpty   ValueKind = ValueKind(capi.ValueTypeEmpty)
)

func (k ValueKind) String() string {
	switch k {
	case ValueKindString:
		return "string"
	case ValueKindInteger:
		return "integer"
	case ValueKindBoolean:
		return "boolean"
	case ValueKindReal:
		return "real"
	case ValueKindEmpty:
		return "empty"
	}
	return fmt.Sprintf("valuekind(%d)", int32(k))
}

// RegistryValueKind is the kind of a registry value.
type RegistryValueKind capi.CapeEnumeration

const (
	RegistryValueKindString  RegistryValueKind = RegistryValueKind(capi.RegistryValueString)
	RegistryValueKindInteger RegistryValueKind = RegistryValueKind(capi.RegistryValueInteger)
	RegistryValueKindUUID    RegistryValueKind = RegistryValueKind(capi.RegistryValueUUID)
	RegistryValueKindEmpty   RegistryValueKind = RegistryValueKind(capi.RegistryValueEmpty)
)

func (k RegistryValueKind) String() string {
	switch k {
	case RegistryValueKindString:
		return "string"
	case RegistryValueKindInteger:
		return "integer"
	case RegistryValueKindUUID:
		return "uuid"
	case RegistryValueKindEmpty:
		return "empty"
	}
	return fmt.Sprintf("registryvaluekind(%d)", int32(k))
}

// ServiceType is how a registered component is hosted.
type ServiceType capi.CapeEnumeration

const (
	ServiceTypeInProcess    ServiceType = 0
	ServiceTypeOutOfProcess ServiceType = 1
	ServiceTypeNetwork      ServiceType = 2
)

func (t ServiceType) String() string {
	switch t {
	case ServiceTypeInProcess:
		return "in-process"
	case ServiceTypeOutOfProcess:
		return "out-of-process"
	case ServiceTypeNetwork:
		return "network"
	}
	return fmt.Sprintf("servicetype(%d)", int32(t))
}
