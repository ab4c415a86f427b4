package capi

import "sync"

// Procs is the middleware entry point table. In a native deployment these
// are exported functions of the COBIA shared library; here a backend
// installs its implementation with SetProcs before Initialize is called.
//
// Every entry follows the ABI's calling contract: out parameters are
// written only on success, and a nonzero CapeResult describes the failure.
type Procs struct {
	// Initialize brackets all other entries; on failure it writes a
	// reason into message and returns false.
	Initialize func(message *ICapeString) bool

	// Cleanup releases middleware resources. No entry may be called
	// after Cleanup returns.
	Cleanup func()

	// GetVersion writes the middleware version string.
	GetVersion func(version *ICapeString)

	// GetErrorDescription maps a result code to a human readable string.
	GetErrorDescription func(code CapeResult, description *ICapeString) CapeResult

	// GetRegistryKey opens the key at the given null terminated path, or
	// the registry root when path is nil. The out pointer carries a
	// fresh owned reference.
	GetRegistryKey func(path *CapeCharacter, key **ICapeRegistryKey) CapeResult
}

var (
	procsMu sync.RWMutex
	procs   *Procs
)

// SetProcs installs the middleware backend. It must be called before
// Initialize; installing a new table while the middleware is in use is a
// caller bug.
func SetProcs(p *Procs) {
	procsMu.Lock()
	procs = p
	procsMu.Unlock()
}

// GetProcs returns the installed backend, or nil when none is installed.
func GetProcs() *Procs {
	procsMu.RLock()
	defer procsMu.RUnlock()
	return procs
}
