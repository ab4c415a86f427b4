package inproc

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/cape-open/cobia"
	"github.com/cape-open/cobia/capi"
)

// backendVersion identifies this backend in version queries.
const backendVersion = "cobia-inproc 1.0"

// Backend serves the middleware entry point table from an in-memory
// registry tree.
type Backend struct {
	version     string
	root        *node
	initialized atomic.Bool
}

// NewBackend builds a backend from a registry snapshot.
func NewBackend(cfg *Config) *Backend {
	version := cfg.Version
	if version == "" {
		version = backendVersion
	}
	return &Backend{
		version: version,
		root:    buildNode(KeyConfig{Keys: cfg.Keys}),
	}
}

// Install registers the backend as the process wide middleware. Call
// before cobia.Initialize.
func (b *Backend) Install() {
	capi.SetProcs(&capi.Procs{
		Initialize:          b.initialize,
		Cleanup:             b.cleanup,
		GetVersion:          b.getVersion,
		GetErrorDescription: b.getErrorDescription,
		GetRegistryKey:      b.getRegistryKey,
	})
}

func (b *Backend) initialize(message *capi.ICapeString) bool {
	if !b.initialized.CompareAndSwap(false, true) {
		cobia.WriteCapeString(message, "backend already initialized")
		return false
	}
	Logger().Debug("inproc backend initialized", zap.String("version", b.version))
	return true
}

func (b *Backend) cleanup() {
	b.initialized.Store(false)
	Logger().Debug("inproc backend cleaned up")
}

func (b *Backend) getVersion(version *capi.ICapeString) {
	cobia.WriteCapeString(version, b.version)
}

func (b *Backend) getErrorDescription(code capi.CapeResult, description *capi.ICapeString) capi.CapeResult {
	text, ok := errorDescriptions[code]
	if !ok {
		return capi.ErrNoSuchItem
	}
	return cobia.WriteCapeString(description, text)
}

func (b *Backend) getRegistryKey(path *capi.CapeCharacter, key **capi.ICapeRegistryKey) capi.CapeResult {
	if key == nil {
		return capi.ErrNullPointer
	}
	if !b.initialized.Load() {
		return capi.ErrDenied
	}
	n := b.root
	if path != nil {
		found, ok := n.lookup(cobia.StringFromNullTerminated(path))
		if !ok {
			return capi.ErrNotFound
		}
		n = found
	}
	*key = &newKeyObject(n).iface
	return capi.ErrNoError
}

var errorDescriptions = map[capi.CapeResult]string{
	capi.ErrNoError:         "no error",
	capi.ErrUnknownError:    "unknown error",
	capi.ErrNotImplemented:  "not implemented",
	capi.ErrNoSuchItem:      "no such item",
	capi.ErrInvalidArgument: "invalid argument",
	capi.ErrNullPointer:     "null pointer",
	capi.ErrDenied:          "access denied",
	capi.ErrOutOfMemory:     "out of memory",
	capi.ErrNoInterface:     "interface not supported",
	capi.ErrRegistry:        "registry error",
	capi.ErrNotFound:        "not found",
	capi.ErrBounds:          "index out of bounds",
	capi.ErrCapeOpenError:   "operation failed, see error object",
}
