package cobia

import (
	"sync"

	"go.uber.org/zap"

	"github.com/cape-open/cobia/capi"
)

// Initialize and Cleanup bracket all middleware use. Initialization
// nests: each successful Initialize must be paired with one Cleanup, and
// the middleware shuts down when the last bracket closes.

var (
	initMu    sync.Mutex
	initCount int
)

// Initialize starts the middleware through the installed backend.
func Initialize() *Error {
	p := capi.GetProcs()
	if p == nil {
		return NewError("no middleware backend installed")
	}
	initMu.Lock()
	defer initMu.Unlock()
	if initCount > 0 {
		initCount++
		return nil
	}
	msg := NewCapeString()
	out := msg.AsCapeStringOut()
	if !p.Initialize(&out) {
		return Errorf("middleware initialization failed: %s", msg.String())
	}
	initCount = 1
	Logger().Debug("middleware initialized", zap.String("version", versionLocked(p)))
	return nil
}

// Cleanup closes one initialization bracket, shutting the middleware
// down when it is the last one. Calling Cleanup without a matching
// Initialize is a caller bug and is ignored.
func Cleanup() {
	initMu.Lock()
	defer initMu.Unlock()
	if initCount == 0 {
		return
	}
	initCount--
	if initCount > 0 {
		return
	}
	if p := capi.GetProcs(); p != nil && p.Cleanup != nil {
		p.Cleanup()
	}
	Logger().Debug("middleware cleaned up")
}

// Version returns the middleware version string, or empty when no
// backend is installed.
func Version() string {
	p := capi.GetProcs()
	if p == nil || p.GetVersion == nil {
		return ""
	}
	return versionLocked(p)
}

func versionLocked(p *capi.Procs) string {
	if p.GetVersion == nil {
		return ""
	}
	s := NewCapeString()
	out := s.AsCapeStringOut()
	p.GetVersion(&out)
	return s.String()
}

// ErrorDescription resolves a result code to a human readable string.
func ErrorDescription(code capi.CapeResult) string {
	return resultDescription(code)
}
