// Package cobia is the safe core of the COBIA language binding: the
// ownership, string, array and value primitives that let Go code call into
// and be called from the middleware's vtable ABI.
//
// # Ownership
//
// Objects on the far side of the ABI are reference counted by the far side
// only. The near side contributes exactly one addReference/release pair per
// owned copy, through three entry points with precise ownership deltas:
//
//	p := cobia.CapeObjectFromInterfacePointer(iface) // borrows, adds a reference
//	p := cobia.AttachCapeObject(iface)               // adopts a +1 reference
//	iface := p.Detach()                              // hands the reference out
//
// Go has no destructors, so every owned copy must be released explicitly,
// normally with defer:
//
//	obj, err := cobia.CapeObjectFromObject(other, iid)
//	if err != nil { ... }
//	defer obj.Release()
//
// Calling any method after Release is a caller bug, as is releasing twice.
//
// # Capability query
//
// Each interface wrapper carries a stable 16 byte identifier. FromObject
// constructors negotiate at run time whether an object supports another
// shape; "not supported" is an ordinary error, never a panic. Null
// interface pointers handed to the always-non-null constructors are
// contract violations and panic.
//
// # Data carriers
//
// CapeStringImpl, the CapeArray* adapters and CapeValueImpl implement the
// string, array and value carrier vtables over Go storage, so they can be
// passed as in/out arguments to far-side calls. CapeArrayIn/CapeArrayOut
// and CapeValueIn/CapeValueOut wrap carriers provided by the far side.
// Pointers obtained from a carrier are valid only until the next mutating
// call on the same carrier.
//
// # Errors
//
// Fallible calls return *Error, which unifies plain messages, numeric
// result codes, far-side error objects and message-with-cause wrappers.
// When a call returns the delegated error code the wrapper fetches the
// error object immediately; the far side may discard it on the next call.
//
// Initialize must be called before anything else in this module, and
// Cleanup after the last use; see the inproc package for an in-process
// middleware backend.
package cobia
