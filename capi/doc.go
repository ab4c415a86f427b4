// Package capi defines the raw COBIA ABI surface.
//
// Everything in this package mirrors the binary contract of the COBIA
// middleware byte for byte: interface structs are a vtable pointer followed
// by an opaque instance pointer, vtables are fixed-order tables of function
// values, and the first two slots of every object vtable are addReference
// and release.
//
// # Interface structs
//
// An interface is always the pair (vTbl, me):
//
//	type ICapeString struct {
//	    VTbl *ICapeStringVTable
//	    Me   unsafe.Pointer
//	}
//
// Data carrier interfaces (ICapeString, ICapeArray, ICapeValue) are not
// reference counted; their lifetime is tied to the call that passed them.
// Object interfaces (ICapeInterface, ICapeError and everything derived from
// ICapeInterface) are reference counted through ICobiaBaseVTable.
//
// # Casting
//
// Every vtable of an object interface embeds its base vtable as the first
// field, so a derived interface pointer may be reinterpreted as its base:
//
//	base := (*ICapeInterface)(unsafe.Pointer(collection))
//
// This is the load-bearing layout guarantee of the whole ABI; do not
// reorder vtable fields.
//
// # Character width
//
// CapeCharacter is one byte (UTF-8) on POSIX-like targets and two bytes
// (UTF-16) on Windows, chosen at build time. Strings on the wire are a
// pointer plus a length that excludes the mandatory trailing null unit.
//
// The middleware entry points themselves (initialize, cleanup, registry
// open, error description lookup) are reached through a Procs table that a
// backend installs with SetProcs; see the inproc package for the in-process
// backend.
package capi
