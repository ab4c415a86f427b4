// Package inproc is an in-process middleware backend. It serves the
// entry point table from a registry tree loaded out of a TOML snapshot,
// which makes the whole stack usable without a native middleware
// installation: tooling and tests install the backend, initialize, and
// read registrations as they would against the real thing.
package inproc
