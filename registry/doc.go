// Package registry wraps the middleware's component registry behind an
// owned key type. Keys form a tree; each key carries named values of
// string, integer or UUID kind, and child keys addressed by relative
// path. Key and value names are matched case insensitively by the
// backend.
//
// A Key is an owned reference: release it when done, clone it to share.
package registry
