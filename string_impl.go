package cobia

import (
	"unsafe"

	"github.com/cape-open/cobia/capi"
)

// CapeStringImpl is the default ICapeString implementation.
//
// Strings go over the ABI as null terminated buffers in the platform's
// code unit width. Go strings are neither, so the translation is always
// required and there is no read-only implementation referring to a Go
// string directly. The encoded buffer always ends in a null unit, even
// when empty.
type CapeStringImpl struct {
	data []capi.CapeCharacter // always ends in a null unit
}

var capeStringImplVTable = capi.ICapeStringVTable{
	Get: stringImplGet,
	Set: stringImplSet,
}

// NewCapeString creates an empty string.
func NewCapeString() *CapeStringImpl {
	return &CapeStringImpl{data: []capi.CapeCharacter{0}}
}

// CapeStringFromString creates a string with the given content.
func CapeStringFromString(s string) *CapeStringImpl {
	return &CapeStringImpl{data: terminated(encodeUnits(s))}
}

// CapeStringFromRaw copies a borrowed ABI buffer. size excludes the
// terminator.
func CapeStringFromRaw(data *capi.CapeCharacter, size capi.CapeSize) *CapeStringImpl {
	src := unitsFromRaw(data, size)
	buf := make([]capi.CapeCharacter, 0, len(src)+1)
	buf = append(buf, src...)
	return &CapeStringImpl{data: terminated(buf)}
}

// String returns the content as a Go string.
func (s *CapeStringImpl) String() string {
	return decodeUnits(s.data[:len(s.data)-1])
}

// IsEmpty reports whether the string has no content.
func (s *CapeStringImpl) IsEmpty() bool {
	return s.data[0] == 0
}

// Len returns the content length in code units, excluding the terminator.
func (s *CapeStringImpl) Len() int {
	return len(s.data) - 1
}

// SetString replaces the content with a Go string.
func (s *CapeStringImpl) SetString(v string) {
	s.data = terminated(encodeUnits(v))
}

// Set replaces the content from any const string provider.
func (s *CapeStringImpl) Set(p CapeStringConstProvider) {
	ptr, size := p.AsCapeCharConstWithLength()
	s.setUnits(unitsFromRaw(ptr, size))
}

func (s *CapeStringImpl) setUnits(u []capi.CapeCharacter) {
	buf := make([]capi.CapeCharacter, 0, len(u)+1)
	buf = append(buf, u...)
	s.data = terminated(buf)
}

// AsCapeCharConst returns the null terminated buffer. The pointer is
// invalidated by any mutation of the string.
func (s *CapeStringImpl) AsCapeCharConst() *capi.CapeCharacter {
	return &s.data[0]
}

// AsCapeCharConstWithLength returns the buffer and the length excluding
// the terminator.
func (s *CapeStringImpl) AsCapeCharConstWithLength() (*capi.CapeCharacter, capi.CapeSize) {
	return &s.data[0], capi.CapeSize(len(s.data) - 1)
}

// AsCapeStringIn exposes the string as an ICapeString input argument.
func (s *CapeStringImpl) AsCapeStringIn() capi.ICapeString {
	return capi.ICapeString{VTbl: &capeStringImplVTable, Me: unsafe.Pointer(s)}
}

// AsCapeStringOut exposes the string as an ICapeString output argument.
func (s *CapeStringImpl) AsCapeStringOut() capi.ICapeString {
	return capi.ICapeString{VTbl: &capeStringImplVTable, Me: unsafe.Pointer(s)}
}

func stringImplGet(me unsafe.Pointer, data **capi.CapeCharacter, size *capi.CapeSize) {
	s := (*CapeStringImpl)(me)
	*data = &s.data[0]
	*size = capi.CapeSize(len(s.data) - 1)
}

func stringImplSet(me unsafe.Pointer, data *capi.CapeCharacter, size capi.CapeSize) capi.CapeResult {
	s := (*CapeStringImpl)(me)
	s.setUnits(unitsFromRaw(data, size))
	return capi.ErrNoError
}
