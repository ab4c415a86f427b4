package cobia

import (
	"hash/fnv"
	"unsafe"

	"github.com/cape-open/cobia/capi"
)

// CapeStringConstNoCase is an immutable string stored pre-folded to lower
// case, for case-insensitive comparison against any CapeString-like
// object. A common CAPE-OPEN pattern is comparing a fixed identifier
// (for example a property name) against strings received over the ABI;
// folding once at construction makes every later comparison a direct one.
type CapeStringConstNoCase struct {
	data []capi.CapeCharacter // folded, always ends in a null unit
}

var capeStringConstVTable = capi.ICapeStringVTable{
	Get: stringConstGet,
	Set: stringConstSet,
}

// CapeStringConstFromString creates a folded constant from a Go string.
func CapeStringConstFromString(s string) *CapeStringConstNoCase {
	return &CapeStringConstNoCase{data: terminated(encodeUnits(foldString(s)))}
}

// CapeStringConstFromRaw creates a folded constant from a borrowed ABI
// buffer. size excludes the terminator.
func CapeStringConstFromRaw(data *capi.CapeCharacter, size capi.CapeSize) *CapeStringConstNoCase {
	return CapeStringConstFromString(decodeUnits(unitsFromRaw(data, size)))
}

// String returns the folded content.
func (s *CapeStringConstNoCase) String() string {
	return decodeUnits(s.data[:len(s.data)-1])
}

// EqualProvider reports case-insensitive equality with any const string
// provider. This side is pre-folded; the other side is folded at
// comparison time.
func (s *CapeStringConstNoCase) EqualProvider(p CapeStringConstProvider) bool {
	ptr, size := p.AsCapeCharConstWithLength()
	return foldString(decodeUnits(unitsFromRaw(ptr, size))) == s.String()
}

// EqualString reports case-insensitive equality with a Go string.
func (s *CapeStringConstNoCase) EqualString(v string) bool {
	return foldString(v) == s.String()
}

// AsCapeCharConst returns the null terminated folded buffer.
func (s *CapeStringConstNoCase) AsCapeCharConst() *capi.CapeCharacter {
	return &s.data[0]
}

// AsCapeCharConstWithLength returns the folded buffer and its length
// excluding the terminator.
func (s *CapeStringConstNoCase) AsCapeCharConstWithLength() (*capi.CapeCharacter, capi.CapeSize) {
	return &s.data[0], capi.CapeSize(len(s.data) - 1)
}

// AsCapeStringIn exposes the constant as an ICapeString input argument.
func (s *CapeStringConstNoCase) AsCapeStringIn() capi.ICapeString {
	return capi.ICapeString{VTbl: &capeStringConstVTable, Me: unsafe.Pointer(s)}
}

func stringConstGet(me unsafe.Pointer, data **capi.CapeCharacter, size *capi.CapeSize) {
	s := (*CapeStringConstNoCase)(me)
	*data = &s.data[0]
	*size = capi.CapeSize(len(s.data) - 1)
}

func stringConstSet(me unsafe.Pointer, data *capi.CapeCharacter, size capi.CapeSize) capi.CapeResult {
	// Content written through the interface is re-folded so the
	// pre-folded invariant holds.
	s := (*CapeStringConstNoCase)(me)
	s.data = terminated(encodeUnits(foldString(decodeUnits(unitsFromRaw(data, size)))))
	return capi.ErrNoError
}

// CapeStringHashKey is a case-insensitive key for maps and comparisons.
//
// The owned form copies and pre-folds its text and may be stored
// indefinitely. The borrowed form aliases an external provider's buffer
// and folds at comparison and hash time, so hash lookups against borrowed
// ABI data need no copy; it is valid only while the provider's buffer
// stays alive and unchanged, which is the caller's obligation. Only owned
// keys may be inserted into structures that outlive the call that
// produced the borrowed data.
type CapeStringHashKey struct {
	owned    *CapeStringConstNoCase
	borrowed []capi.CapeCharacter
}

// HashKeyFromString creates an owned, pre-folded key.
func HashKeyFromString(s string) CapeStringHashKey {
	return CapeStringHashKey{owned: CapeStringConstFromString(s)}
}

// HashKeyFromRaw copies and folds a borrowed ABI buffer into an owned key.
func HashKeyFromRaw(data *capi.CapeCharacter, size capi.CapeSize) CapeStringHashKey {
	return CapeStringHashKey{owned: CapeStringConstFromRaw(data, size)}
}

// BorrowedHashKey creates a key that aliases the provider's buffer
// without copying or folding.
func BorrowedHashKey(p CapeStringConstProvider) CapeStringHashKey {
	ptr, size := p.AsCapeCharConstWithLength()
	return CapeStringHashKey{borrowed: unitsFromRaw(ptr, size)}
}

// IsOwned reports whether the key owns its storage.
func (k CapeStringHashKey) IsOwned() bool {
	return k.owned != nil
}

// String returns the key's text: folded for owned keys, as stored for
// borrowed keys.
func (k CapeStringHashKey) String() string {
	if k.owned != nil {
		return k.owned.String()
	}
	return decodeUnits(k.borrowed)
}

// folded returns the comparison form of the key's text. Owned keys are
// already folded; borrowed keys fold here.
func (k CapeStringHashKey) folded() string {
	if k.owned != nil {
		return k.owned.String()
	}
	return foldString(decodeUnits(k.borrowed))
}

// Equal reports case-insensitive equality of two keys.
func (k CapeStringHashKey) Equal(other CapeStringHashKey) bool {
	return k.folded() == other.folded()
}

// Hash returns a hash consistent with Equal: keys that compare equal hash
// equal, whichever mix of owned and borrowed forms is involved.
func (k CapeStringHashKey) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(k.folded()))
	return h.Sum64()
}
