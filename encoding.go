package cobia

import (
	"unicode"
	"unsafe"

	"github.com/cape-open/cobia/capi"
)

// unitsFromRaw reinterprets a borrowed ABI buffer as a code unit slice.
// The slice aliases the buffer; it is valid only as long as the buffer.
func unitsFromRaw(data *capi.CapeCharacter, size capi.CapeSize) []capi.CapeCharacter {
	if data == nil || size == 0 {
		return nil
	}
	return unsafe.Slice(data, size)
}

// foldString lower-cases text for case-insensitive comparison. Folding is
// per rune with Unicode's simple 1:1 mapping, so folded text re-encodes to
// the same number of code units on both platforms.
func foldString(s string) string {
	hasUpper := false
	for _, r := range s {
		if unicode.ToLower(r) != r {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}
	b := make([]rune, 0, len(s))
	for _, r := range s {
		b = append(b, unicode.ToLower(r))
	}
	return string(b)
}

// terminated appends the mandatory trailing null unit.
func terminated(u []capi.CapeCharacter) []capi.CapeCharacter {
	return append(u, 0)
}

// StringFromRaw decodes size code units at data. Invalid sequences decode
// to the replacement rune.
func StringFromRaw(data *capi.CapeCharacter, size capi.CapeSize) string {
	return decodeUnits(unitsFromRaw(data, size))
}

// StringFromNullTerminated decodes a null terminated buffer at data.
func StringFromNullTerminated(data *capi.CapeCharacter) string {
	if data == nil {
		return ""
	}
	var n capi.CapeSize
	p := data
	for *p != 0 {
		n++
		p = (*capi.CapeCharacter)(unsafe.Add(unsafe.Pointer(data), uintptr(n)*unsafe.Sizeof(*data)))
	}
	return decodeUnits(unitsFromRaw(data, n))
}

// WriteCapeString writes s through a string interface received as an out
// argument.
func WriteCapeString(out *capi.ICapeString, s string) capi.CapeResult {
	return writeStringOut(out, s)
}
