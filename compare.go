package smallstr

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
)

// Compare orders two views length-first: a shorter view sorts before a
// longer one regardless of content, and bytes only break ties between
// equal lengths. This differs from bytes.Compare for prefix pairs of
// different length ("ab" < "b" here). Compare returns -1, 0 or 1.
func (r Ref) Compare(o Ref) int {
	if len(r.b) != len(o.b) {
		if len(r.b) < len(o.b) {
			return -1
		}
		return 1
	}
	return bytes.Compare(r.b, o.b)
}

// ComparePrefix compares only the overlapping length, so the result is
// 0 whenever one view is a byte-for-byte prefix of the other.
func (r Ref) ComparePrefix(o Ref) int {
	n := min(len(r.b), len(o.b))
	return bytes.Compare(r.b[:n], o.b[:n])
}

// Equal reports whether both views hold identical bytes.
func (r Ref) Equal(o Ref) bool {
	return bytes.Equal(r.b, o.b)
}

// Sum64 returns an xxhash digest of the viewed bytes, for callers that
// key maps or caches by content.
func (r Ref) Sum64() uint64 {
	return xxhash.Sum64(r.b)
}
