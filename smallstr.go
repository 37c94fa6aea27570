// Package smallstr provides a small-string-optimized owned byte buffer
// (Str) and a non-owning view into byte memory (Ref).
//
// A Str with at most shortMax bytes keeps its content inside the value
// itself; longer content lives in a separately allocated block. Which
// representation is active is always derivable from the length alone.
// Every live Str keeps a NUL sentinel immediately after its content, in
// both representations, so the storage can be handed to APIs that expect
// C-style terminated buffers.
//
// The zero value Str{} is the canonical empty string.
package smallstr

import "unsafe"

// shortMax is the largest length stored inline: two 64-bit words of
// payload, the same footprint as the pointer+capacity header it replaces.
const shortMax = 15

// Str owns its content. Assigning a Str to another variable behaves like
// a move: both headers reference the same heap block, and only one of
// them may keep being used. Use Move to make the handoff explicit, or
// Copy to get independent storage. A Str must not be mutated while a Ref
// into it is held, and never concurrently.
type Str struct {
	size  int
	buf   []byte // heap storage including sentinel; nil while inline
	short [shortMax + 1]byte
}

// short reports whether a string of this length is stored inline.
func short(size int) bool { return size <= shortMax }

// wordRound rounds n up to a multiple of 8 for allocation.
func wordRound(n int) int { return (n + 7) &^ 7 }

// storage returns the active backing span, sentinel capacity included.
func (s *Str) storage() []byte {
	if s.buf != nil {
		return s.buf
	}
	return s.short[:]
}

// alloc overwrites the header for a string of the given size, picks the
// representation, writes the sentinel and returns the writable span.
// Prior content is discarded.
func (s *Str) alloc(size int) []byte {
	s.size = size
	if short(size) {
		s.buf = nil
		s.short[size] = 0
		return s.short[:]
	}
	mem := make([]byte, wordRound(size+1))
	mem[size] = 0
	s.buf = mem
	return mem
}

// Copy makes a new Str with its own storage holding r's bytes.
func Copy(r Ref) Str {
	var s Str
	mem := s.alloc(len(r.b))
	copy(mem, r.b)
	return s
}

// Move transfers ownership of s's content to the result. A heap-backed
// source is reset to the empty string so a later Release is a no-op; an
// inline source is left as a plain value copy. Either way the source
// must be treated as moved-from.
func (s *Str) Move() Str {
	res := *s
	if s.buf != nil {
		*s = Str{}
	}
	return res
}

// Adopt takes ownership of b without copying when it can. Short content
// is always copied inline and the slice dropped, so the representation
// stays a pure function of length. The heap path reuses b only when it
// has a spare capacity byte for the sentinel.
func Adopt(b []byte) Str {
	size := len(b)
	if !short(size) && cap(b) > size {
		var s Str
		s.size = size
		s.buf = b[:cap(b)]
		s.buf[size] = 0
		return s
	}
	return Copy(TempBytes(b))
}

// Release drops any heap storage and resets s to the empty string.
// Releasing an inline or already-released Str is a no-op.
func (s *Str) Release() {
	*s = Str{}
}

// Len returns the number of content bytes.
func (s *Str) Len() int { return s.size }

// Empty reports whether s has no content.
func (s *Str) Empty() bool { return s.size == 0 }

// Bytes returns the content span. It aliases s's storage and is only
// valid until the next mutating operation; callers must not write
// through it.
func (s *Str) Bytes() []byte {
	return s.storage()[:s.size]
}

// CStr returns the content span including the NUL sentinel, for handing
// to pointer+length interfaces that expect terminated buffers. Same
// aliasing rules as Bytes.
func (s *Str) CStr() []byte {
	return s.storage()[:s.size+1]
}

// String returns the content as an independent string.
func (s *Str) String() string {
	return string(s.Bytes())
}

// UnsafeString aliases s's storage as a string without copying. The
// result is invalidated by any mutation of s; caller owns that hazard.
func (s *Str) UnsafeString() string {
	if s.size == 0 {
		return ""
	}
	mem := s.storage()
	return unsafe.String(&mem[0], s.size)
}

// Ref returns a view of s's current content. The view must not outlive
// the next mutation of s.
func (s *Str) Ref() Ref {
	return Ref{b: s.Bytes()}
}
