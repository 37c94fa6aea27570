package smallstr

import "unsafe"

// Ref is a non-owning view of byte memory held by a Str, a caller slice
// or a string. It never frees anything and must not outlive its source.
type Ref struct {
	b []byte
}

// Temp makes a view of a string without copying it.
func Temp(s string) Ref {
	if len(s) == 0 {
		return Ref{}
	}
	return Ref{b: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// TempBytes makes a view of a byte slice without copying it.
func TempBytes(b []byte) Ref {
	return Ref{b: b}
}

// Len returns the number of bytes in the view.
func (r Ref) Len() int { return len(r.b) }

// Empty reports whether the view has no bytes.
func (r Ref) Empty() bool { return len(r.b) == 0 }

// Bytes returns the viewed span. Callers must not write through it.
func (r Ref) Bytes() []byte { return r.b }

// String returns the viewed bytes as an independent string.
func (r Ref) String() string { return string(r.b) }

// clampSpan restricts [offset, offset+size) to [0, n), shrinking rather
// than failing. An offset at or past the end yields a zero size.
func clampSpan(n, offset, size int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if size < 0 {
		size = 0
	}
	if offset >= n {
		return n, 0
	}
	if size > n-offset {
		size = n - offset
	}
	return offset, size
}

// Slice returns a sub-view. Out-of-range offsets and sizes are clamped,
// never rejected; the result may be the empty view. No allocation.
func (r Ref) Slice(offset, size int) Ref {
	offset, size = clampSpan(len(r.b), offset, size)
	if size == 0 {
		return Ref{}
	}
	return Ref{b: r.b[offset : offset+size]}
}

// Slice shrinks s in place to the clamped range [offset, offset+size).
// An empty result releases any heap block. A heap-backed Str whose
// remainder fits inline is demoted to inline storage and the block
// dropped. Otherwise the bytes move within the same storage; slicing
// never reallocates.
func (s *Str) Slice(offset, size int) {
	offset, size = clampSpan(s.size, offset, size)
	if size == 0 {
		s.Release()
		return
	}
	if short(size) && s.buf != nil {
		copy(s.short[:], s.buf[offset:offset+size])
		s.short[size] = 0
		s.buf = nil
	} else {
		mem := s.storage()
		copy(mem, mem[offset:offset+size])
		mem[size] = 0
	}
	s.size = size
}
