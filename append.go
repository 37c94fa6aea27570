package smallstr

// Cat concatenates two views into a new Str with exact-fit storage.
// Neither input is touched.
func Cat(a, b Ref) Str {
	var s Str
	mem := s.alloc(len(a.b) + len(b.b))
	n := copy(mem, a.b)
	copy(mem[n:], b.b)
	return s
}

// Append appends r's bytes to s. When the current storage already has
// room the bytes are written in place with no allocation; inline
// strings that stay under the threshold never allocate at all.
// Otherwise the storage is regrown geometrically so a run of appends
// costs O(1) per byte amortized.
//
// r may view s's own storage: the old block is still referenced while
// its content and the append source are copied into the new one.
func (s *Str) Append(r Ref) {
	if len(r.b) == 0 {
		return
	}
	final := s.size + len(r.b)
	mem := s.storage()
	if final+1 <= len(mem) {
		copy(mem[s.size:], r.b)
		mem[final] = 0
		s.size = final
		s.demote()
		return
	}
	mem2 := growCapacity(mem, final+1)
	n := copy(mem2, mem[:s.size])
	copy(mem2[n:], r.b)
	mem2[final] = 0
	s.buf = mem2
	s.size = final
}

// growCapacity allocates a block of at least need bytes, requesting
// double the old capacity so repeated growth is amortized. Content is
// not copied.
func growCapacity(old []byte, need int) []byte {
	newCap := 2 * len(old)
	if newCap < need {
		newCap = need
	}
	return make([]byte, wordRound(newCap))
}

// Builder protocol: Reserve (or Spare/Grow) hands out the writable gap
// after the content, the caller fills some prefix of it with raw bytes,
// and Commit advances the length. This is how ReadLine accumulates
// chunks without re-copying them.
//
// Between Reserve and Commit a short Str may temporarily sit in a heap
// block; Commit, or an in-place Append cutting the window short,
// restores the length-determines-representation rule.

// Spare returns the writable span between the current content and the
// end of storage, keeping one byte back for the sentinel. May be empty.
func (s *Str) Spare() []byte {
	mem := s.storage()
	return mem[s.size : len(mem)-1]
}

// Grow doubles the storage and returns the new spare span.
func (s *Str) Grow() []byte {
	s.ensure(2 * len(s.storage()))
	return s.Spare()
}

// Reserve ensures at least extra writable bytes past the content and
// returns the spare span, which may be larger than requested.
func (s *Str) Reserve(extra int) []byte {
	if extra > 0 {
		s.ensure(s.size + 1 + extra)
	}
	return s.Spare()
}

// Commit records that n bytes of the spare span returned by Reserve,
// Spare or Grow now belong to the content, and rewrites the sentinel.
// n is clamped to the spare capacity. A committed length back under the
// inline threshold is demoted to inline storage.
func (s *Str) Commit(n int) {
	spare := len(s.storage()) - s.size - 1
	if n < 0 {
		n = 0
	}
	if n > spare {
		n = spare
	}
	s.size += n
	s.storage()[s.size] = 0
	s.demote()
}

// demote moves content back inline when the length allows, restoring
// the length-determines-representation rule after a builder window.
func (s *Str) demote() {
	if short(s.size) && s.buf != nil {
		copy(s.short[:], s.buf[:s.size+1])
		s.buf = nil
	}
}

// ensure regrows storage to at least need total bytes, preserving
// content and sentinel. The length is not changed, so a short Str ends
// up heap-backed until the next Commit; callers are the builder entry
// points, which document that window.
func (s *Str) ensure(need int) {
	mem := s.storage()
	if need <= len(mem) {
		return
	}
	mem2 := growCapacity(mem, need)
	copy(mem2, mem[:s.size+1])
	s.buf = mem2
}
