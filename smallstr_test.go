package smallstr

import (
	"strings"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inline reports which representation a Str is actually using.
func inline(s *Str) bool { return s.buf == nil }

func TestZeroValueIsEmpty(t *testing.T) {
	var s Str
	require.True(t, s.Empty())
	require.Equal(t, 0, s.Len())
	require.True(t, inline(&s))
	require.Equal(t, "", s.String())
	require.Equal(t, []byte{0}, s.CStr())
}

func TestRepresentationFollowsLength(t *testing.T) {
	for size := 0; size <= 4*shortMax; size++ {
		s := Copy(Temp(strings.Repeat("x", size)))
		require.Equal(t, size, s.Len())
		require.Equal(t, short(size), inline(&s), "size %d", size)
		// sentinel sits right after the content in both representations
		require.Equal(t, byte(0), s.CStr()[size], "size %d", size)
	}
}

func TestCopyRoundTrip(t *testing.T) {
	condition := func(b []byte) bool {
		s := Copy(TempBytes(b))
		if string(s.Bytes()) != string(b) {
			return false
		}
		// the copy must not alias the source
		if len(b) > 0 {
			b[0] ^= 0xff
			ok := string(s.Bytes()) != string(b) || len(b) == 0
			b[0] ^= 0xff
			return ok
		}
		return true
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func TestMoveHeap(t *testing.T) {
	src := Copy(Temp("this string is long enough to live on the heap"))
	want := src.String()
	require.False(t, inline(&src))

	dst := src.Move()
	assert.Equal(t, want, dst.String())
	// source is reset so releasing it cannot free dst's storage
	assert.True(t, src.Empty())
	assert.True(t, inline(&src))
	src.Release()
	assert.Equal(t, want, dst.String())
}

func TestMoveInline(t *testing.T) {
	src := Copy(Temp("cat"))
	dst := src.Move()
	assert.Equal(t, "cat", dst.String())
	// inline moves are plain value copies; the source keeps its bytes
	assert.Equal(t, "cat", src.String())
}

func TestAdopt(t *testing.T) {
	t.Run("short content is copied inline", func(t *testing.T) {
		b := []byte("cat")
		s := Adopt(b)
		require.True(t, inline(&s))
		assert.Equal(t, "cat", s.String())
		b[0] = 'X'
		assert.Equal(t, "cat", s.String())
	})

	t.Run("long content with spare capacity is reused", func(t *testing.T) {
		b := make([]byte, 0, 64)
		b = append(b, "a long donated buffer, no copy"...)
		s := Adopt(b)
		require.False(t, inline(&s))
		assert.Equal(t, "a long donated buffer, no copy", s.String())
		assert.Same(t, &b[0], &s.Bytes()[0])
	})

	t.Run("long content without room for the sentinel is copied", func(t *testing.T) {
		src := []byte("another long donated buffer here")
		b := src[:len(src):len(src)]
		s := Adopt(b)
		require.False(t, inline(&s))
		assert.Equal(t, string(src), s.String())
		assert.Equal(t, byte(0), s.CStr()[s.Len()])
	})
}

func TestRelease(t *testing.T) {
	s := Copy(Temp("some heap allocated content over the threshold"))
	s.Release()
	assert.True(t, s.Empty())
	assert.True(t, inline(&s))
	// double release is fine
	s.Release()
	assert.True(t, s.Empty())
}

func TestUnsafeString(t *testing.T) {
	s := Copy(Temp("catdog"))
	assert.Equal(t, "catdog", s.UnsafeString())
	var empty Str
	assert.Equal(t, "", empty.UnsafeString())
}

func TestRefSliceClamps(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		offset int
		size   int
		want   string
	}{
		{"full range", "catdog", 0, 6, "catdog"},
		{"middle", "catdog", 1, 3, "atd"},
		{"size clamped", "catdog", 3, 10, "dog"},
		{"offset past end", "catdog", 9, 2, ""},
		{"offset at end", "catdog", 6, 1, ""},
		{"zero size", "catdog", 2, 0, ""},
		{"negative offset", "catdog", -3, 2, "ca"},
		{"negative size", "catdog", 1, -1, ""},
		{"empty source", "", 0, 5, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Temp(tt.src).Slice(tt.offset, tt.size)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestStrSliceInPlace(t *testing.T) {
	long := "the quick brown fox jumps over the lazy dog"

	t.Run("identity slice keeps bytes and representation", func(t *testing.T) {
		s := Copy(Temp(long))
		s.Slice(0, s.Len())
		assert.Equal(t, long, s.String())
		assert.False(t, inline(&s))
	})

	t.Run("offset zero is a pure length update", func(t *testing.T) {
		s := Copy(Temp(long))
		s.Slice(0, 20)
		assert.Equal(t, long[:20], s.String())
		assert.False(t, inline(&s))
	})

	t.Run("heap remainder fitting inline is demoted", func(t *testing.T) {
		s := Copy(Temp(long))
		s.Slice(4, 5)
		assert.Equal(t, "quick", s.String())
		assert.True(t, inline(&s))
		assert.Equal(t, byte(0), s.CStr()[5])
	})

	t.Run("empty result releases storage", func(t *testing.T) {
		s := Copy(Temp(long))
		s.Slice(100, 5)
		assert.True(t, s.Empty())
		assert.True(t, inline(&s))
	})

	t.Run("clamped size", func(t *testing.T) {
		s := Copy(Temp("catdog"))
		s.Slice(3, 10)
		assert.Equal(t, "dog", s.String())
	})

	t.Run("overlapping move within one block", func(t *testing.T) {
		s := Copy(Temp(long))
		s.Slice(10, 30)
		assert.Equal(t, long[10:40], s.String())
		assert.False(t, inline(&s))
	})
}

func FuzzAppendSlice(f *testing.F) {
	f.Add("cat", "dog", 3, 10)
	f.Add("", "line1\nline2\n", 0, 6)
	f.Add("0123456789abcdef", "0123456789abcdef", 8, 16)
	f.Fuzz(fuzzAppendSlice)
}

func fuzzAppendSlice(t *testing.T, a, b string, offset, size int) {
	s := Copy(Temp(a))
	s.Append(Temp(b))
	joined := a + b
	require.Equal(t, joined, s.String())
	require.Equal(t, short(len(joined)), inline(&s))

	s.Slice(offset, size)
	offset, size = clampSpan(len(joined), offset, size)
	require.Equal(t, joined[offset:offset+size], s.String())
	require.Equal(t, byte(0), s.CStr()[s.Len()])
}
