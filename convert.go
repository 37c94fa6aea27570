package smallstr

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/valyala/bytebufferpool"
)

var (
	// ErrParse reports that ParseUint found no leading digit or the
	// value overflowed uint64.
	ErrParse = errors.New("smallstr: invalid unsigned integer")

	// ErrFormat reports that Sprintf hit a formatting error.
	ErrFormat = errors.New("smallstr: bad format")
)

// ToLower returns a new Str with ASCII upper-case letters folded to
// lower case. Bytes outside A-Z pass through untouched.
func ToLower(r Ref) Str {
	var s Str
	mem := s.alloc(len(r.b))
	for i, c := range r.b {
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		mem[i] = c
	}
	return s
}

// ParseUint reads a decimal unsigned integer from the front of the
// view, stopping at the first non-digit. It returns the value and the
// number of bytes consumed, so callers can detect partial consumption.
// ErrParse when no digit was consumed or the value exceeds uint64.
// Never allocates.
func ParseUint(r Ref) (uint64, int, error) {
	var val uint64
	n := 0
	for _, c := range r.b {
		if c < '0' || c > '9' {
			break
		}
		d := uint64(c - '0')
		if val > (math.MaxUint64-d)/10 {
			return 0, 0, ErrParse
		}
		val = val*10 + d
		n++
	}
	if n == 0 {
		return 0, 0, ErrParse
	}
	return val, n, nil
}

// markPrefix opens every in-band error mark fmt writes.
var markPrefix = []byte("%!")

// markKeywords are the fixed payloads fmt uses for argument and verb
// mismatches: %!(MISSING), %!(EXTRA t=v), %!(NOVERB), %!(BADWIDTH),
// %!(BADPREC), %!(BADINDEX), %!v(PANIC=...).
var markKeywords = [][]byte{
	[]byte("MISSING)"),
	[]byte("EXTRA "),
	[]byte("NOVERB)"),
	[]byte("BADWIDTH)"),
	[]byte("BADPREC)"),
	[]byte("BADINDEX)"),
	[]byte("PANIC="),
}

// hasFormatMark reports whether out contains one of fmt's in-band error
// marks: "%!" followed by an optional failing verb byte and a
// parenthesized payload, either a known keyword or the type=value shape
// of a bad-verb report. Plain "%!" in legitimately formatted text does
// not match.
func hasFormatMark(out []byte) bool {
	for {
		i := bytes.Index(out, markPrefix)
		if i < 0 {
			return false
		}
		rest := out[i+2:]
		if len(rest) > 0 && rest[0] != '(' {
			rest = rest[1:] // the failing verb, as in %!d(string=...)
		}
		if len(rest) > 0 && rest[0] == '(' && markPayload(rest[1:]) {
			return true
		}
		out = out[i+2:]
	}
}

// markPayload reports whether p starts like the inside of an error
// mark's parentheses.
func markPayload(p []byte) bool {
	for _, kw := range markKeywords {
		if bytes.HasPrefix(p, kw) {
			return true
		}
	}
	// bad-verb payloads carry the argument as type=value
	for i, c := range p {
		switch c {
		case '=':
			return i > 0
		case ')', ' ':
			return false
		}
	}
	return false
}

// Sprintf builds a Str from a printf-style format. The content is
// formatted into a pooled scratch buffer first, then placed into
// storage sized for the result, so the Str never carries slack from
// the formatting pass.
//
// fmt reports errors inside the output rather than returning them;
// Sprintf surfaces those as ErrFormat with an empty Str instead of
// handing back the mangled text, so an empty result with a nil error
// really is an empty string.
func Sprintf(format string, args ...any) (Str, error) {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)

	fmt.Fprintf(bb, format, args...)
	if hasFormatMark(bb.B) {
		return Str{}, ErrFormat
	}
	return Copy(TempBytes(bb.B)), nil
}
