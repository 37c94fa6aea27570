package smallstr

import (
	"io"
	"math"
)

// readChunk bounds how much spare capacity one read pass reserves.
const readChunk = 4096

// ReadLine reads bytes from br until the delimiter is consumed, the
// stream ends, or max bytes have been read, and returns them as a Str.
// The delimiter is retained as the last byte of the result. End of
// stream is not an error: the accumulated bytes (possibly none) come
// back with a nil error, so a caller looping over a stream sees its
// lines and then one empty result. Other stream errors are returned
// together with whatever was read before them.
//
// Bytes are written straight into reserved spare capacity, one chunk
// per pass, so long lines cost the append growth policy and nothing
// more.
func ReadLine(br io.ByteReader, delim byte, max int) (Str, error) {
	var s Str
	for max > 0 {
		chunk := readChunk
		if chunk > max {
			chunk = max
		}
		mem := s.Reserve(chunk)
		n := 0
		found := false
		var readErr error
		for n < chunk {
			c, err := br.ReadByte()
			if err != nil {
				readErr = err
				break
			}
			mem[n] = c
			n++
			if c == delim {
				found = true
				break
			}
		}
		s.Commit(n)
		max -= n
		if readErr != nil {
			if readErr == io.EOF {
				return s, nil
			}
			return s, readErr
		}
		if found {
			return s, nil
		}
	}
	return s, nil
}

// ReadAnyLine is ReadLine without a byte budget.
func ReadAnyLine(br io.ByteReader, delim byte) (Str, error) {
	return ReadLine(br, delim, math.MaxInt)
}
