package molecule

import (
	"encoding/binary"
)

// numberSize is the size of every header, count and offset in the layout.
const numberSize = 4

// Codec encodes and decodes values of type T. Tables, vectors and options are
// built from other codecs, so any Codec can be used as a field or element.
type Codec[T any] interface {
	// FixedSize returns the encoded size shared by all values of T, or 0 if
	// the encoded size depends on the value.
	FixedSize() int
	// SizeOf returns the encoded size of v.
	SizeOf(v T) int
	// EncodeInto appends the encoding of v to dst and returns the extended
	// slice.
	EncodeInto(dst []byte, v T) []byte
	// DecodeFrom decodes a value from src, which must hold exactly one encoded
	// item. src is never modified and the returned value does not share
	// memory with it.
	DecodeFrom(src []byte) (T, error)
}

// Pack encodes v into a new buffer of exactly the encoded size.
func Pack[T any](c Codec[T], v T) []byte {
	return c.EncodeInto(make([]byte, 0, c.SizeOf(v)), v)
}

// Unpack decodes the value in src after checking the buffer size against the
// limits of cfg. cfg may be nil.
func Unpack[T any](c Codec[T], src []byte, cfg *Config) (T, error) {
	if err := cfg.CheckBufferSize(len(src)); err != nil {
		var zero T
		return zero, err
	}
	return c.DecodeFrom(src)
}

func appendNumber(dst []byte, n int) []byte {
	return appendUint32(dst, uint32(n))
}

func appendUint32(dst []byte, v uint32) []byte {
	return append(dst, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

func appendUint64(dst []byte, v uint64) []byte {
	return append(dst,
		byte(v), byte(v>>8), byte(v>>16), byte(v>>24),
		byte(v>>32), byte(v>>40), byte(v>>48), byte(v>>56))
}

func readNumber(src []byte, pos int) uint64 {
	return uint64(binary.LittleEndian.Uint32(src[pos:]))
}
