package molecule

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"math/big"

	"github.com/eluv-io/errors-go"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/eluv-io/otx-go/util/byteutil"
	"github.com/eluv-io/otx-go/util/numberutil"
)

// Fixed-width codecs. All integers are little-endian.
var (
	ByteCodec    Codec[uint8]    = fixedCodec[uint8]{name: "Byte", size: 1, put: putByte, get: getByte}
	Uint32Codec  Codec[uint32]   = fixedCodec[uint32]{name: "Uint32", size: 4, put: appendUint32, get: binary.LittleEndian.Uint32}
	Uint64Codec  Codec[uint64]   = fixedCodec[uint64]{name: "Uint64", size: 8, put: appendUint64, get: binary.LittleEndian.Uint64}
	Uint128Codec Codec[Uint128]  = fixedCodec[Uint128]{name: "Uint128", size: 16, put: putUint128, get: getUint128}
	Byte32Codec  Codec[[32]byte] = fixedCodec[[32]byte]{name: "Byte32", size: 32, put: putByte32, get: getByte32}
)

// Codecs of byte strings: Bytes is a 4-byte length followed by the raw bytes,
// BytesOpt is either empty (absent) or a Bytes encoding.
var (
	BytesCodec    Codec[Bytes]  = bytesCodec{}
	BytesOptCodec Codec[*Bytes] = Option(BytesCodec)
)

type fixedCodec[T any] struct {
	name string
	size int
	put  func(dst []byte, v T) []byte
	get  func(src []byte) T
}

func (c fixedCodec[T]) FixedSize() int { return c.size }

func (c fixedCodec[T]) SizeOf(T) int { return c.size }

func (c fixedCodec[T]) EncodeInto(dst []byte, v T) []byte { return c.put(dst, v) }

func (c fixedCodec[T]) DecodeFrom(src []byte) (T, error) {
	var zero T
	if len(src) < c.size {
		return zero, fail("molecule.DecodeFrom", ErrTruncatedInput, "type", c.name, "expected", c.size, "actual", len(src))
	}
	if len(src) > c.size {
		return zero, fail("molecule.DecodeFrom", ErrTrailingData, "type", c.name, "expected", c.size, "actual", len(src))
	}
	return c.get(src), nil
}

func putByte(dst []byte, v uint8) []byte { return append(dst, v) }

func getByte(src []byte) uint8 { return src[0] }

func putByte32(dst []byte, v [32]byte) []byte { return append(dst, v[:]...) }

func getByte32(src []byte) (v [32]byte) {
	copy(v[:], src)
	return v
}

// ===== Uint128 ===============================================================

// Uint128 is an unsigned 128-bit integer.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

var maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// Uint128FromBig converts the given big integer. Returns an error if it is
// negative or does not fit in 128 bits.
func Uint128FromBig(b *big.Int) (Uint128, error) {
	if b == nil || b.Sign() < 0 || b.Cmp(maxUint128) > 0 {
		return Uint128{}, errors.NoTrace("Uint128FromBig", errors.K.Invalid, "reason", "out of range", "value", b)
	}
	lo := new(big.Int).And(b, new(big.Int).SetUint64(^uint64(0)))
	hi := new(big.Int).Rsh(b, 64)
	return Uint128{Hi: hi.Uint64(), Lo: lo.Uint64()}, nil
}

// ParseUint128 converts any integer-like value (native number, decimal or hex
// string, big integer) to a Uint128.
func ParseUint128(val interface{}) (Uint128, error) {
	b, err := numberutil.AsBigErr(val)
	if err != nil {
		return Uint128{}, errors.NoTrace("ParseUint128", errors.K.Invalid, err)
	}
	return Uint128FromBig(b)
}

// Big returns u as a big integer.
func (u Uint128) Big() *big.Int {
	b := new(big.Int).SetUint64(u.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.Lo))
}

func (u Uint128) String() string {
	return u.Big().String()
}

func (u Uint128) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *Uint128) UnmarshalText(text []byte) error {
	v, err := ParseUint128(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func putUint128(dst []byte, v Uint128) []byte {
	dst = appendUint64(dst, v.Lo)
	return appendUint64(dst, v.Hi)
}

func getUint128(src []byte) Uint128 {
	return Uint128{
		Lo: binary.LittleEndian.Uint64(src),
		Hi: binary.LittleEndian.Uint64(src[8:]),
	}
}

// ===== Bytes =================================================================

// Bytes is a byte string. Its text form is the 0x-prefixed hex encoding.
type Bytes []byte

// NewBytes converts any bytes-like value (0x-prefixed hex string, byte slice,
// array of byte values) to Bytes.
func NewBytes(val interface{}) (Bytes, error) {
	b, err := byteutil.FromBytesLike(val)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// MustBytes is like NewBytes but panics on error.
func MustBytes(val interface{}) Bytes {
	b, err := NewBytes(val)
	if err != nil {
		panic(err)
	}
	return b
}

// Equal compares the byte content of b and o. nil and empty are equal.
func (b Bytes) Equal(o Bytes) bool {
	return bytes.Equal(b, o)
}

func (b Bytes) String() string {
	return hexutil.Encode(b)
}

func (b Bytes) MarshalText() ([]byte, error) {
	return hexutil.Bytes(b).MarshalText()
}

func (b *Bytes) UnmarshalText(text []byte) error {
	return b.UnmarshalValue(string(text))
}

// UnmarshalJSON accepts a hex string or an array of byte values.
func (b *Bytes) UnmarshalJSON(data []byte) error {
	var val interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&val); err != nil {
		return errors.E("Bytes.UnmarshalJSON", errors.K.Invalid, err)
	}
	return b.UnmarshalValue(val)
}

// UnmarshalValue sets b from any bytes-like value.
func (b *Bytes) UnmarshalValue(val interface{}) error {
	v, err := NewBytes(val)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

type bytesCodec struct{}

func (bytesCodec) FixedSize() int { return 0 }

func (bytesCodec) SizeOf(v Bytes) int { return numberSize + len(v) }

func (bytesCodec) EncodeInto(dst []byte, v Bytes) []byte {
	dst = appendNumber(dst, len(v))
	return append(dst, v...)
}

func (bytesCodec) DecodeFrom(src []byte) (Bytes, error) {
	if len(src) < numberSize {
		return nil, fail("molecule.DecodeFrom", ErrTruncatedInput, "type", "Bytes", "reason", "missing length", "actual", len(src))
	}
	n := readNumber(src, 0)
	available := uint64(len(src) - numberSize)
	if n > available {
		return nil, fail("molecule.DecodeFrom", ErrTruncatedInput, "type", "Bytes", "declared", n, "available", available)
	}
	if n < available {
		return nil, fail("molecule.DecodeFrom", ErrTrailingData, "type", "Bytes", "declared", n, "available", available)
	}
	res := make(Bytes, n)
	copy(res, src[numberSize:])
	return res, nil
}
