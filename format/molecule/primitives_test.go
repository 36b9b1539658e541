package molecule_test

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/eluv-io/errors-go"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/require"

	"github.com/eluv-io/otx-go/format/molecule"
)

func TestUint32(t *testing.T) {
	buf := molecule.Pack(molecule.Uint32Codec, 0x01020304)
	require.Equal(t, []byte{4, 3, 2, 1}, buf)

	v, err := molecule.Uint32Codec.DecodeFrom(buf)
	require.NoError(t, err)
	require.Equal(t, uint32(0x01020304), v)

	_, err = molecule.Uint32Codec.DecodeFrom(buf[:3])
	require.True(t, errors.Is(err, molecule.ErrTruncatedInput), err)

	_, err = molecule.Uint32Codec.DecodeFrom(append(buf, 0))
	require.True(t, errors.Is(err, molecule.ErrTrailingData), err)
}

func TestUint64(t *testing.T) {
	buf := molecule.Pack(molecule.Uint64Codec, 0x0102030405060708)
	require.Equal(t, []byte{8, 7, 6, 5, 4, 3, 2, 1}, buf)

	v, err := molecule.Uint64Codec.DecodeFrom(buf)
	require.NoError(t, err)
	require.Equal(t, uint64(0x0102030405060708), v)

	_, err = molecule.Uint64Codec.DecodeFrom(buf[:7])
	require.True(t, errors.Is(err, molecule.ErrTruncatedInput), err)
}

func TestUint128(t *testing.T) {
	u, err := molecule.ParseUint128("0x0102030405060708090a0b0c0d0e0f10")
	require.NoError(t, err)
	require.Equal(t, molecule.Uint128{Hi: 0x0102030405060708, Lo: 0x090a0b0c0d0e0f10}, u)

	buf := molecule.Pack(molecule.Uint128Codec, u)
	require.Equal(t, hexutil.MustDecode("0x100f0e0d0c0b0a090807060504030201"), buf)

	v, err := molecule.Uint128Codec.DecodeFrom(buf)
	require.NoError(t, err)
	require.Equal(t, u, v)

	_, err = molecule.Uint128Codec.DecodeFrom(buf[:15])
	require.True(t, errors.Is(err, molecule.ErrTruncatedInput), err)
}

func TestUint128Conversions(t *testing.T) {
	maxText := "340282366920938463463374607431768211455"
	u, err := molecule.ParseUint128(maxText)
	require.NoError(t, err)
	require.Equal(t, molecule.Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}, u)
	require.Equal(t, maxText, u.String())

	_, err = molecule.ParseUint128("340282366920938463463374607431768211456")
	require.Error(t, err)
	_, err = molecule.ParseUint128(-1)
	require.Error(t, err)
	_, err = molecule.Uint128FromBig(nil)
	require.Error(t, err)

	u, err = molecule.Uint128FromBig(big.NewInt(42))
	require.NoError(t, err)
	require.Equal(t, int64(42), u.Big().Int64())

	text, err := json.Marshal(u)
	require.NoError(t, err)
	require.Equal(t, `"42"`, string(text))

	var decoded molecule.Uint128
	require.NoError(t, json.Unmarshal([]byte(`"0x2a"`), &decoded))
	require.Equal(t, u, decoded)
}

func TestByte32(t *testing.T) {
	var v [32]byte
	for i := range v {
		v[i] = byte(i)
	}
	buf := molecule.Pack(molecule.Byte32Codec, v)
	require.Equal(t, v[:], buf)

	res, err := molecule.Byte32Codec.DecodeFrom(buf)
	require.NoError(t, err)
	require.Equal(t, v, res)

	_, err = molecule.Byte32Codec.DecodeFrom(buf[:31])
	require.True(t, errors.Is(err, molecule.ErrTruncatedInput), err)
}

func TestBytes(t *testing.T) {
	tests := []struct {
		val  molecule.Bytes
		want string
	}{
		{molecule.Bytes{}, "0x00000000"},
		{molecule.Bytes{0x0f}, "0x010000000f"},
		{molecule.Bytes("hello"), "0x0500000068656c6c6f"},
	}
	for _, test := range tests {
		t.Run(test.want, func(t *testing.T) {
			buf := molecule.Pack(molecule.BytesCodec, test.val)
			require.Equal(t, test.want, hexutil.Encode(buf))
			require.Equal(t, len(buf), molecule.BytesCodec.SizeOf(test.val))

			res, err := molecule.BytesCodec.DecodeFrom(buf)
			require.NoError(t, err)
			require.NotNil(t, res)
			require.True(t, test.val.Equal(res))
		})
	}
}

func TestBytesDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		buf  string
		want error
	}{
		{"empty", "0x", molecule.ErrTruncatedInput},
		{"short-length", "0x010000", molecule.ErrTruncatedInput},
		{"missing-data", "0x02000000ff", molecule.ErrTruncatedInput},
		{"huge-length", "0xffffffff", molecule.ErrTruncatedInput},
		{"trailing", "0x01000000ffff", molecule.ErrTrailingData},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := molecule.BytesCodec.DecodeFrom(hexutil.MustDecode(test.buf))
			require.Error(t, err)
			require.True(t, errors.Is(err, test.want), err)
			require.True(t, errors.IsKind(errors.K.Invalid, err))
		})
	}
}

func TestBytesText(t *testing.T) {
	b := molecule.Bytes{0x68, 0x69}
	require.Equal(t, "0x6869", b.String())
	require.Equal(t, "0x", molecule.Bytes(nil).String())

	text, err := json.Marshal(b)
	require.NoError(t, err)
	require.Equal(t, `"0x6869"`, string(text))

	var res molecule.Bytes
	require.NoError(t, json.Unmarshal([]byte(`"0x6869"`), &res))
	require.Equal(t, b, res)

	require.NoError(t, json.Unmarshal([]byte(`[104, 105]`), &res))
	require.Equal(t, b, res)

	require.Error(t, json.Unmarshal([]byte(`"6869"`), &res))
	require.Error(t, json.Unmarshal([]byte(`[1000]`), &res))

	require.Equal(t, b, molecule.MustBytes([]int{0x68, 0x69}))
	require.Panics(t, func() { molecule.MustBytes("zz") })
}

func TestOption(t *testing.T) {
	require.Empty(t, molecule.Pack(molecule.BytesOptCodec, nil))

	empty := molecule.Bytes{}
	buf := molecule.Pack(molecule.BytesOptCodec, &empty)
	require.Equal(t, []byte{0, 0, 0, 0}, buf)

	res, err := molecule.BytesOptCodec.DecodeFrom(nil)
	require.NoError(t, err)
	require.Nil(t, res)

	res, err = molecule.BytesOptCodec.DecodeFrom(buf)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Empty(t, *res)

	_, err = molecule.BytesOptCodec.DecodeFrom([]byte{1, 0})
	require.True(t, errors.Is(err, molecule.ErrTruncatedInput), err)
}
