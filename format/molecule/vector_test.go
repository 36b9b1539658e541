package molecule_test

import (
	"testing"

	"github.com/eluv-io/errors-go"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/require"

	"github.com/eluv-io/otx-go/format/molecule"
)

type uint32s []uint32

func TestFixVec(t *testing.T) {
	codec := molecule.Vector[uint32s](molecule.Uint32Codec, nil)
	require.Equal(t, 0, codec.FixedSize())

	buf := molecule.Pack(codec, uint32s{1, 2, 3})
	require.Equal(t, "0x03000000"+"01000000"+"02000000"+"03000000", hexutil.Encode(buf))

	res, err := codec.DecodeFrom(buf)
	require.NoError(t, err)
	require.Equal(t, uint32s{1, 2, 3}, res)

	empty := molecule.Pack(codec, nil)
	require.Equal(t, []byte{0, 0, 0, 0}, empty)
	res, err = codec.DecodeFrom(empty)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Empty(t, res)

	for n := 0; n < len(buf); n++ {
		_, err = codec.DecodeFrom(buf[:n])
		require.True(t, errors.Is(err, molecule.ErrTruncatedInput), "truncated to %d bytes: %v", n, err)
	}
	_, err = codec.DecodeFrom(append(buf, 0))
	require.True(t, errors.Is(err, molecule.ErrMalformedVector), err)
}

func TestFixVecPanicsOnDynamicElements(t *testing.T) {
	require.Panics(t, func() {
		molecule.FixVec[[]molecule.Bytes](molecule.BytesCodec, nil)
	})
}

func TestDynVec(t *testing.T) {
	codec := molecule.Vector[[]molecule.Bytes](molecule.BytesCodec, nil)

	buf := molecule.Pack(codec, []molecule.Bytes{{0x0a}, {}, {0x0b, 0x0c}})
	require.Equal(t, "0x"+"1f000000"+"10000000"+"15000000"+"19000000"+"010000000a"+"00000000"+"020000000b0c", hexutil.Encode(buf))
	require.Equal(t, len(buf), codec.SizeOf([]molecule.Bytes{{0x0a}, {}, {0x0b, 0x0c}}))

	res, err := codec.DecodeFrom(buf)
	require.NoError(t, err)
	require.Len(t, res, 3)
	require.Equal(t, molecule.Bytes{0x0a}, res[0])
	require.Equal(t, molecule.Bytes{}, res[1])
	require.Equal(t, molecule.Bytes{0x0b, 0x0c}, res[2])

	for n := 0; n < len(buf); n++ {
		_, err = codec.DecodeFrom(buf[:n])
		require.Error(t, err, "truncated to %d bytes", n)
	}
}

func TestDynVecEmpty(t *testing.T) {
	codec := molecule.DynVec[[]molecule.Bytes](molecule.BytesCodec, nil)
	buf := molecule.Pack(codec, nil)
	require.Equal(t, []byte{4, 0, 0, 0}, buf)

	res, err := codec.DecodeFrom(buf)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Empty(t, res)
}

func TestDynVecOrder(t *testing.T) {
	codec := molecule.DynVec[[]molecule.Bytes](molecule.BytesCodec, nil)
	in := []molecule.Bytes{{3}, {1}, {2}, {1}}
	res, err := codec.DecodeFrom(molecule.Pack(codec, in))
	require.NoError(t, err)
	require.Equal(t, in, res)
}

func TestDynVecMalformed(t *testing.T) {
	codec := molecule.DynVec[[]molecule.Bytes](molecule.BytesCodec, nil)
	tests := []struct {
		name string
		buf  string
		want error
	}{
		{
			name: "equal-offsets",
			buf:  "0x" + "11000000" + "0c000000" + "0c000000" + "010000000a",
			want: molecule.ErrMalformedVector,
		},
		{
			name: "decreasing-offsets",
			buf:  "0x" + "16000000" + "0c000000" + "08000000" + "010000000a" + "010000000b",
			want: molecule.ErrMalformedVector,
		},
		{
			name: "offset-out-of-range",
			buf:  "0x" + "16000000" + "0c000000" + "20000000" + "010000000a" + "010000000b",
			want: molecule.ErrMalformedVector,
		},
		{
			name: "total-size-short",
			buf:  "0x" + "10000000" + "0c000000" + "11000000" + "010000000a" + "010000000b",
			want: molecule.ErrMalformedVector,
		},
		{
			name: "total-size-long",
			buf:  "0x" + "20000000" + "0c000000" + "11000000" + "010000000a" + "010000000b",
			want: molecule.ErrTruncatedInput,
		},
		{
			name: "invalid-element",
			buf:  "0x" + "16000000" + "0c000000" + "11000000" + "020000000a" + "010000000b",
			want: molecule.ErrMalformedVector,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := codec.DecodeFrom(hexutil.MustDecode(test.buf))
			require.Error(t, err)
			require.True(t, errors.Is(err, test.want), err)
		})
	}
}

func TestVectorItemLimit(t *testing.T) {
	cfg := &molecule.Config{MaxItemCount: 2}
	dyn := molecule.DynVec[[]molecule.Bytes](molecule.BytesCodec, cfg)
	fix := molecule.FixVec[uint32s](molecule.Uint32Codec, cfg)

	_, err := dyn.DecodeFrom(molecule.Pack(dyn, []molecule.Bytes{{1}, {2}}))
	require.NoError(t, err)
	_, err = dyn.DecodeFrom(molecule.Pack(dyn, []molecule.Bytes{{1}, {2}, {3}}))
	require.True(t, errors.Is(err, molecule.ErrSizeLimit), err)

	_, err = fix.DecodeFrom(molecule.Pack(fix, uint32s{1, 2}))
	require.NoError(t, err)
	_, err = fix.DecodeFrom(molecule.Pack(fix, uint32s{1, 2, 3}))
	require.True(t, errors.Is(err, molecule.ErrSizeLimit), err)
}

func TestNestedVectors(t *testing.T) {
	inner := molecule.DynVec[[]molecule.Bytes](molecule.BytesCodec, nil)
	outer := molecule.DynVec[[][]molecule.Bytes](inner, nil)

	in := [][]molecule.Bytes{{{1}, {2}}, {}, {{3}}}
	buf := molecule.Pack(outer, in)
	res, err := outer.DecodeFrom(buf)
	require.NoError(t, err)
	require.Equal(t, len(in), len(res))
	require.Equal(t, in[0], res[0])
	require.Empty(t, res[1])
	require.Equal(t, in[2], res[2])

	// outer header (16) + header of the first inner vector (12): length of {1}
	buf[16+12] = 5
	_, err = outer.DecodeFrom(buf)
	require.True(t, errors.Is(err, molecule.ErrMalformedVector), err)
	require.True(t, errors.Is(err, molecule.ErrTruncatedInput), err)
}
