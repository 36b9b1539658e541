package byteutil

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/eluv-io/errors-go"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/eluv-io/otx-go/util/numberutil"
)

// FromBytesLike normalizes a bytes-like value to a byte slice. Accepted values
// are:
//   - 0x-prefixed hex strings, e.g. "0x68656c6c6f" ("0x" is the empty string)
//   - byte slices and byte arrays, including named types like hexutil.Bytes
//   - slices and arrays of integer-like byte values, e.g. []int{0x68, 0x65}
//     or the []interface{} produced by JSON decoding
//   - *bytes.Buffer and any value with a `Bytes() []byte` method
//
// The result is never nil and never shares memory with val.
func FromBytesLike(val interface{}) ([]byte, error) {
	e := errors.Template("FromBytesLike", errors.K.Invalid)

	switch t := val.(type) {
	case nil:
		return nil, e(errors.K.NotExist, "reason", "no value")
	case string:
		b, err := hexutil.Decode(t)
		if err != nil {
			return nil, e(err, "reason", "invalid hex string", "value", t)
		}
		return Clone(b), nil
	case []byte:
		return Clone(t), nil
	case hexutil.Bytes:
		return Clone(t), nil
	case *bytes.Buffer:
		if t == nil {
			return nil, e(errors.K.NotExist, "reason", "nil buffer")
		}
		return Clone(t.Bytes()), nil
	case []interface{}:
		res := make([]byte, len(t))
		for i, v := range t {
			b, err := toByte(v)
			if err != nil {
				return nil, e(err, "index", i)
			}
			res[i] = b
		}
		return res, nil
	case interface{ Bytes() []byte }:
		return Clone(t.Bytes()), nil
	}

	rv := reflect.ValueOf(val)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, e(errors.K.NotExist, "reason", "nil pointer", "type", fmt.Sprintf("%T", val))
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.String:
		return FromBytesLike(rv.String())
	case reflect.Slice, reflect.Array:
		res := make([]byte, rv.Len())
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			reflect.Copy(reflect.ValueOf(res), rv)
			return res, nil
		}
		for i := range res {
			b, err := toByte(rv.Index(i).Interface())
			if err != nil {
				return nil, e(err, "index", i)
			}
			res[i] = b
		}
		return res, nil
	}
	return nil, e("reason", "unsupported type", "type", fmt.Sprintf("%T", val))
}

// Clone returns a copy of b. The copy of a nil slice is an empty, non-nil
// slice.
func Clone(b []byte) []byte {
	res := make([]byte, len(b))
	copy(res, b)
	return res
}

func toByte(v interface{}) (byte, error) {
	n, err := numberutil.AsUint64Err(v)
	if err != nil {
		return 0, err
	}
	if n > 0xff {
		return 0, errors.E("toByte", errors.K.Invalid, "reason", "byte value out of range", "value", v)
	}
	return byte(n), nil
}
