package numberutil

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/eluv-io/errors-go"
	"github.com/ethereum/go-ethereum/common/hexutil"
	emath "github.com/ethereum/go-ethereum/common/math"
)

// AsBigErr returns the given integer-like value as a big integer. Accepted
// values are native integers, floats without fractional part, decimal strings,
// 0x-prefixed hex strings, json.Number and the big integer types of the
// standard library and go-ethereum. The result never shares memory with val.
func AsBigErr(val interface{}) (*big.Int, error) {
	e := errors.Template("AsBig", errors.K.Invalid, "value", val)
	if val == nil {
		return nil, e(errors.K.NotExist)
	}
	switch x := val.(type) {
	case string:
		return parseBig(x, e)
	case json.Number:
		return parseBig(string(x), e)
	case int:
		return big.NewInt(int64(x)), nil
	case int8:
		return big.NewInt(int64(x)), nil
	case int16:
		return big.NewInt(int64(x)), nil
	case int32:
		return big.NewInt(int64(x)), nil
	case int64:
		return big.NewInt(x), nil
	case uint:
		return new(big.Int).SetUint64(uint64(x)), nil
	case uint8:
		return new(big.Int).SetUint64(uint64(x)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(x)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(x)), nil
	case uint64:
		return new(big.Int).SetUint64(x), nil
	case float32:
		return floatToBig(float64(x), e)
	case float64:
		return floatToBig(x, e)
	case *big.Int:
		if x == nil {
			return nil, e(errors.K.NotExist)
		}
		return new(big.Int).Set(x), nil
	case big.Int:
		return new(big.Int).Set(&x), nil
	case *hexutil.Big:
		if x == nil {
			return nil, e(errors.K.NotExist)
		}
		return new(big.Int).Set(x.ToInt()), nil
	case hexutil.Big:
		return new(big.Int).Set(x.ToInt()), nil
	case hexutil.Uint64:
		return new(big.Int).SetUint64(uint64(x)), nil
	case hexutil.Uint:
		return new(big.Int).SetUint64(uint64(x)), nil
	}
	return nil, e("reason", "unsupported type", "type", fmt.Sprintf("%T", val))
}

func parseBig(s string, e errors.TemplateFn) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, e("reason", "empty string")
	}
	res, ok := emath.ParseBig256(s)
	if !ok {
		return nil, e("reason", "not a decimal or 0x-prefixed hex number")
	}
	return res, nil
}

func floatToBig(f float64, e errors.TemplateFn) (*big.Int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, e("reason", "not an integer")
	}
	res, _ := big.NewFloat(f).Int(nil)
	return res, nil
}

// AsUint64Err returns the given integer-like value (see AsBigErr) as uint64.
// Returns an error if the value is negative or does not fit.
func AsUint64Err(val interface{}) (uint64, error) {
	b, err := AsBigErr(val)
	if err != nil {
		return 0, err
	}
	if !b.IsUint64() {
		return 0, errors.E("AsUint64", errors.K.Invalid, "reason", "out of range", "value", val)
	}
	return b.Uint64(), nil
}

// AsUint32Err returns the given integer-like value (see AsBigErr) as uint32.
// Returns an error if the value is negative or does not fit.
func AsUint32Err(val interface{}) (uint32, error) {
	res, err := AsUint64Err(val)
	if err != nil {
		return 0, err
	}
	if res > math.MaxUint32 {
		return 0, errors.E("AsUint32", errors.K.Invalid, "reason", "out of range", "value", val)
	}
	return uint32(res), nil
}

// AsUint32 returns the given value as uint32, or 0 if it cannot be converted.
func AsUint32(val interface{}) uint32 {
	res, err := AsUint32Err(val)
	if err != nil {
		return 0
	}
	return res
}
