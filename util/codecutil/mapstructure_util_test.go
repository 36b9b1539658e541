package codecutil_test

import (
	"strings"
	"testing"

	"github.com/eluv-io/errors-go"
	"github.com/stretchr/testify/require"

	"github.com/eluv-io/otx-go/util/codecutil"
)

type upper string

func (u *upper) UnmarshalText(text []byte) error {
	*u = upper(strings.ToUpper(string(text)))
	return nil
}

type pair struct {
	A string
	B string
}

func (p *pair) UnmarshalMap(m map[string]interface{}) error {
	a, _ := m["first"].(string)
	b, _ := m["second"].(string)
	if a == "" {
		return errors.E("pair.UnmarshalMap", errors.K.Invalid, "reason", "first missing")
	}
	*p = pair{A: a, B: b}
	return nil
}

type counter int

func (c *counter) UnmarshalValue(v interface{}) error {
	switch t := v.(type) {
	case []interface{}:
		*c = counter(len(t))
	case string:
		*c = counter(len(t))
	default:
		return errors.E("counter.UnmarshalValue", errors.K.Invalid)
	}
	return nil
}

type target struct {
	Name    upper   `json:"name"`
	Data    []byte  `json:"data"`
	Opt     *[]byte `json:"opt,omitempty"`
	Pair    pair    `json:"pair"`
	Pairs   []pair  `json:"pairs"`
	Counter counter `json:"counter"`
}

func TestMapDecode(t *testing.T) {
	src := map[string]interface{}{
		"name":    "hello",
		"data":    "0x0102",
		"opt":     []interface{}{3, 4},
		"pair":    map[string]interface{}{"first": "a", "second": "b"},
		"pairs":   []interface{}{map[string]interface{}{"first": "c"}},
		"counter": []interface{}{1, 2, 3},
	}

	var res target
	err := codecutil.MapDecode(src, &res)
	require.NoError(t, err)
	require.Equal(t, upper("HELLO"), res.Name)
	require.Equal(t, []byte{1, 2}, res.Data)
	require.NotNil(t, res.Opt)
	require.Equal(t, []byte{3, 4}, *res.Opt)
	require.Equal(t, pair{A: "a", B: "b"}, res.Pair)
	require.Equal(t, []pair{{A: "c"}}, res.Pairs)
	require.Equal(t, counter(3), res.Counter)
}

func TestMapDecodeErrors(t *testing.T) {
	var res target
	err := codecutil.MapDecode(map[string]interface{}{"data": "0xzz"}, &res)
	require.Error(t, err)

	err = codecutil.MapDecode(map[string]interface{}{"pair": map[string]interface{}{}}, &res)
	require.Error(t, err)

	err = codecutil.MapDecode(map[string]interface{}{"counter": 5}, &res)
	require.Error(t, err)
}
