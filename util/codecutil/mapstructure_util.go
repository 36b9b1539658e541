package codecutil

import (
	"encoding"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/eluv-io/otx-go/util/byteutil"
)

// MapUnmarshaler is implemented by types that decode themselves from a generic
// map.
type MapUnmarshaler interface {
	UnmarshalMap(m map[string]interface{}) error
}

// ValueUnmarshaler is implemented by types that accept several generic
// representations, e.g. a hex string or an array of numbers for a byte string.
type ValueUnmarshaler interface {
	UnmarshalValue(v interface{}) error
}

var mapUnmarshaler = reflect.TypeOf((*MapUnmarshaler)(nil)).Elem()
var valueUnmarshaler = reflect.TypeOf((*ValueUnmarshaler)(nil)).Elem()
var textUnmarshaler = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

// MapDecode decodes a parsed, generic source structure that was e.g.
// produced by unmarshaling JSON or YAML
//
//	var any interface{}
//	_ := yaml.Unmarshal(text, &any)
//
// into the destination object dst (usually a pointer to a struct value). Any
// `json:...` tags defined on the destination structure's member fields will be
// used for decoding (just like when unmarshaling JSON text).
//
// The implementation uses github.com/mitchellh/mapstructure to do the decoding,
// with the following special decoding hooks:
//   - decodes with 'UnmarshalValue(v interface{}) error' if implemented by the
//     destination object/field
//   - decodes with 'UnmarshalMap(m map[string]interface{}) error' if
//     implemented by the destination object/field
//   - decodes with 'UnmarshalText(text []byte) error' if the destination
//     implements encoding.TextUnmarshaler and the source is a string
//   - decodes byte slices from 0x-prefixed hex strings or arrays of numbers
func MapDecode(src interface{}, dst interface{}) error {
	cfg := &mapstructure.DecoderConfig{
		TagName:    "json",
		Result:     dst,
		DecodeHook: decodeHook,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}
	return decoder.Decode(src)
}

var byteSliceType = reflect.TypeOf([]byte(nil))

func decodeHook(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if data == nil || f == t {
		return data, nil
	}
	t, ptr := resolve(t)
	if f == t || f == ptr {
		return data, nil
	}

	if ptr.Implements(valueUnmarshaler) {
		instance := reflect.New(t)
		ret := instance.Interface()
		err := ret.(ValueUnmarshaler).UnmarshalValue(data)
		if err != nil {
			return nil, err
		}
		return ret, nil
	}

	switch dt := data.(type) {
	case map[string]interface{}:
		if ptr.Implements(mapUnmarshaler) {
			instance := reflect.New(t)
			ret := instance.Interface()
			err := ret.(MapUnmarshaler).UnmarshalMap(dt)
			if err != nil {
				return nil, err
			}
			return ret, nil
		}
	case string:
		if ptr.Implements(textUnmarshaler) {
			instance := reflect.New(t)
			ret := instance.Interface()
			err := ret.(encoding.TextUnmarshaler).UnmarshalText([]byte(dt))
			if err != nil {
				return nil, err
			}
			return ret, nil
		} else if t == byteSliceType {
			return byteutil.FromBytesLike(dt)
		}
	case []interface{}:
		if t == byteSliceType {
			return byteutil.FromBytesLike(dt)
		}
	}

	return data, nil
}

func resolve(t reflect.Type) (reflect.Type, reflect.Type) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	ptr := reflect.PointerTo(t)
	return t, ptr
}
