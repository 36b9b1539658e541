package otx

import (
	"bytes"
	"encoding/json"

	"github.com/eluv-io/errors-go"

	"github.com/eluv-io/otx-go/util/codecutil"
)

// UnmarshalJSON decodes the JSON form of a record:
//
//	{"keyType": 1, "keyData": "0x0a", "valueData": "0x0f"}
//
// keyType may also be a decimal or hex string, byte strings may also be arrays
// of byte values. A missing or null keyData is absent.
func (r *KeyValueRecord) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var m map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	err := dec.Decode(&m)
	if err != nil {
		return errors.E("KeyValueRecord.UnmarshalJSON", errors.K.Invalid, err)
	}
	return r.UnmarshalMap(m)
}

// UnmarshalMap decodes a record from a generic map as produced by unmarshaling
// JSON or YAML. See UnmarshalJSON for the accepted values.
func (r *KeyValueRecord) UnmarshalMap(m map[string]interface{}) error {
	e := errors.Template("KeyValueRecord.UnmarshalMap", errors.K.Invalid)

	keyType, ok := m["keyType"]
	if !ok || keyType == nil {
		return e("reason", "missing keyType")
	}
	valueData, ok := m["valueData"]
	if !ok || valueData == nil {
		return e("reason", "missing valueData")
	}
	res, err := NewRecord(keyType, valueData, m["keyData"])
	if err != nil {
		return e(err)
	}
	*r = res
	return nil
}

// FromMap decodes an open transaction from a generic structure as produced by
// unmarshaling JSON or YAML into an interface{}. Sections use the JSON names
// (meta, cellDeps, headerDeps, inputs, witnesses, outputs); missing sections
// are empty.
func FromMap(src interface{}) (OpenTransaction, error) {
	var tx OpenTransaction
	err := codecutil.MapDecode(src, &tx)
	if err != nil {
		return OpenTransaction{}, errors.E("FromMap", errors.K.Invalid, err)
	}
	return tx, nil
}
