package otx

import (
	"github.com/eluv-io/errors-go"

	"github.com/eluv-io/otx-go/format/molecule"
	"github.com/eluv-io/otx-go/util/numberutil"
)

// KeyValueRecord is a single typed annotation of an open transaction. An absent
// KeyData (nil) is distinct from a present but empty one.
type KeyValueRecord struct {
	KeyType   uint32          `json:"keyType"`
	KeyData   *molecule.Bytes `json:"keyData,omitempty"`
	ValueData molecule.Bytes  `json:"valueData"`
}

// NewRecord creates a record from an integer-like key type (number, decimal or
// 0x-prefixed hex string, big integer) and bytes-like value and optional key
// data (0x-prefixed hex string, byte slice, array of byte values). A nil key
// data is treated as absent.
func NewRecord(keyType interface{}, valueData interface{}, keyData ...interface{}) (KeyValueRecord, error) {
	e := errors.Template("NewRecord", errors.K.Invalid)

	kt, err := numberutil.AsUint32Err(keyType)
	if err != nil {
		return KeyValueRecord{}, e(err, "field", "keyType")
	}
	vd, err := molecule.NewBytes(valueData)
	if err != nil {
		return KeyValueRecord{}, e(err, "field", "valueData")
	}
	res := KeyValueRecord{
		KeyType:   kt,
		ValueData: vd,
	}
	if len(keyData) > 0 && keyData[0] != nil {
		kd, err := molecule.NewBytes(keyData[0])
		if err != nil {
			return KeyValueRecord{}, e(err, "field", "keyData")
		}
		res.KeyData = &kd
	}
	return res, nil
}

// MustRecord is like NewRecord but panics in case of an error.
func MustRecord(keyType interface{}, valueData interface{}, keyData ...interface{}) KeyValueRecord {
	res, err := NewRecord(keyType, valueData, keyData...)
	if err != nil {
		panic(err)
	}
	return res
}

// HasKeyData returns true if the record's key data is present, even if empty.
func (r KeyValueRecord) HasKeyData() bool {
	return r.KeyData != nil
}

// Equal compares the records by content. Nil and empty value data are equal,
// absent and empty key data are not.
func (r KeyValueRecord) Equal(o KeyValueRecord) bool {
	if r.KeyType != o.KeyType || !r.ValueData.Equal(o.ValueData) {
		return false
	}
	if r.KeyData == nil || o.KeyData == nil {
		return r.KeyData == nil && o.KeyData == nil
	}
	return r.KeyData.Equal(*o.KeyData)
}

// Pack returns the molecule encoding of the record.
func (r KeyValueRecord) Pack() []byte {
	return molecule.Pack(DefaultCodec.record, r)
}

func (r KeyValueRecord) MarshalBinary() ([]byte, error) {
	return r.Pack(), nil
}

func (r *KeyValueRecord) UnmarshalBinary(data []byte) error {
	res, err := UnpackRecord(data)
	if err != nil {
		return err
	}
	*r = res
	return nil
}

// ===== codec =================================================================

const recordFieldCount = 3

type recordCodec struct {
	cfg *molecule.Config
}

func (c recordCodec) fields(v KeyValueRecord) []molecule.FieldWriter {
	return []molecule.FieldWriter{
		molecule.Field(molecule.Uint32Codec, v.KeyType),
		molecule.Field(molecule.BytesOptCodec, v.KeyData),
		molecule.Field(molecule.BytesCodec, v.ValueData),
	}
}

func (c recordCodec) FixedSize() int { return 0 }

func (c recordCodec) SizeOf(v KeyValueRecord) int {
	return molecule.TableSize(c.fields(v)...)
}

func (c recordCodec) EncodeInto(dst []byte, v KeyValueRecord) []byte {
	return molecule.AppendTable(dst, c.fields(v)...)
}

func (c recordCodec) DecodeFrom(src []byte) (res KeyValueRecord, err error) {
	fields, err := molecule.ReadTable(src, recordFieldCount, c.cfg)
	if err != nil {
		return res, err
	}
	if res.KeyType, err = molecule.DecodeField(molecule.Uint32Codec, fields, 0, "keyType"); err != nil {
		return KeyValueRecord{}, err
	}
	if res.KeyData, err = molecule.DecodeField(molecule.BytesOptCodec, fields, 1, "keyData"); err != nil {
		return KeyValueRecord{}, err
	}
	if res.ValueData, err = molecule.DecodeField(molecule.BytesCodec, fields, 2, "valueData"); err != nil {
		return KeyValueRecord{}, err
	}
	return res, nil
}
