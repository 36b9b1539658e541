package ckb

import (
	"encoding/json"

	"github.com/eluv-io/errors-go"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/eluv-io/otx-go/format/molecule"
)

// OutPointSize is the encoded size of an OutPoint.
const OutPointSize = common.HashLength + 4

// OutPoint references an output of a transaction.
//
//	struct OutPoint {
//	    tx_hash: Byte32,
//	    index:   Uint32,
//	}
type OutPoint struct {
	TxHash common.Hash
	Index  uint32
}

// OutPointCodec is the molecule codec of OutPoint.
var OutPointCodec molecule.Codec[OutPoint] = outPointCodec{}

func (o OutPoint) Pack() []byte {
	return molecule.Pack(OutPointCodec, o)
}

// UnpackOutPoint decodes an OutPoint.
func UnpackOutPoint(buf []byte) (OutPoint, error) {
	res, err := OutPointCodec.DecodeFrom(buf)
	if err != nil {
		return OutPoint{}, errors.E("UnpackOutPoint", errors.K.Invalid, err)
	}
	return res, nil
}

type outPointJSON struct {
	TxHash common.Hash    `json:"tx_hash"`
	Index  hexutil.Uint64 `json:"index"`
}

// MarshalJSON encodes the out point in the JSON-RPC form
//
//	{"tx_hash": "0x...", "index": "0x0"}
func (o OutPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(outPointJSON{TxHash: o.TxHash, Index: hexutil.Uint64(o.Index)})
}

func (o *OutPoint) UnmarshalJSON(data []byte) error {
	var v outPointJSON
	err := json.Unmarshal(data, &v)
	if err != nil {
		return errors.E("OutPoint.UnmarshalJSON", errors.K.Invalid, err)
	}
	if v.Index > 0xffffffff {
		return errors.E("OutPoint.UnmarshalJSON", errors.K.Invalid, "reason", "index out of range", "index", v.Index)
	}
	*o = OutPoint{TxHash: v.TxHash, Index: uint32(v.Index)}
	return nil
}

type outPointCodec struct{}

func (outPointCodec) fields(v OutPoint) []molecule.FieldWriter {
	return []molecule.FieldWriter{
		molecule.Field(molecule.Byte32Codec, [32]byte(v.TxHash)),
		molecule.Field(molecule.Uint32Codec, v.Index),
	}
}

func (outPointCodec) FixedSize() int { return OutPointSize }

func (outPointCodec) SizeOf(OutPoint) int { return OutPointSize }

func (c outPointCodec) EncodeInto(dst []byte, v OutPoint) []byte {
	return molecule.AppendStruct(dst, c.fields(v)...)
}

func (outPointCodec) DecodeFrom(src []byte) (OutPoint, error) {
	fields, err := molecule.ReadStruct(src, common.HashLength, 4)
	if err != nil {
		return OutPoint{}, err
	}
	index, err := molecule.Uint32Codec.DecodeFrom(fields[1])
	if err != nil {
		return OutPoint{}, err
	}
	return OutPoint{
		TxHash: common.BytesToHash(fields[0]),
		Index:  index,
	}, nil
}
