package ckb

import (
	"github.com/eluv-io/errors-go"
	"github.com/ethereum/go-ethereum/common"

	"github.com/eluv-io/otx-go/format/molecule"
)

// HashType defines how the code hash of a script is matched against cells.
type HashType byte

const (
	HashTypeData  HashType = 0
	HashTypeType  HashType = 1
	HashTypeData1 HashType = 2
)

var hashTypeNames = map[HashType]string{
	HashTypeData:  "data",
	HashTypeType:  "type",
	HashTypeData1: "data1",
}

func (h HashType) String() string {
	if s, ok := hashTypeNames[h]; ok {
		return s
	}
	return "invalid"
}

func (h HashType) IsValid() bool {
	_, ok := hashTypeNames[h]
	return ok
}

func (h HashType) MarshalText() ([]byte, error) {
	if !h.IsValid() {
		return nil, errors.E("HashType.MarshalText", errors.K.Invalid, "hash_type", byte(h))
	}
	return []byte(h.String()), nil
}

func (h *HashType) UnmarshalText(text []byte) error {
	for t, name := range hashTypeNames {
		if name == string(text) {
			*h = t
			return nil
		}
	}
	return errors.E("HashType.UnmarshalText", errors.K.Invalid, "hash_type", string(text))
}

// Script is a lock or type script.
//
//	table Script {
//	    code_hash: Byte32,
//	    hash_type: byte,
//	    args:      Bytes,
//	}
type Script struct {
	CodeHash common.Hash    `json:"code_hash"`
	HashType HashType       `json:"hash_type"`
	Args     molecule.Bytes `json:"args"`
}

// Equal compares the scripts by content.
func (s Script) Equal(o Script) bool {
	return s.CodeHash == o.CodeHash && s.HashType == o.HashType && s.Args.Equal(o.Args)
}

// ScriptCodec is the molecule codec of Script.
var ScriptCodec molecule.Codec[Script] = scriptCodec{}

// ScriptOptCodec is the molecule codec of an optional Script.
var ScriptOptCodec = molecule.Option(ScriptCodec)

func (s Script) Pack() []byte {
	return molecule.Pack(ScriptCodec, s)
}

// UnpackScript decodes a Script.
func UnpackScript(buf []byte) (Script, error) {
	res, err := ScriptCodec.DecodeFrom(buf)
	if err != nil {
		return Script{}, errors.E("UnpackScript", errors.K.Invalid, err)
	}
	return res, nil
}

// PackScriptOpt encodes an optional script: nil is encoded as zero bytes.
func PackScriptOpt(s *Script) []byte {
	return molecule.Pack(ScriptOptCodec, s)
}

// UnpackScriptOpt decodes an optional script. An empty buffer yields nil.
func UnpackScriptOpt(buf []byte) (*Script, error) {
	res, err := ScriptOptCodec.DecodeFrom(buf)
	if err != nil {
		return nil, errors.E("UnpackScriptOpt", errors.K.Invalid, err)
	}
	return res, nil
}

type scriptCodec struct{}

func (scriptCodec) fields(v Script) []molecule.FieldWriter {
	return []molecule.FieldWriter{
		molecule.Field(molecule.Byte32Codec, [32]byte(v.CodeHash)),
		molecule.Field(molecule.ByteCodec, byte(v.HashType)),
		molecule.Field(molecule.BytesCodec, v.Args),
	}
}

func (scriptCodec) FixedSize() int { return 0 }

func (c scriptCodec) SizeOf(v Script) int {
	return molecule.TableSize(c.fields(v)...)
}

func (c scriptCodec) EncodeInto(dst []byte, v Script) []byte {
	return molecule.AppendTable(dst, c.fields(v)...)
}

func (scriptCodec) DecodeFrom(src []byte) (res Script, err error) {
	fields, err := molecule.ReadTable(src, 3, nil)
	if err != nil {
		return res, err
	}
	codeHash, err := molecule.DecodeField(molecule.Byte32Codec, fields, 0, "code_hash")
	if err != nil {
		return Script{}, err
	}
	hashType, err := molecule.DecodeField(molecule.ByteCodec, fields, 1, "hash_type")
	if err != nil {
		return Script{}, err
	}
	res.Args, err = molecule.DecodeField(molecule.BytesCodec, fields, 2, "args")
	if err != nil {
		return Script{}, err
	}
	res.CodeHash = common.Hash(codeHash)
	res.HashType = HashType(hashType)
	return res, nil
}
