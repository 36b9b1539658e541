package otx

import (
	"github.com/eluv-io/errors-go"
	elog "github.com/eluv-io/log-go"

	"github.com/eluv-io/otx-go/format/molecule"
	"github.com/eluv-io/otx-go/util/byteutil"
)

var log = elog.Get("/eluvio/format/otx")

// DefaultCodec is the codec used by the package-level functions and the Pack
// and UnmarshalBinary methods. It uses the default molecule configuration.
var DefaultCodec = NewCodec(nil)

// Codec decodes open transactions and their parts with the limits of a
// molecule configuration. A Codec is immutable and safe for concurrent use.
type Codec struct {
	cfg    *molecule.Config
	record molecule.Codec[KeyValueRecord]
	list   molecule.Codec[RecordList]
	group  molecule.Codec[RecordListGroup]
	tx     molecule.Codec[OpenTransaction]
}

// NewCodec creates a codec with the given configuration. A nil configuration
// is equivalent to molecule.DefaultConfig().
func NewCodec(cfg *molecule.Config) *Codec {
	c := &Codec{cfg: cfg}
	c.record = recordCodec{cfg: cfg}
	c.list = molecule.DynVec[RecordList, KeyValueRecord](c.record, cfg)
	c.group = molecule.DynVec[RecordListGroup, RecordList](c.list, cfg)
	c.tx = txCodec{cfg: cfg, list: c.list, group: c.group}
	return c
}

// Config returns the configuration of the codec.
func (c *Codec) Config() *molecule.Config {
	return c.cfg
}

// RecordCodec returns the molecule codec of KeyValueRecord, e.g. for use as
// field of another table.
func (c *Codec) RecordCodec() molecule.Codec[KeyValueRecord] { return c.record }

// ListCodec returns the molecule codec of RecordList.
func (c *Codec) ListCodec() molecule.Codec[RecordList] { return c.list }

// GroupCodec returns the molecule codec of RecordListGroup.
func (c *Codec) GroupCodec() molecule.Codec[RecordListGroup] { return c.group }

// TransactionCodec returns the molecule codec of OpenTransaction.
func (c *Codec) TransactionCodec() molecule.Codec[OpenTransaction] { return c.tx }

// UnpackRecord decodes a KeyValueRecord.
func (c *Codec) UnpackRecord(buf []byte) (KeyValueRecord, error) {
	return unpack(c, "UnpackRecord", c.record, buf)
}

// UnpackList decodes a RecordList.
func (c *Codec) UnpackList(buf []byte) (RecordList, error) {
	return unpack(c, "UnpackList", c.list, buf)
}

// UnpackGroup decodes a RecordListGroup.
func (c *Codec) UnpackGroup(buf []byte) (RecordListGroup, error) {
	return unpack(c, "UnpackGroup", c.group, buf)
}

// Unpack decodes an OpenTransaction.
func (c *Codec) Unpack(buf []byte) (OpenTransaction, error) {
	return unpack(c, "Unpack", c.tx, buf)
}

// ReadSection validates the header of the encoded transaction in buf and
// returns a copy of the encoding of the given section. The result is identical
// to the stand-alone encoding of the section.
func (c *Codec) ReadSection(buf []byte, s Section) ([]byte, error) {
	e := errors.Template("ReadSection", errors.K.Invalid, "section", s)
	if !s.IsValid() {
		return nil, e("reason", "invalid section")
	}

	err := c.cfg.CheckBufferSize(len(buf))
	if err != nil {
		return nil, e(err)
	}
	fields, err := molecule.ReadTable(buf, int(sectionCount), c.cfg)
	if err != nil {
		log.Debug("rejected buffer", "op", "ReadSection", "size", len(buf), "error", err)
		return nil, e(err)
	}
	raw := fields[s]
	if s == SectionMeta {
		_, err = molecule.DecodeField(c.list, fields, int(s), s.String())
	} else {
		_, err = molecule.DecodeField(c.group, fields, int(s), s.String())
	}
	if err != nil {
		log.Debug("rejected buffer", "op", "ReadSection", "size", len(buf), "error", err)
		return nil, e(err)
	}
	return byteutil.Clone(raw), nil
}

func unpack[T any](c *Codec, op string, codec molecule.Codec[T], buf []byte) (T, error) {
	res, err := molecule.Unpack(codec, buf, c.cfg)
	if err != nil {
		log.Debug("rejected buffer", "op", op, "size", len(buf), "error", err)
		var zero T
		return zero, errors.E(op, errors.K.Invalid, err)
	}
	return res, nil
}

// UnpackRecord decodes a KeyValueRecord with the DefaultCodec.
func UnpackRecord(buf []byte) (KeyValueRecord, error) {
	return DefaultCodec.UnpackRecord(buf)
}

// UnpackList decodes a RecordList with the DefaultCodec.
func UnpackList(buf []byte) (RecordList, error) {
	return DefaultCodec.UnpackList(buf)
}

// UnpackGroup decodes a RecordListGroup with the DefaultCodec.
func UnpackGroup(buf []byte) (RecordListGroup, error) {
	return DefaultCodec.UnpackGroup(buf)
}

// Unpack decodes an OpenTransaction with the DefaultCodec.
func Unpack(buf []byte) (OpenTransaction, error) {
	return DefaultCodec.Unpack(buf)
}

// ReadSection returns the encoding of a section of the encoded transaction in
// buf using the DefaultCodec.
func ReadSection(buf []byte, s Section) ([]byte, error) {
	return DefaultCodec.ReadSection(buf, s)
}
