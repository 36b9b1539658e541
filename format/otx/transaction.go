package otx

import (
	"github.com/eluv-io/errors-go"

	"github.com/eluv-io/otx-go/format/molecule"
)

// OpenTransaction is an open transaction made of six sections. All sections are
// always encoded; an empty section is encoded as an empty vector.
type OpenTransaction struct {
	Meta       RecordList      `json:"meta"`
	CellDeps   RecordListGroup `json:"cellDeps"`
	HeaderDeps RecordListGroup `json:"headerDeps"`
	Inputs     RecordListGroup `json:"inputs"`
	Witnesses  RecordListGroup `json:"witnesses"`
	Outputs    RecordListGroup `json:"outputs"`
}

// Group returns the record list group of the given section. It returns nil for
// SectionMeta, which is a plain RecordList, and for invalid sections.
func (tx OpenTransaction) Group(s Section) RecordListGroup {
	switch s {
	case SectionCellDeps:
		return tx.CellDeps
	case SectionHeaderDeps:
		return tx.HeaderDeps
	case SectionInputs:
		return tx.Inputs
	case SectionWitnesses:
		return tx.Witnesses
	case SectionOutputs:
		return tx.Outputs
	}
	return nil
}

// PackSection returns the stand-alone encoding of the given section. It is
// identical to the bytes of that section within the encoding of tx.
func (tx OpenTransaction) PackSection(s Section) ([]byte, error) {
	switch {
	case s == SectionMeta:
		return tx.Meta.Pack(), nil
	case s.IsValid():
		return tx.Group(s).Pack(), nil
	}
	return nil, errors.E("OpenTransaction.PackSection", errors.K.Invalid,
		"reason", "invalid section",
		"section", s)
}

// Equal compares the transactions section by section.
func (tx OpenTransaction) Equal(o OpenTransaction) bool {
	return tx.Meta.Equal(o.Meta) &&
		tx.CellDeps.Equal(o.CellDeps) &&
		tx.HeaderDeps.Equal(o.HeaderDeps) &&
		tx.Inputs.Equal(o.Inputs) &&
		tx.Witnesses.Equal(o.Witnesses) &&
		tx.Outputs.Equal(o.Outputs)
}

// Pack returns the molecule encoding of the transaction.
func (tx OpenTransaction) Pack() []byte {
	return molecule.Pack(DefaultCodec.tx, tx)
}

func (tx OpenTransaction) MarshalBinary() ([]byte, error) {
	return tx.Pack(), nil
}

func (tx *OpenTransaction) UnmarshalBinary(data []byte) error {
	res, err := Unpack(data)
	if err != nil {
		return err
	}
	*tx = res
	return nil
}

// ===== codec =================================================================

type txCodec struct {
	cfg   *molecule.Config
	list  molecule.Codec[RecordList]
	group molecule.Codec[RecordListGroup]
}

func (c txCodec) fields(v OpenTransaction) []molecule.FieldWriter {
	return []molecule.FieldWriter{
		molecule.Field(c.list, v.Meta),
		molecule.Field(c.group, v.CellDeps),
		molecule.Field(c.group, v.HeaderDeps),
		molecule.Field(c.group, v.Inputs),
		molecule.Field(c.group, v.Witnesses),
		molecule.Field(c.group, v.Outputs),
	}
}

func (c txCodec) FixedSize() int { return 0 }

func (c txCodec) SizeOf(v OpenTransaction) int {
	return molecule.TableSize(c.fields(v)...)
}

func (c txCodec) EncodeInto(dst []byte, v OpenTransaction) []byte {
	return molecule.AppendTable(dst, c.fields(v)...)
}

func (c txCodec) DecodeFrom(src []byte) (res OpenTransaction, err error) {
	fields, err := molecule.ReadTable(src, int(sectionCount), c.cfg)
	if err != nil {
		return res, err
	}
	if res.Meta, err = molecule.DecodeField(c.list, fields, int(SectionMeta), SectionMeta.String()); err != nil {
		return OpenTransaction{}, err
	}
	groups := []*RecordListGroup{
		SectionCellDeps:   &res.CellDeps,
		SectionHeaderDeps: &res.HeaderDeps,
		SectionInputs:     &res.Inputs,
		SectionWitnesses:  &res.Witnesses,
		SectionOutputs:    &res.Outputs,
	}
	for s := SectionCellDeps; s < sectionCount; s++ {
		if *groups[s], err = molecule.DecodeField(c.group, fields, int(s), s.String()); err != nil {
			return OpenTransaction{}, err
		}
	}
	return res, nil
}
