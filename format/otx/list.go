package otx

import (
	"encoding/json"

	"github.com/eluv-io/otx-go/format/molecule"
)

// RecordList is an ordered list of records. Order and duplicates are preserved.
type RecordList []KeyValueRecord

// Find returns the first record with the given key type.
func (l RecordList) Find(keyType uint32) (KeyValueRecord, bool) {
	for _, r := range l {
		if r.KeyType == keyType {
			return r, true
		}
	}
	return KeyValueRecord{}, false
}

// FindAll returns all records with the given key type in list order.
func (l RecordList) FindAll(keyType uint32) RecordList {
	var res RecordList
	for _, r := range l {
		if r.KeyType == keyType {
			res = append(res, r)
		}
	}
	return res
}

// Equal compares the lists element by element. A nil list equals an empty one.
func (l RecordList) Equal(o RecordList) bool {
	if len(l) != len(o) {
		return false
	}
	for i := range l {
		if !l[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// Pack returns the molecule encoding of the list.
func (l RecordList) Pack() []byte {
	return molecule.Pack(DefaultCodec.list, l)
}

// MarshalJSON encodes a nil list as an empty array.
func (l RecordList) MarshalJSON() ([]byte, error) {
	if l == nil {
		l = RecordList{}
	}
	return json.Marshal([]KeyValueRecord(l))
}

func (l RecordList) MarshalBinary() ([]byte, error) {
	return l.Pack(), nil
}

func (l *RecordList) UnmarshalBinary(data []byte) error {
	res, err := UnpackList(data)
	if err != nil {
		return err
	}
	*l = res
	return nil
}

// RecordListGroup is an ordered list of record lists.
type RecordListGroup []RecordList

// Equal compares the groups list by list. A nil group equals an empty one.
func (g RecordListGroup) Equal(o RecordListGroup) bool {
	if len(g) != len(o) {
		return false
	}
	for i := range g {
		if !g[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// Pack returns the molecule encoding of the group.
func (g RecordListGroup) Pack() []byte {
	return molecule.Pack(DefaultCodec.group, g)
}

// MarshalJSON encodes a nil group as an empty array.
func (g RecordListGroup) MarshalJSON() ([]byte, error) {
	if g == nil {
		g = RecordListGroup{}
	}
	return json.Marshal([]RecordList(g))
}

func (g RecordListGroup) MarshalBinary() ([]byte, error) {
	return g.Pack(), nil
}

func (g *RecordListGroup) UnmarshalBinary(data []byte) error {
	res, err := UnpackGroup(data)
	if err != nil {
		return err
	}
	*g = res
	return nil
}
