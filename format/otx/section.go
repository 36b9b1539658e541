package otx

import (
	"github.com/eluv-io/errors-go"
)

// Section identifies one of the six sections of an open transaction. The
// numeric value is the index of the section's field in the encoded table.
type Section uint8

const (
	SectionMeta Section = iota
	SectionCellDeps
	SectionHeaderDeps
	SectionInputs
	SectionWitnesses
	SectionOutputs
	sectionCount
)

var sectionNames = [sectionCount]string{
	SectionMeta:       "meta",
	SectionCellDeps:   "cellDeps",
	SectionHeaderDeps: "headerDeps",
	SectionInputs:     "inputs",
	SectionWitnesses:  "witnesses",
	SectionOutputs:    "outputs",
}

// Sections returns all sections in encoding order.
func Sections() []Section {
	res := make([]Section, sectionCount)
	for i := range res {
		res[i] = Section(i)
	}
	return res
}

// ParseSection returns the section with the given name as used in the JSON
// form of a transaction, e.g. "cellDeps".
func ParseSection(name string) (Section, error) {
	for i, n := range sectionNames {
		if n == name {
			return Section(i), nil
		}
	}
	return 0, errors.E("ParseSection", errors.K.Invalid, "reason", "unknown section", "name", name)
}

func (s Section) IsValid() bool {
	return s < sectionCount
}

func (s Section) String() string {
	if !s.IsValid() {
		return "invalid"
	}
	return sectionNames[s]
}
