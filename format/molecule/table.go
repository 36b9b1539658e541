package molecule

// FieldWriter encodes a single field of a table or struct. Create it with
// Field.
type FieldWriter struct {
	size  int
	write func(dst []byte) []byte
}

// Field returns the writer of a field encoded with the given codec.
func Field[T any](c Codec[T], v T) FieldWriter {
	return FieldWriter{
		size:  c.SizeOf(v),
		write: func(dst []byte) []byte { return c.EncodeInto(dst, v) },
	}
}

// Size returns the encoded size of the field.
func (f FieldWriter) Size() int {
	return f.size
}

func fieldSizes(fields []FieldWriter) []int {
	sizes := make([]int, len(fields))
	for i, f := range fields {
		sizes[i] = f.size
	}
	return sizes
}

// TableSize returns the encoded size of a table with the given fields.
func TableSize(fields ...FieldWriter) int {
	return layoutSize(fieldSizes(fields))
}

// AppendTable appends a table with the given fields in declared order.
func AppendTable(dst []byte, fields ...FieldWriter) []byte {
	return appendLayout(dst, fieldSizes(fields), func(dst []byte, i int) []byte {
		return fields[i].write(dst)
	})
}

// Fields holds the raw bytes of the fields of a decoded table or struct. A
// table field of zero length is an absent option.
type Fields [][]byte

// ReadTable validates the header of the table in src and splits it into
// fieldCount fields. A table with a different number of fields fails with
// ErrInvalidFieldCount, unless cfg is in compatible mode and the table has
// more fields than expected, in which case the extra fields are dropped.
func ReadTable(src []byte, fieldCount int, cfg *Config) (Fields, error) {
	items, err := readLayout("molecule.ReadTable", src, ErrMalformedTable, false, nil)
	if err != nil {
		return nil, err
	}
	if len(items) != fieldCount {
		if !cfg.compatible() || len(items) < fieldCount {
			return nil, fail("molecule.ReadTable", ErrInvalidFieldCount, "expected", fieldCount, "actual", len(items))
		}
		items = items[:fieldCount]
	}
	return items, nil
}

// DecodeField decodes the field at the given index with codec c. Any failure
// is reported as ErrMalformedTable, with the failure of the field as cause.
func DecodeField[T any](c Codec[T], fields Fields, index int, name string) (T, error) {
	raw := fields[index]
	if fs := c.FixedSize(); fs > 0 && len(raw) != fs {
		var zero T
		return zero, fail("molecule.DecodeField", ErrMalformedTable,
			"reason", "invalid field size",
			"field", name,
			"expected", fs,
			"actual", len(raw))
	}
	v, err := c.DecodeFrom(raw)
	if err != nil {
		return v, failNested("molecule.DecodeField", ErrMalformedTable, err, "field", name)
	}
	return v, nil
}

// ===== Struct ================================================================

// StructSize returns the encoded size of a struct with the given fields.
func StructSize(fields ...FieldWriter) int {
	n := 0
	for _, f := range fields {
		n += f.size
	}
	return n
}

// AppendStruct appends a struct: the plain concatenation of its fixed-size
// fields, without header.
func AppendStruct(dst []byte, fields ...FieldWriter) []byte {
	for _, f := range fields {
		dst = f.write(dst)
	}
	return dst
}

// ReadStruct splits src into fields of the given sizes.
func ReadStruct(src []byte, sizes ...int) (Fields, error) {
	total := 0
	for _, s := range sizes {
		total += s
	}
	if len(src) < total {
		return nil, fail("molecule.ReadStruct", ErrTruncatedInput, "expected", total, "actual", len(src))
	}
	if len(src) > total {
		return nil, fail("molecule.ReadStruct", ErrTrailingData, "expected", total, "actual", len(src))
	}
	fields := make(Fields, len(sizes))
	pos := 0
	for i, s := range sizes {
		fields[i] = src[pos : pos+s]
		pos += s
	}
	return fields, nil
}
