package molecule

// Tables and dynamic vectors share the same layout:
//
//	[total size][offset 0]...[offset n-1][item 0]...[item n-1]
//
// All numbers are 4-byte little-endian, offsets are relative to the start of
// the structure and the first offset equals the size of the header, so the
// item count is implied by it.

// layoutSize returns the size of a structure with items of the given sizes.
func layoutSize(sizes []int) int {
	n := numberSize * (1 + len(sizes))
	for _, s := range sizes {
		n += s
	}
	return n
}

// appendLayout appends a structure with items of the given sizes. write is
// called in order for every item and must append exactly sizes[i] bytes.
func appendLayout(dst []byte, sizes []int, write func(dst []byte, i int) []byte) []byte {
	dst = appendNumber(dst, layoutSize(sizes))
	offset := numberSize * (1 + len(sizes))
	for _, s := range sizes {
		dst = appendNumber(dst, offset)
		offset += s
	}
	for i := range sizes {
		dst = write(dst, i)
	}
	return dst
}

// readLayout splits src into the raw items of a table or dynamic vector. class
// is the error reported for inconsistencies. With strict set, every item must
// be non-empty (offsets strictly increasing), otherwise empty items are
// allowed. If cfg is not nil, the item count is checked against its limits.
func readLayout(op string, src []byte, class error, strict bool, cfg *Config) ([][]byte, error) {
	if len(src) < numberSize {
		return nil, fail(op, ErrTruncatedInput, "reason", "missing header", "actual", len(src))
	}
	total := readNumber(src, 0)
	if total > uint64(len(src)) {
		return nil, fail(op, ErrTruncatedInput, "reason", "total size exceeds buffer", "total_size", total, "actual", len(src))
	}
	if total < uint64(len(src)) {
		return nil, fail(op, class, "reason", "total size mismatch", "total_size", total, "actual", len(src))
	}
	if total == numberSize {
		return [][]byte{}, nil
	}
	if total < 2*numberSize {
		return nil, fail(op, class, "reason", "header too short", "total_size", total)
	}

	first := readNumber(src, numberSize)
	if first%numberSize != 0 || first < 2*numberSize || first > total {
		return nil, fail(op, class, "reason", "invalid first offset", "offset", first, "total_size", total)
	}
	count := first/numberSize - 1
	if cfg != nil {
		if err := cfg.checkItemCount(count); err != nil {
			return nil, err
		}
	}

	items := make([][]byte, count)
	start := first
	for i := uint64(0); i < count; i++ {
		end := total
		if i+1 < count {
			end = readNumber(src, int((i+2)*numberSize))
		}
		if end > total {
			return nil, fail(op, class, "reason", "offset out of range", "index", i+1, "offset", end, "total_size", total)
		}
		if end < start || (strict && end == start) {
			return nil, fail(op, class, "reason", "offsets not increasing", "index", i, "start", start, "end", end)
		}
		items[i] = src[start:end]
		start = end
	}
	return items, nil
}
