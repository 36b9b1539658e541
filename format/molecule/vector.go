package molecule

// Vector returns the codec of a homogeneous sequence: a FixVec if the elements
// have a fixed size, a DynVec otherwise.
func Vector[S ~[]T, T any](elem Codec[T], cfg *Config) Codec[S] {
	if elem.FixedSize() > 0 {
		return FixVec[S](elem, cfg)
	}
	return DynVec[S](elem, cfg)
}

// FixVec returns the codec of a sequence of fixed-size elements, encoded as
// the 4-byte element count followed by the concatenated elements.
func FixVec[S ~[]T, T any](elem Codec[T], cfg *Config) Codec[S] {
	if elem.FixedSize() <= 0 {
		panic("molecule.FixVec: element codec is not fixed-size")
	}
	return fixVec[S, T]{elem: elem, cfg: cfg}
}

// DynVec returns the codec of a sequence of elements of any size, encoded as
// the 4-byte total size, one 4-byte offset per element and the concatenated
// elements. An empty DynVec is the 4-byte total size 4.
func DynVec[S ~[]T, T any](elem Codec[T], cfg *Config) Codec[S] {
	return dynVec[S, T]{elem: elem, cfg: cfg}
}

// ===== FixVec ================================================================

type fixVec[S ~[]T, T any] struct {
	elem Codec[T]
	cfg  *Config
}

func (c fixVec[S, T]) FixedSize() int { return 0 }

func (c fixVec[S, T]) SizeOf(v S) int {
	return numberSize + len(v)*c.elem.FixedSize()
}

func (c fixVec[S, T]) EncodeInto(dst []byte, v S) []byte {
	dst = appendNumber(dst, len(v))
	for _, e := range v {
		dst = c.elem.EncodeInto(dst, e)
	}
	return dst
}

func (c fixVec[S, T]) DecodeFrom(src []byte) (S, error) {
	const op = "molecule.FixVec.DecodeFrom"
	if len(src) < numberSize {
		return nil, fail(op, ErrTruncatedInput, "reason", "missing item count", "actual", len(src))
	}
	count := readNumber(src, 0)
	if err := c.cfg.checkItemCount(count); err != nil {
		return nil, err
	}
	size := uint64(c.elem.FixedSize())
	expected := numberSize + count*size
	if expected > uint64(len(src)) {
		return nil, fail(op, ErrTruncatedInput, "item_count", count, "expected", expected, "actual", len(src))
	}
	if expected < uint64(len(src)) {
		return nil, fail(op, ErrMalformedVector, "reason", "size mismatch", "item_count", count, "expected", expected, "actual", len(src))
	}

	res := make(S, 0, count)
	pos := uint64(numberSize)
	for i := uint64(0); i < count; i++ {
		e, err := c.elem.DecodeFrom(src[pos : pos+size])
		if err != nil {
			return nil, failNested(op, ErrMalformedVector, err, "index", i)
		}
		res = append(res, e)
		pos += size
	}
	return res, nil
}

// ===== DynVec ================================================================

type dynVec[S ~[]T, T any] struct {
	elem Codec[T]
	cfg  *Config
}

func (c dynVec[S, T]) FixedSize() int { return 0 }

func (c dynVec[S, T]) sizes(v S) []int {
	sizes := make([]int, len(v))
	for i, e := range v {
		sizes[i] = c.elem.SizeOf(e)
	}
	return sizes
}

func (c dynVec[S, T]) SizeOf(v S) int {
	return layoutSize(c.sizes(v))
}

func (c dynVec[S, T]) EncodeInto(dst []byte, v S) []byte {
	return appendLayout(dst, c.sizes(v), func(dst []byte, i int) []byte {
		return c.elem.EncodeInto(dst, v[i])
	})
}

func (c dynVec[S, T]) DecodeFrom(src []byte) (S, error) {
	const op = "molecule.DynVec.DecodeFrom"
	items, err := readLayout(op, src, ErrMalformedVector, true, c.cfg.orDefault())
	if err != nil {
		return nil, err
	}

	res := make(S, 0, len(items))
	for i, item := range items {
		e, err := c.elem.DecodeFrom(item)
		if err != nil {
			return nil, failNested(op, ErrMalformedVector, err, "index", i)
		}
		res = append(res, e)
	}
	return res, nil
}
