package molecule

// Option returns the codec of an optional value: nil is encoded as zero bytes,
// any other value with the inner codec. Since absence has no in-band marker,
// an option can only be decoded where the enclosing structure delimits it, i.e.
// as a table field.
func Option[T any](inner Codec[T]) Codec[*T] {
	return optionCodec[T]{inner: inner}
}

type optionCodec[T any] struct {
	inner Codec[T]
}

func (c optionCodec[T]) FixedSize() int { return 0 }

func (c optionCodec[T]) SizeOf(v *T) int {
	if v == nil {
		return 0
	}
	return c.inner.SizeOf(*v)
}

func (c optionCodec[T]) EncodeInto(dst []byte, v *T) []byte {
	if v == nil {
		return dst
	}
	return c.inner.EncodeInto(dst, *v)
}

func (c optionCodec[T]) DecodeFrom(src []byte) (*T, error) {
	if len(src) == 0 {
		return nil, nil
	}
	v, err := c.inner.DecodeFrom(src)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
