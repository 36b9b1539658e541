package otx

import (
	"bytes"
	"io"
	"math"

	"github.com/eluv-io/errors-go"
	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-varint"

	"github.com/eluv-io/otx-go/format/molecule"
)

// EnvelopeFormat is the multiformat path identifying molecule encoded open
// transactions.
const EnvelopeFormat = "/otx-molecule"

// WriteEnvelope writes the encoded transaction to w in the self-describing
// format
//
//	[header][uvarint][data]
//
// where header is the multicodec header of EnvelopeFormat, uvarint the length
// of data and data the molecule encoding of tx. It returns the number of bytes
// written.
func WriteEnvelope(w io.Writer, tx OpenTransaction) (int64, error) {
	data := tx.Pack()
	header := multicodec.Header([]byte(EnvelopeFormat))
	mr := io.MultiReader(
		bytes.NewReader(header),
		bytes.NewReader(varint.ToUvarint(uint64(len(data)))),
		bytes.NewReader(data))
	n, err := io.Copy(w, mr)
	if err != nil {
		return n, errors.E("WriteEnvelope", errors.K.IO, err)
	}
	return n, nil
}

// ReadEnvelope reads a transaction written by WriteEnvelope with the
// DefaultCodec.
func ReadEnvelope(r io.Reader) (OpenTransaction, error) {
	return DefaultCodec.ReadEnvelope(r)
}

// ReadEnvelope reads a transaction written by WriteEnvelope. It reads exactly
// the bytes of the envelope from r. The data size is checked against the
// codec's buffer limit before it is read.
func (c *Codec) ReadEnvelope(r io.Reader) (OpenTransaction, error) {
	e := errors.Template("ReadEnvelope", errors.K.Invalid)

	header, err := multicodec.ReadHeader(r)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return OpenTransaction{}, e(molecule.ErrTruncatedInput, "reason", "envelope header not found")
	} else if err == multicodec.ErrVarints || err == multicodec.ErrHeaderInvalid {
		return OpenTransaction{}, e(err, "reason", "invalid envelope header")
	} else if err != nil {
		return OpenTransaction{}, errors.E("ReadEnvelope", errors.K.IO, err)
	}
	format := string(multicodec.HeaderPath(header))
	if format != EnvelopeFormat {
		return OpenTransaction{}, e("reason", "unsupported format", "format", format)
	}

	size, err := varint.ReadUvarint(byteReader{r})
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return OpenTransaction{}, e(molecule.ErrTruncatedInput, "reason", "data size not found")
	} else if err != nil {
		return OpenTransaction{}, e(err, "reason", "invalid data size")
	}
	if size > math.MaxUint32 {
		return OpenTransaction{}, e(molecule.ErrSizeLimit, "size", size)
	}
	err = c.cfg.CheckBufferSize(int(size))
	if err != nil {
		return OpenTransaction{}, e(err)
	}

	// the buffer grows with the data actually read, not with the declared size
	data := &bytes.Buffer{}
	n, err := io.CopyN(data, r, int64(size))
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return OpenTransaction{}, e(molecule.ErrTruncatedInput, "reason", "data truncated", "size", size, "read", n)
	} else if err != nil {
		return OpenTransaction{}, errors.E("ReadEnvelope", errors.K.IO, err)
	}
	return c.Unpack(data.Bytes())
}

// byteReader reads single bytes from a reader without buffering, so that
// nothing beyond the envelope is consumed.
type byteReader struct {
	r io.Reader
}

func (b byteReader) ReadByte() (byte, error) {
	if br, ok := b.r.(io.ByteReader); ok {
		return br.ReadByte()
	}
	var buf [1]byte
	_, err := io.ReadFull(b.r, buf[:])
	return buf[0], err
}
