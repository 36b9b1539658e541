/*
Package molecule implements the molecule binary layout: fixed-width
little-endian numbers, byte strings, options, structs, tables and vectors.

Every type is encoded by a Codec. Composite codecs are built from the codecs of
their parts, so arbitrarily nested structures are expressed by composition:

	records := molecule.DynVec[[]Record](recordCodec, cfg)
	buf := molecule.Pack(records, []Record{r1, r2})
	decoded, err := molecule.Unpack(records, buf, cfg)

Layouts (all numbers are 4-byte little-endian):

	Bytes:   [length][raw bytes]
	Option:  empty (absent) or the encoding of the value
	Struct:  [field 0]...[field n-1]                  fixed-size fields only
	FixVec:  [item count][item 0]...[item n-1]         fixed-size items
	Table:   [total size][offset 0]...[offset n-1][field 0]...[field n-1]
	DynVec:  [total size][offset 0]...[offset n-1][item 0]...[item n-1]

Offsets are relative to the start of the table or vector. The size of a table
field is the distance to the next offset (or to the total size for the last
field), and a field of size zero is an absent option. ReadTable and
DecodeField are the only place where this rule is applied.

Decoding never trusts the buffer: sizes and offsets are validated before any
item is decoded, and failures are reported with the Err* error classes of this
package. Encoding of well-formed values does not fail. Codecs are stateless
and safe for concurrent use.
*/
package molecule
