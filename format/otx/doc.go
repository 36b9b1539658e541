/*
Package otx implements the molecule encoding of open transactions.

An open transaction is a partially constructed transaction whose parts are
described by typed key/value records instead of a fixed schema. Records are
grouped into six sections:

	table OtxKeyPair {
	    keyType:   Uint32,
	    keyData:   BytesOpt,
	    valueData: Bytes,
	}

	vector OtxMap    <OtxKeyPair>;
	vector OtxMapVec <OtxMap>;

	table OpenTransaction {
	    meta:        OtxMap,
	    cell_deps:   OtxMapVec,
	    header_deps: OtxMapVec,
	    inputs:      OtxMapVec,
	    witnesses:   OtxMapVec,
	    outputs:     OtxMapVec,
	}

The codec never interprets key types or payloads: it only guarantees that
unpacking a packed value reproduces the original value, with byte strings
compared by content.

	tx := otx.OpenTransaction{
		Meta: otx.RecordList{otx.MustRecord(1, "0x0e", "0x0a")},
	}
	buf := tx.Pack()

	decoded, err := otx.Unpack(buf)
*/
package otx
