package dbbadger

import "github.com/fxamacker/cbor/v2"

var encMode cbor.EncMode

func init() {
	var err error
	// Core Deterministic Encoding makes equal records produce equal bytes,
	// that's required for badgerhold index keys.
	if encMode, err = cbor.CoreDetEncOptions().EncMode(); err != nil {
		panic(err)
	}
}

// CBOREncode is the badgerhold encoder used for every record and index
// value.
func CBOREncode(value interface{}) ([]byte, error) {
	return encMode.Marshal(value)
}

// CBORDecode is the badgerhold decoder counterpart of CBOREncode.
func CBORDecode(data []byte, value interface{}) error {
	return cbor.Unmarshal(data, value)
}
