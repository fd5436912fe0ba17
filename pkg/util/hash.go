package util

import (
	"encoding/json"
	"fmt"

	"github.com/mr-tron/base58"
)

const cryptoHashSize = 32

// CryptoHash is a 32 byte long hash as used by NEAR for blocks, chunks,
// transactions and receipts. Its textual form is base58.
type CryptoHash [cryptoHashSize]uint8

// CryptoHashFromString attempts to decode the given base58 string into a
// CryptoHash.
func CryptoHashFromString(s string) (h CryptoHash, err error) {
	b, err := base58.Decode(s)
	if err != nil {
		return h, fmt.Errorf("invalid base58 string: %w", err)
	}
	return CryptoHashFromBytes(b)
}

// CryptoHashFromBytes attempts to decode the given bytes into a CryptoHash.
func CryptoHashFromBytes(b []byte) (h CryptoHash, err error) {
	if len(b) != cryptoHashSize {
		return h, fmt.Errorf("expected []byte of size %d got %d", cryptoHashSize, len(b))
	}
	copy(h[:], b)
	return h, nil
}

// Bytes returns a byte slice representation of h.
func (h CryptoHash) Bytes() []byte {
	b := make([]byte, cryptoHashSize)
	copy(b, h[:])
	return b
}

// Equals returns true if both CryptoHash values are the same.
func (h CryptoHash) Equals(other CryptoHash) bool {
	return h == other
}

// String implements the stringer interface.
func (h CryptoHash) String() string {
	return base58.Encode(h[:])
}

// UnmarshalJSON implements the json unmarshaller interface.
func (h *CryptoHash) UnmarshalJSON(data []byte) (err error) {
	var js string
	if err = json.Unmarshal(data, &js); err != nil {
		return err
	}
	*h, err = CryptoHashFromString(js)
	return err
}

// MarshalJSON implements the json marshaller interface.
func (h CryptoHash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}
