package util

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// Balance is an amount of yoctoNEAR. It's a 128-bit unsigned integer
// serialized as a decimal string on the wire (JSON numbers can't hold it).
type Balance struct {
	v big.Int
}

// NewBalance creates a Balance from the given uint64 amount.
func NewBalance(amount uint64) Balance {
	var b Balance
	b.v.SetUint64(amount)
	return b
}

// BalanceFromString attempts to parse a decimal string into a Balance.
func BalanceFromString(s string) (Balance, error) {
	var b Balance
	if _, ok := b.v.SetString(s, 10); !ok {
		return b, fmt.Errorf("invalid balance string: %q", s)
	}
	if b.v.Sign() < 0 {
		return Balance{}, fmt.Errorf("negative balance: %q", s)
	}
	return b, nil
}

// BigInt returns a copy of the underlying big integer value.
func (b Balance) BigInt() *big.Int {
	return new(big.Int).Set(&b.v)
}

// Cmp compares b and other, returning -1, 0 or 1.
func (b Balance) Cmp(other Balance) int {
	return b.v.Cmp(&other.v)
}

// String implements the stringer interface.
func (b Balance) String() string {
	return b.v.String()
}

// UnmarshalJSON implements the json unmarshaller interface.
func (b *Balance) UnmarshalJSON(data []byte) error {
	var js string
	if err := json.Unmarshal(data, &js); err != nil {
		return err
	}
	parsed, err := BalanceFromString(js)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// MarshalJSON implements the json marshaller interface.
func (b Balance) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}
