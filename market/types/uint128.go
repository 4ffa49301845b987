package types

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// Uint128 is the contract's Uint128, serialized as a decimal string.
// Decoding rejects values outside [0, 2^128).
type Uint128 struct {
	sdkmath.Int
}

func NewUint128(v uint64) Uint128 {
	return Uint128{sdkmath.NewIntFromUint64(v)}
}

func ParseUint128(s string) (Uint128, error) {
	i, ok := sdkmath.NewIntFromString(s)
	if !ok {
		return Uint128{}, errorsmod.Wrapf(ErrInvalidPrice, "%s is not an integer", s)
	}

	u := Uint128{i}
	if err := u.checkRange(); err != nil {
		return Uint128{}, err
	}

	return u, nil
}

func (u Uint128) checkRange() error {
	if u.IsNegative() {
		return errorsmod.Wrapf(ErrInvalidPrice, "%s is negative", u)
	}

	if u.BigInt().BitLen() > 128 {
		return errorsmod.Wrapf(ErrInvalidPrice, "%s overflows uint128", u)
	}

	return nil
}

func (u *Uint128) UnmarshalJSON(bz []byte) error {
	var i sdkmath.Int
	if err := json.Unmarshal(bz, &i); err != nil {
		return err
	}

	v := Uint128{i}
	if err := v.checkRange(); err != nil {
		return err
	}

	*u = v
	return nil
}

// ValidatePrice rejects unset, zero and out of range amounts.
func ValidatePrice(price Uint128) error {
	if price.IsNil() || !price.IsPositive() {
		return errorsmod.Wrap(ErrInvalidPrice, "price must be positive")
	}

	return price.checkRange()
}
