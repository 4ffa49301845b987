package types

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/types/bech32"
)

// ValidateAddress checks addr is a bech32 address, with the given human
// readable prefix when prefix is not empty.
func ValidateAddress(addr string, prefix string) error {
	if addr == "" {
		return errorsmod.Wrap(ErrInvalidAddress, "empty address")
	}

	hrp, bz, err := bech32.DecodeAndConvert(addr)
	if err != nil {
		return errorsmod.Wrapf(ErrInvalidAddress, "%s: %v", addr, err)
	}

	if prefix != "" && hrp != prefix {
		return errorsmod.Wrapf(ErrInvalidAddress, "%s: expected prefix %s, got %s", addr, prefix, hrp)
	}

	if len(bz) == 0 {
		return errorsmod.Wrapf(ErrInvalidAddress, "%s: empty payload", addr)
	}

	return nil
}
